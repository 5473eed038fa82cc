package game

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalState matches every *IllegalStateError via errors.Is.
	ErrIllegalState = errors.New("illegal state")

	ErrGameOver     = errors.New("game is over")
	ErrUnknownPiece = errors.New("unknown piece")
	ErrNotYourPiece = errors.New("piece does not belong to the active player")
	ErrIllegalMove  = errors.New("illegal move")
	ErrInvalidSetup = errors.New("invalid game setup")
)

// IllegalStateError reports a command issued in the wrong phase or an
// internal guard that failed. The command that returned it changed nothing.
type IllegalStateError struct {
	Op      string // command that was refused
	Waiting Action // what the state was waiting for
	Reason  string
	Err     error // optional cause, e.g. ErrGameOver
}

func (e *IllegalStateError) Error() string {
	msg := fmt.Sprintf("%s: %s (waiting for %s)", e.Op, e.Reason, e.Waiting)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *IllegalStateError) Is(target error) bool {
	return target == ErrIllegalState
}

func (e *IllegalStateError) Unwrap() error {
	return e.Err
}
