package engine

import (
	"context"
	"errors"
	"fmt"

	"gotcha/game"
)

var ErrTooManyCommands = errors.New("match exceeded the command limit")

// Command is an instruction for the match, issued by a Controller.
type Command interface {
	fmt.Stringer
	isCommand()
}

type Roll struct{}

type Move struct {
	Piece game.PieceID
	To    game.Coordinate
}

type Pass struct{}

func (Roll) String() string   { return "roll" }
func (m Move) String() string { return fmt.Sprintf("move %s to %s", m.Piece, m.To.Position) }
func (Pass) String() string   { return "pass" }

func (Roll) isCommand() {}
func (Move) isCommand() {}
func (Pass) isCommand() {}

// Controller decides the commands for every seat of a match.
type Controller interface {
	// Next returns the next command. Returning io.EOF ends the match
	// without a winner.
	Next(ctx context.Context, m *Match) (Command, error)
	// Rejected reports a command the rules refused; the match goes on.
	Rejected(cmd Command, err error)
}
