package game

import "fmt"

// Action is what the state machine is waiting for next.
type Action int

const (
	// ActionChooseChosen is reserved for a promotion sub-phase that the
	// rules do not define yet; the state machine never enters it.
	ActionChooseChosen Action = iota + 1
	ActionRollDice
	ActionMovePiece
)

func (a Action) String() string {
	switch a {
	case ActionChooseChosen:
		return "choose-chosen"
	case ActionRollDice:
		return "roll-dice"
	case ActionMovePiece:
		return "move-piece"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}
