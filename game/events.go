package game

// EventKind names an event for subscribers that route by kind.
type EventKind string

const (
	KindWaitingForAction EventKind = "waiting.for.action"
	KindDiceRolled       EventKind = "dice.rolled"
	KindDieUsed          EventKind = "die.used"
	KindPieceMoved       EventKind = "piece.moved"
	KindPieceCaptured    EventKind = "piece.captured"
	KindPlayerNext       EventKind = "player.next"
	KindGameEnded        EventKind = "game.ended"
)

// Event is one observable effect of a command. The set of events is closed:
// only the types in this file implement it.
type Event interface {
	Kind() EventKind
	isEvent()
}

// EventSink receives events from an authoritative GameState, in order.
type EventSink interface {
	Publish(Event)
}

// EventSinkFunc adapts a function to an EventSink.
type EventSinkFunc func(Event)

func (f EventSinkFunc) Publish(e Event) { f(e) }

type WaitingForAction struct {
	Action Action
}

type DiceRolled struct {
	Dice []Die
}

type DieUsed struct {
	Index int // position of the die in the state's dice
	Die   Die
}

type PieceMoved struct {
	Piece Piece
}

type PieceCaptured struct {
	Capturing Piece
	Captured  Piece
}

type PlayerNext struct {
	Player int // index of the player whose turn starts
}

type GameEnded struct {
	Winner int
}

func (WaitingForAction) Kind() EventKind { return KindWaitingForAction }
func (DiceRolled) Kind() EventKind       { return KindDiceRolled }
func (DieUsed) Kind() EventKind          { return KindDieUsed }
func (PieceMoved) Kind() EventKind       { return KindPieceMoved }
func (PieceCaptured) Kind() EventKind    { return KindPieceCaptured }
func (PlayerNext) Kind() EventKind       { return KindPlayerNext }
func (GameEnded) Kind() EventKind        { return KindGameEnded }

func (WaitingForAction) isEvent() {}
func (DiceRolled) isEvent()       {}
func (DieUsed) isEvent()          {}
func (PieceMoved) isEvent()       {}
func (PieceCaptured) isEvent()    {}
func (PlayerNext) isEvent()       {}
func (GameEnded) isEvent()        {}
