package game

import "fmt"

type StateHash uint64

// Move is one legal (piece, destination) pair for the active player.
type Move struct {
	Piece PieceID
	To    Coordinate
}

func (m Move) String() string {
	return fmt.Sprintf("%s->%s", m.Piece, m.To.Position)
}
