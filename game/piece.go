package game

import "fmt"

// PieceID identifies a piece across every copy of a GameState.
type PieceID struct {
	Player int // owner's player index
	Index  int // position in the owner's roster
}

func (id PieceID) String() string {
	return fmt.Sprintf("p%d#%d", id.Player, id.Index)
}

// Piece is a player-owned token. Chosen pieces also move diagonally; once
// chosen a piece stays chosen.
type Piece struct {
	ID     PieceID
	X      int
	Y      int
	Active bool
	Chosen bool
}

func (p Piece) Position() Position {
	return Position{X: p.X, Y: p.Y}
}

func (p Piece) Owner() int {
	return p.ID.Player
}

// Player owns a fixed roster of pieces.
type Player struct {
	Index           int
	Pieces          []Piece
	EarnedExtraTurn bool
}

// ActivePieces returns copies of the pieces still in play.
func (p Player) ActivePieces() []Piece {
	var pieces []Piece
	for _, piece := range p.Pieces {
		if piece.Active {
			pieces = append(pieces, piece)
		}
	}
	return pieces
}

func (p Player) copy() Player {
	pieces := make([]Piece, len(p.Pieces))
	copy(pieces, p.Pieces)
	return Player{
		Index:           p.Index,
		Pieces:          pieces,
		EarnedExtraTurn: p.EarnedExtraTurn,
	}
}
