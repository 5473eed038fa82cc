package game

import "fmt"

// Position is a cell on the board.
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Coordinate is a destination produced by move generation. Delta is the total
// die value spent to reach it and is not part of the cell's identity.
type Coordinate struct {
	Position
	Delta int
}

// At returns a coordinate for (x, y) with no die value attributed.
func At(x, y int) Coordinate {
	return Coordinate{Position: Position{X: x, Y: y}}
}

// searchPath is a node of the move search: where we are and what it cost.
type searchPath struct {
	pos   Position
	spent int
}

func (sp searchPath) step(dx, dy, value int) searchPath {
	return searchPath{
		pos:   Position{X: sp.pos.X + dx, Y: sp.pos.Y + dy},
		spent: sp.spent + value,
	}
}

func (sp searchPath) coordinate() Coordinate {
	return Coordinate{Position: sp.pos, Delta: sp.spent}
}
