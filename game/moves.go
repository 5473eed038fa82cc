package game

import "golang.org/x/exp/slices"

// moveSearch walks every chain of active dice from a piece's cell.
type moveSearch struct {
	gs      *GameState
	chosen  bool
	blocked map[Position]bool // cells held by the mover's own active pieces
	visit   func(searchPath)
}

func (gs *GameState) newMoveSearch(piece Piece, visit func(searchPath)) *moveSearch {
	blocked := make(map[Position]bool)
	for _, p := range gs.players[piece.Owner()].Pieces {
		if p.Active {
			blocked[p.Position()] = true
		}
	}
	return &moveSearch{
		gs:      gs,
		chosen:  piece.Chosen,
		blocked: blocked,
		visit:   visit,
	}
}

// offsets returns the single-die steps for a die showing value, in a fixed
// order: orthogonal first, then diagonal for chosen pieces.
func offsets(value int, chosen bool) []Position {
	var steps []Position
	for _, d := range []int{value, -value} {
		steps = append(steps, Position{X: d}, Position{Y: d})
		if chosen {
			steps = append(steps, Position{X: d, Y: d}, Position{X: d, Y: -d})
		}
	}
	return steps
}

// walk applies each die of pool to from, reports the cells that survive
// filtering, then chains the remaining dice from each of them while depth
// allows.
func (s *moveSearch) walk(from searchPath, pool []int, maxDepth int) {
	for k, di := range pool {
		value := s.gs.dice[di].Value
		remaining := slices.Delete(slices.Clone(pool), k, k+1)

		var level []searchPath
		for _, off := range offsets(value, s.chosen) {
			next := from.step(off.X, off.Y, value)
			if !s.gs.setup.InBounds(next.pos.X, next.pos.Y) {
				continue
			}
			if s.blocked[next.pos] {
				continue
			}
			level = append(level, next)
		}

		for _, sp := range level {
			s.visit(sp)
		}
		if len(remaining) > 0 && maxDepth > 0 {
			for _, sp := range level {
				s.walk(sp, remaining, maxDepth-1)
			}
		}
	}
}

// PossibleMoves returns every cell the piece can reach with the active dice,
// chaining up to maxDepth further dice after the first. Each cell appears
// once, carrying the cost of the first path found to it; the piece's own
// cell is never included. Captured or unknown pieces have no moves.
func (gs *GameState) PossibleMoves(id PieceID, maxDepth int) []Coordinate {
	piece := gs.piece(id)
	if piece == nil || !piece.Active {
		return nil
	}

	origin := piece.Position()
	seen := map[Position]bool{origin: true}
	var moves []Coordinate
	search := gs.newMoveSearch(*piece, func(sp searchPath) {
		if seen[sp.pos] {
			return
		}
		seen[sp.pos] = true
		moves = append(moves, sp.coordinate())
	})
	search.walk(searchPath{pos: origin}, gs.activeDice(), maxDepth)
	return moves
}

// reaches reports whether piece can move to to.Position and at what cost.
// A non-zero to.Delta must match the cost of some path; a zero Delta takes
// the cheapest path, so no die is spent that the move does not need.
func (gs *GameState) reaches(piece Piece, to Coordinate) (int, bool) {
	delta, found := 0, false
	search := gs.newMoveSearch(piece, func(sp searchPath) {
		if sp.pos != to.Position {
			return
		}
		switch {
		case to.Delta != 0:
			if sp.spent == to.Delta {
				delta, found = sp.spent, true
			}
		case !found || sp.spent < delta:
			delta, found = sp.spent, true
		}
	})
	search.walk(searchPath{pos: piece.Position()}, gs.activeDice(), gs.maxDepth)
	return delta, found
}
