package game

import (
	"fmt"
	"strings"
)

type PlayerType int

const (
	PlayerTypeHuman PlayerType = iota
	PlayerTypeAI
)

func (t PlayerType) String() string {
	switch t {
	case PlayerTypeHuman:
		return "human"
	case PlayerTypeAI:
		return "ai"
	default:
		return fmt.Sprintf("PlayerType(%d)", int(t))
	}
}

// ParsePlayerType accepts "human" or "ai" in any case.
func ParsePlayerType(s string) (PlayerType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human", "":
		return PlayerTypeHuman, nil
	case "ai":
		return PlayerTypeAI, nil
	default:
		return 0, fmt.Errorf("unknown player type %q", s)
	}
}

// PlayerSetup configures one seat. The sprite fields belong to the renderer
// and are carried through untouched.
type PlayerSetup struct {
	Type              PlayerType
	Name              string
	SpriteKey         string
	SpriteFrame       int
	SpriteFrameChosen int
	NumPieces         int
	NumChosenPieces   int
}

// GameSetup is the immutable configuration of a match.
type GameSetup struct {
	BoardWidth  int
	BoardHeight int
	Players     [2]PlayerSetup

	// CaptureFriendlyPieces is declared for a future rules toggle and is not
	// read by the engine.
	CaptureFriendlyPieces bool
}

// DefaultSetup is the standard 13x13 match: a human with 13 pieces against
// a second seat with 13 pieces, one chosen piece each.
func DefaultSetup() GameSetup {
	return GameSetup{
		BoardWidth:  13,
		BoardHeight: 13,
		Players: [2]PlayerSetup{
			{
				Type:              PlayerTypeHuman,
				Name:              "Player 1",
				SpriteKey:         "checkers",
				SpriteFrame:       4,
				SpriteFrameChosen: 1,
				NumPieces:         13,
				NumChosenPieces:   1,
			},
			{
				Type:              PlayerTypeAI,
				Name:              "Player 2",
				SpriteKey:         "checkers",
				SpriteFrame:       5,
				SpriteFrameChosen: 2,
				NumPieces:         13,
				NumChosenPieces:   1,
			},
		},
	}
}

// StartPosition returns where piece index of player starts. Pieces fill
// every other cell row by row; player 0 is mirrored vertically and player 1
// horizontally so the two sides face each other.
func (s GameSetup) StartPosition(player, index int) Position {
	x := (index * 2) % s.BoardWidth
	y := (index * 2) / s.BoardWidth
	if player == 0 {
		y = s.BoardHeight - 1 - y
	} else {
		x = s.BoardWidth - 1 - x
	}
	return Position{X: x, Y: y}
}

// InBounds reports whether (x, y) is on the board.
func (s GameSetup) InBounds(x, y int) bool {
	return x >= 0 && x < s.BoardWidth && y >= 0 && y < s.BoardHeight
}

// Validate checks that the setup produces a legal starting board.
func (s GameSetup) Validate() error {
	if s.BoardWidth <= 0 || s.BoardHeight <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidSetup, s.BoardWidth, s.BoardHeight)
	}

	occupied := make(map[Position]PieceID)
	for p, ps := range s.Players {
		if ps.NumPieces < 1 {
			return fmt.Errorf("%w: player %d needs at least one piece, got %d", ErrInvalidSetup, p, ps.NumPieces)
		}
		if ps.NumChosenPieces < 0 || ps.NumChosenPieces > ps.NumPieces {
			return fmt.Errorf("%w: player %d has %d chosen of %d pieces", ErrInvalidSetup, p, ps.NumChosenPieces, ps.NumPieces)
		}
		if 2*(ps.NumPieces-1) >= s.BoardWidth*s.BoardHeight {
			return fmt.Errorf("%w: player %d has too many pieces for the board", ErrInvalidSetup, p)
		}
		for i := 0; i < ps.NumPieces; i++ {
			pos := s.StartPosition(p, i)
			if other, ok := occupied[pos]; ok {
				return fmt.Errorf("%w: %s and %s both start on %s", ErrInvalidSetup, other, PieceID{Player: p, Index: i}, pos)
			}
			occupied[pos] = PieceID{Player: p, Index: i}
		}
	}
	return nil
}
