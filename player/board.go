package player

import (
	"fmt"
	"io"
	"strings"

	"gotcha/game"
)

var pieceGlyphs = [2][2]byte{
	{'a', 'A'},
	{'b', 'B'},
}

// RenderBoard draws the board as text, one row per line with y growing
// downwards. Chosen pieces are upper case.
func RenderBoard(w io.Writer, gs *game.GameState) error {
	setup := gs.Setup()

	var sb strings.Builder
	for y := 0; y < setup.BoardHeight; y++ {
		for x := 0; x < setup.BoardWidth; x++ {
			glyph := byte('.')
			if piece, ok := gs.PieceAt(x, y); ok {
				chosen := 0
				if piece.Chosen {
					chosen = 1
				}
				glyph = pieceGlyphs[piece.Owner()][chosen]
			}
			sb.WriteByte(glyph)
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("dice:")
	for _, d := range gs.Dice() {
		if d.Active {
			fmt.Fprintf(&sb, " %d", d.Value)
		} else {
			fmt.Fprintf(&sb, " (%d)", d.Value)
		}
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}
