package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gotcha/engine"
	"gotcha/game"
)

const help = `commands:
  roll | r                  roll the dice
  move | m <piece> <x> <y>  move one of your pieces
  moves [piece]             list legal moves
  pass | p                  give up the remaining dice when stuck
  board | b                 show the board
  help | h                  show this help
  quit | q                  leave the match
`

// Console lets people at one terminal play both seats of a match.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (c *Console) prompt(gs *game.GameState) {
	p := gs.ActivePlayerIndex()
	fmt.Fprintf(c.out, "player %d (%s), %s> ", p, gs.Setup().Players[p].Name, gs.WaitingForAction())
}

// Next reads lines until one of them is a command for the match. Local
// commands such as "board" are answered directly.
func (c *Console) Next(ctx context.Context, m *engine.Match) (engine.Command, error) {
	gs := m.State
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c.prompt(gs)
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return nil, err
			}
			return nil, io.EOF
		}

		line := strings.TrimSpace(c.in.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "quit", "q", "exit":
			return nil, io.EOF
		case "help", "h", "?":
			fmt.Fprint(c.out, help)
		case "board", "b":
			RenderBoard(c.out, gs)
		case "moves":
			c.listMoves(gs, fields[1:])
		default:
			cmd, err := ParseCommand(line, gs.ActivePlayerIndex())
			if err != nil {
				fmt.Fprintln(c.out, err)
				continue
			}
			return cmd, nil
		}
	}
}

func (c *Console) listMoves(gs *game.GameState, args []string) {
	moves := gs.LegalMoves()
	if len(args) > 0 {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(c.out, "not a number: %q\n", args[0])
			return
		}
		var filtered []game.Move
		for _, mv := range moves {
			if mv.Piece.Index == index {
				filtered = append(filtered, mv)
			}
		}
		moves = filtered
	}

	if len(moves) == 0 {
		fmt.Fprintln(c.out, "no legal moves")
		return
	}
	for _, mv := range moves {
		fmt.Fprintf(c.out, "  %d -> %s (spends %d)\n", mv.Piece.Index, mv.To.Position, mv.To.Delta)
	}
}

func (c *Console) Rejected(cmd engine.Command, err error) {
	switch {
	case errors.Is(err, game.ErrGameOver):
		fmt.Fprintln(c.out, "the game is over")
	default:
		fmt.Fprintf(c.out, "cannot %s: %v\n", cmd, err)
	}
}
