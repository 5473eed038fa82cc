package player

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gotcha/engine"
	"gotcha/game"
)

var ErrUnknownCommand = errors.New("unknown command")

// ParseCommand reads one of "roll", "move <piece> <x> <y>" or "pass".
// Piece numbers refer to the roster of player.
func ParseCommand(line string, player int) (engine.Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}

	switch strings.ToLower(fields[0]) {
	case "roll", "r":
		return engine.Roll{}, nil
	case "pass", "p":
		return engine.Pass{}, nil
	case "move", "m":
		if len(fields) != 4 {
			return nil, fmt.Errorf("usage: move <piece> <x> <y>")
		}
		nums, err := atois(fields[1:])
		if err != nil {
			return nil, err
		}
		return engine.Move{
			Piece: game.PieceID{Player: player, Index: nums[0]},
			To:    game.At(nums[1], nums[2]),
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
}

func atois(fields []string) ([]int, error) {
	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", f)
		}
		nums[i] = n
	}
	return nums, nil
}
