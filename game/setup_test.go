package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultSetupIsValid(t *testing.T) {
	require.NoError(t, DefaultSetup().Validate())
}

func TestSetupValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *GameSetup)
	}{
		{name: "zero width", modify: func(s *GameSetup) { s.BoardWidth = 0 }},
		{name: "negative height", modify: func(s *GameSetup) { s.BoardHeight = -1 }},
		{name: "negative pieces", modify: func(s *GameSetup) { s.Players[0].NumPieces = -1 }},
		{name: "no pieces", modify: func(s *GameSetup) {
			s.Players[1].NumPieces, s.Players[1].NumChosenPieces = 0, 0
		}},
		{name: "more chosen than pieces", modify: func(s *GameSetup) { s.Players[1].NumChosenPieces = 14 }},
		{name: "negative chosen", modify: func(s *GameSetup) { s.Players[1].NumChosenPieces = -1 }},
		{name: "pieces overflow board", modify: func(s *GameSetup) {
			s.BoardWidth, s.BoardHeight = 3, 3
			s.Players[0].NumPieces = 6
		}},
		{name: "sides overlap", modify: func(s *GameSetup) {
			s.BoardWidth, s.BoardHeight = 1, 3
			s.Players[0].NumPieces, s.Players[1].NumPieces = 2, 1
			s.Players[0].NumChosenPieces, s.Players[1].NumChosenPieces = 0, 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := DefaultSetup()
			tt.modify(&setup)
			require.ErrorIs(t, setup.Validate(), ErrInvalidSetup)
		})
	}
}

func TestStartPositionMirrorsSides(t *testing.T) {
	s := DefaultSetup()

	require.Equal(t, Position{X: 0, Y: 12}, s.StartPosition(0, 0))
	require.Equal(t, Position{X: 12, Y: 0}, s.StartPosition(1, 0))
	require.Equal(t, Position{X: 12, Y: 12}, s.StartPosition(0, 6))
	require.Equal(t, Position{X: 0, Y: 0}, s.StartPosition(1, 6))
}

func TestParsePlayerType(t *testing.T) {
	for in, want := range map[string]PlayerType{
		"human": PlayerTypeHuman,
		"Human": PlayerTypeHuman,
		"":      PlayerTypeHuman,
		" AI ":  PlayerTypeAI,
	} {
		got, err := ParsePlayerType(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParsePlayerType("robot")
	require.Error(t, err)
	require.Equal(t, "ai", PlayerTypeAI.String())
}
