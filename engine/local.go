package engine

import (
	"context"
	"fmt"

	"gotcha/bus"
	"gotcha/game"
	"gotcha/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Match owns the authoritative game state of one game and the bus its
// events are published on.
type Match struct {
	State  *game.GameState
	bus    *bus.Bus
	logger zerolog.Logger
}

type Option func(o *options)

type options struct {
	logger    zerolog.Logger
	stateOpts []game.Option
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStateOptions passes options such as game.WithSeed to the game state.
func WithStateOptions(opts ...game.Option) Option {
	return func(o *options) {
		o.stateOpts = append(o.stateOpts, opts...)
	}
}

// New sets up a match for setup. Every seat is driven by the Controller
// given to Run; an AI seat is only a label.
func New(setup game.GameSetup, opts ...Option) (*Match, error) {
	o := options{logger: log.Logger}
	for _, opt := range opts {
		opt(&o)
	}

	b, err := bus.New(o.logger)
	if err != nil {
		return nil, err
	}

	stateOpts := append(o.stateOpts, game.WithEventSink(b))
	state, err := game.NewGameState(setup, stateOpts...)
	if err != nil {
		return nil, err
	}

	for i, p := range setup.Players {
		if p.Type == game.PlayerTypeAI {
			o.logger.Warn().Int("player", i).Str("name", p.Name).Msg("AI seat has no strategy; the controller plays it")
		}
	}

	return &Match{
		State:  state,
		bus:    b,
		logger: o.logger,
	}, nil
}

func (m *Match) Subscribe(kind game.EventKind, h bus.Handler) {
	m.bus.Subscribe(kind, h)
}

func (m *Match) SubscribeAll(h bus.Handler) {
	m.bus.SubscribeAll(h)
}

// Apply executes one command against the game state.
func (m *Match) Apply(cmd Command) error {
	player := m.State.ActivePlayerIndex()

	var err error
	switch c := cmd.(type) {
	case Roll:
		err = m.State.RollDice()
	case Move:
		err = m.State.MovePiece(c.Piece, c.To)
	case Pass:
		err = m.State.Pass()
	default:
		err = fmt.Errorf("unknown command %T", cmd)
	}

	if err != nil {
		m.logger.Warn().Err(err).Int("player", player).Stringer("command", cmd).Msg("command refused")
		return err
	}
	m.logger.Debug().Int("player", player).Stringer("command", cmd).Msg("command applied")
	return nil
}

// Run asks ctrl for commands until a player wins. It returns the winner, or
// -1 with the error that stopped the match early.
func (m *Match) Run(ctx context.Context, ctrl Controller) (int, error) {
	m.logger.Info().Msgf("player %d is starting", m.State.ActivePlayerIndex())

	for count := 0; count < meta.MAX_COMMANDS; count++ {
		if winner, ok := m.State.Winner(); ok {
			m.logger.Info().Int("winner", winner).Int("commands", count).Msg("game over")
			return winner, nil
		}
		if err := ctx.Err(); err != nil {
			return -1, err
		}

		cmd, err := ctrl.Next(ctx, m)
		if err != nil {
			return -1, err
		}
		if err := m.Apply(cmd); err != nil {
			ctrl.Rejected(cmd, err)
		}
	}

	if winner, ok := m.State.Winner(); ok {
		return winner, nil
	}
	return -1, fmt.Errorf("%w: %d", ErrTooManyCommands, meta.MAX_COMMANDS)
}
