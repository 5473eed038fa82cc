package bus

import (
	"bytes"
	"testing"

	"gotcha/game"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus(t *testing.T) (*Bus, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	b, err := New(zerolog.New(&buf).Level(zerolog.DebugLevel))
	require.NoError(t, err)
	return b, &buf
}

func TestBusRoutesByKind(t *testing.T) {
	b, _ := newTestBus(t)

	var moved, all []game.Event
	b.Subscribe(game.KindPieceMoved, func(e game.Event) { moved = append(moved, e) })
	b.SubscribeAll(func(e game.Event) { all = append(all, e) })

	b.Publish(game.PlayerNext{Player: 1})
	b.Publish(game.PieceMoved{Piece: game.Piece{X: 3}})

	require.Equal(t, []game.Event{game.PieceMoved{Piece: game.Piece{X: 3}}}, moved)
	require.Equal(t, []game.Event{game.PlayerNext{Player: 1}, game.PieceMoved{Piece: game.Piece{X: 3}}}, all)
}

func TestBusDeliversInSubscriptionOrder(t *testing.T) {
	b, _ := newTestBus(t)

	var order []string
	b.SubscribeAll(func(game.Event) { order = append(order, "first") })
	b.Subscribe(game.KindGameEnded, func(game.Event) { order = append(order, "second") })
	b.SubscribeAll(func(game.Event) { order = append(order, "third") })

	b.Publish(game.GameEnded{Winner: 0})

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestBusLogsEvents(t *testing.T) {
	b, buf := newTestBus(t)

	b.Publish(game.WaitingForAction{Action: game.ActionRollDice})

	assert.Contains(t, buf.String(), `"kind":"waiting.for.action"`)
	assert.Contains(t, buf.String(), "event published")
}

func TestBusAsGameSink(t *testing.T) {
	b, _ := newTestBus(t)
	rec := &Recorder{}
	b.SubscribeAll(rec.Publish)

	gs, err := game.NewGameState(game.DefaultSetup(), game.WithSeed(5), game.WithEventSink(b))
	require.NoError(t, err)
	require.NoError(t, gs.RollDice())

	require.Equal(t, []game.EventKind{game.KindWaitingForAction, game.KindDiceRolled}, rec.Kinds())

	rec.Reset()
	require.Empty(t, rec.Events())
}

func TestBusSubscribeDuringPublish(t *testing.T) {
	b, _ := newTestBus(t)

	var late []game.Event
	b.SubscribeAll(func(game.Event) {
		b.SubscribeAll(func(e game.Event) { late = append(late, e) })
	})

	b.Publish(game.PlayerNext{Player: 0})
	require.Empty(t, late, "a handler added while publishing waits for the next event")

	b.Publish(game.PlayerNext{Player: 1})
	require.Equal(t, []game.Event{game.PlayerNext{Player: 1}}, late)
}
