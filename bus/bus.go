// Package bus delivers game events to the renderer, UI and any other
// observer, in the order the game state emits them.
package bus

import (
	"context"
	"fmt"
	"sync"

	"gotcha/game"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/exp/slices"
)

// Handler observes one event. Handlers run synchronously inside Publish.
type Handler func(game.Event)

type subscription struct {
	kind    game.EventKind // empty matches every kind
	handler Handler
}

// Bus is a synchronous fan-out EventSink. Subscribers see events in publish
// order and, for one event, in subscription order.
type Bus struct {
	mu     sync.RWMutex
	subs   []subscription
	logger zerolog.Logger

	published metric.Int64Counter
	delivered metric.Int64Counter
}

// New creates a Bus. Metrics go to the global OTel meter provider (no-op
// unless one is installed).
func New(logger zerolog.Logger) (*Bus, error) {
	b := &Bus{logger: logger}
	m := meter()

	var err error
	b.published, err = m.Int64Counter(
		"bus.events.published",
		metric.WithDescription("Game events published"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating published counter: %w", err)
	}

	b.delivered, err = m.Int64Counter(
		"bus.events.delivered",
		metric.WithDescription("Game events handed to subscribers"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating delivered counter: %w", err)
	}

	return b, nil
}

// Subscribe registers h for events of kind.
func (b *Bus) Subscribe(kind game.EventKind, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, subscription{kind: kind, handler: h})
}

// SubscribeAll registers h for every event.
func (b *Bus) SubscribeAll(h Handler) {
	b.Subscribe("", h)
}

// Publish implements game.EventSink.
func (b *Bus) Publish(e game.Event) {
	kind := string(e.Kind())
	attrs := metric.WithAttributes(attribute.String("kind", kind))
	b.published.Add(context.Background(), 1, attrs)

	b.mu.RLock()
	subs := slices.Clone(b.subs)
	b.mu.RUnlock()

	delivered := 0
	for _, s := range subs {
		if s.kind != "" && s.kind != e.Kind() {
			continue
		}
		s.handler(e)
		delivered++
	}
	if delivered > 0 {
		b.delivered.Add(context.Background(), int64(delivered), attrs)
	}

	b.logger.Debug().Str("kind", kind).Int("subscribers", delivered).Interface("event", e).Msg("event published")
}
