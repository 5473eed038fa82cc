package bus

import (
	"sync"

	"gotcha/game"
)

// Recorder is an EventSink that keeps every event it receives.
type Recorder struct {
	mu     sync.Mutex
	events []game.Event
}

func (r *Recorder) Publish(e game.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []game.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]game.Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *Recorder) Kinds() []game.EventKind {
	events := r.Events()
	kinds := make([]game.EventKind, len(events))
	for i, e := range events {
		kinds[i] = e.Kind()
	}
	return kinds
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
