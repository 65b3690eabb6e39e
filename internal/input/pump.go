// Package input provides the producer/consumer plumbing between raw
// input sources and the game loops: a bounded FIFO event pump plus a
// poller that samples level-triggered lines (joystick directions and
// buttons) with per-line debouncing.
package input

import (
	"context"

	"github.com/slithertui/slither/internal/core"
)

// DefaultCapacity bounds the pump's queue. Ten slots is far more than
// one frame of human input; overflow means the consumer stalled.
const DefaultCapacity = 10

// Pump is an explicitly owned bounded FIFO channel of input events.
// One or more producers Post events; a single consumer drains them.
// Posting never blocks and never panics: when the queue is full the
// newest event is dropped, which under a stalled consumer loses the
// most recent press rather than reordering older ones.
type Pump struct {
	ch chan core.InputEvent
}

// NewPump creates a pump with the given capacity (DefaultCapacity when
// n <= 0).
func NewPump(n int) *Pump {
	if n <= 0 {
		n = DefaultCapacity
	}
	return &Pump{ch: make(chan core.InputEvent, n)}
}

// Post enqueues an event, dropping it if the queue is full. Reports
// whether the event was accepted.
func (p *Pump) Post(ev core.InputEvent) bool {
	select {
	case p.ch <- ev:
		return true
	default:
		return false
	}
}

// TryRecv returns the oldest queued event without blocking.
func (p *Pump) TryRecv() (core.InputEvent, bool) {
	select {
	case ev := <-p.ch:
		return ev, true
	default:
		return core.InputEvent{}, false
	}
}

// Drain returns all currently queued events in FIFO order without
// blocking. Returns nil when the queue is empty.
func (p *Pump) Drain() []core.InputEvent {
	var evs []core.InputEvent
	for {
		ev, ok := p.TryRecv()
		if !ok {
			return evs
		}
		evs = append(evs, ev)
	}
}

// ReadInput implements core.Input: it returns the oldest queued event,
// or an event with Kind EventNone when the queue is empty. It never
// blocks; the engine's frame delay provides the loop cadence.
func (p *Pump) ReadInput(ctx context.Context) (core.InputEvent, error) {
	if err := ctx.Err(); err != nil {
		return core.InputEvent{}, err
	}
	ev, _ := p.TryRecv()
	return ev, nil
}
