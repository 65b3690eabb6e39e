package storage

import (
	"github.com/slithertui/slither/internal/core"
)

// EncodeEvent converts an input event to its journal representation.
// Returns ok=false for events that are not journaled (EventNone).
func EncodeEvent(ev core.InputEvent) (kind, dir string, ok bool) {
	switch ev.Kind {
	case core.EventDirection:
		return TraceDirection, dirName(ev.Dir), true
	case core.EventButtonA:
		return TraceButtonA, "", true
	case core.EventButtonB:
		return TraceButtonB, "", true
	default:
		return "", "", false
	}
}

// DecodeEvent converts a journal row back into an input event.
// Returns ok=false for rows this version does not understand.
func DecodeEvent(kind, dir string) (core.InputEvent, bool) {
	switch kind {
	case TraceDirection:
		d, ok := dirFromName(dir)
		if !ok {
			return core.InputEvent{}, false
		}
		return core.DirectionEvent(d), true
	case TraceButtonA:
		return core.InputEvent{Kind: core.EventButtonA}, true
	case TraceButtonB:
		return core.InputEvent{Kind: core.EventButtonB}, true
	default:
		return core.InputEvent{}, false
	}
}

func dirName(d core.Direction) string {
	switch d {
	case core.DirUp:
		return "up"
	case core.DirDown:
		return "down"
	case core.DirLeft:
		return "left"
	default:
		return "right"
	}
}

func dirFromName(name string) (core.Direction, bool) {
	switch name {
	case "up":
		return core.DirUp, true
	case "down":
		return core.DirDown, true
	case "left":
		return core.DirLeft, true
	case "right":
		return core.DirRight, true
	default:
		return core.DirUp, false
	}
}

// Recorder accumulates the tick-stamped input trace of a running session.
type Recorder struct {
	trace []TraceEvent
}

// Observe appends an event to the trace if it is journalable.
func (r *Recorder) Observe(tick int, ev core.InputEvent) {
	kind, dir, ok := EncodeEvent(ev)
	if !ok {
		return
	}
	r.trace = append(r.trace, TraceEvent{Tick: tick, Kind: kind, Dir: dir})
}

// Events returns the accumulated trace.
func (r *Recorder) Events() []TraceEvent {
	return r.trace
}

// Reset discards the accumulated trace.
func (r *Recorder) Reset() {
	r.trace = nil
}
