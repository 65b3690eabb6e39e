package storage

import (
	"testing"

	"github.com/slithertui/slither/internal/core"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	events := []core.InputEvent{
		core.DirectionEvent(core.DirUp),
		core.DirectionEvent(core.DirDown),
		core.DirectionEvent(core.DirLeft),
		core.DirectionEvent(core.DirRight),
		{Kind: core.EventButtonA},
		{Kind: core.EventButtonB},
	}

	for _, ev := range events {
		kind, dir, ok := EncodeEvent(ev)
		if !ok {
			t.Errorf("EncodeEvent(%v) not journalable", ev)
			continue
		}
		back, ok := DecodeEvent(kind, dir)
		if !ok {
			t.Errorf("DecodeEvent(%q, %q) failed", kind, dir)
			continue
		}
		if back != ev {
			t.Errorf("round trip of %v gave %v", ev, back)
		}
	}
}

func TestEncodeEventSkipsNone(t *testing.T) {
	if _, _, ok := EncodeEvent(core.InputEvent{Kind: core.EventNone}); ok {
		t.Error("EventNone should not be journalable")
	}
}

func TestDecodeEventRejectsUnknown(t *testing.T) {
	if _, ok := DecodeEvent("tilt", ""); ok {
		t.Error("unknown kind should not decode")
	}
	if _, ok := DecodeEvent(TraceDirection, "sideways"); ok {
		t.Error("unknown direction should not decode")
	}
}

func TestRecorder(t *testing.T) {
	var rec Recorder

	rec.Observe(3, core.InputEvent{Kind: core.EventButtonB})
	rec.Observe(5, core.InputEvent{Kind: core.EventNone}) // dropped
	rec.Observe(9, core.DirectionEvent(core.DirUp))

	got := rec.Events()
	want := []TraceEvent{
		{Tick: 3, Kind: TraceButtonB},
		{Tick: 9, Kind: TraceDirection, Dir: "up"},
	}
	if len(got) != len(want) {
		t.Fatalf("Events() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Events()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	rec.Reset()
	if len(rec.Events()) != 0 {
		t.Error("Reset() did not clear the trace")
	}
}
