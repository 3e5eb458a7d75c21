package sim

import (
	"fmt"
)

// scriptedSource replays a fixed sequence of draws.
// Once the script is exhausted every draw returns 0, which at a generating
// minute means "no arrivals". A scripted value outside [0, n) panics so that
// a test with a misaligned script fails loudly.
type scriptedSource struct {
	values []int
	pos    int
}

func newScriptedSource(values ...int) *scriptedSource {
	return &scriptedSource{values: values}
}

func (s *scriptedSource) Intn(n int) int {
	if s.pos >= len(s.values) {
		return 0
	}
	v := s.values[s.pos]
	s.pos++
	if v < 0 || v >= n {
		panic(fmt.Sprintf("scriptedSource: draw %d = %d, outside [0, %d)", s.pos-1, v, n))
	}
	return v
}

// remaining reports how many scripted draws have not been consumed.
func (s *scriptedSource) remaining() int {
	return len(s.values) - s.pos
}

// recordingSink keeps every observed event in order.
type recordingSink struct {
	events []Event
}

func (r *recordingSink) Observe(ev Event) {
	r.events = append(r.events, ev)
}

func (r *recordingSink) arrivals() []*ArrivalEvent {
	var out []*ArrivalEvent
	for _, ev := range r.events {
		if a, ok := ev.(*ArrivalEvent); ok {
			out = append(out, a)
		}
	}
	return out
}

func (r *recordingSink) assignments() []*AssignmentEvent {
	var out []*AssignmentEvent
	for _, ev := range r.events {
		if a, ok := ev.(*AssignmentEvent); ok {
			out = append(out, a)
		}
	}
	return out
}

func (r *recordingSink) completions() []*CompletionEvent {
	var out []*CompletionEvent
	for _, ev := range r.events {
		if c, ok := ev.(*CompletionEvent); ok {
			out = append(out, c)
		}
	}
	return out
}

// quietConfig returns a default day without seeding, for tests that
// control every visitor themselves.
func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.InitialVisitors = 0
	return cfg
}
