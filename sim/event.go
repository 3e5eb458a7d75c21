package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/counter-sim/counter-sim/sim/trace"
)

// Event defines the interface for all simulation events.
// Each event carries the simulated minute it happened in.
type Event interface {
	Timestamp() int
}

// ArrivalEvent represents a visitor joining one of the queues.
type ArrivalEvent struct {
	time    int
	Visitor Visitor
}

// Timestamp returns the minute of the arrival.
func (e *ArrivalEvent) Timestamp() int { return e.time }

// AssignmentEvent represents a free counter taking the next visitor.
type AssignmentEvent struct {
	time    int
	Counter int
	Visitor Visitor
}

// Timestamp returns the minute of the assignment.
func (e *AssignmentEvent) Timestamp() int { return e.time }

// CompletionEvent represents a counter finishing its visitor and becoming free.
type CompletionEvent struct {
	time     int
	Counter  int
	Category Category
}

// Timestamp returns the minute in which the counter became free.
func (e *CompletionEvent) Timestamp() int { return e.time }

// EventSink receives simulation events as they happen.
// Observe is called synchronously from the simulation loop. It may read
// Simulator state but MUST NOT mutate it.
type EventSink interface {
	Observe(Event)
}

// EventSinkFunc adapts a plain function to EventSink.
type EventSinkFunc func(Event)

// Observe calls f(ev).
func (f EventSinkFunc) Observe(ev Event) { f(ev) }

// MultiSink fans each event out to every sink in order. Nil entries are skipped.
type MultiSink []EventSink

// Observe forwards ev to every sink.
func (m MultiSink) Observe(ev Event) {
	for _, s := range m {
		if s != nil {
			s.Observe(ev)
		}
	}
}

// LogSink writes events to a logrus logger.
// Arrivals are logged at Info; assignments and completions at Debug.
type LogSink struct {
	Logger logrus.FieldLogger
}

// NewLogSink returns a LogSink writing to the standard logrus logger.
func NewLogSink() *LogSink {
	return &LogSink{Logger: logrus.StandardLogger()}
}

// Observe logs ev with structured fields.
func (s *LogSink) Observe(ev Event) {
	switch e := ev.(type) {
	case *ArrivalEvent:
		s.Logger.WithFields(logrus.Fields{
			"minute":   e.time,
			"category": e.Visitor.Category.String(),
			"channel":  e.Visitor.Channel.String(),
		}).Info("<< Arrival")
	case *AssignmentEvent:
		s.Logger.WithFields(logrus.Fields{
			"minute":   e.time,
			"counter":  e.Counter,
			"category": e.Visitor.Category.String(),
			"duration": e.Visitor.ServiceDuration,
		}).Debug("Assigned visitor")
	case *CompletionEvent:
		s.Logger.WithFields(logrus.Fields{
			"minute":   e.time,
			"counter":  e.Counter,
			"category": e.Category.String(),
		}).Debug("Counter free")
	default:
		s.Logger.Warnf("LogSink: unknown event %T at minute %d", ev, ev.Timestamp())
	}
}

// TraceSink records events into a trace.SimulationTrace.
// Nothing is recorded unless the trace is enabled.
type TraceSink struct {
	Trace *trace.SimulationTrace
}

// NewTraceSink returns a sink recording into st.
func NewTraceSink(st *trace.SimulationTrace) *TraceSink {
	return &TraceSink{Trace: st}
}

// Observe converts ev into the matching trace record.
func (s *TraceSink) Observe(ev Event) {
	if !s.Trace.Enabled() {
		return
	}
	switch e := ev.(type) {
	case *ArrivalEvent:
		s.Trace.RecordArrival(trace.ArrivalRecord{
			Minute:   e.time,
			Category: e.Visitor.Category.String(),
			Channel:  e.Visitor.Channel.String(),
			Duration: e.Visitor.ServiceDuration,
		})
	case *AssignmentEvent:
		s.Trace.RecordAssignment(trace.AssignmentRecord{
			Minute:   e.time,
			Counter:  e.Counter,
			Category: e.Visitor.Category.String(),
			Channel:  e.Visitor.Channel.String(),
			Duration: e.Visitor.ServiceDuration,
		})
	case *CompletionEvent:
		s.Trace.RecordCompletion(trace.CompletionRecord{
			Minute:   e.time,
			Counter:  e.Counter,
			Category: e.Category.String(),
		})
	}
}
