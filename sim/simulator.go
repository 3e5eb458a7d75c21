// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Simulator is the core object that holds simulation time, the counters,
// the queues and the statistics, and runs the minute loop.
//
// The Simulator is the only writer of its queues, counters and metrics.
// Each minute runs three phases in a fixed order: counter ticks, arrivals,
// assignment. The last two are skipped during the lunch hour.
type Simulator struct {
	Config   Config
	Clock    int // minute currently (or last) being simulated
	Counters []*ServiceCounter
	Queues   *QueueManager
	Metrics  *Metrics
	// Sink receives arrival, assignment and completion events. May be nil.
	Sink EventSink

	seeder   *VisitorGenerator // seeding pass before minute 0
	arrivals *VisitorGenerator // per-minute arrivals
	nextStep int               // next minute Step accepts
}

// NewSimulator builds a simulator drawing both the seeding pass and
// per-minute arrivals from src.
func NewSimulator(cfg Config, src IntSource) *Simulator {
	return newSimulator(cfg, src, src)
}

// NewSeededSimulator builds a simulator whose randomness is derived from key
// through a PartitionedRNG, isolating the seeding pass from arrivals.
func NewSeededSimulator(cfg Config, key SimulationKey) *Simulator {
	rng := NewPartitionedRNG(key)
	return newSimulator(cfg, rng.ForSubsystem(SubsystemSeeding), rng.ForSubsystem(SubsystemArrivals))
}

func newSimulator(cfg Config, seeding, arrivals IntSource) *Simulator {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("NewSimulator: %v", err))
	}
	counters := make([]*ServiceCounter, cfg.Counters)
	for i := range counters {
		counters[i] = NewServiceCounter(i)
	}
	return &Simulator{
		Config:   cfg,
		Counters: counters,
		Queues:   NewQueueManager(),
		Metrics:  NewMetrics(),
		seeder:   NewVisitorGenerator(seeding, cfg),
		arrivals: NewVisitorGenerator(arrivals, cfg),
	}
}

// Admit enqueues v and records it as an arrival at the current clock.
func (sim *Simulator) Admit(v Visitor) {
	sim.Queues.Enqueue(v)
	sim.Metrics.RecordArrival(v)
	sim.emit(&ArrivalEvent{time: sim.Clock, Visitor: v})
}

// Seed performs n generator draws regardless of the arrival cadence and
// admits the visitors among them. Returns how many were admitted.
func (sim *Simulator) Seed(n int) int {
	visitors := sim.seeder.DrawN(n)
	for _, v := range visitors {
		sim.Admit(v)
	}
	logrus.Debugf("Seeded %d visitors from %d draws", len(visitors), n)
	return len(visitors)
}

// Step simulates minute m. Minutes MUST be stepped in order starting at 0.
func (sim *Simulator) Step(m int) {
	if m != sim.nextStep {
		panic(fmt.Sprintf("Step: minute %d out of order, expected %d", m, sim.nextStep))
	}
	sim.nextStep++
	sim.Clock = m
	lunch := sim.Config.IsLunch(m)

	// Phase 1: in-progress service continues through lunch.
	for _, c := range sim.Counters {
		if c.Tick() {
			sim.emit(&CompletionEvent{time: m, Counter: c.ID, Category: c.category})
		}
	}

	if lunch {
		logrus.Debugf("[minute %03d] lunch, %d waiting", m, sim.Queues.Len())
		return
	}

	// Phase 2: arrivals.
	for _, v := range sim.arrivals.Generate(m, false) {
		sim.Admit(v)
	}

	// Phase 3: assignment in pool order.
	for _, c := range sim.Counters {
		if !c.IsFree() {
			continue
		}
		v, ok := sim.Queues.DequeueForAssignment()
		if !ok {
			break
		}
		c.Assign(v)
		sim.Metrics.RecordAssignment(v)
		sim.emit(&AssignmentEvent{time: m, Counter: c.ID, Visitor: v})
	}

	logrus.Debugf("[minute %03d] hour=%d waiting=%d", m, sim.Config.Hour(m), sim.Queues.Len())
}

// Run seeds the queues, simulates every remaining minute of the day and
// returns the report. It is meant to be called once on a fresh Simulator.
func (sim *Simulator) Run() Report {
	sim.Seed(sim.Config.InitialVisitors)
	for m := sim.nextStep; m < sim.Config.TotalMinutes; m++ {
		sim.Step(m)
	}
	electronic, offline := sim.Queues.Sizes()
	logrus.Infof("[minute %03d] Simulation ended, %d electronic and %d offline still waiting",
		sim.Clock, electronic, offline)
	return sim.Report()
}

// Report snapshots the statistics at the current point of the run.
func (sim *Simulator) Report() Report {
	return sim.Metrics.Snapshot(sim.nextStep, sim.Queues, sim.Counters)
}

func (sim *Simulator) emit(ev Event) {
	if sim.Sink != nil {
		sim.Sink.Observe(ev)
	}
}
