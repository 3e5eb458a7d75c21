// Tracks per-category arrival, service and service-time totals for the final report.

package sim

import (
	"fmt"
	"io"
)

// Metrics aggregates statistics about the simulation for final reporting.
// Only the Simulator mutates it.
type Metrics struct {
	ArrivedElectronic   [NumCategories]int // visitors who joined the electronic queue
	ArrivedOffline      [NumCategories]int // visitors who joined the offline queue
	Processed           [NumCategories]int // visitors assigned to a counter
	TotalServiceMinutes [NumCategories]int // sum of service durations of processed visitors
}

// NewMetrics returns zeroed Metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordArrival counts v as having joined its channel's queue.
func (m *Metrics) RecordArrival(v Visitor) {
	if v.Channel == Electronic {
		m.ArrivedElectronic[v.Category]++
	} else {
		m.ArrivedOffline[v.Category]++
	}
}

// RecordAssignment counts v as processed and adds its service duration.
func (m *Metrics) RecordAssignment(v Visitor) {
	m.Processed[v.Category]++
	m.TotalServiceMinutes[v.Category] += v.ServiceDuration
}

// TotalProcessed returns the number of visitors assigned across all categories.
func (m *Metrics) TotalProcessed() int {
	total := 0
	for _, n := range m.Processed {
		total += n
	}
	return total
}

// Snapshot freezes the metrics together with the queue and counter state into a Report.
func (m *Metrics) Snapshot(minutes int, queues *QueueManager, counters []*ServiceCounter) Report {
	r := Report{
		Minutes:             minutes,
		ArrivedElectronic:   m.ArrivedElectronic,
		ArrivedOffline:      m.ArrivedOffline,
		Processed:           m.Processed,
		TotalServiceMinutes: m.TotalServiceMinutes,
		CounterHandled:      make([][NumCategories]int, len(counters)),
	}
	r.RemainingElectronic, r.RemainingOffline = queues.Sizes()
	for i, c := range counters {
		r.CounterHandled[i] = c.Handled()
	}
	return r
}

// Report is the read-only result of a simulation run.
type Report struct {
	Minutes             int                  `yaml:"minutes"`
	RemainingElectronic int                  `yaml:"remaining_electronic"`
	RemainingOffline    int                  `yaml:"remaining_offline"`
	Processed           [NumCategories]int   `yaml:"processed"`
	TotalServiceMinutes [NumCategories]int   `yaml:"total_service_minutes"`
	ArrivedElectronic   [NumCategories]int   `yaml:"arrived_electronic"`
	ArrivedOffline      [NumCategories]int   `yaml:"arrived_offline"`
	CounterHandled      [][NumCategories]int `yaml:"counter_handled"`
}

// AverageServiceMinutes returns the mean service time for c, or 0 if none were processed.
func (r Report) AverageServiceMinutes(c Category) float64 {
	if r.Processed[c] == 0 {
		return 0
	}
	return float64(r.TotalServiceMinutes[c]) / float64(r.Processed[c])
}

// Print writes the human-readable summary to w.
func (r Report) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Report ===")
	fmt.Fprintf(w, "Simulated minutes        : %d\n", r.Minutes)
	fmt.Fprintf(w, "Left in electronic queue : %d\n", r.RemainingElectronic)
	fmt.Fprintf(w, "Left in offline queue    : %d\n", r.RemainingOffline)
	fmt.Fprintln(w, "Processed:")
	for _, c := range Categories {
		fmt.Fprintf(w, "  %-8s: %d\n", c, r.Processed[c])
	}
	fmt.Fprintln(w, "Service time (minutes):")
	for _, c := range Categories {
		fmt.Fprintf(w, "  %-8s: %d (avg %.2f)\n", c, r.TotalServiceMinutes[c], r.AverageServiceMinutes(c))
	}
	fmt.Fprintln(w, "Arrivals (electronic / offline):")
	for _, c := range Categories {
		fmt.Fprintf(w, "  %-8s: %d / %d\n", c, r.ArrivedElectronic[c], r.ArrivedOffline[c])
	}
	fmt.Fprintln(w, "Handled per counter (child / adult / old-man):")
	for i, h := range r.CounterHandled {
		fmt.Fprintf(w, "  counter %d: %d / %d / %d\n", i, h[Child], h[Adult], h[OldMan])
	}
}
