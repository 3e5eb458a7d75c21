package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalArrivals      int
	ElectronicArrivals int
	OfflineArrivals    int
	TotalAssignments   int
	TotalCompletions   int
	InService          int            // assigned but not completed when the trace ended
	MaxArrivalsMinute  int            // minute with the most arrivals (earliest on ties)
	MaxArrivals        int            // arrivals at MaxArrivalsMinute
	CounterLoad        map[int]int    // counter ID → visitors assigned
	CategoryArrivals   map[string]int // category label → arrivals
	MeanServiceMinutes float64        // over assignments
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		CounterLoad:      make(map[int]int),
		CategoryArrivals: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalArrivals = len(st.Arrivals)
	perMinute := make(map[int]int)
	for _, a := range st.Arrivals {
		switch a.Channel {
		case "electronic":
			summary.ElectronicArrivals++
		case "offline":
			summary.OfflineArrivals++
		}
		summary.CategoryArrivals[a.Category]++
		perMinute[a.Minute]++
		n := perMinute[a.Minute]
		if n > summary.MaxArrivals || (n == summary.MaxArrivals && a.Minute < summary.MaxArrivalsMinute) {
			summary.MaxArrivals = n
			summary.MaxArrivalsMinute = a.Minute
		}
	}

	if len(st.Assignments) > 0 {
		total := 0
		for _, a := range st.Assignments {
			summary.CounterLoad[a.Counter]++
			total += a.Duration
		}
		summary.MeanServiceMinutes = float64(total) / float64(len(st.Assignments))
	}
	summary.TotalAssignments = len(st.Assignments)
	summary.TotalCompletions = len(st.Completions)
	summary.InService = summary.TotalAssignments - summary.TotalCompletions

	return summary
}
