package trace

import "testing"

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	summary := Summarize(nil)

	if summary.TotalArrivals != 0 || summary.TotalAssignments != 0 {
		t.Error("expected zero counts for nil trace")
	}
	if summary.CounterLoad == nil || summary.CategoryArrivals == nil {
		t.Error("expected non-nil maps")
	}
}

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN an empty trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelEvents})

	// WHEN summarized
	summary := Summarize(st)

	// THEN all counts are zero
	if summary.TotalArrivals != 0 || summary.TotalCompletions != 0 {
		t.Error("expected zero counts")
	}
	if summary.MeanServiceMinutes != 0 {
		t.Errorf("expected 0 mean service minutes, got %v", summary.MeanServiceMinutes)
	}
	if len(summary.CounterLoad) != 0 {
		t.Error("expected empty counter load")
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN a trace with arrivals at minutes 0 and 5, assignments and one completion
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelEvents})
	st.RecordArrival(ArrivalRecord{Minute: 0, Category: "adult", Channel: "electronic", Duration: 2})
	st.RecordArrival(ArrivalRecord{Minute: 5, Category: "child", Channel: "offline", Duration: 6})
	st.RecordArrival(ArrivalRecord{Minute: 5, Category: "adult", Channel: "offline", Duration: 4})
	st.RecordAssignment(AssignmentRecord{Minute: 0, Counter: 0, Category: "adult", Duration: 2})
	st.RecordAssignment(AssignmentRecord{Minute: 5, Counter: 1, Category: "child", Duration: 6})
	st.RecordCompletion(CompletionRecord{Minute: 2, Counter: 0, Category: "adult"})

	// WHEN summarized
	summary := Summarize(st)

	// THEN counts match
	if summary.TotalArrivals != 3 || summary.ElectronicArrivals != 1 || summary.OfflineArrivals != 2 {
		t.Errorf("arrival counts wrong: %+v", summary)
	}
	if summary.CategoryArrivals["adult"] != 2 || summary.CategoryArrivals["child"] != 1 {
		t.Errorf("category arrivals wrong: %v", summary.CategoryArrivals)
	}
	if summary.MaxArrivalsMinute != 5 || summary.MaxArrivals != 2 {
		t.Errorf("busiest minute = %d (%d arrivals), want 5 (2)", summary.MaxArrivalsMinute, summary.MaxArrivals)
	}
	if summary.CounterLoad[0] != 1 || summary.CounterLoad[1] != 1 {
		t.Errorf("counter load wrong: %v", summary.CounterLoad)
	}
	if summary.InService != 1 {
		t.Errorf("expected 1 in service, got %d", summary.InService)
	}
	if summary.MeanServiceMinutes != 4 {
		t.Errorf("expected mean service 4, got %v", summary.MeanServiceMinutes)
	}
}
