// Package trace provides event-trace recording for post-run analysis.
// This package has no dependencies on sim/. It stores pure data types.
package trace

// ArrivalRecord captures a visitor joining a queue.
type ArrivalRecord struct {
	Minute   int
	Category string
	Channel  string
	Duration int
}

// AssignmentRecord captures a visitor taken from a queue by a counter.
type AssignmentRecord struct {
	Minute   int
	Counter  int
	Category string
	Channel  string
	Duration int
}

// CompletionRecord captures a counter finishing its visitor.
type CompletionRecord struct {
	Minute   int
	Counter  int
	Category string
}
