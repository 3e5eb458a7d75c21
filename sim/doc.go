// Package sim provides the minute-stepped simulation of a service institution.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - visitor.go: Visitor categories, channels and the Visitor value
//   - counter.go: ServiceCounter state machine (free → busy → free)
//   - simulator.go: The minute loop: counter ticks, arrivals, assignment
//
// # Minute order
//
// Every minute runs the same three phases:
//  1. every counter ticks, completing visitors whose time is up
//  2. outside lunch, the VisitorGenerator draws arrivals on every
//     ArrivalInterval-th minute and they are enqueued by channel
//  3. outside lunch, free counters take visitors in pool order, the
//     electronic queue always ahead of the offline queue
//
// # Key Interfaces
//
//   - IntSource: injected randomness; *rand.Rand or a scripted sequence
//   - EventSink: observer for arrival, assignment and completion events
//
// The sim/trace sub-package stores event records and has no dependency on sim.
package sim
