// Package metrics defines the instrumentation surface the DP solver reports
// through. The core never depends on a specific backend; infra/metrics
// supplies a Prometheus-backed implementation.
package metrics

import "time"

// SolverMetricsSink receives solve-lifecycle observations. Solve makes every
// call from its own goroutine, including when SolveOptions.Parallel is set;
// a sink shared by concurrent solves must be safe for concurrent use.
type SolverMetricsSink interface {
	// RecordStageFrontier reports the surviving frontier size at station
	// stationIndex after dominance pruning.
	RecordStageFrontier(stationIndex, frontierSize int)
	// RecordDominancePrunes reports how many candidate states were dropped
	// as dominated while building one station's frontier.
	RecordDominancePrunes(stationIndex, pruned int)
	// RecordSolveDuration reports the wall-clock time of a full solve and
	// its outcome kind ("plan", "infeasible", "cancelled", "config_error",
	// "resource_exhausted").
	RecordSolveDuration(outcomeKind string, d time.Duration)
}

// NopSink discards every observation. It is the default when no sink is
// configured.
type NopSink struct{}

func (NopSink) RecordStageFrontier(int, int)          {}
func (NopSink) RecordDominancePrunes(int, int)        {}
func (NopSink) RecordSolveDuration(string, time.Duration) {}
