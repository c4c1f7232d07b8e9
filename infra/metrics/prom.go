package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/oceanrelay/vesselplan/core/metrics"
)

// PromSink records solver instrumentation as Prometheus metrics.
type PromSink struct {
	frontierSize   *prometheus.GaugeVec
	dominancePrune *prometheus.CounterVec
	solveDuration  *prometheus.HistogramVec
}

// NewPromSink registers solver metrics on the default Prometheus registerer.
func NewPromSink() (coremetrics.SolverMetricsSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer. A nil
// registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.SolverMetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	frontierSize := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "vesselplan_solver_frontier_size",
		Help: "Surviving non-dominated state count at each station after pruning",
	}, []string{"station_index"})
	dominancePrune := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vesselplan_solver_dominance_prunes_total",
		Help: "Candidate states discarded by the dominance rule while building a station frontier",
	}, []string{"station_index"})
	solveDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vesselplan_solver_solve_duration_seconds",
		Help:    "Wall-clock duration of a full solve, by outcome",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})

	if err := reg.Register(frontierSize); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			frontierSize = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(dominancePrune); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			dominancePrune = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(solveDuration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			solveDuration = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{frontierSize: frontierSize, dominancePrune: dominancePrune, solveDuration: solveDuration}, nil
}

func (s *PromSink) RecordStageFrontier(stationIndex, frontierSize int) {
	s.frontierSize.WithLabelValues(strconv.Itoa(stationIndex)).Set(float64(frontierSize))
}

func (s *PromSink) RecordDominancePrunes(stationIndex, pruned int) {
	if pruned == 0 {
		return
	}
	s.dominancePrune.WithLabelValues(strconv.Itoa(stationIndex)).Add(float64(pruned))
}

func (s *PromSink) RecordSolveDuration(outcomeKind string, d time.Duration) {
	s.solveDuration.WithLabelValues(outcomeKind).Observe(d.Seconds())
}
