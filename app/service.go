// Package app wires the ambient collaborators (logger, metrics sink,
// reference-data lookups) into a Service that runs one-shot solves against
// scenario files.
package app

import (
	"context"
	"fmt"

	"github.com/oceanrelay/vesselplan/config"
	"github.com/oceanrelay/vesselplan/core/logger"
	"github.com/oceanrelay/vesselplan/core/metrics"
	"github.com/oceanrelay/vesselplan/core/model"
	"github.com/oceanrelay/vesselplan/core/solver"
	infralogger "github.com/oceanrelay/vesselplan/infra/logger"
	inframetrics "github.com/oceanrelay/vesselplan/infra/metrics"
)

// Service holds the ambient collaborators shared across solves: a logger, a
// metrics sink, and the reference-data lookups used to resolve a station's
// hotelling power from its vessel type before a Scenario is built.
type Service struct {
	log       logger.Logger
	metrics   metrics.SolverMetricsSink
	hotelling model.HotellingLookup
	promPort  int
	promOn    bool
}

// New builds a Service from cfg: a zerolog-backed logger, a Prometheus sink
// (or NopSink) per cfg.Metrics, and the hotelling lookup per cfg.RefData.
// cfg.Logging is not applied: the logger takes its output format from the
// APP_ENV variable and does not filter by level.
func New(cfg *config.Config) (*Service, error) {
	log := infralogger.New("solver")

	var sink metrics.SolverMetricsSink = metrics.NopSink{}
	if cfg.Metrics.PrometheusEnabled {
		promSink, err := inframetrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prometheus sink: %w", err)
		}
		sink = promSink
	}

	hotelling, err := cfg.RefData.Hotelling()
	if err != nil {
		return nil, fmt.Errorf("hotelling table: %w", err)
	}

	return &Service{
		log:       log,
		metrics:   sink,
		hotelling: hotelling,
		promPort:  cfg.Metrics.PrometheusPort,
		promOn:    cfg.Metrics.PrometheusEnabled,
	}, nil
}

// ServeMetrics starts the Prometheus /metrics endpoint if enabled, blocking
// until ctx is cancelled. Callers that don't need a scrape endpoint (e.g. a
// one-shot CLI invocation) can skip calling this.
func (s *Service) ServeMetrics(ctx context.Context) error {
	if !s.promOn {
		<-ctx.Done()
		return nil
	}
	return inframetrics.StartPromServer(ctx, s.promPort)
}

// SolveFile loads a scenario+solver configuration file at path, resolves it
// into a model.Scenario, and runs the DP solver, returning the exhaustive
// Outcome. Configuration errors surface as OutcomeConfigError rather than an
// error return, matching solver.Solve's contract; the error return is
// reserved for problems loading the file itself and for hotelling lookup
// failures while resolving its stations.
func (s *Service) SolveFile(ctx context.Context, path string) (solver.Outcome, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return solver.Outcome{}, fmt.Errorf("load config: %w", err)
	}

	scn, err := cfg.Scenario.ToScenario(s.hotelling)
	if err != nil {
		if cfgErr, ok := err.(*model.ConfigurationError); ok {
			return solver.Outcome{Kind: solver.OutcomeConfigError, ConfigError: cfgErr}, nil
		}
		return solver.Outcome{}, fmt.Errorf("build scenario: %w", err)
	}

	opts := cfg.Solver.ToSolveOptions()
	opts.Logger = s.log
	opts.Metrics = s.metrics

	if d := cfg.Solver.CancelAfter(); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	return solver.Solve(ctx, scn, opts), nil
}
