package config

import (
	"fmt"
	"time"

	"github.com/oceanrelay/vesselplan/core/energy"
	"github.com/oceanrelay/vesselplan/core/solver"
)

// SolverConfig configures one Solve call: whether stage expansion runs in
// parallel, an optional frontier-size cap guarding against a too-fine grid,
// and the current-direction multipliers, exposed as configuration rather
// than hardcoded constants.
type SolverConfig struct {
	Parallel            bool    `json:"parallel"`
	MaxFrontierSize     int     `json:"max_frontier_size"`
	CancelAfterSeconds  int     `json:"cancel_after_seconds"`
	DownstreamMultiplier float64 `json:"downstream_multiplier"`
	SlackMultiplier      float64 `json:"slack_multiplier"`
	UpstreamMultiplier   float64 `json:"upstream_multiplier"`
}

// SetDefaults fills in the historical current multipliers when the
// configuration omits them.
func (c *SolverConfig) SetDefaults() {
	defaults := energy.DefaultMultipliers()
	if c.DownstreamMultiplier == 0 {
		c.DownstreamMultiplier = defaults.Downstream
	}
	if c.SlackMultiplier == 0 {
		c.SlackMultiplier = defaults.Slack
	}
	if c.UpstreamMultiplier == 0 {
		c.UpstreamMultiplier = defaults.Upstream
	}
}

// Validate checks that the configured multipliers are non-negative.
func (c SolverConfig) Validate() error {
	if c.DownstreamMultiplier < 0 || c.SlackMultiplier < 0 || c.UpstreamMultiplier < 0 {
		return fmt.Errorf("current multipliers must be non-negative")
	}
	if c.MaxFrontierSize < 0 {
		return fmt.Errorf("max_frontier_size must be non-negative")
	}
	if c.CancelAfterSeconds < 0 {
		return fmt.Errorf("cancel_after_seconds must be non-negative")
	}
	return nil
}

// CancelAfter returns the configured timeout, or 0 (no timeout) if unset.
func (c SolverConfig) CancelAfter() time.Duration {
	if c.CancelAfterSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CancelAfterSeconds) * time.Second
}

// ToSolveOptions builds the solver.SolveOptions this configuration
// describes, leaving Logger and Metrics for the caller to attach.
func (c SolverConfig) ToSolveOptions() solver.SolveOptions {
	return solver.SolveOptions{
		Parallel:        c.Parallel,
		MaxFrontierSize: c.MaxFrontierSize,
		CurrentMultipliers: energy.CurrentMultipliers{
			Downstream: c.DownstreamMultiplier,
			Slack:      c.SlackMultiplier,
			Upstream:   c.UpstreamMultiplier,
		},
	}
}
