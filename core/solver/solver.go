// Package solver implements the constrained discrete-state dynamic-programming
// solver: a forward-sweep expansion over stations that maintains, at each
// station, a pruned set of non-dominated (soc_level, arrival_time) states and
// their backpointers, grounded on the original FixedPathOptimizer.solve()
// but reshaped around Go's sum-typed Outcome instead of exception-driven
// infeasibility signaling.
package solver

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oceanrelay/vesselplan/core/diagnostic"
	"github.com/oceanrelay/vesselplan/core/discretize"
	"github.com/oceanrelay/vesselplan/core/energy"
	"github.com/oceanrelay/vesselplan/core/logger"
	"github.com/oceanrelay/vesselplan/core/metrics"
	"github.com/oceanrelay/vesselplan/core/model"
	"github.com/oceanrelay/vesselplan/core/plan"
	"github.com/oceanrelay/vesselplan/core/pricing"
)

// SolveOptions configures one solve. The zero value is usable: no
// parallelism, no frontier cap, default current multipliers, no-op logger
// and metrics sink.
type SolveOptions struct {
	Parallel           bool
	MaxFrontierSize    int // 0 disables the cap
	CurrentMultipliers energy.CurrentMultipliers
	Logger             logger.Logger
	Metrics            metrics.SolverMetricsSink
}

func (o SolveOptions) withDefaults() SolveOptions {
	if o.CurrentMultipliers == (energy.CurrentMultipliers{}) {
		o.CurrentMultipliers = energy.DefaultMultipliers()
	}
	if o.Logger == nil {
		o.Logger = logger.NopLogger{}
	}
	if o.Metrics == nil {
		o.Metrics = metrics.NopSink{}
	}
	return o
}

// OutcomeKind discriminates the sum-typed solve result: exception-based
// infeasibility signaling is replaced with this.
type OutcomeKind int

const (
	OutcomePlan OutcomeKind = iota
	OutcomeInfeasible
	OutcomeCancelled
	OutcomeConfigError
	OutcomeResourceExhausted
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomePlan:
		return "plan"
	case OutcomeInfeasible:
		return "infeasible"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeConfigError:
		return "config_error"
	case OutcomeResourceExhausted:
		return "resource_exhausted"
	default:
		return "unknown"
	}
}

// Outcome is the exhaustive result of a solve. Exactly the field matching
// Kind is populated.
type Outcome struct {
	Kind        OutcomeKind
	Plan        plan.Plan
	Diagnostic  diagnostic.Report
	ConfigError *model.ConfigurationError
}

// Solve runs the DP solver to completion, to infeasibility, or to
// cancellation. It is a pure function of scn and opts: two concurrent
// solves on the same scenario produce identical results.
func Solve(ctx context.Context, scn model.Scenario, opts SolveOptions) Outcome {
	opts = opts.withDefaults()
	start := time.Now()

	if err := scn.Validate(); err != nil {
		cfgErr := err.(*model.ConfigurationError)
		opts.Metrics.RecordSolveDuration(OutcomeConfigError.String(), time.Since(start))
		return Outcome{Kind: OutcomeConfigError, ConfigError: cfgErr}
	}

	grid, err := discretize.NewGrid(scn.BatteryCapacityKWh, scn.SoCStepKWh)
	if err != nil {
		cfgErr := &model.ConfigurationError{Reason: err.Error()}
		return Outcome{Kind: OutcomeConfigError, ConfigError: cfgErr}
	}

	n := len(scn.Stations)
	segmentEnergies := make([]float64, 0, n-1)
	for i := 0; i < n-1; i++ {
		st := scn.Stations[i]
		res := energy.Required(energy.SegmentInput{
			DistanceUnits:      st.DistanceToNext,
			CurrentSign:        st.CurrentSign,
			CruiseSpeed:        scn.CruiseSpeed,
			BaseConsumptionPer: scn.BaseConsumptionPerUnit,
		}, opts.CurrentMultipliers)
		segmentEnergies = append(segmentEnergies, res.EnergyKWh)
	}

	frontiers := make([][]*model.StateRecord, n)
	frontiers[0] = []*model.StateRecord{{
		State: model.State{
			StationIndex: 0,
			SoCLevel:     int(grid.Quantize(scn.InitialSoCKWh)),
			ArrivalTime:  scn.DepartureHour,
		},
		CumulativeCost: decimal.Zero,
		Action:         model.ActionIdle,
	}}
	opts.Metrics.RecordStageFrontier(0, len(frontiers[0]))
	opts.Logger.Debugw("frontier initialized", map[string]any{"station": 0, "size": len(frontiers[0])})

	for i := 0; i < n-1; i++ {
		select {
		case <-ctx.Done():
			opts.Metrics.RecordSolveDuration(OutcomeCancelled.String(), time.Since(start))
			return Outcome{Kind: OutcomeCancelled}
		default:
		}

		next, pruned := expandStage(scn, i, grid, frontiers[i], segmentEnergies[i], opts)
		frontiers[i+1] = next
		opts.Metrics.RecordStageFrontier(i+1, len(next))
		opts.Metrics.RecordDominancePrunes(i+1, pruned)
		opts.Logger.Debugw("frontier expanded", map[string]any{"station": i + 1, "size": len(next), "pruned": pruned})

		if opts.MaxFrontierSize > 0 && len(next) > opts.MaxFrontierSize {
			report := diagnostic.Diagnose(scn, grid, frontiers[:i+2], segmentEnergies)
			report.Contradictions = append(report.Contradictions, diagnostic.Contradiction{
				Description: "frontier exceeded the configured maximum size; precision too fine or scenario too large",
			})
			opts.Metrics.RecordSolveDuration(OutcomeResourceExhausted.String(), time.Since(start))
			return Outcome{Kind: OutcomeResourceExhausted, Diagnostic: report}
		}
	}

	terminal := selectTerminal(frontiers[n-1], grid, scn.FinalSoCRequiredKWh)
	if terminal == nil {
		report := diagnostic.Diagnose(scn, grid, frontiers, segmentEnergies)
		opts.Metrics.RecordSolveDuration(OutcomeInfeasible.String(), time.Since(start))
		return Outcome{Kind: OutcomeInfeasible, Diagnostic: report}
	}

	p := plan.Extract(scn, grid, terminal)
	opts.Metrics.RecordSolveDuration(OutcomePlan.String(), time.Since(start))
	return Outcome{Kind: OutcomePlan, Plan: p}
}

// expandStage builds F[i+1] from F[i]: for each surviving state, enumerate
// legal actions at station i, traverse the outgoing segment, and merge the
// results into F[i+1] under the dominance rule.
func expandStage(scn model.Scenario, i int, grid discretize.Grid, frontier []*model.StateRecord, segEnergyKWh float64, opts SolveOptions) ([]*model.StateRecord, int) {
	station := scn.Stations[i]

	type expansion struct {
		recs []*model.StateRecord
	}

	results := make([]expansion, len(frontier))
	runOne := func(idx int) {
		cur := frontier[idx]
		results[idx] = expansion{recs: expandFromState(scn, station, i, grid, cur, segEnergyKWh)}
	}

	if opts.Parallel && len(frontier) > 1 {
		done := make(chan struct{}, len(frontier))
		for idx := range frontier {
			go func(idx int) {
				runOne(idx)
				done <- struct{}{}
			}(idx)
		}
		for range frontier {
			<-done
		}
	} else {
		for idx := range frontier {
			runOne(idx)
		}
	}

	var candidates []*model.StateRecord
	for _, r := range results {
		candidates = append(candidates, r.recs...)
	}

	// Deterministic order before pruning: by SoC level, then arrival time,
	// then cost, so dominance scans and ties resolve identically across
	// runs regardless of goroutine completion order.
	sort.SliceStable(candidates, func(a, b int) bool {
		ca, cb := candidates[a], candidates[b]
		if ca.State.SoCLevel != cb.State.SoCLevel {
			return ca.State.SoCLevel > cb.State.SoCLevel
		}
		if ca.State.ArrivalTime != cb.State.ArrivalTime {
			return ca.State.ArrivalTime < cb.State.ArrivalTime
		}
		return ca.CumulativeCost.LessThan(cb.CumulativeCost)
	})

	return pruneDominated(candidates)
}

// expandFromState enumerates every legal action at station i from cur, and
// for each produces the resulting arrival StateRecord at station i+1 (or
// drops it, if the segment or the minimum-SoC floor rejects it).
func expandFromState(scn model.Scenario, station model.Station, stationIdx int, grid discretize.Grid, cur *model.StateRecord, segEnergyKWh float64) []*model.StateRecord {
	var out []*model.StateRecord
	arrival := cur.State.ArrivalTime

	for _, cand := range candidateActions(scn, station, grid, discretize.Level(cur.State.SoCLevel)) {
		wait := waitUntilOpen(station.OperatingHours, arrival)
		if !fitsBeforeClose(station.OperatingHours, arrival+wait, cand.dwellHours) {
			continue
		}
		totalDwell := wait + station.QueueTimeHr + cand.dwellHours
		if station.MaxDwellHr > 0 && totalDwell > station.MaxDwellHr {
			continue
		}

		cand.quote.ArrivalClockHour = mod24(arrival)
		cand.quote.HotellingPowerKW = station.HotellingPowerKW
		cand.quote.DwellHours = totalDwell
		breakdown := pricing.Quote(cand.quote)

		departureTime := arrival + totalDwell
		segArrivalTime := departureTime + segmentTravelTime(scn, stationIdx)
		rawArrivalKWh := grid.KWh(cand.level) - segEnergyKWh
		if rawArrivalKWh < 0 {
			continue
		}
		segLevel := grid.Quantize(rawArrivalKWh)
		if grid.KWh(segLevel) < scn.MinSoCKWh-1e-9 {
			continue
		}

		rec := &model.StateRecord{
			State: model.State{
				StationIndex: stationIdx + 1,
				SoCLevel:     int(segLevel),
				ArrivalTime:  segArrivalTime,
			},
			CumulativeCost:    cur.CumulativeCost.Add(breakdown.Total),
			Action:            cand.action,
			ContainersSwapped: cand.containersSwapped,
			EnergyChargedKWh:  cand.energyChargedKWh,
			DwellHours:        totalDwell,
			StepCost:          breakdown,
			Predecessor:       cur,
		}
		out = append(out, rec)
	}
	return out
}

func segmentTravelTime(scn model.Scenario, stationIdx int) float64 {
	st := scn.Stations[stationIdx]
	return st.DistanceToNext / scn.CruiseSpeed
}

// pruneDominated applies the three-dimension dominance rule over candidates,
// assumed already sorted by (SoC desc, time asc, cost asc), and returns the
// surviving set plus the count discarded.
func pruneDominated(candidates []*model.StateRecord) ([]*model.StateRecord, int) {
	var survivors []*model.StateRecord
	pruned := 0
	for _, cand := range candidates {
		dominated := false
		for _, s := range survivors {
			if s.Dominates(cand) {
				dominated = true
				break
			}
		}
		if dominated {
			pruned++
			continue
		}
		// cand may dominate some already-admitted survivors; drop them.
		kept := survivors[:0]
		for _, s := range survivors {
			if cand.Dominates(s) {
				pruned++
				continue
			}
			kept = append(kept, s)
		}
		survivors = append(kept, cand)
	}
	return survivors, pruned
}

// selectTerminal picks, among states meeting the final-SoC requirement, the
// minimum-cost one, tie-broken by earliest arrival time.
func selectTerminal(frontier []*model.StateRecord, grid discretize.Grid, finalSoCRequiredKWh float64) *model.StateRecord {
	var best *model.StateRecord
	for _, rec := range frontier {
		if grid.KWh(discretize.Level(rec.State.SoCLevel)) < finalSoCRequiredKWh-1e-9 {
			continue
		}
		if best == nil {
			best = rec
			continue
		}
		cmp := rec.CumulativeCost.Cmp(best.CumulativeCost)
		if cmp < 0 || (cmp == 0 && rec.State.ArrivalTime < best.State.ArrivalTime) {
			best = rec
		}
	}
	return best
}
