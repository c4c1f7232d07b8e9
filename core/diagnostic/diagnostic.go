// Package diagnostic implements a structured infeasibility post-mortem,
// grounded on the original solver's _diagnose_infeasibility procedure: when
// no terminal state meets the final-SoC constraint, it
// localizes the cause across reachability, best-achievable SoC, per-segment
// bottlenecks, the energy budget and configuration contradictions, and
// proposes a filtered menu of remedial actions.
package diagnostic

import (
	"fmt"
	"strings"

	"github.com/oceanrelay/vesselplan/core/discretize"
	"github.com/oceanrelay/vesselplan/core/model"
)

// Bottleneck reports a segment where the frontier collapsed to empty.
type Bottleneck struct {
	SegmentIndex           int
	FromStationID          string
	ToStationID            string
	EnergyRequiredKWh      float64
	CapacityKWh            float64
	SegmentExceedsCapacity bool
	ReplenishmentUpstream  bool // any station in [0..from] can swap or charge
}

// Contradiction reports a self-inconsistent constraint pair independent of
// any particular solve attempt.
type Contradiction struct {
	Description string
}

// Report is the complete structured infeasibility diagnosis. It is plain data;
// String renders the canonical textual convenience form.
type Report struct {
	ScenarioID                string
	Reachable                 bool
	BestAchievableSoCKWh      float64
	FinalSoCRequiredKWh       float64
	ShortfallKWh              float64
	Bottlenecks               []Bottleneck
	TotalSegmentEnergyKWh     float64
	EnergyBudgetKWh           float64
	CatastrophicInfeasibility bool
	Contradictions            []Contradiction
	SuggestedActions          []string
}

// Diagnose builds a Report from the per-station frontiers produced by a
// failed solve. frontiers[i] is F[i] as left by the solver; segmentEnergies
// holds the pre-computed energy requirement of segment i -> i+1.
func Diagnose(scn model.Scenario, grid discretize.Grid, frontiers [][]*model.StateRecord, segmentEnergies []float64) Report {
	last := len(frontiers) - 1
	r := Report{
		ScenarioID:          scn.ID,
		FinalSoCRequiredKWh: scn.FinalSoCRequiredKWh,
	}

	// 1. Reachability + 2. best achievable SoC / shortfall.
	if last < 0 || len(frontiers[last]) == 0 {
		r.Reachable = false
	} else {
		r.Reachable = true
		levels := make([]discretize.Level, len(frontiers[last]))
		for i, rec := range frontiers[last] {
			levels[i] = discretize.Level(rec.State.SoCLevel)
		}
		r.BestAchievableSoCKWh = grid.MaxKWh(levels)
		if r.BestAchievableSoCKWh < scn.FinalSoCRequiredKWh {
			r.ShortfallKWh = scn.FinalSoCRequiredKWh - r.BestAchievableSoCKWh
		}
	}

	// 3. Segment bottleneck scan.
	anyBottleneck := false
	for i := 0; i+1 < len(frontiers); i++ {
		if len(frontiers[i]) == 0 || len(frontiers[i+1]) != 0 {
			continue
		}
		anyBottleneck = true
		var segEnergy float64
		if i < len(segmentEnergies) {
			segEnergy = segmentEnergies[i]
		}
		b := Bottleneck{
			SegmentIndex:           i,
			FromStationID:          scn.Stations[i].ID,
			CapacityKWh:            scn.BatteryCapacityKWh,
			EnergyRequiredKWh:      segEnergy,
			SegmentExceedsCapacity: segEnergy > scn.BatteryCapacityKWh,
			ReplenishmentUpstream:  hasReplenishment(scn, i),
		}
		if i+1 < len(scn.Stations) {
			b.ToStationID = scn.Stations[i+1].ID
		}
		r.Bottlenecks = append(r.Bottlenecks, b)
	}

	// 4. Energy-budget check.
	total := 0.0
	for _, e := range segmentEnergies {
		total += e
	}
	r.TotalSegmentEnergyKWh = total
	r.EnergyBudgetKWh = scn.InitialSoCKWh - scn.FinalSoCRequiredKWh
	anyReplenishment := false
	for _, st := range scn.Stations {
		if st.SwapAllowed || st.ChargingAllowed {
			anyReplenishment = true
			break
		}
	}
	if total > r.EnergyBudgetKWh && !anyReplenishment {
		r.CatastrophicInfeasibility = true
	}

	// 5. Constraint-compatibility check.
	if scn.MinSoCKWh > scn.BatteryCapacityKWh {
		r.Contradictions = append(r.Contradictions, Contradiction{"minimum SoC exceeds battery capacity"})
	}
	for _, st := range scn.Stations {
		if st.MaxDwellHr > 0 && st.QueueTimeHr > st.MaxDwellHr {
			r.Contradictions = append(r.Contradictions, Contradiction{
				fmt.Sprintf("station %s: queue time alone exceeds max dwell time", st.ID),
			})
		}
		if st.Pricing.PeakStart == st.Pricing.PeakEnd && st.Pricing.PeakHourMultiplier != 0 && st.Pricing.PeakHourMultiplier != 1.0 {
			r.Contradictions = append(r.Contradictions, Contradiction{
				fmt.Sprintf("station %s: peak_start == peak_end degenerates to no peak window, but a non-unit multiplier is configured", st.ID),
			})
		}
	}

	// 6. Suggested actions, filtered to plausible causes.
	r.SuggestedActions = suggestActions(scn, r, anyBottleneck)

	return r
}

func hasReplenishment(scn model.Scenario, uptoIndex int) bool {
	for i := 0; i <= uptoIndex && i < len(scn.Stations); i++ {
		if scn.Stations[i].SwapAllowed || scn.Stations[i].ChargingAllowed {
			return true
		}
	}
	return false
}

func suggestActions(scn model.Scenario, r Report, anyBottleneck bool) []string {
	var actions []string
	if anyBottleneck {
		actions = append(actions, "enable replenishment (swap or charging) at an intermediate station before the bottleneck segment")
		actions = append(actions, "raise battery capacity")
	}
	if r.ShortfallKWh > 0 {
		actions = append(actions, "lower the final SoC requirement")
	}
	hasOperatingHours := false
	hasLowStock := false
	hasLowChargingPower := false
	hasTightDwell := false
	for _, st := range scn.Stations {
		if st.OperatingHours.Set {
			hasOperatingHours = true
		}
		if st.SwapAllowed && st.ChargedStock < st.ContainerCount {
			hasLowStock = true
		}
		if st.ChargingAllowed && st.ChargingPowerKW > 0 && st.ChargingPowerKW < scn.BatteryCapacityKWh/4 {
			hasLowChargingPower = true
		}
		if st.MaxDwellHr > 0 && st.MaxDwellHr < 4 {
			hasTightDwell = true
		}
	}
	if hasOperatingHours && !r.Reachable {
		actions = append(actions, "widen operating hours at stations blocking arrival")
	}
	if hasLowStock {
		actions = append(actions, "increase charged-container stock at swap-enabled stations")
	}
	if hasLowChargingPower {
		actions = append(actions, "raise charging power at charging-enabled stations")
	}
	if hasTightDwell {
		actions = append(actions, "extend maximum dwell time to allow longer charging sessions")
	}
	return actions
}

// String renders the canonical textual form of the report.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "infeasible: scenario %s\n", r.ScenarioID)
	if !r.Reachable {
		b.WriteString("  terminus unreachable: no state survived to the last station\n")
	} else {
		fmt.Fprintf(&b, "  best achievable SoC at terminus: %.3f kWh (required %.3f, shortfall %.3f)\n",
			r.BestAchievableSoCKWh, r.FinalSoCRequiredKWh, r.ShortfallKWh)
	}
	for _, bn := range r.Bottlenecks {
		fmt.Fprintf(&b, "  bottleneck segment %d (%s -> %s): required %.3f kWh, capacity %.3f kWh, exceeds_capacity=%v, replenishment_upstream=%v\n",
			bn.SegmentIndex, bn.FromStationID, bn.ToStationID, bn.EnergyRequiredKWh, bn.CapacityKWh, bn.SegmentExceedsCapacity, bn.ReplenishmentUpstream)
	}
	fmt.Fprintf(&b, "  total segment energy: %.3f kWh, budget: %.3f kWh, catastrophic=%v\n",
		r.TotalSegmentEnergyKWh, r.EnergyBudgetKWh, r.CatastrophicInfeasibility)
	for _, c := range r.Contradictions {
		fmt.Fprintf(&b, "  contradiction: %s\n", c.Description)
	}
	if len(r.SuggestedActions) > 0 {
		b.WriteString("  suggested actions:\n")
		for _, a := range r.SuggestedActions {
			fmt.Fprintf(&b, "    - %s\n", a)
		}
	}
	return b.String()
}
