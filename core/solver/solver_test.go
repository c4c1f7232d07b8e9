package solver

import (
	"context"
	"testing"

	"github.com/oceanrelay/vesselplan/core/model"
	"github.com/oceanrelay/vesselplan/core/pricing"
)

func mustScenario(t *testing.T, stations []model.Station, capacity, minSoC, initial, final, departure, speed, consumption, step float64, hybrid bool) model.Scenario {
	t.Helper()
	scn, err := model.NewScenario(stations, capacity, minSoC, initial, final, departure, speed, consumption, step, hybrid)
	if err != nil {
		t.Fatalf("unexpected configuration error: %v", err)
	}
	return scn
}

func approx(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestSolve_TrivialOneSegment(t *testing.T) {
	stations := []model.Station{
		{ID: "A", DistanceToNext: 10, CurrentSign: model.CurrentSlack},
		{ID: "B"},
	}
	scn := mustScenario(t, stations, 100, 0, 100, 10, 0, 10, 1, 1, false)

	out := Solve(context.Background(), scn, SolveOptions{})
	if out.Kind != OutcomePlan {
		t.Fatalf("expected a plan, got %v (diagnostic: %s)", out.Kind, out.Diagnostic.String())
	}
	if out.Plan.SwapCount != 0 {
		t.Fatalf("expected zero swaps, got %d", out.Plan.SwapCount)
	}
	total, _ := out.Plan.TotalCost.Float64()
	if total != 0 {
		t.Fatalf("expected zero cost, got %v", total)
	}
	last := out.Plan.Steps[len(out.Plan.Steps)-1]
	if !approx(last.SoCArrivingKWh, 90, 1e-9) {
		t.Fatalf("expected arrival SoC 90, got %v", last.SoCArrivingKWh)
	}
}

func swapStation(id string, dist float64, sign model.CurrentSign) model.Station {
	return model.Station{
		ID:                   id,
		DistanceToNext:       dist,
		CurrentSign:          sign,
		SwapAllowed:          true,
		ContainerCount:       1,
		ContainerCapacityKWh: 100,
		ChargedStock:         1,
		Pricing:              pricing.Params{SwapCostPerContainer: 50},
	}
}

func TestSolve_ForcedSingleSwap(t *testing.T) {
	stations := []model.Station{
		{ID: "A", DistanceToNext: 50, CurrentSign: model.CurrentSlack},
		swapStation("B", 50, model.CurrentSlack),
		{ID: "C"},
	}
	scn := mustScenario(t, stations, 100, 20, 100, 20, 0, 10, 1, 1, false)

	out := Solve(context.Background(), scn, SolveOptions{})
	if out.Kind != OutcomePlan {
		t.Fatalf("expected a plan, got %v (diagnostic: %s)", out.Kind, out.Diagnostic.String())
	}
	if out.Plan.SwapCount != 1 {
		t.Fatalf("expected exactly one swap, got %d", out.Plan.SwapCount)
	}
}

func TestSolve_UpstreamPenaltyForcesSwap(t *testing.T) {
	stations := []model.Station{
		{ID: "A", DistanceToNext: 50, CurrentSign: model.CurrentSlack},
		swapStation("B", 50, model.CurrentUpstream),
		{ID: "C"},
	}
	scn := mustScenario(t, stations, 100, 20, 100, 20, 0, 10, 1, 1, false)

	out := Solve(context.Background(), scn, SolveOptions{})
	if out.Kind != OutcomePlan {
		t.Fatalf("expected a plan, got %v (diagnostic: %s)", out.Kind, out.Diagnostic.String())
	}
	if out.Plan.SwapCount != 1 {
		t.Fatalf("expected exactly one swap under upstream penalty, got %d", out.Plan.SwapCount)
	}
}

func TestSolve_OperatingHoursWait(t *testing.T) {
	stations := []model.Station{
		{ID: "A", DistanceToNext: 60, CurrentSign: model.CurrentSlack},
		{
			ID:             "B",
			DistanceToNext: 10,
			CurrentSign:    model.CurrentSlack,
			QueueTimeHr:    1,
			OperatingHours: model.OperatingHours{Open: 8, Close: 20, Set: true},
		},
		{ID: "C"},
	}
	scn := mustScenario(t, stations, 100, 0, 100, 0, 0, 10, 1, 1, false)

	out := Solve(context.Background(), scn, SolveOptions{})
	if out.Kind != OutcomePlan {
		t.Fatalf("expected a plan, got %v (diagnostic: %s)", out.Kind, out.Diagnostic.String())
	}
	bStep := out.Plan.Steps[1]
	if bStep.ArrivalTime != 6 {
		t.Fatalf("expected arrival at B at hour 6, got %v", bStep.ArrivalTime)
	}
	cStep := out.Plan.Steps[2]
	if cStep.ArrivalClockTime < 9 {
		t.Fatalf("expected departure from B no earlier than clock hour 9 (2h wait + 1h queue), got arrival at C = %v", cStep.ArrivalClockTime)
	}
}

func TestSolve_PeakHourArbitrage(t *testing.T) {
	stations := func(baseFee float64) []model.Station {
		return []model.Station{
			{ID: "A", DistanceToNext: 50, CurrentSign: model.CurrentSlack},
			{
				ID: "B", DistanceToNext: 50, CurrentSign: model.CurrentSlack,
				SwapAllowed: true, ContainerCount: 1, ContainerCapacityKWh: 100, ChargedStock: 1,
				Pricing: pricing.Params{
					BaseServiceFee:     baseFee,
					PeakHourMultiplier: 2.0,
					PeakStart:          8,
					PeakEnd:            18,
				},
			},
			{ID: "C"},
		}
	}

	// Arrival at B = departure + 5h travel. Departing at 9 lands inside the
	// [8,18) peak window; departing at 19 lands at clock hour 0, outside it.
	peak := mustScenario(t, stations(100), 100, 20, 100, 20, 9, 10, 1, 1, false)
	offPeakHigherFee := mustScenario(t, stations(150), 100, 20, 100, 20, 19, 10, 1, 1, false)

	peakOut := Solve(context.Background(), peak, SolveOptions{})
	offOut := Solve(context.Background(), offPeakHigherFee, SolveOptions{})
	if peakOut.Kind != OutcomePlan || offOut.Kind != OutcomePlan {
		t.Fatalf("expected both scenarios to produce plans")
	}
	peakTotal, _ := peakOut.Plan.TotalCost.Float64()
	offTotal, _ := offOut.Plan.TotalCost.Float64()
	if offTotal >= peakTotal {
		t.Fatalf("expected the $50-higher off-peak base fee to still undercut the peak multiplier penalty: peak=%v off=%v", peakTotal, offTotal)
	}
}

func TestSolve_InfeasibilityBottleneck(t *testing.T) {
	stations := []model.Station{
		{ID: "A", DistanceToNext: 1, CurrentSign: model.CurrentSlack},
		{ID: "B", DistanceToNext: 600, CurrentSign: model.CurrentSlack},
		{ID: "C"},
	}
	scn := mustScenario(t, stations, 500, 0, 500, 0, 0, 1, 1, 1, false)

	out := Solve(context.Background(), scn, SolveOptions{})
	if out.Kind != OutcomeInfeasible {
		t.Fatalf("expected infeasible outcome, got %v", out.Kind)
	}
	found := false
	for _, b := range out.Diagnostic.Bottlenecks {
		if b.SegmentIndex == 1 && b.SegmentExceedsCapacity {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a segment_exceeds_capacity bottleneck on segment 1, got %+v", out.Diagnostic.Bottlenecks)
	}
}

func TestSolve_Cancellation(t *testing.T) {
	stations := []model.Station{
		{ID: "A", DistanceToNext: 10, CurrentSign: model.CurrentSlack},
		{ID: "B"},
	}
	scn := mustScenario(t, stations, 100, 0, 100, 10, 0, 10, 1, 1, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := Solve(ctx, scn, SolveOptions{})
	if out.Kind != OutcomeCancelled {
		t.Fatalf("expected cancelled outcome, got %v", out.Kind)
	}
}

func TestSolve_Determinism(t *testing.T) {
	stations := []model.Station{
		{ID: "A", DistanceToNext: 50, CurrentSign: model.CurrentSlack},
		swapStation("B", 50, model.CurrentSlack),
		{ID: "C"},
	}
	scn := mustScenario(t, stations, 100, 20, 100, 20, 0, 10, 1, 1, false)

	a := Solve(context.Background(), scn, SolveOptions{})
	b := Solve(context.Background(), scn, SolveOptions{Parallel: true})
	if a.Kind != b.Kind {
		t.Fatalf("expected identical outcome kinds, got %v and %v", a.Kind, b.Kind)
	}
	at, _ := a.Plan.TotalCost.Float64()
	bt, _ := b.Plan.TotalCost.Float64()
	if at != bt {
		t.Fatalf("expected identical total cost across sequential and parallel runs, got %v and %v", at, bt)
	}
}

func TestSolve_ConfigurationErrorSurfacesAsOutcome(t *testing.T) {
	scn := model.Scenario{} // zero-value, never validated
	out := Solve(context.Background(), scn, SolveOptions{})
	if out.Kind != OutcomeConfigError {
		t.Fatalf("expected config error outcome for an unvalidated zero-value scenario, got %v", out.Kind)
	}
	if out.ConfigError == nil {
		t.Fatalf("expected a populated ConfigError")
	}
}
