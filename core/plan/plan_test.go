package plan

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/oceanrelay/vesselplan/core/discretize"
	"github.com/oceanrelay/vesselplan/core/model"
	"github.com/oceanrelay/vesselplan/core/pricing"
)

func TestExtract_WalksPathAndAccumulatesCostAndSwaps(t *testing.T) {
	grid, err := discretize.NewGrid(100, 1)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	scn, err := model.NewScenario(
		[]model.Station{{ID: "A", DistanceToNext: 10, CurrentSign: model.CurrentSlack}, {ID: "B"}},
		100, 0, 100, 10, 0, 10, 1, 1, false,
	)
	if err != nil {
		t.Fatalf("scenario: %v", err)
	}

	root := &model.StateRecord{
		State:          model.State{StationIndex: 0, SoCLevel: 100, ArrivalTime: 0},
		CumulativeCost: decimal.Zero,
		Action:         model.ActionIdle,
	}
	leaf := &model.StateRecord{
		State:          model.State{StationIndex: 1, SoCLevel: 90, ArrivalTime: 1},
		CumulativeCost: decimal.NewFromInt(50),
		Action:         model.ActionSwap,
		ContainersSwapped: 1,
		StepCost:       pricing.CostBreakdown{Total: decimal.NewFromInt(50)},
		Predecessor:    root,
	}

	p := Extract(scn, grid, leaf)

	if p.ScenarioID != scn.ID {
		t.Errorf("expected ScenarioID to match the scenario")
	}
	if len(p.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(p.Steps))
	}
	if p.Steps[0].StationID != "A" || p.Steps[1].StationID != "B" {
		t.Errorf("expected station IDs A then B, got %s then %s", p.Steps[0].StationID, p.Steps[1].StationID)
	}
	if !p.TotalCost.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected total cost 50, got %v", p.TotalCost)
	}
	if p.SwapCount != 1 {
		t.Errorf("expected swap count 1, got %d", p.SwapCount)
	}
	if p.Steps[1].SoCArrivingKWh != 90 {
		t.Errorf("expected arrival SoC 90 kWh, got %v", p.Steps[1].SoCArrivingKWh)
	}
	if p.TotalJourneyHours != 1 {
		t.Errorf("expected total journey hours 1, got %v", p.TotalJourneyHours)
	}
}

func TestExtract_ArrivalClockTimeWrapsModulo24(t *testing.T) {
	grid, _ := discretize.NewGrid(100, 1)
	scn, _ := model.NewScenario(
		[]model.Station{{ID: "A", DistanceToNext: 10, CurrentSign: model.CurrentSlack}, {ID: "B"}},
		100, 0, 100, 10, 0, 10, 1, 1, false,
	)
	leaf := &model.StateRecord{State: model.State{StationIndex: 1, SoCLevel: 90, ArrivalTime: 26}}
	p := Extract(scn, grid, leaf)
	if p.ArrivalClockTime != 2 {
		t.Errorf("expected arrival clock time 26 mod 24 = 2, got %v", p.ArrivalClockTime)
	}
}
