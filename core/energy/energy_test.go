package energy

import (
	"math"
	"testing"

	"github.com/oceanrelay/vesselplan/core/model"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestRequired_Slack(t *testing.T) {
	in := SegmentInput{DistanceUnits: 10, CurrentSign: model.CurrentSlack, CruiseSpeed: 10, BaseConsumptionPer: 1}
	r := Required(in, DefaultMultipliers())
	if !approxEqual(r.EnergyKWh, 10, 1e-9) {
		t.Fatalf("expected 10 kWh, got %v", r.EnergyKWh)
	}
	if !approxEqual(r.TravelTime, 1, 1e-9) {
		t.Fatalf("expected 1h travel time, got %v", r.TravelTime)
	}
}

func TestRequired_Downstream(t *testing.T) {
	in := SegmentInput{DistanceUnits: 50, CurrentSign: model.CurrentDownstream, CruiseSpeed: 20, BaseConsumptionPer: 1}
	r := Required(in, DefaultMultipliers())
	if !approxEqual(r.EnergyKWh, 50*0.75, 1e-9) {
		t.Fatalf("expected downstream discount applied, got %v", r.EnergyKWh)
	}
}

func TestRequired_Upstream(t *testing.T) {
	in := SegmentInput{DistanceUnits: 50, CurrentSign: model.CurrentUpstream, CruiseSpeed: 20, BaseConsumptionPer: 1}
	r := Required(in, DefaultMultipliers())
	if !approxEqual(r.EnergyKWh, 62.5, 1e-9) {
		t.Fatalf("expected upstream penalty 62.5, got %v", r.EnergyKWh)
	}
}

func TestExceedsCapacity(t *testing.T) {
	r := Result{EnergyKWh: 600}
	if !ExceedsCapacity(r, 500) {
		t.Fatalf("expected structural infeasibility when energy exceeds capacity")
	}
	if ExceedsCapacity(r, 700) {
		t.Fatalf("did not expect infeasibility when capacity covers energy")
	}
}

func TestCustomMultipliers(t *testing.T) {
	mult := CurrentMultipliers{Downstream: 0.5, Slack: 1.0, Upstream: 2.0}
	in := SegmentInput{DistanceUnits: 10, CurrentSign: model.CurrentUpstream, CruiseSpeed: 10, BaseConsumptionPer: 1}
	r := Required(in, mult)
	if !approxEqual(r.EnergyKWh, 20, 1e-9) {
		t.Fatalf("expected overridden upstream multiplier to apply, got %v", r.EnergyKWh)
	}
}
