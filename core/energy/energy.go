// Package energy implements the pure segment energy/time model: energy
// required and travel time as a function of distance, current direction and
// cruise speed.
package energy

import "github.com/oceanrelay/vesselplan/core/model"

// CurrentMultipliers exposes the three current-direction coefficients as
// configuration; the defaults match historical behavior.
type CurrentMultipliers struct {
	Downstream float64
	Slack      float64
	Upstream   float64
}

// DefaultMultipliers reproduces the historical current-direction defaults.
func DefaultMultipliers() CurrentMultipliers {
	return CurrentMultipliers{Downstream: 0.75, Slack: 1.0, Upstream: 1.25}
}

func (m CurrentMultipliers) forSign(sign model.CurrentSign) float64 {
	switch sign {
	case model.CurrentDownstream:
		return m.Downstream
	case model.CurrentUpstream:
		return m.Upstream
	default:
		return m.Slack
	}
}

// SegmentInput describes one outgoing segment.
type SegmentInput struct {
	DistanceUnits      float64
	CurrentSign        model.CurrentSign
	CruiseSpeed        float64
	BaseConsumptionPer float64
}

// Result holds the energy and time required to traverse a segment.
type Result struct {
	EnergyKWh  float64
	TravelTime float64 // hours
}

// Required computes the energy and travel time for a segment, using the
// supplied current multipliers. Pass DefaultMultipliers() for the
// historical coefficients.
func Required(in SegmentInput, mult CurrentMultipliers) Result {
	energy := in.DistanceUnits * in.BaseConsumptionPer * mult.forSign(in.CurrentSign)
	travel := in.DistanceUnits / in.CruiseSpeed
	return Result{EnergyKWh: energy, TravelTime: travel}
}

// ExceedsCapacity reports whether a segment is structurally infeasible: its
// energy requirement alone exceeds what the battery can ever hold: if
// energy required > battery capacity, the segment is structurally
// infeasible regardless of starting charge.
func ExceedsCapacity(r Result, capacityKWh float64) bool {
	return r.EnergyKWh > capacityKWh
}
