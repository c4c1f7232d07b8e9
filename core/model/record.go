package model

import (
	"github.com/shopspring/decimal"

	"github.com/oceanrelay/vesselplan/core/pricing"
)

// StateRecord is one surviving node in the DP frontier: a State plus the
// cumulative cost/time to reach it and the backpointer needed to reconstruct
// the winning path. Frontier construction lives in core/solver;
// this type is declared here so core/solver, core/plan and core/diagnostic
// can all share it without an import cycle.
type StateRecord struct {
	State             State
	CumulativeCost    decimal.Decimal
	Action            Action
	ContainersSwapped int
	EnergyChargedKWh  float64
	DwellHours        float64
	StepCost          pricing.CostBreakdown
	Predecessor       *StateRecord
}

// Path walks Predecessor links back to the root and returns the records in
// forward (departure-to-arrival) order.
func (r *StateRecord) Path() []*StateRecord {
	var rev []*StateRecord
	for cur := r; cur != nil; cur = cur.Predecessor {
		rev = append(rev, cur)
	}
	out := make([]*StateRecord, len(rev))
	for i, rec := range rev {
		out[len(rev)-1-i] = rec
	}
	return out
}

// Dominates reports whether r Pareto-dominates other: no worse SoC, no
// worse (later) arrival time, no worse cost, and strictly better in at
// least one dimension. The dominance rule: (L_a >= L_b AND t_a <= t_b AND
// c_a <= c_b) with at least one strict inequality.
func (r *StateRecord) Dominates(other *StateRecord) bool {
	if r.State.SoCLevel < other.State.SoCLevel {
		return false
	}
	if r.State.ArrivalTime > other.State.ArrivalTime {
		return false
	}
	costCmp := r.CumulativeCost.Cmp(other.CumulativeCost)
	if costCmp > 0 {
		return false
	}
	return r.State.SoCLevel > other.State.SoCLevel ||
		r.State.ArrivalTime < other.State.ArrivalTime ||
		costCmp < 0
}
