// Package plan extracts the materialized, successful journey itinerary from
// a winning DP backpointer chain.
package plan

import (
	"github.com/shopspring/decimal"

	"github.com/oceanrelay/vesselplan/core/discretize"
	"github.com/oceanrelay/vesselplan/core/model"
)

// Step is one station visit in the extracted plan.
type Step struct {
	StationID         string
	ArrivalTime       float64 // linear clock hours: departure hour plus elapsed hours
	ArrivalClockTime  float64 // ArrivalTime mod 24
	SoCArrivingKWh    float64
	Action            model.Action
	ContainersSwapped int
	EnergyChargedKWh  float64
	DwellHours        float64
	Cost              decimal.Decimal
}

// Plan is the successful solve result.
type Plan struct {
	ScenarioID        string
	TotalCost         decimal.Decimal
	TotalJourneyHours float64 // linear
	ArrivalClockTime  float64 // mod 24
	SwapCount         int
	Steps             []Step
}

// Extract walks the winning StateRecord's backpointer chain into a Plan,
// resolving each step's station identifier from scn by the StateRecord's
// StationIndex and converting SoC levels to kWh via grid. A StateRecord
// carries the action taken at the previous station, so each step's action,
// dwell and cost are read from the following record; the terminal step is
// idle at zero cost.
func Extract(scn model.Scenario, grid discretize.Grid, terminal *model.StateRecord) Plan {
	records := terminal.Path()

	p := Plan{ScenarioID: scn.ID}
	total := decimal.Zero
	swaps := 0

	for i, rec := range records {
		var stationID string
		if idx := rec.State.StationIndex; idx >= 0 && idx < len(scn.Stations) {
			stationID = scn.Stations[idx].ID
		}
		step := Step{
			StationID:        stationID,
			ArrivalTime:      rec.State.ArrivalTime,
			ArrivalClockTime: mod24(rec.State.ArrivalTime),
			SoCArrivingKWh:   grid.KWh(discretize.Level(rec.State.SoCLevel)),
			Action:           model.ActionIdle,
			Cost:             decimal.Zero,
		}
		if i+1 < len(records) {
			next := records[i+1]
			step.Action = next.Action
			step.ContainersSwapped = next.ContainersSwapped
			step.EnergyChargedKWh = next.EnergyChargedKWh
			step.DwellHours = next.DwellHours
			step.Cost = next.StepCost.Total
		}
		total = total.Add(rec.StepCost.Total)
		if rec.Action == model.ActionSwap || rec.Action == model.ActionSwapCharge {
			swaps++
		}
		p.Steps = append(p.Steps, step)
	}

	p.TotalCost = total
	p.SwapCount = swaps
	if n := len(records); n > 0 {
		last := records[n-1]
		p.TotalJourneyHours = last.State.ArrivalTime - scn.DepartureHour
		p.ArrivalClockTime = mod24(last.State.ArrivalTime)
	}
	return p
}

func mod24(t float64) float64 {
	m := t
	for m < 0 {
		m += 24
	}
	for m >= 24 {
		m -= 24
	}
	return m
}
