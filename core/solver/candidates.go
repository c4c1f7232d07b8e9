package solver

import (
	"github.com/oceanrelay/vesselplan/core/discretize"
	"github.com/oceanrelay/vesselplan/core/model"
	"github.com/oceanrelay/vesselplan/core/pricing"
)

// candidate is one legal action evaluated at a station, before segment
// traversal to the next station.
type candidate struct {
	level             discretize.Level
	action            model.Action
	containersSwapped int
	energyChargedKWh  float64
	dwellHours        float64
	quote             pricing.QuoteInput
}

// swapRange returns the legal range of container counts k for a swap: when
// partial swaps are disallowed, only a full swap (k == count) is legal, and
// only if stock covers it; otherwise any k from 1 up to min(count, stock)
// is legal. ok is false when no swap of any size is legal.
func swapRange(count, stock int, partialAllowed bool) (minK, maxK int, ok bool) {
	if count <= 0 || stock <= 0 {
		return 0, 0, false
	}
	if !partialAllowed {
		if stock < count {
			return 0, 0, false
		}
		return count, count, true
	}
	maxK = count
	if stock < maxK {
		maxK = stock
	}
	return 1, maxK, true
}

// candidateActions enumerates every legal action at station, in a fixed
// deterministic order (idle, swap, charge, hybrid;
// swap counts and charge deltas ascending).
func candidateActions(scn model.Scenario, station model.Station, grid discretize.Grid, level discretize.Level) []candidate {
	socKWh := grid.KWh(level)
	capacity := scn.BatteryCapacityKWh
	var out []candidate

	out = append(out, candidate{
		level:  level,
		action: model.ActionIdle,
		quote:  pricing.QuoteInput{Params: station.Pricing},
	})

	if minK, maxK, ok := swapRange(station.ContainerCount, station.ChargedStock, station.PartialSwapAllowed); station.SwapAllowed && ok {
		for k := minK; k <= maxK; k++ {
			residualKWh := socKWh * float64(k) / float64(station.ContainerCount)
			billableEnergy := pricing.SwapEnergyKWh(k, residualKWh, station.ContainerCapacityKWh)
			newSoC := socKWh + billableEnergy
			if newSoC > capacity {
				newSoC = capacity
			}
			out = append(out, candidate{
				level:             grid.Quantize(newSoC),
				action:            model.ActionSwap,
				containersSwapped: k,
				dwellHours:        station.SwapTimePerContainer * float64(k),
				quote: pricing.QuoteInput{
					Params:            station.Pricing,
					ContainersSwapped: k,
					EnergyKWh:         billableEnergy,
				},
			})
		}
	}

	if station.ChargingAllowed && station.ChargingPowerKW > 0 {
		headroom := capacity - socKWh
		for delta := grid.StepKWh; delta <= headroom+1e-9; delta += grid.StepKWh {
			d := delta
			if d > headroom {
				d = headroom
			}
			chargeTime := d / station.ChargingPowerKW
			out = append(out, candidate{
				level:            grid.Quantize(socKWh + d),
				action:           model.ActionCharge,
				energyChargedKWh: d,
				dwellHours:       chargeTime,
				quote: pricing.QuoteInput{
					Params:     station.Pricing,
					EnergyKWh:  d,
					ChargedKWh: d,
				},
			})
		}
	}

	minK, maxK, swapOK := swapRange(station.ContainerCount, station.ChargedStock, station.PartialSwapAllowed)
	if scn.AllowHybridSwapAndCharge && station.SwapAllowed && station.ChargingAllowed &&
		station.ChargingPowerKW > 0 && swapOK {
		for k := minK; k <= maxK; k++ {
			residualKWh := socKWh * float64(k) / float64(station.ContainerCount)
			swapEnergy := pricing.SwapEnergyKWh(k, residualKWh, station.ContainerCapacityKWh)
			socAfterSwap := socKWh + swapEnergy
			if socAfterSwap > capacity {
				socAfterSwap = capacity
			}
			headroom := capacity - socAfterSwap
			if headroom < 1e-9 {
				continue
			}
			for delta := grid.StepKWh; delta <= headroom+1e-9; delta += grid.StepKWh {
				d := delta
				if d > headroom {
					d = headroom
				}
				chargeTime := d / station.ChargingPowerKW
				out = append(out, candidate{
					level:             grid.Quantize(socAfterSwap + d),
					action:            model.ActionSwapCharge,
					containersSwapped: k,
					energyChargedKWh:  d,
					dwellHours:        station.SwapTimePerContainer*float64(k) + chargeTime,
					quote: pricing.QuoteInput{
						Params:            station.Pricing,
						ContainersSwapped: k,
						EnergyKWh:         swapEnergy + d,
						ChargedKWh:        d,
					},
				})
			}
		}
	}

	return out
}
