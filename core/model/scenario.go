// Package model defines the closed record types the solver operates on:
// the immutable Scenario and its ordered Stations, and the pricing
// parameters attached to each station.
package model

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/oceanrelay/vesselplan/core/pricing"
)

// CurrentSign describes the water-current direction on an outgoing segment
// relative to the vessel's heading.
type CurrentSign int

const (
	CurrentUpstream   CurrentSign = -1 // resistance, multiplier 1.25
	CurrentSlack      CurrentSign = 0  // multiplier 1.0
	CurrentDownstream CurrentSign = 1  // aid, multiplier 0.75
)

// OperatingHours is a half-open clock-time window [Open, Close) in
// [0,24). A zero-value OperatingHours with Open==Close==0 means "24h, no
// restriction" when Set is false.
type OperatingHours struct {
	Open  float64
	Close float64
	Set   bool
}

// Station is one waypoint on the fixed route. DistanceToNext and
// CurrentSign describe the outgoing segment to the next station; they are
// unused (and ignored) for the terminal station.
type Station struct {
	ID                   string
	DistanceToNext       float64
	CurrentSign          CurrentSign
	SwapAllowed          bool
	ChargingAllowed      bool
	PartialSwapAllowed   bool
	ContainerCount       int
	ContainerCapacityKWh float64
	ChargedStock         int
	ChargingPowerKW      float64
	HotellingPowerKW     float64
	OperatingHours       OperatingHours
	QueueTimeHr          float64
	SwapTimePerContainer float64
	MaxDwellHr           float64
	Pricing              pricing.Params
}

// Scenario is the immutable input to a solve: the ordered station sequence
// plus vessel and battery parameters. Construct one only via NewScenario,
// which enforces every contradiction a ConfigurationError must report.
type Scenario struct {
	ID                        string
	Stations                  []Station
	BatteryCapacityKWh        float64
	MinSoCKWh                 float64
	InitialSoCKWh             float64
	FinalSoCRequiredKWh       float64
	DepartureHour             float64
	CruiseSpeed               float64
	BaseConsumptionPerUnit    float64
	SoCStepKWh                float64
	AllowHybridSwapAndCharge  bool
}

// ConfigurationError reports a self-contradictory Scenario. It is always
// returned by NewScenario before any solve work begins.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// NewScenario validates inputs and returns a Scenario, or a
// *ConfigurationError describing the first contradiction found.
func NewScenario(
	stations []Station,
	batteryCapacityKWh, minSoCKWh, initialSoCKWh, finalSoCRequiredKWh,
	departureHour, cruiseSpeed, baseConsumptionPerUnit, socStepKWh float64,
	allowHybrid bool,
) (Scenario, error) {
	scn := Scenario{
		ID:                       uuid.NewString(),
		Stations:                 stations,
		BatteryCapacityKWh:       batteryCapacityKWh,
		MinSoCKWh:                minSoCKWh,
		InitialSoCKWh:            initialSoCKWh,
		FinalSoCRequiredKWh:      finalSoCRequiredKWh,
		DepartureHour:            departureHour,
		CruiseSpeed:              cruiseSpeed,
		BaseConsumptionPerUnit:   baseConsumptionPerUnit,
		SoCStepKWh:               socStepKWh,
		AllowHybridSwapAndCharge: allowHybrid,
	}
	if err := scn.validate(); err != nil {
		return Scenario{}, err
	}
	return scn, nil
}

func cfgErr(format string, args ...any) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// Validate re-checks every invariant NewScenario enforces. Callers that
// assemble a Scenario without NewScenario (e.g. deserializing a config file)
// should call this before handing the Scenario to the solver.
func (s Scenario) Validate() error {
	return s.validate()
}

func (s Scenario) validate() error {
	if len(s.Stations) == 0 {
		return cfgErr("station sequence must not be empty")
	}
	if s.BatteryCapacityKWh <= 0 {
		return cfgErr("battery capacity must be positive")
	}
	if s.MinSoCKWh < 0 {
		return cfgErr("minimum SoC must be non-negative")
	}
	if s.MinSoCKWh > s.BatteryCapacityKWh {
		return cfgErr("minimum SoC (%.3f) exceeds capacity (%.3f)", s.MinSoCKWh, s.BatteryCapacityKWh)
	}
	if s.InitialSoCKWh < s.MinSoCKWh || s.InitialSoCKWh > s.BatteryCapacityKWh {
		return cfgErr("initial SoC (%.3f) outside [min_soc, capacity] = [%.3f, %.3f]", s.InitialSoCKWh, s.MinSoCKWh, s.BatteryCapacityKWh)
	}
	if s.FinalSoCRequiredKWh < s.MinSoCKWh || s.FinalSoCRequiredKWh > s.BatteryCapacityKWh {
		return cfgErr("final SoC requirement (%.3f) outside [min_soc, capacity] = [%.3f, %.3f]", s.FinalSoCRequiredKWh, s.MinSoCKWh, s.BatteryCapacityKWh)
	}
	if s.DepartureHour < 0 || s.DepartureHour >= 24 {
		return cfgErr("departure hour (%.3f) must be in [0,24)", s.DepartureHour)
	}
	if s.CruiseSpeed <= 0 {
		return cfgErr("cruise speed must be positive")
	}
	if s.BaseConsumptionPerUnit <= 0 {
		return cfgErr("base consumption coefficient must be positive")
	}
	if s.SoCStepKWh <= 0 || s.SoCStepKWh > s.BatteryCapacityKWh {
		return cfgErr("SoC step (%.3f) must be in (0, capacity]", s.SoCStepKWh)
	}
	for i, st := range s.Stations {
		if st.ID == "" {
			return cfgErr("station %d: id must not be empty", i)
		}
		last := i == len(s.Stations)-1
		if !last {
			if st.DistanceToNext < 0 {
				return cfgErr("station %s: distance to next must be non-negative", st.ID)
			}
			if st.CurrentSign < -1 || st.CurrentSign > 1 {
				return cfgErr("station %s: current sign must be -1, 0 or 1", st.ID)
			}
		}
		if st.ContainerCount < 0 {
			return cfgErr("station %s: container count must be non-negative", st.ID)
		}
		if st.SwapAllowed {
			if st.ContainerCount <= 0 {
				return cfgErr("station %s: swap allowed but container count is zero", st.ID)
			}
			if st.ContainerCapacityKWh <= 0 {
				return cfgErr("station %s: swap allowed but container capacity is zero", st.ID)
			}
			if st.ChargedStock < 0 {
				return cfgErr("station %s: charged stock must be non-negative", st.ID)
			}
		}
		if st.ChargingAllowed && st.ChargingPowerKW <= 0 {
			return cfgErr("station %s: charging allowed but charging power is zero", st.ID)
		}
		if st.HotellingPowerKW < 0 {
			return cfgErr("station %s: hotelling power must be non-negative", st.ID)
		}
		if st.QueueTimeHr < 0 {
			return cfgErr("station %s: queue time must be non-negative", st.ID)
		}
		if st.SwapTimePerContainer < 0 {
			return cfgErr("station %s: swap time per container must be non-negative", st.ID)
		}
		if st.MaxDwellHr < 0 {
			return cfgErr("station %s: max dwell time must be non-negative", st.ID)
		}
		if st.OperatingHours.Set {
			if st.OperatingHours.Open < 0 || st.OperatingHours.Open >= 24 {
				return cfgErr("station %s: operating-hours open must be in [0,24)", st.ID)
			}
			if st.OperatingHours.Close < 0 || st.OperatingHours.Close > 24 {
				return cfgErr("station %s: operating-hours close must be in [0,24]", st.ID)
			}
		}
		p := st.Pricing
		if p.SubscriptionDiscount < 0 || p.SubscriptionDiscount >= 1 {
			return cfgErr("station %s: subscription discount must be in [0,1)", st.ID)
		}
		if p.PeakHourMultiplier < 0 {
			return cfgErr("station %s: peak hour multiplier must be non-negative", st.ID)
		}
		if p.BaseServiceFee < 0 || p.SwapCostPerContainer < 0 || p.LocationPremiumPerUnit < 0 ||
			p.EnergyCostPerKWh < 0 || p.DegradationFeePerKWh < 0 || p.BaseChargingFee < 0 {
			return cfgErr("station %s: monetary pricing parameters must be non-negative", st.ID)
		}
	}
	return nil
}

// InWindow reports whether clock hour t (which may be >= 24 for multi-day
// journeys) falls inside the operating-hour window, evaluated modulo 24.
// Absent operating hours always admit.
func (h OperatingHours) InWindow(t float64) bool {
	if !h.Set {
		return true
	}
	tm := mod24(t)
	if h.Open <= h.Close {
		return tm >= h.Open && tm < h.Close
	}
	return tm >= h.Open || tm < h.Close
}

func mod24(t float64) float64 {
	m := mod(t, 24)
	if m < 0 {
		m += 24
	}
	return m
}

func mod(a, b float64) float64 {
	q := int64(a / b)
	return a - float64(q)*b
}
