package config

import (
	"github.com/oceanrelay/vesselplan/core/model"
	"github.com/oceanrelay/vesselplan/core/pricing"
)

// PricingConfig is the on-disk shape of pricing.Params.
type PricingConfig struct {
	BaseServiceFee         float64 `json:"base_service_fee"`
	SwapCostPerContainer   float64 `json:"swap_cost_per_container"`
	LocationPremiumPerUnit float64 `json:"location_premium_per_unit"`
	EnergyCostPerKWh       float64 `json:"energy_cost_per_kwh"`
	DegradationFeePerKWh   float64 `json:"degradation_fee_per_kwh"`
	PeakHourMultiplier     float64 `json:"peak_hour_multiplier"`
	PeakStart              float64 `json:"peak_start"`
	PeakEnd                float64 `json:"peak_end"`
	SubscriptionDiscount   float64 `json:"subscription_discount"`
	BaseChargingFee        float64 `json:"base_charging_fee"`
}

func (c PricingConfig) toParams() pricing.Params {
	return pricing.Params{
		BaseServiceFee:         c.BaseServiceFee,
		SwapCostPerContainer:   c.SwapCostPerContainer,
		LocationPremiumPerUnit: c.LocationPremiumPerUnit,
		EnergyCostPerKWh:       c.EnergyCostPerKWh,
		DegradationFeePerKWh:   c.DegradationFeePerKWh,
		PeakHourMultiplier:     c.PeakHourMultiplier,
		PeakStart:              c.PeakStart,
		PeakEnd:                c.PeakEnd,
		SubscriptionDiscount:   c.SubscriptionDiscount,
		BaseChargingFee:        c.BaseChargingFee,
	}
}

// OperatingHoursConfig is the on-disk shape of model.OperatingHours.
type OperatingHoursConfig struct {
	Open  float64 `json:"open"`
	Close float64 `json:"close"`
	Set   bool    `json:"set"`
}

// StationConfig is the on-disk shape of model.Station. VesselType and
// GrossTonnage are resolved against RefDataConfig's hotelling lookup to
// derive HotellingPowerKW before the Station is handed to the solver, so an
// operator describes a vessel by type rather than a raw kW figure.
type StationConfig struct {
	ID                   string               `json:"id"`
	DistanceToNext       float64              `json:"distance_to_next"`
	CurrentSign          int                  `json:"current_sign"`
	SwapAllowed          bool                 `json:"swap_allowed"`
	ChargingAllowed      bool                 `json:"charging_allowed"`
	PartialSwapAllowed   bool                 `json:"partial_swap_allowed"`
	ContainerCount       int                  `json:"container_count"`
	ContainerCapacityKWh float64              `json:"container_capacity_kwh"`
	ChargedStock         int                  `json:"charged_stock"`
	ChargingPowerKW      float64              `json:"charging_power_kw"`
	VesselType           string               `json:"vessel_type"`
	GrossTonnage         float64              `json:"gross_tonnage"`
	OperatingHours       OperatingHoursConfig `json:"operating_hours"`
	QueueTimeHr          float64              `json:"queue_time_hr"`
	SwapTimePerContainer float64              `json:"swap_time_per_container"`
	MaxDwellHr           float64              `json:"max_dwell_hr"`
	Pricing              PricingConfig        `json:"pricing"`
}

func (c StationConfig) toModel(hotelling model.HotellingLookup) (model.Station, error) {
	var hotellingPowerKW float64
	if c.VesselType != "" && hotelling != nil {
		kw, err := hotelling.HotellingPowerKW(c.VesselType, c.GrossTonnage)
		if err != nil {
			return model.Station{}, err
		}
		hotellingPowerKW = kw
	}
	return model.Station{
		ID:                   c.ID,
		DistanceToNext:       c.DistanceToNext,
		CurrentSign:          model.CurrentSign(c.CurrentSign),
		SwapAllowed:          c.SwapAllowed,
		ChargingAllowed:      c.ChargingAllowed,
		PartialSwapAllowed:   c.PartialSwapAllowed,
		ContainerCount:       c.ContainerCount,
		ContainerCapacityKWh: c.ContainerCapacityKWh,
		ChargedStock:         c.ChargedStock,
		ChargingPowerKW:      c.ChargingPowerKW,
		HotellingPowerKW:     hotellingPowerKW,
		OperatingHours: model.OperatingHours{
			Open:  c.OperatingHours.Open,
			Close: c.OperatingHours.Close,
			Set:   c.OperatingHours.Set,
		},
		QueueTimeHr:          c.QueueTimeHr,
		SwapTimePerContainer: c.SwapTimePerContainer,
		MaxDwellHr:           c.MaxDwellHr,
		Pricing:              c.Pricing.toParams(),
	}, nil
}

// ScenarioConfig is the on-disk shape of a model.Scenario: the route, the
// vessel's battery parameters, and the journey's timing constraints.
type ScenarioConfig struct {
	Stations                 []StationConfig `json:"stations"`
	BatteryCapacityKWh       float64         `json:"battery_capacity_kwh"`
	MinSoCKWh                float64         `json:"min_soc_kwh"`
	InitialSoCKWh            float64         `json:"initial_soc_kwh"`
	FinalSoCRequiredKWh      float64         `json:"final_soc_required_kwh"`
	DepartureHour            float64         `json:"departure_hour"`
	CruiseSpeed              float64         `json:"cruise_speed"`
	BaseConsumptionPerUnit   float64         `json:"base_consumption_per_unit"`
	SoCStepKWh               float64         `json:"soc_step_kwh"`
	AllowHybridSwapAndCharge bool            `json:"allow_hybrid_swap_and_charge"`
}

// ToScenario resolves every station's hotelling power against hotelling and
// constructs a model.Scenario, surfacing the first contradiction as a
// *model.ConfigurationError exactly as model.NewScenario would from
// in-process callers.
func (c ScenarioConfig) ToScenario(hotelling model.HotellingLookup) (model.Scenario, error) {
	stations := make([]model.Station, len(c.Stations))
	for i, sc := range c.Stations {
		st, err := sc.toModel(hotelling)
		if err != nil {
			return model.Scenario{}, err
		}
		stations[i] = st
	}
	return model.NewScenario(
		stations,
		c.BatteryCapacityKWh, c.MinSoCKWh, c.InitialSoCKWh, c.FinalSoCRequiredKWh,
		c.DepartureHour, c.CruiseSpeed, c.BaseConsumptionPerUnit, c.SoCStepKWh,
		c.AllowHybridSwapAndCharge,
	)
}
