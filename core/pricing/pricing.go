// Package pricing implements the seven-component hybrid pricing model:
// service fee, per-container swap cost, location premium,
// energy cost, degradation fee, peak-hour surcharge and subscription
// discount, plus hotelling (cold-ironing) billing for dwell time.
package pricing

import (
	"github.com/shopspring/decimal"
)

// Params holds the per-station monetary parameters of the seven-component
// hybrid pricing model. It lives in this package (rather than
// core/model) so core/model can embed it without creating an import cycle
// back into core/pricing.
type Params struct {
	BaseServiceFee         float64
	SwapCostPerContainer   float64
	LocationPremiumPerUnit float64
	EnergyCostPerKWh       float64
	DegradationFeePerKWh   float64
	PeakHourMultiplier     float64
	PeakStart              float64 // clock hour, [0,24)
	PeakEnd                float64 // clock hour, [0,24)
	SubscriptionDiscount   float64 // in [0,1)
	BaseChargingFee        float64
}

// QuoteInput describes one proposed action at a station.
type QuoteInput struct {
	Params            Params
	ContainersSwapped int
	EnergyKWh         float64 // billable energy per the SoC-based billing rule
	ChargedKWh        float64 // physical energy delivered by cable; >0 triggers BaseChargingFee
	ArrivalClockHour  float64 // mod 24, for peak-window lookup
	HotellingPowerKW  float64
	DwellHours        float64
}

// CostBreakdown itemizes the components of the pricing formula. All
// fields are exact decimal amounts.
type CostBreakdown struct {
	BaseServiceFee    decimal.Decimal
	SwapCost          decimal.Decimal
	LocationPremium   decimal.Decimal
	EnergyCost        decimal.Decimal
	ChargingFee       decimal.Decimal // flat fee for using a charging cable at all, zero for a pure swap
	DegradationFee    decimal.Decimal
	PeakSurcharge     decimal.Decimal // components*(peak_mult-1), zero outside peak window
	SubscriptionSaved decimal.Decimal // amount subtracted by the discount, reported for transparency
	HotellingCost     decimal.Decimal
	Total             decimal.Decimal
}

// Quote computes the total monetary cost of an action exactly per the
// formula:
//
//	components = base_service_fee + swap_cost_per_container*k + location_premium_per_container*k
//	           + energy_cost_per_kwh*e + degradation_fee_per_kwh*e + base_charging_fee (if charged)
//	peak_mult  = peak_hour_multiplier if t in peak window else 1.0
//	subtotal   = components * peak_mult
//	cost       = subtotal*(1-subscription_discount) + hotelling_power*dwell_hours*energy_cost_per_kwh
func Quote(in QuoteInput) CostBreakdown {
	p := in.Params
	k := decimal.NewFromInt(int64(in.ContainersSwapped))
	e := decimal.NewFromFloat(in.EnergyKWh)

	baseFee := decimal.NewFromFloat(p.BaseServiceFee)
	swapCost := decimal.NewFromFloat(p.SwapCostPerContainer).Mul(k)
	locationPremium := decimal.NewFromFloat(p.LocationPremiumPerUnit).Mul(k)
	energyCost := decimal.NewFromFloat(p.EnergyCostPerKWh).Mul(e)
	degradationFee := decimal.NewFromFloat(p.DegradationFeePerKWh).Mul(e)
	chargingFee := decimal.Zero
	if in.ChargedKWh > 0 {
		chargingFee = decimal.NewFromFloat(p.BaseChargingFee)
	}

	components := baseFee.Add(swapCost).Add(locationPremium).Add(energyCost).Add(degradationFee).Add(chargingFee)

	peakMult := decimal.NewFromFloat(1.0)
	inPeak := InPeakWindow(in.ArrivalClockHour, p.PeakStart, p.PeakEnd)
	if inPeak {
		peakMult = decimal.NewFromFloat(p.PeakHourMultiplier)
	}
	subtotal := components.Mul(peakMult)
	peakSurcharge := subtotal.Sub(components)

	discount := decimal.NewFromFloat(p.SubscriptionDiscount)
	one := decimal.NewFromInt(1)
	discounted := subtotal.Mul(one.Sub(discount))
	subscriptionSaved := subtotal.Sub(discounted)

	hotellingEnergy := decimal.NewFromFloat(in.HotellingPowerKW).Mul(decimal.NewFromFloat(in.DwellHours))
	hotellingCost := hotellingEnergy.Mul(decimal.NewFromFloat(p.EnergyCostPerKWh))

	total := discounted.Add(hotellingCost)

	return CostBreakdown{
		BaseServiceFee:    baseFee,
		SwapCost:          swapCost,
		LocationPremium:   locationPremium,
		EnergyCost:        energyCost,
		ChargingFee:       chargingFee,
		DegradationFee:    degradationFee,
		PeakSurcharge:     peakSurcharge,
		SubscriptionSaved: subscriptionSaved,
		HotellingCost:     hotellingCost,
		Total:             total,
	}
}

// InPeakWindow reports whether clock hour t falls in [peakStart, peakEnd),
// handling midnight wraparound when peakStart > peakEnd.
// A window with peakStart == peakEnd never matches (degenerate "no peak").
func InPeakWindow(t, peakStart, peakEnd float64) bool {
	if peakStart == peakEnd {
		return false
	}
	tm := modf24(t)
	if peakStart < peakEnd {
		return tm >= peakStart && tm < peakEnd
	}
	return tm >= peakStart || tm < peakEnd
}

func modf24(t float64) float64 {
	m := t
	for m < 0 {
		m += 24
	}
	for m >= 24 {
		m -= 24
	}
	return m
}

// SwapEnergyKWh implements the SoC-based billing rule: swapping k
// containers whose returned charge sums to
// residualKWh replaces each with a full container of capacity
// containerCapacityKWh, billing only the delta.
func SwapEnergyKWh(k int, residualKWh, containerCapacityKWh float64) float64 {
	if k <= 0 {
		return 0
	}
	total := float64(k)*containerCapacityKWh - residualKWh
	if total < 0 {
		return 0
	}
	return total
}
