package config

import (
	"github.com/oceanrelay/vesselplan/core/model"
	"github.com/oceanrelay/vesselplan/infra/refdata"
)

// RefDataConfig points at optional JSON overrides of the built-in
// hotelling-power and battery-energy-density reference tables.
type RefDataConfig struct {
	HotellingTablePath    string `json:"hotelling_table_path"`
	EnergyDensityTablePath string `json:"energy_density_table_path"`
}

// Hotelling builds the model.HotellingLookup collaborator this
// configuration describes.
func (c RefDataConfig) Hotelling() (model.HotellingLookup, error) {
	return refdata.LoadHotellingTable(c.HotellingTablePath)
}

// EnergyDensity builds the model.EnergyDensityLookup collaborator this
// configuration describes.
func (c RefDataConfig) EnergyDensity() (model.EnergyDensityLookup, error) {
	return refdata.LoadEnergyDensityTable(c.EnergyDensityTablePath)
}
