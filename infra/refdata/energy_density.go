package refdata

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// EnergyDensityTable looks up battery chemistry energy density in Wh/kg,
// implementing model.EnergyDensityLookup.
type EnergyDensityTable struct {
	whPerKg map[string]float64
}

// NewDefaultEnergyDensityTable returns the built-in chemistry table.
func NewDefaultEnergyDensityTable() *EnergyDensityTable {
	return &EnergyDensityTable{whPerKg: defaultEnergyDensityTable()}
}

// LoadEnergyDensityTable reads a JSON override of the form
// {"lfp": 140, "nmc": 220, ...}. An empty path returns the built-in default.
func LoadEnergyDensityTable(path string) (*EnergyDensityTable, error) {
	if path == "" {
		return NewDefaultEnergyDensityTable(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("refdata: read energy density table: %w", err)
	}
	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("refdata: parse energy density table: %w", err)
	}
	return &EnergyDensityTable{whPerKg: raw}, nil
}

// EnergyDensityWhPerKg implements model.EnergyDensityLookup.
func (t *EnergyDensityTable) EnergyDensityWhPerKg(chemistry string) (float64, error) {
	key := strings.ToLower(strings.TrimSpace(chemistry))
	v, ok := t.whPerKg[key]
	if !ok {
		return 0, fmt.Errorf("refdata: unknown battery chemistry %q", chemistry)
	}
	return v, nil
}

func defaultEnergyDensityTable() map[string]float64 {
	return map[string]float64{
		"lfp":        140,
		"nmc":        220,
		"nca":        250,
		"lto":        75,
		"lead_acid":  35,
		"solid_state": 400,
	}
}
