// Package refdata provides static reference-data collaborators for
// core/model's HotellingLookup and EnergyDensityLookup interfaces: average
// cold-ironing hotelling power by vessel type and gross tonnage, and battery
// chemistry energy density, loaded from a built-in table or an optional
// override JSON file.
package refdata

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// gtRange is a half-open [MinGT, MaxGT) gross-tonnage bracket, mirroring the
// original cold-ironing reference table's GTRange.
type gtRange struct {
	MinGT   float64 `json:"min_gt"`
	MaxGT   float64 `json:"max_gt"` // 0 means unbounded (the last bracket)
	PowerKW float64 `json:"power_kw"`
}

func (r gtRange) contains(gt float64) bool {
	if r.MaxGT <= 0 {
		return gt >= r.MinGT
	}
	return gt >= r.MinGT && gt < r.MaxGT
}

// HotellingTable looks up average onboard hotelling power by vessel type and
// gross tonnage, per bracket, ported from empirical cold-ironing
// measurements (container vessels, cruise ships, ferries, tankers, and so
// on).
type HotellingTable struct {
	byType map[string][]gtRange
}

// NewDefaultHotellingTable returns the built-in reference table.
func NewDefaultHotellingTable() *HotellingTable {
	return &HotellingTable{byType: defaultHotellingTable()}
}

// LoadHotellingTable reads a JSON override of the form
// {"container_vessels": [{"min_gt":0,"max_gt":150,"power_kw":0}, ...], ...}.
// An empty path returns the built-in default table unchanged.
func LoadHotellingTable(path string) (*HotellingTable, error) {
	if path == "" {
		return NewDefaultHotellingTable(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("refdata: read hotelling table: %w", err)
	}
	var raw map[string][]gtRange
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("refdata: parse hotelling table: %w", err)
	}
	for vesselType, ranges := range raw {
		sort.Slice(ranges, func(i, j int) bool { return ranges[i].MinGT < ranges[j].MinGT })
		raw[vesselType] = ranges
	}
	return &HotellingTable{byType: raw}, nil
}

// notIdentified is the fallback bracket set for an unrecognized vessel type.
var notIdentified = []gtRange{
	{MinGT: 0, MaxGT: 150, PowerKW: 0},
	{MinGT: 150, MaxGT: 0, PowerKW: 200},
}

// HotellingPowerKW implements model.HotellingLookup. Vessel type matching is
// case-insensitive and space/slash-insensitive, matching the original
// lookup's normalization.
func (t *HotellingTable) HotellingPowerKW(vesselType string, grossTonnage float64) (float64, error) {
	if grossTonnage < 0 {
		return 0, fmt.Errorf("refdata: gross tonnage must be non-negative, got %v", grossTonnage)
	}
	key := normalizeVesselType(vesselType)
	ranges, ok := t.byType[key]
	if !ok {
		ranges = notIdentified
	}
	for _, r := range ranges {
		if r.contains(grossTonnage) {
			return r.PowerKW, nil
		}
	}
	if len(ranges) > 0 {
		return ranges[len(ranges)-1].PowerKW, nil
	}
	return 0, nil
}

func normalizeVesselType(vesselType string) string {
	s := strings.ToLower(vesselType)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "/", "_")
	switch s {
	case "cargo_container":
		return "container_vessels"
	case "cruise_ship":
		return "cruise_ships"
	case "general_cargo", "bulk_carrier", "ro_ro":
		return "cargo_vessels"
	default:
		return s
	}
}

func defaultHotellingTable() map[string][]gtRange {
	return map[string][]gtRange{
		"container_vessels": {
			{0, 150, 0}, {150, 5000, 257}, {5000, 10000, 556}, {10000, 20000, 1295},
			{20000, 25000, 1665}, {25000, 50000, 2703}, {50000, 100000, 4291}, {100000, 0, 5717},
		},
		"auto_carrier": {
			{0, 150, 0}, {150, 5000, 500}, {5000, 10000, 1000}, {10000, 20000, 2000},
			{20000, 25000, 2000}, {25000, 50000, 5000}, {50000, 100000, 5000}, {100000, 0, 5000},
		},
		"cruise_ships": {
			{0, 150, 77}, {150, 5000, 189}, {5000, 10000, 986}, {10000, 20000, 1997},
			{20000, 25000, 2467}, {25000, 50000, 3472}, {50000, 100000, 4492}, {100000, 0, 6500},
		},
		"chemical_tankers": {
			{0, 150, 0}, {150, 5000, 0}, {5000, 10000, 1422}, {10000, 20000, 1641},
			{20000, 25000, 1754}, {25000, 50000, 1577}, {50000, 100000, 2815}, {100000, 0, 3000},
		},
		"cargo_vessels": {
			{0, 150, 0}, {150, 5000, 1091}, {5000, 10000, 809}, {10000, 20000, 1537},
			{20000, 25000, 1222}, {25000, 50000, 1405}, {50000, 100000, 1637}, {100000, 0, 2000},
		},
		"crude_oil_tanker": {
			{0, 150, 0}, {150, 5000, 0}, {5000, 10000, 1204}, {10000, 20000, 2624},
			{20000, 25000, 1355}, {25000, 50000, 1594}, {50000, 100000, 1328}, {100000, 0, 2694},
		},
		"ferry": {
			{0, 150, 0}, {150, 5000, 355}, {5000, 10000, 670}, {10000, 20000, 996},
			{20000, 25000, 1350}, {25000, 50000, 2431}, {50000, 100000, 2888}, {100000, 0, 2900},
		},
		"offshore_supply": {
			{0, 150, 0}, {150, 5000, 1000}, {5000, 10000, 2000}, {10000, 20000, 2000},
			{20000, 25000, 2000}, {25000, 50000, 2000}, {50000, 100000, 2000}, {100000, 0, 2000},
		},
		"service_vessels": {
			{0, 150, 75}, {150, 5000, 382}, {5000, 10000, 990}, {10000, 20000, 2383},
			{20000, 25000, 2000}, {25000, 50000, 2000}, {50000, 100000, 2000}, {100000, 0, 2000},
		},
		"not_identified": notIdentified,
	}
}
