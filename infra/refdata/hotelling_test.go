package refdata

import "testing"

func TestHotellingPowerKW_KnownBrackets(t *testing.T) {
	tbl := NewDefaultHotellingTable()
	cases := []struct {
		vesselType string
		gt         float64
		want       float64
	}{
		{"Container vessels", 20000, 1665},
		{"cargo_container", 6000, 556},
		{"Cruise Ship", 149, 77},
		{"Ferry", 999999, 2900},
	}
	for _, c := range cases {
		got, err := tbl.HotellingPowerKW(c.vesselType, c.gt)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.vesselType, err)
		}
		if got != c.want {
			t.Errorf("%s at %v GT: got %v, want %v", c.vesselType, c.gt, got, c.want)
		}
	}
}

func TestHotellingPowerKW_UnknownVesselTypeFallsBack(t *testing.T) {
	tbl := NewDefaultHotellingTable()
	got, err := tbl.HotellingPowerKW("submarine", 5000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 200 {
		t.Errorf("expected the not_identified bracket (200 kW), got %v", got)
	}
}

func TestHotellingPowerKW_NegativeTonnageRejected(t *testing.T) {
	tbl := NewDefaultHotellingTable()
	if _, err := tbl.HotellingPowerKW("ferry", -1); err == nil {
		t.Fatalf("expected an error for negative gross tonnage")
	}
}

func TestEnergyDensityWhPerKg_UnknownChemistry(t *testing.T) {
	tbl := NewDefaultEnergyDensityTable()
	if _, err := tbl.EnergyDensityWhPerKg("unobtainium"); err == nil {
		t.Fatalf("expected an error for an unknown chemistry")
	}
	v, err := tbl.EnergyDensityWhPerKg("LFP")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 140 {
		t.Errorf("expected 140 Wh/kg for LFP, got %v", v)
	}
}
