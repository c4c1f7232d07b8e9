package discretize

import "testing"

func TestNewGrid_Levels(t *testing.T) {
	g, err := NewGrid(100, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Levels() != 11 {
		t.Fatalf("expected 11 levels (0..100 step 10), got %d", g.Levels())
	}
}

func TestNewGrid_RejectsBadStep(t *testing.T) {
	if _, err := NewGrid(100, 0); err == nil {
		t.Fatalf("expected error for zero step")
	}
	if _, err := NewGrid(100, 200); err == nil {
		t.Fatalf("expected error for step exceeding capacity")
	}
}

func TestQuantize_FloorsConservatively(t *testing.T) {
	g, _ := NewGrid(100, 10)
	if l := g.Quantize(19.9); l != 1 {
		t.Fatalf("expected floor(19.9/10)=1, got %d", l)
	}
	if l := g.Quantize(20.0); l != 2 {
		t.Fatalf("expected floor(20/10)=2, got %d", l)
	}
	if l := g.Quantize(1000); l != g.MaxLevel() {
		t.Fatalf("expected clamp to max level")
	}
}

func TestKWhRoundTrip(t *testing.T) {
	g, _ := NewGrid(100, 5)
	l := g.Quantize(37)
	if got := g.KWh(l); got != 35 {
		t.Fatalf("expected floor to 35 kWh, got %v", got)
	}
}

func TestMaxKWh(t *testing.T) {
	g, _ := NewGrid(100, 10)
	got := g.MaxKWh([]Level{2, 7, 3})
	if got != 70 {
		t.Fatalf("expected max level 7 -> 70 kWh, got %v", got)
	}
	if got := g.MaxKWh(nil); got != 0 {
		t.Fatalf("expected 0 for empty levels, got %v", got)
	}
}
