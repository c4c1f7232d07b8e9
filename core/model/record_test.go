package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func rec(soc int, arrival float64, cost int64) *StateRecord {
	return &StateRecord{
		State:          State{SoCLevel: soc, ArrivalTime: arrival},
		CumulativeCost: decimal.NewFromInt(cost),
	}
}

func TestDominates_StrictlyBetterInEveryDimension(t *testing.T) {
	a := rec(10, 5, 100)
	b := rec(8, 6, 120)
	if !a.Dominates(b) {
		t.Fatalf("expected a to dominate b")
	}
	if b.Dominates(a) {
		t.Fatalf("expected b to not dominate a")
	}
}

func TestDominates_EqualInEveryDimensionNeitherDominates(t *testing.T) {
	a := rec(10, 5, 100)
	b := rec(10, 5, 100)
	if a.Dominates(b) || b.Dominates(a) {
		t.Fatalf("expected neither identical record to dominate the other")
	}
}

func TestDominates_WorseInOneDimensionBreaksDominance(t *testing.T) {
	better := rec(10, 5, 100)
	worseSoC := rec(9, 5, 90) // lower SoC but cheaper: incomparable
	if better.Dominates(worseSoC) {
		t.Fatalf("lower-SoC, cheaper record should not be dominated")
	}
	if worseSoC.Dominates(better) {
		t.Fatalf("lower-SoC record should not dominate a higher-SoC one")
	}
}

func TestDominates_TieOnTwoDimensionsStrictOnThird(t *testing.T) {
	a := rec(10, 5, 90)
	b := rec(10, 5, 100)
	if !a.Dominates(b) {
		t.Fatalf("expected a to dominate b on cost alone, all else tied")
	}
}

func TestPath_WalksBackpointersInForwardOrder(t *testing.T) {
	root := rec(0, 0, 0)
	mid := &StateRecord{State: State{StationIndex: 1, SoCLevel: 5, ArrivalTime: 2}, CumulativeCost: decimal.NewFromInt(10), Predecessor: root}
	leaf := &StateRecord{State: State{StationIndex: 2, SoCLevel: 3, ArrivalTime: 4}, CumulativeCost: decimal.NewFromInt(20), Predecessor: mid}

	path := leaf.Path()
	if len(path) != 3 {
		t.Fatalf("expected a 3-element path, got %d", len(path))
	}
	if path[0] != root || path[1] != mid || path[2] != leaf {
		t.Fatalf("expected path in departure-to-arrival order")
	}
}
