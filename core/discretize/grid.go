// Package discretize defines the uniform SoC grid the DP solver runs on:
// continuous kWh values are floored (pessimistic rounding) onto grid
// indices so a schedule feasible on the grid is
// feasible in reality.
package discretize

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Level indexes a point on the SoC grid; the physical value is
// Level * step.
type Level int

// Grid is a uniform SoC grid over [0, capacity] with step StepKWh.
type Grid struct {
	CapacityKWh float64
	StepKWh     float64
	maxLevel    Level
}

// NewGrid builds a grid. stepKWh must be in (0, capacityKWh].
func NewGrid(capacityKWh, stepKWh float64) (Grid, error) {
	if capacityKWh <= 0 {
		return Grid{}, fmt.Errorf("discretize: capacity must be positive, got %v", capacityKWh)
	}
	if stepKWh <= 0 || stepKWh > capacityKWh {
		return Grid{}, fmt.Errorf("discretize: step %v must be in (0, capacity=%v]", stepKWh, capacityKWh)
	}
	maxLevel := Level(math.Floor(capacityKWh / stepKWh))
	return Grid{CapacityKWh: capacityKWh, StepKWh: stepKWh, maxLevel: maxLevel}, nil
}

// Levels returns the number of representable SoC levels, i.e. the size of
// {0, step, 2*step, ..., maxLevel*step}.
func (g Grid) Levels() int {
	return int(g.maxLevel) + 1
}

// MaxLevel is the grid index corresponding to full capacity (floored).
func (g Grid) MaxLevel() Level {
	return g.maxLevel
}

// Quantize floors a continuous kWh value onto the grid, clamped to
// [0, maxLevel]. Flooring is pessimistic: it never reports more charge than
// is physically present.
func (g Grid) Quantize(kwh float64) Level {
	if kwh <= 0 {
		return 0
	}
	l := Level(math.Floor(kwh / g.StepKWh))
	if l > g.maxLevel {
		l = g.maxLevel
	}
	return l
}

// QuantizeEnergy floors an energy delta (never negative by construction) the
// same way Quantize does, but is named separately because callers applying
// it to a billable/segment energy amount want the distinction documented at
// the call site: conservative rounding applies identically to both kWh
// readings and energy deltas.
func (g Grid) QuantizeEnergy(deltaKWh float64) Level {
	return g.Quantize(deltaKWh)
}

// KWh returns the physical SoC value, in kWh, of a grid level.
func (g Grid) KWh(l Level) float64 {
	return float64(l) * g.StepKWh
}

// Clamp restricts a level to [0, maxLevel].
func (g Grid) Clamp(l Level) Level {
	if l < 0 {
		return 0
	}
	if l > g.maxLevel {
		return g.maxLevel
	}
	return l
}

// MaxKWh returns the maximum achievable level among the supplied levels, in
// physical kWh, or 0 if levels is empty. Used by the diagnostic's
// best-achievable-SoC scan.
func (g Grid) MaxKWh(levels []Level) float64 {
	if len(levels) == 0 {
		return 0
	}
	vals := make([]float64, len(levels))
	for i, l := range levels {
		vals[i] = float64(l)
	}
	return float64(floats.Max(vals)) * g.StepKWh
}
