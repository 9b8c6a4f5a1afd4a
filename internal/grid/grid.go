// Package grid holds ordered collections of initial conditions. The grid
// index is the sole mapping between a starting point and its position in
// the computed descriptor field.
package grid

import (
	"fmt"

	"github.com/san-kum/ldsim/internal/ode"
)

// Grid is an immutable, order-preserving collection of initial states.
type Grid struct {
	points []ode.State
	shape  []int
}

// FromStates copies the given states into a flat grid.
func FromStates(states []ode.State) Grid {
	points := make([]ode.State, len(states))
	for i, s := range states {
		points[i] = s.Clone()
	}
	return Grid{points: points, shape: []int{len(points)}}
}

// Axis is one dimension of a mesh: N evenly spaced values from Min to Max
// inclusive.
type Axis struct {
	Min, Max float64
	N        int
}

func (a Axis) values() []float64 {
	vals := make([]float64, a.N)
	if a.N == 1 {
		vals[0] = a.Min
		return vals
	}
	step := (a.Max - a.Min) / float64(a.N-1)
	for i := range vals {
		vals[i] = a.Min + float64(i)*step
	}
	return vals
}

// Mesh builds the Cartesian product of the axes in row-major order: the
// last axis varies fastest.
func Mesh(axes ...Axis) (Grid, error) {
	if len(axes) == 0 {
		return Grid{}, fmt.Errorf("grid: mesh needs at least one axis")
	}

	total := 1
	shape := make([]int, len(axes))
	for i, a := range axes {
		if a.N < 1 {
			return Grid{}, fmt.Errorf("grid: axis %d has %d points", i, a.N)
		}
		total *= a.N
		shape[i] = a.N
	}

	axisVals := make([][]float64, len(axes))
	for i, a := range axes {
		axisVals[i] = a.values()
	}

	points := make([]ode.State, total)
	for idx := 0; idx < total; idx++ {
		point := make(ode.State, len(axes))
		rem := idx
		for d := len(axes) - 1; d >= 0; d-- {
			point[d] = axisVals[d][rem%shape[d]]
			rem /= shape[d]
		}
		points[idx] = point
	}

	return Grid{points: points, shape: shape}, nil
}

func (g Grid) Len() int { return len(g.points) }

// Shape reports the per-axis point counts; a flat grid has shape [Len].
func (g Grid) Shape() []int {
	out := make([]int, len(g.shape))
	copy(out, g.shape)
	return out
}

// At returns a copy of the i-th initial state.
func (g Grid) At(i int) ode.State {
	return g.points[i].Clone()
}
