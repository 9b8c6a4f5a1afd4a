// Package quadrature integrates pointwise functions over sampled
// trajectories after the fact. It is the post-hoc counterpart to state
// augmentation: both must agree on the descriptor value within integrator
// tolerance.
package quadrature

import (
	"math"

	"github.com/san-kum/ldsim/internal/ode"
)

// Integrand is a scalar function evaluated along a trajectory sample:
// the trajectory's derivative, state, parameters, and time.
type Integrand func(dx, x ode.State, p ode.Params, t float64) float64

// Rule integrates an Integrand over a trajectory. The result is taken
// with a positive measure: a trajectory sampled with decreasing times
// yields the same value as its increasing-time mirror.
type Rule interface {
	Integrate(traj *ode.Trajectory, field ode.VectorField, p ode.Params, m Integrand) float64
}

// Trapezoid is the composite trapezoidal rule over the trajectory samples.
type Trapezoid struct{}

func NewTrapezoid() Trapezoid { return Trapezoid{} }

func (Trapezoid) Integrate(traj *ode.Trajectory, field ode.VectorField, p ode.Params, m Integrand) float64 {
	n := traj.Len()
	if n < 2 {
		return 0
	}

	vals := sampleIntegrand(traj, field, p, m)

	sum := 0.0
	for i := 1; i < n; i++ {
		h := math.Abs(traj.Times[i] - traj.Times[i-1])
		sum += 0.5 * h * (vals[i-1] + vals[i])
	}
	return sum
}

// Simpson is the composite Simpson rule. It needs uniformly spaced
// samples; with an odd trailing interval it falls back to a trapezoid
// for the last panel.
type Simpson struct{}

func NewSimpson() Simpson { return Simpson{} }

func (Simpson) Integrate(traj *ode.Trajectory, field ode.VectorField, p ode.Params, m Integrand) float64 {
	n := traj.Len()
	if n < 2 {
		return 0
	}
	if n == 2 {
		return Trapezoid{}.Integrate(traj, field, p, m)
	}

	vals := sampleIntegrand(traj, field, p, m)

	sum := 0.0
	i := 0
	for ; i+2 < n; i += 2 {
		h1 := math.Abs(traj.Times[i+1] - traj.Times[i])
		h2 := math.Abs(traj.Times[i+2] - traj.Times[i+1])
		sum += simpsonPanel(h1, h2, vals[i], vals[i+1], vals[i+2])
	}
	if i+1 < n {
		h := math.Abs(traj.Times[i+1] - traj.Times[i])
		sum += 0.5 * h * (vals[i] + vals[i+1])
	}
	return sum
}

// simpsonPanel integrates one two-interval panel, allowing mildly
// non-uniform spacing (the last adaptive steps of a solve).
func simpsonPanel(h1, h2, f0, f1, f2 float64) float64 {
	h := h1 + h2
	if h == 0 {
		return 0
	}
	c0 := h * (2*h1 - h2) / (6 * h1)
	c1 := h * h * h / (6 * h1 * h2)
	c2 := h * (2*h2 - h1) / (6 * h2)
	return c0*f0 + c1*f1 + c2*f2
}

func sampleIntegrand(traj *ode.Trajectory, field ode.VectorField, p ode.Params, m Integrand) []float64 {
	vals := make([]float64, traj.Len())
	for i, x := range traj.States {
		dx := field.Derive(x, p, traj.Times[i])
		vals[i] = m(dx, x, p, traj.Times[i])
	}
	return vals
}
