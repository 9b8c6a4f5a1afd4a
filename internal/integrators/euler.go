package integrators

import "github.com/san-kum/ldsim/internal/ode"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(f ode.VectorField, x ode.State, p ode.Params, t, dt float64) ode.State {
	dx := f.Derive(x, p, t)
	result := make(ode.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
