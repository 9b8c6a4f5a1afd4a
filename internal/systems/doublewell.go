package systems

import (
	"math"

	"github.com/san-kum/ldsim/internal/ode"
)

// DoubleWell models a particle in a bistable potential well.
type DoubleWell struct {
	A, B, Mass, Damping float64
}

func NewDoubleWell() *DoubleWell {
	return &DoubleWell{A: 1.0, B: 1.0, Mass: 1.0, Damping: 0.0}
}

func (d *DoubleWell) Dim() int { return 2 }

func (d *DoubleWell) Derive(s ode.State, _ ode.Params, _ float64) ode.State {
	if len(s) < 2 {
		return make(ode.State, 2)
	}
	x, v := s[0], s[1]
	return ode.State{v, (-4*d.A*x*(x*x-d.B) - d.Damping*v) / d.Mass}
}

func (d *DoubleWell) DefaultState() ode.State { return ode.State{math.Sqrt(d.B) + 0.1, 0} }

func (d *DoubleWell) Energy(s ode.State) float64 {
	if len(s) < 2 {
		return 0
	}
	x, v := s[0], s[1]
	return 0.5*d.Mass*v*v + d.A*math.Pow(x*x-d.B, 2)
}

func (d *DoubleWell) GetParams() map[string]float64 {
	return map[string]float64{"A": d.A, "B": d.B, "mass": d.Mass, "damping": d.Damping}
}

func (d *DoubleWell) SetParam(n string, v float64) error {
	switch n {
	case "A":
		d.A = v
	case "B":
		d.B = v
	case "mass":
		d.Mass = v
	case "damping":
		d.Damping = v
	}
	return nil
}
