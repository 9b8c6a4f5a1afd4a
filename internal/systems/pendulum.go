package systems

import (
	"math"

	"github.com/san-kum/ldsim/internal/ode"
)

// Pendulum is a damped pendulum in angle/angular-velocity coordinates.
type Pendulum struct {
	Mass    float64
	Length  float64
	Damping float64
	Gravity float64
}

func NewPendulum() *Pendulum {
	return &Pendulum{
		Mass:    1.0,
		Length:  1.0,
		Damping: 0.0,
		Gravity: 9.81,
	}
}

func (p *Pendulum) Dim() int { return 2 }

func (p *Pendulum) Derive(x ode.State, _ ode.Params, _ float64) ode.State {
	if len(x) < 2 {
		return make(ode.State, 2)
	}
	theta, omega := x[0], x[1]
	alpha := (-p.Damping*omega - p.Mass*p.Gravity*p.Length*math.Sin(theta)) / (p.Mass * p.Length * p.Length)
	return ode.State{omega, alpha}
}

func (p *Pendulum) DefaultState() ode.State { return ode.State{0.5, 0.0} }

func (p *Pendulum) Energy(x ode.State) float64 {
	if len(x) < 2 {
		return 0
	}
	v := p.Length * x[1]
	ke := 0.5 * p.Mass * v * v
	pe := p.Mass * p.Gravity * p.Length * (1.0 - math.Cos(x[0]))
	return ke + pe
}

func (p *Pendulum) GetParams() map[string]float64 {
	return map[string]float64{
		"mass":    p.Mass,
		"length":  p.Length,
		"damping": p.Damping,
		"gravity": p.Gravity,
	}
}

func (p *Pendulum) SetParam(n string, v float64) error {
	switch n {
	case "mass":
		p.Mass = v
	case "length":
		p.Length = v
	case "damping":
		p.Damping = v
	case "gravity":
		p.Gravity = v
	}
	return nil
}
