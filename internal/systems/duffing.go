package systems

import (
	"math"

	"github.com/san-kum/ldsim/internal/ode"
)

// Duffing is the periodically forced nonlinear oscillator
// x'' = -delta*x' - alpha*x - beta*x^3 + gamma*cos(omega*t).
type Duffing struct {
	Alpha, Beta, Delta, Gamma, Omega float64
}

func NewDuffing() *Duffing {
	return &Duffing{Alpha: -1.0, Beta: 1.0, Delta: 0.0, Gamma: 0.1, Omega: 1.0}
}

func (d *Duffing) Dim() int { return 2 }

func (d *Duffing) Derive(s ode.State, _ ode.Params, t float64) ode.State {
	if len(s) < 2 {
		return make(ode.State, 2)
	}
	x, v := s[0], s[1]
	return ode.State{v, -d.Delta*v - d.Alpha*x - d.Beta*x*x*x + d.Gamma*math.Cos(d.Omega*t)}
}

func (d *Duffing) DefaultState() ode.State { return ode.State{1.0, 0.0} }

func (d *Duffing) Energy(s ode.State) float64 {
	if len(s) < 2 {
		return 0
	}
	x, v := s[0], s[1]
	return 0.5*v*v + 0.5*d.Alpha*x*x + 0.25*d.Beta*x*x*x*x
}

func (d *Duffing) GetParams() map[string]float64 {
	return map[string]float64{"alpha": d.Alpha, "beta": d.Beta, "delta": d.Delta, "gamma": d.Gamma, "omega": d.Omega}
}

func (d *Duffing) SetParam(n string, v float64) error {
	switch n {
	case "alpha":
		d.Alpha = v
	case "beta":
		d.Beta = v
	case "delta":
		d.Delta = v
	case "gamma":
		d.Gamma = v
	case "omega":
		d.Omega = v
	}
	return nil
}
