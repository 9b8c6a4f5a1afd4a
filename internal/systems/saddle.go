package systems

import "github.com/san-kum/ldsim/internal/ode"

// Saddle is the linear system dx/dt = lambda*x, dy/dt = -mu*y. Its stable
// and unstable manifolds are the coordinate axes, which makes it the
// standard smoke test for descriptor fields.
type Saddle struct {
	Lambda, Mu float64
}

func NewSaddle() *Saddle {
	return &Saddle{Lambda: 1.0, Mu: 1.0}
}

func (s *Saddle) Dim() int { return 2 }

func (s *Saddle) Derive(x ode.State, _ ode.Params, _ float64) ode.State {
	if len(x) < 2 {
		return make(ode.State, 2)
	}
	return ode.State{s.Lambda * x[0], -s.Mu * x[1]}
}

func (s *Saddle) DefaultState() ode.State { return ode.State{0.1, 0.1} }

func (s *Saddle) GetParams() map[string]float64 {
	return map[string]float64{"lambda": s.Lambda, "mu": s.Mu}
}

func (s *Saddle) SetParam(n string, v float64) error {
	switch n {
	case "lambda":
		s.Lambda = v
	case "mu":
		s.Mu = v
	}
	return nil
}
