package integrators

import (
	"fmt"

	"github.com/san-kum/ldsim/internal/ode"
)

// Stepper advances a state by one timestep. dt may be negative when the
// problem span is decreasing.
type Stepper interface {
	Step(f ode.VectorField, x ode.State, p ode.Params, t, dt float64) ode.State
}

// AdaptiveStepper additionally estimates local error and proposes the next
// timestep.
type AdaptiveStepper interface {
	Stepper
	StepAdaptive(f ode.VectorField, x ode.State, p ode.Params, t, dt, tol float64) (ode.State, float64, error)
}

// New returns a solver by name: "euler", "rk4", "rk45", "verlet", or
// "leapfrog".
func New(name string) (ode.Solver, error) {
	switch name {
	case "euler":
		return NewSolver(NewEuler()), nil
	case "rk4":
		return NewSolver(NewRK4()), nil
	case "rk45":
		return NewSolver(NewRK45()), nil
	case "verlet":
		return NewSolver(NewVerlet()), nil
	case "leapfrog":
		return NewSolver(NewLeapfrog()), nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
}
