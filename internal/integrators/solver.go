package integrators

import (
	"context"
	"math"

	"github.com/san-kum/ldsim/internal/ode"
)

// Solver drives a Stepper over a problem's span and records the sampled
// trajectory. It implements ode.Solver.
type Solver struct {
	stepper Stepper
}

func NewSolver(s Stepper) *Solver {
	return &Solver{stepper: s}
}

func (s *Solver) Solve(ctx context.Context, prob ode.Problem, cfg ode.Config) (*ode.Trajectory, error) {
	if prob.Span.Degenerate() {
		return nil, ode.ErrDegenerateSpan
	}
	if cfg.Dt <= 0 {
		cfg.Dt = ode.DefaultConfig().Dt
	}

	t := prob.Span.T0
	end := prob.Span.T1
	dt := math.Copysign(cfg.Dt, end-t)

	est := int(prob.Span.Length()/cfg.Dt) + 2
	traj := &ode.Trajectory{
		Times:  make([]float64, 0, est),
		States: make([]ode.State, 0, est),
	}

	x := prob.X0.Clone()
	traj.Times = append(traj.Times, t)
	traj.States = append(traj.States, x.Clone())

	adaptive, canAdapt := s.stepper.(AdaptiveStepper)

	for step := 0; !reached(t, end, dt); step++ {
		select {
		case <-ctx.Done():
			return traj, ctx.Err()
		default:
		}

		// Never step past the end of the span.
		if remaining := end - t; math.Abs(dt) > math.Abs(remaining) {
			dt = remaining
		}

		var newX ode.State
		dtNext := dt
		if cfg.Adaptive && canAdapt {
			var err error
			newX, dtNext, err = adaptive.StepAdaptive(prob.Field, x, prob.Params, t, dt, cfg.Tolerance)
			if err != nil {
				return traj, &ode.SolveError{Step: step, Time: t, State: x, Wrapped: err}
			}
		} else {
			newX = s.stepper.Step(prob.Field, x, prob.Params, t, dt)
		}
		t += dt

		if cfg.ValidateState && !newX.IsValid() {
			return traj, &ode.SolveError{Step: step, Time: t, State: newX, Wrapped: ode.ErrInvalidState}
		}

		x = newX
		traj.Times = append(traj.Times, t)
		traj.States = append(traj.States, x.Clone())
		traj.Steps++

		// The proposed step size only matters when another step remains.
		if cfg.Adaptive && canAdapt && !reached(t, end, dt) {
			dt = clampStep(dtNext, cfg)
			if dt == 0 {
				return traj, &ode.SolveError{Step: step, Time: t, State: x, Wrapped: ode.ErrStepTooSmall}
			}
		}
	}

	return traj, nil
}

func reached(t, end, dt float64) bool {
	if dt < 0 {
		return t <= end+1e-12
	}
	return t >= end-1e-12
}

func clampStep(dt float64, cfg ode.Config) float64 {
	mag := math.Abs(dt)
	if mag > cfg.MaxDt && cfg.MaxDt > 0 {
		mag = cfg.MaxDt
	}
	if mag < cfg.MinDt {
		return 0
	}
	return math.Copysign(mag, dt)
}
