package integrators

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/ldsim/internal/ode"
)

type decayField struct{}

func (d *decayField) Dim() int { return 1 }
func (d *decayField) Derive(x ode.State, p ode.Params, t float64) ode.State {
	return ode.State{-x[0]}
}

func TestSolverForwardSpan(t *testing.T) {
	solver := NewSolver(NewRK4())
	prob := ode.NewProblem(&decayField{}, ode.State{1.0}, nil, ode.Span{T0: 0, T1: 1})

	cfg := ode.DefaultConfig()
	traj, err := solver.Solve(context.Background(), prob, cfg)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	final := traj.Terminal()[0]
	expected := math.Exp(-1.0)
	if math.Abs(final-expected) > 1e-6 {
		t.Errorf("expected final state ~%.6f, got %.6f", expected, final)
	}
	if math.Abs(traj.TerminalTime()-1.0) > 1e-9 {
		t.Errorf("expected terminal time 1.0, got %f", traj.TerminalTime())
	}
}

func TestSolverReversedSpan(t *testing.T) {
	solver := NewSolver(NewRK4())

	// Integrating dx/dt = -x from t=1 back to t=0 starting at e^-1
	// should recover the initial value 1.
	prob := ode.NewProblem(&decayField{}, ode.State{math.Exp(-1.0)}, nil, ode.Span{T0: 1, T1: 0})

	traj, err := solver.Solve(context.Background(), prob, ode.DefaultConfig())
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	if math.Abs(traj.Terminal()[0]-1.0) > 1e-6 {
		t.Errorf("expected final state ~1.0, got %.6f", traj.Terminal()[0])
	}
	if traj.Times[0] < traj.Times[len(traj.Times)-1] {
		t.Error("expected decreasing sample times for a reversed span")
	}
}

func TestSolverDegenerateSpan(t *testing.T) {
	solver := NewSolver(NewEuler())
	prob := ode.NewProblem(&decayField{}, ode.State{1.0}, nil, ode.Span{T0: 2, T1: 2})

	_, err := solver.Solve(context.Background(), prob, ode.DefaultConfig())
	if !errors.Is(err, ode.ErrDegenerateSpan) {
		t.Errorf("expected ErrDegenerateSpan, got %v", err)
	}
}

type blowupField struct{}

func (b *blowupField) Dim() int { return 1 }
func (b *blowupField) Derive(x ode.State, p ode.Params, t float64) ode.State {
	return ode.State{x[0] * x[0]}
}

func TestSolverDetectsInvalidState(t *testing.T) {
	solver := NewSolver(NewEuler())
	prob := ode.NewProblem(&blowupField{}, ode.State{1e200}, nil, ode.Span{T0: 0, T1: 1})

	_, err := solver.Solve(context.Background(), prob, ode.DefaultConfig())
	if !errors.Is(err, ode.ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}

	var solveErr *ode.SolveError
	if !errors.As(err, &solveErr) {
		t.Fatal("expected a *ode.SolveError")
	}
}

func TestSolverContextCancel(t *testing.T) {
	solver := NewSolver(NewRK4())
	prob := ode.NewProblem(&decayField{}, ode.State{1.0}, nil, ode.Span{T0: 0, T1: 1000})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solver.Solve(ctx, prob, ode.DefaultConfig())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

type unitField struct{}

func (u *unitField) Dim() int { return 1 }
func (u *unitField) Derive(x ode.State, p ode.Params, t float64) ode.State {
	return ode.State{1.0}
}

// A span that is not a whole multiple of MaxDt forces the final step to
// be clamped below MinDt. That last step still completes the
// integration, so it must be accepted rather than rejected as too small.
func TestSolverAdaptiveClampedFinalStep(t *testing.T) {
	solver := NewSolver(NewRK45())
	prob := ode.NewProblem(&unitField{}, ode.State{0.0}, nil, ode.Span{T0: 0, T1: 1.005})

	cfg := ode.Config{
		Dt:            0.1,
		Tolerance:     1e-6,
		MaxDt:         0.1,
		MinDt:         0.06,
		Adaptive:      true,
		ValidateState: true,
	}

	traj, err := solver.Solve(context.Background(), prob, cfg)
	if err != nil {
		t.Fatalf("solve failed at the final clamped step: %v", err)
	}
	if math.Abs(traj.TerminalTime()-1.005) > 1e-9 {
		t.Errorf("expected terminal time 1.005, got %v", traj.TerminalTime())
	}
	if math.Abs(traj.Terminal()[0]-1.005) > 1e-9 {
		t.Errorf("expected terminal state 1.005, got %v", traj.Terminal()[0])
	}
}

func TestSolverZeroDtDefaultsOnlyDt(t *testing.T) {
	solver := NewSolver(NewEuler())
	prob := ode.NewProblem(&blowupField{}, ode.State{1e200}, nil, ode.Span{T0: 0, T1: 1})

	// ValidateState stays off even though Dt is defaulted, so the
	// overflowing trajectory runs to completion.
	traj, err := solver.Solve(context.Background(), prob, ode.Config{})
	if err != nil {
		t.Fatalf("expected caller settings to survive Dt defaulting, got %v", err)
	}
	if math.Abs(traj.TerminalTime()-1.0) > 1e-9 {
		t.Errorf("expected terminal time 1.0, got %v", traj.TerminalTime())
	}
}

func TestSolverAdaptive(t *testing.T) {
	solver := NewSolver(NewRK45())
	prob := ode.NewProblem(&decayField{}, ode.State{1.0}, nil, ode.Span{T0: 0, T1: 1})

	cfg := ode.DefaultConfig()
	cfg.Adaptive = true

	traj, err := solver.Solve(context.Background(), prob, cfg)
	if err != nil {
		t.Fatalf("adaptive solve failed: %v", err)
	}
	if math.Abs(traj.Terminal()[0]-math.Exp(-1.0)) > 1e-5 {
		t.Errorf("adaptive solve inaccurate: got %.6f", traj.Terminal()[0])
	}
}
