package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/ldsim/internal/ode"
)

func TestRK45_Step(t *testing.T) {
	integ := NewRK45()
	f := &harmonicOscillator{}
	x := ode.State{1.0, 0.0}
	dt := 0.01

	for i := 0; i < 1000; i++ {
		x = integ.Step(f, x, nil, float64(i)*dt, dt)
	}

	if !x.IsValid() {
		t.Error("RK45 produced invalid state")
	}
}

func TestRK45_EnergyConservation(t *testing.T) {
	integ := NewRK45()
	f := &harmonicOscillator{}
	x := ode.State{1.0, 0.0}
	dt := 0.01

	energy := func(x ode.State) float64 { return 0.5 * (x[0]*x[0] + x[1]*x[1]) }
	initial := energy(x)

	for i := 0; i < 10000; i++ {
		x = integ.Step(f, x, nil, float64(i)*dt, dt)
	}

	drift := math.Abs(energy(x)-initial) / initial
	if drift > 1e-6 {
		t.Errorf("energy drift too large: %.2e", drift)
	}
}

func TestRK45_AdaptivePreservesStepSign(t *testing.T) {
	integ := NewRK45()
	f := &harmonicOscillator{}
	x := ode.State{1.0, 0.0}

	_, dtNext, err := integ.StepAdaptive(f, x, nil, 0, -0.01, 1e-6)
	if err != nil {
		t.Fatalf("adaptive step failed: %v", err)
	}
	if dtNext >= 0 {
		t.Errorf("expected proposed dt to stay negative, got %f", dtNext)
	}
}
