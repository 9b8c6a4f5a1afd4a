package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/ldsim/internal/ode"
)

type harmonicOscillator struct{}

func (h *harmonicOscillator) Dim() int { return 2 }

func (h *harmonicOscillator) Derive(x ode.State, p ode.Params, t float64) ode.State {
	return ode.State{x[1], -x[0]}
}

func TestRK4Accuracy(t *testing.T) {
	f := &harmonicOscillator{}
	integ := NewRK4()

	x := ode.State{1.0, 0.0}
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		x = integ.Step(f, x, nil, float64(i)*dt, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], expectedX)
	}
	if math.Abs(x[1]-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", x[1], expectedV)
	}
}

func TestRK4NegativeStep(t *testing.T) {
	f := &harmonicOscillator{}
	integ := NewRK4()

	// One step forward then one step back should return to the start.
	x0 := ode.State{1.0, 0.0}
	dt := 0.01

	x := integ.Step(f, x0, nil, 0, dt)
	x = integ.Step(f, x, nil, dt, -dt)

	if math.Abs(x[0]-x0[0]) > 1e-10 || math.Abs(x[1]-x0[1]) > 1e-10 {
		t.Errorf("forward+backward step did not return to start: got %v", x)
	}
}
