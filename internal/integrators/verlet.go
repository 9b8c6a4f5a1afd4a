package integrators

import "github.com/san-kum/ldsim/internal/ode"

// Verlet is velocity Verlet for fields whose state is split half
// positions, half velocities, such as the pendulum and double-well
// systems. Symplectic, so descriptor runs over long spans drift less.
type Verlet struct{}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) Step(f ode.VectorField, x ode.State, p ode.Params, t, dt float64) ode.State {
	n := len(x)
	half := n / 2

	result := make(ode.State, n)
	dx := f.Derive(x, p, t)
	dt2 := dt * dt

	for i := 0; i < half; i++ {
		result[i] = x[i] + x[half+i]*dt + 0.5*dx[half+i]*dt2
	}

	scratch := make(ode.State, n)
	for i := 0; i < half; i++ {
		scratch[i] = result[i]
		scratch[half+i] = x[half+i]
	}

	dxNew := f.Derive(scratch, p, t+dt)

	halfDt := 0.5 * dt
	for i := 0; i < half; i++ {
		result[half+i] = x[half+i] + (dx[half+i]+dxNew[half+i])*halfDt
	}

	return result
}

// Leapfrog is the kick-drift-kick variant of the same splitting.
type Leapfrog struct{}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Step(f ode.VectorField, x ode.State, p ode.Params, t, dt float64) ode.State {
	n := len(x)
	half := n / 2

	result := make(ode.State, n)
	scratch := make(ode.State, n)
	dx := f.Derive(x, p, t)
	halfDt := dt * 0.5

	for i := 0; i < half; i++ {
		scratch[half+i] = x[half+i] + dx[half+i]*halfDt
	}

	for i := 0; i < half; i++ {
		result[i] = x[i] + scratch[half+i]*dt
		scratch[i] = result[i]
	}

	dxNew := f.Derive(scratch, p, t+dt)

	for i := 0; i < half; i++ {
		result[half+i] = scratch[half+i] + dxNew[half+i]*halfDt
	}

	return result
}
