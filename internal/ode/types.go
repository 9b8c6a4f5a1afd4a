package ode

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Add(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] + other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

func (s State) Scale(factor float64) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

type Params []float64

func (p Params) Clone() Params {
	c := make(Params, len(p))
	copy(c, p)
	return c
}

// VectorField is the right-hand side of an autonomous or time-dependent ODE
// dx/dt = f(x, p, t).
type VectorField interface {
	Derive(x State, p Params, t float64) State
	Dim() int
}

// FieldFunc adapts a plain function to a VectorField of dimension dim.
type FieldFunc struct {
	F func(x State, p Params, t float64) State
	N int
}

func (f FieldFunc) Derive(x State, p Params, t float64) State { return f.F(x, p, t) }
func (f FieldFunc) Dim() int                                  { return f.N }

// Span is an integration interval. T1 < T0 is allowed and means the
// trajectory is traced with decreasing time.
type Span struct {
	T0, T1 float64
}

func (s Span) Reversed() Span   { return Span{T0: s.T1, T1: s.T0} }
func (s Span) Length() float64  { return math.Abs(s.T1 - s.T0) }
func (s Span) Decreasing() bool { return s.T1 < s.T0 }
func (s Span) Degenerate() bool { return s.T0 == s.T1 }

type Config struct {
	Dt            float64
	Tolerance     float64
	MaxDt         float64
	MinDt         float64
	Adaptive      bool
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.01,
		Tolerance:     1e-6,
		MaxDt:         0.1,
		MinDt:         1e-8,
		Adaptive:      false,
		ValidateState: true,
	}
}

// Trajectory is a sampled solution of a Problem. Times are strictly
// monotone (increasing or decreasing with the span) and States[i] is the
// state at Times[i].
type Trajectory struct {
	Times  []float64
	States []State
	Steps  int
}

func (tr *Trajectory) Len() int { return len(tr.Times) }

func (tr *Trajectory) Terminal() State {
	if len(tr.States) == 0 {
		return nil
	}
	return tr.States[len(tr.States)-1]
}

func (tr *Trajectory) TerminalTime() float64 {
	if len(tr.Times) == 0 {
		return 0
	}
	return tr.Times[len(tr.Times)-1]
}
