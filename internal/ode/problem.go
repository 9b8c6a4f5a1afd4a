package ode

import "context"

// Problem is an initial value problem template: a vector field together
// with an initial state, parameters, and an integration span. Values are
// copied on construction and on override, so a Problem can be shared
// between goroutines once built.
type Problem struct {
	Field  VectorField
	X0     State
	Params Params
	Span   Span
}

func NewProblem(field VectorField, x0 State, p Params, span Span) Problem {
	return Problem{
		Field:  field,
		X0:     x0.Clone(),
		Params: p.Clone(),
		Span:   span,
	}
}

// WithState returns a copy of the problem with the initial state replaced.
// All other fields are left intact.
func (p Problem) WithState(x0 State) Problem {
	p.X0 = x0.Clone()
	return p
}

// WithSpan returns a copy of the problem with the integration span replaced.
func (p Problem) WithSpan(span Span) Problem {
	p.Span = span
	return p
}

// WithField returns a copy of the problem over a different vector field.
func (p Problem) WithField(field VectorField) Problem {
	p.Field = field
	return p
}

// Solver integrates a Problem over its span and returns the sampled
// trajectory. Implementations must honor decreasing spans by stepping with
// negative dt.
type Solver interface {
	Solve(ctx context.Context, prob Problem, cfg Config) (*Trajectory, error)
}
