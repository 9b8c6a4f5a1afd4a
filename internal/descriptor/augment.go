package descriptor

import "github.com/san-kum/ldsim/internal/ode"

// Layout maps the partitions of an augmented state to slice offsets.
// Exactly the partitions implied by the direction exist:
//
//	Forward:  [fwd(0..n) | lfwd]
//	Backward: [bwd(0..n) | lbwd]
//	Both:     [fwd(0..n) | bwd(n..2n) | lfwd | lbwd]
type Layout struct {
	Dim       int
	Direction Direction
}

func NewLayout(dim int, dir Direction) Layout {
	return Layout{Dim: dim, Direction: dir}
}

func (l Layout) Total() int {
	if l.Direction == Both {
		return 2*l.Dim + 2
	}
	return l.Dim + 1
}

func (l Layout) Fwd(s ode.State) ode.State {
	if !l.Direction.hasForward() {
		return nil
	}
	return s[:l.Dim]
}

func (l Layout) Bwd(s ode.State) ode.State {
	switch l.Direction {
	case Backward:
		return s[:l.Dim]
	case Both:
		return s[l.Dim : 2*l.Dim]
	default:
		return nil
	}
}

func (l Layout) LFwd(s ode.State) float64 {
	switch l.Direction {
	case Forward:
		return s[l.Dim]
	case Both:
		return s[2*l.Dim]
	default:
		return 0
	}
}

func (l Layout) LBwd(s ode.State) float64 {
	switch l.Direction {
	case Backward:
		return s[l.Dim]
	case Both:
		return s[2*l.Dim+1]
	default:
		return 0
	}
}

// Pack builds the augmented initial state from a base initial condition:
// every trajectory partition starts at x0 and every accumulator at zero.
func (l Layout) Pack(x0 ode.State) ode.State {
	s := make(ode.State, l.Total())
	copy(s[:l.Dim], x0)
	if l.Direction == Both {
		copy(s[l.Dim:2*l.Dim], x0)
	}
	return s
}

// augmentedField wraps a base vector field with accumulator equations for
// the descriptor integrals. The backward partition traces the base field
// with decreasing time: at solver time t it represents the trajectory at
// the mirrored time t0+t1-t, so the whole augmented system integrates over
// the template's forward-oriented span.
type augmentedField struct {
	base   ode.VectorField
	m      Pointwise
	layout Layout
	span   ode.Span
}

// Augment builds the augmented system for a direction over the template's
// span. Pure construction; the base field is never modified.
func Augment(base ode.VectorField, m Pointwise, dir Direction, span ode.Span) ode.VectorField {
	return &augmentedField{
		base:   base,
		m:      m,
		layout: NewLayout(base.Dim(), dir),
		span:   span,
	}
}

func (a *augmentedField) Dim() int { return a.layout.Total() }

func (a *augmentedField) Derive(s ode.State, p ode.Params, t float64) ode.State {
	n := a.layout.Dim
	out := make(ode.State, a.layout.Total())

	if a.layout.Direction.hasForward() {
		fwd := a.layout.Fwd(s)
		df := a.base.Derive(fwd, p, t)
		copy(out[:n], df)
		out[a.lfwdIndex()] = a.m(df, fwd, p, t)
	}

	if a.layout.Direction.hasBackward() {
		bwd := a.layout.Bwd(s)
		tau := a.span.T0 + a.span.T1 - t
		db := a.base.Derive(bwd, p, tau)

		off := 0
		if a.layout.Direction == Both {
			off = n
		}
		for i := 0; i < n; i++ {
			out[off+i] = -db[i]
		}
		// The accumulator integrates M of the trajectory's own derivative
		// with a positive measure, so M == 1 yields the span magnitude.
		out[a.lbwdIndex()] = a.m(db, bwd, p, tau)
	}

	return out
}

func (a *augmentedField) lfwdIndex() int {
	if a.layout.Direction == Both {
		return 2 * a.layout.Dim
	}
	return a.layout.Dim
}

func (a *augmentedField) lbwdIndex() int {
	if a.layout.Direction == Both {
		return 2*a.layout.Dim + 1
	}
	return a.layout.Dim
}
