package descriptor

import (
	"context"
	"fmt"

	"github.com/san-kum/ldsim/internal/grid"
	"github.com/san-kum/ldsim/internal/ode"
	"github.com/san-kum/ldsim/internal/quadrature"
)

// Problem is a validated Lagrangian descriptor problem: one template
// system, one pointwise function, one grid of initial conditions, and a
// chosen strategy. Construction performs no integration; Solve does.
type Problem struct {
	template  ode.Problem
	grid      grid.Grid
	direction Direction
	method    Method
	strategy  Strategy
	quadRule  quadrature.Rule
	cfg       ode.Config
	workers   int
	progress  func(done, total int)
}

// Option configures a Problem at construction.
type Option func(*Problem)

// WithDirection selects forward, backward, or both traversals. Default
// is Both.
func WithDirection(d Direction) Option {
	return func(p *Problem) { p.direction = d }
}

// WithMethod selects the computation strategy. Default is Augmented.
func WithMethod(m Method) Option {
	return func(p *Problem) { p.method = m }
}

// WithSolverConfig forwards integration configuration to the solver,
// uninterpreted by the descriptor layer.
func WithSolverConfig(cfg ode.Config) Option {
	return func(p *Problem) { p.cfg = cfg }
}

// WithWorkers bounds the number of subproblems solved concurrently.
// Values below one mean one worker per CPU.
func WithWorkers(n int) Option {
	return func(p *Problem) { p.workers = n }
}

// WithQuadrature selects the rule the postprocessed strategy integrates
// with. Ignored by the augmented strategy.
func WithQuadrature(rule quadrature.Rule) Option {
	return func(p *Problem) { p.quadRule = rule }
}

// WithProgress registers a callback invoked after each completed
// subproblem. It may be called from multiple goroutines.
func WithProgress(fn func(done, total int)) Option {
	return func(p *Problem) { p.progress = fn }
}

// New validates the configuration and assembles the ensemble
// specification. Invalid direction or method values fail fast with a
// *ConfigurationError before any other work; no partial problem is ever
// returned.
func New(template ode.Problem, m Pointwise, g grid.Grid, opts ...Option) (*Problem, error) {
	p := &Problem{
		template:  template,
		grid:      g,
		direction: Both,
		method:    Augmented,
		cfg:       ode.DefaultConfig(),
		quadRule:  quadrature.NewTrapezoid(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if !p.method.valid() {
		return nil, &ConfigurationError{
			Option:   "method",
			Value:    p.method.String(),
			Accepted: []string{"augmented", "postprocessed"},
		}
	}
	if !p.direction.valid() {
		return nil, &ConfigurationError{
			Option:   "direction",
			Value:    p.direction.String(),
			Accepted: []string{"forward", "backward", "both"},
		}
	}
	if template.Field == nil {
		return nil, fmt.Errorf("descriptor: template has no vector field")
	}
	if m == nil {
		return nil, fmt.Errorf("descriptor: pointwise function is nil")
	}
	if g.Len() == 0 {
		return nil, fmt.Errorf("descriptor: empty initial condition grid")
	}
	if dim := len(g.At(0)); dim != template.Field.Dim() {
		return nil, fmt.Errorf("descriptor: grid points have %d components, system has %d", dim, template.Field.Dim())
	}
	if template.Span.Degenerate() {
		return nil, fmt.Errorf("descriptor: %w", ode.ErrDegenerateSpan)
	}
	if p.method == Postprocessed && p.quadRule == nil {
		return nil, fmt.Errorf("descriptor: postprocessed method needs a quadrature rule")
	}

	switch p.method {
	case Augmented:
		p.strategy = newAugmentedStrategy(template, m, p.direction, g)
	case Postprocessed:
		p.strategy = newPostprocessedStrategy(template, m, p.direction, g, p.quadRule)
	}

	return p, nil
}

func (p *Problem) Direction() Direction { return p.direction }
func (p *Problem) Method() Method       { return p.method }
func (p *Problem) GridLen() int         { return p.grid.Len() }

// Subproblems reports how many independent integrations one Solve
// performs: 2N for postprocessed+both, N otherwise.
func (p *Problem) Subproblems() int { return p.strategy.Count() }

// Solve builds fresh subproblems, runs them through the solver, and
// returns the assembled field. A constructed problem may be solved any
// number of times; runs are independent.
func (p *Problem) Solve(ctx context.Context, solver ode.Solver) (*Field, error) {
	orch := NewOrchestrator(p.strategy, p.direction, p.cfg, p.workers, p.progress)
	return orch.Run(ctx, solver)
}
