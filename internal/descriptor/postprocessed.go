package descriptor

import (
	"github.com/san-kum/ldsim/internal/grid"
	"github.com/san-kum/ldsim/internal/ode"
	"github.com/san-kum/ldsim/internal/quadrature"
)

// PostprocessedStrategy solves the original system unchanged and computes
// the descriptor by quadrature over the stored trajectory. A backward
// traversal is expressed as a reversed span. With direction Both it emits
// subproblems in forward/backward pairs: 2N subproblems folding into N
// paired records.
type PostprocessedStrategy struct {
	template ode.Problem
	m        Pointwise
	rule     quadrature.Rule
	grid     grid.Grid
	dir      Direction
}

func newPostprocessedStrategy(template ode.Problem, m Pointwise, dir Direction, g grid.Grid, rule quadrature.Rule) *PostprocessedStrategy {
	return &PostprocessedStrategy{
		template: template,
		m:        m,
		rule:     rule,
		grid:     g,
		dir:      dir,
	}
}

func (s *PostprocessedStrategy) Count() int {
	if s.dir == Both {
		return 2 * s.grid.Len()
	}
	return s.grid.Len()
}

func (s *PostprocessedStrategy) Records() int { return s.grid.Len() }

// key maps a subproblem index to its output slot. With direction Both,
// even indices are forward runs and odd indices the matching backward run.
func (s *PostprocessedStrategy) key(i int) Key {
	switch s.dir {
	case Forward:
		return Key{Pair: i, Branch: BranchForward}
	case Backward:
		return Key{Pair: i, Branch: BranchBackward}
	default:
		branch := BranchForward
		if i%2 == 1 {
			branch = BranchBackward
		}
		return Key{Pair: i / 2, Branch: branch}
	}
}

func (s *PostprocessedStrategy) Build(i int) (ode.Problem, Key) {
	key := s.key(i)

	// Both branches of a pair start from the same grid point.
	prob := s.template.WithState(s.grid.At(key.Pair))
	if key.Branch == BranchBackward {
		prob = prob.WithSpan(s.template.Span.Reversed())
	}
	return prob, key
}

func (s *PostprocessedStrategy) Extract(traj *ode.Trajectory, i int) (Record, error) {
	val := s.rule.Integrate(traj, s.template.Field, s.template.Params, quadrature.Integrand(s.m))

	if s.key(i).Branch == BranchBackward {
		return Record{LBwd: val, HasBwd: true}, nil
	}
	return Record{LFwd: val, HasFwd: true}, nil
}

func (s *PostprocessedStrategy) Reduce(acc []Record, rec Record, key Key) {
	acc[key.Pair] = acc[key.Pair].merge(rec)
}
