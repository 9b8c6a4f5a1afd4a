package descriptor

import (
	"fmt"

	"github.com/san-kum/ldsim/internal/grid"
	"github.com/san-kum/ldsim/internal/ode"
)

// AugmentedStrategy computes descriptors by integrating M alongside the
// trajectory as extra state accumulators. One subproblem per grid index;
// the backward traversal lives inside the augmented vector field, so every
// subproblem keeps the template's forward-oriented span.
type AugmentedStrategy struct {
	augmented ode.Problem
	layout    Layout
	grid      grid.Grid
}

func newAugmentedStrategy(template ode.Problem, m Pointwise, dir Direction, g grid.Grid) *AugmentedStrategy {
	layout := NewLayout(template.Field.Dim(), dir)
	return &AugmentedStrategy{
		augmented: template.WithField(Augment(template.Field, m, dir, template.Span)),
		layout:    layout,
		grid:      g,
	}
}

func (s *AugmentedStrategy) Count() int   { return s.grid.Len() }
func (s *AugmentedStrategy) Records() int { return s.grid.Len() }

func (s *AugmentedStrategy) Build(i int) (ode.Problem, Key) {
	x0 := s.layout.Pack(s.grid.At(i))
	return s.augmented.WithState(x0), Key{Pair: i, Branch: BranchForward}
}

func (s *AugmentedStrategy) Extract(traj *ode.Trajectory, i int) (Record, error) {
	terminal := traj.Terminal()
	if len(terminal) != s.layout.Total() {
		return Record{}, fmt.Errorf("descriptor: subproblem %d: terminal state has %d components, expected %d",
			i, len(terminal), s.layout.Total())
	}

	var rec Record
	if s.layout.Direction.hasForward() {
		rec.LFwd = s.layout.LFwd(terminal)
		rec.HasFwd = true
	}
	if s.layout.Direction.hasBackward() {
		rec.LBwd = s.layout.LBwd(terminal)
		rec.HasBwd = true
	}
	return rec, nil
}

func (s *AugmentedStrategy) Reduce(acc []Record, rec Record, key Key) {
	acc[key.Pair] = rec
}
