package descriptor

import "github.com/san-kum/ldsim/internal/ode"

// Branch labels which traversal a subproblem computes.
type Branch int

const (
	BranchForward Branch = iota
	BranchBackward
)

// Key ties a subproblem to its output slot: the grid (pair) index it
// contributes to and the branch it computes. Reduction is keyed by Pair,
// never by completion order.
type Key struct {
	Pair   int
	Branch Branch
}

// Strategy turns a grid index into an executable subproblem and a
// completed trajectory back into an output record. Build and Extract are
// pure functions of their arguments plus the strategy's immutable state,
// so subproblems may be built and solved concurrently and out of order.
type Strategy interface {
	// Count is the number of subproblems to execute.
	Count() int

	// Records is the number of output records (the grid size).
	Records() int

	// Build constructs the i-th subproblem and its output key.
	Build(i int) (ode.Problem, Key)

	// Extract reads the descriptor contribution of the i-th subproblem
	// from its completed trajectory.
	Extract(traj *ode.Trajectory, i int) (Record, error)

	// Reduce folds one contribution into the output field at key.Pair.
	Reduce(acc []Record, rec Record, key Key)
}
