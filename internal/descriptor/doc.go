// Package descriptor computes Lagrangian descriptor fields: one scalar
// (or forward/backward pair) per initial condition, obtained by
// integrating a pointwise function M along the trajectory launched from
// each grid point.
//
// Two strategies produce the same numbers by different routes:
//
//   - [Augmented] extends the state with accumulator variables so M is
//     integrated by the same solver pass as the trajectory itself.
//   - [Postprocessed] solves the original system and integrates M over
//     the stored trajectory by quadrature afterwards.
//
// Subproblems are embarrassingly parallel: each is a pure function of the
// immutable template plus a grid index. The orchestrator reduces results
// keyed by grid (pair) index, so out-of-order completion cannot scramble
// the field.
//
// # Example
//
//	sys := systems.NewDuffing()
//	g, _ := grid.Mesh(grid.Axis{-1.6, 1.6, 100}, grid.Axis{-1, 1, 100})
//	prob, _ := descriptor.New(
//		ode.NewProblem(sys, sys.DefaultState(), nil, ode.Span{T0: 0, T1: 10}),
//		descriptors.Arclength(),
//		g,
//	)
//	field, _ := prob.Solve(ctx, integrators.NewSolver(integrators.NewRK4()))
package descriptor
