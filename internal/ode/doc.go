// Package ode provides the core types for initial value problems.
//
// The package defines the vocabulary shared by the rest of the module:
//
//   - [State]: vector representing system state
//   - [VectorField]: the right-hand side dx/dt = f(x, p, t)
//   - [Problem]: a field plus initial state, parameters, and span
//   - [Trajectory]: a sampled solution
//   - [Solver]: numerical integrator contract
//
// A [Span] may be decreasing (T1 < T0); solvers trace such spans with
// negative timesteps, which is how backward Lagrangian descriptor runs are
// expressed.
//
// # Thread Safety
//
// Problems are value types copied on override and safe to share once
// built. Solver implementations keep per-call state only and may be used
// from multiple goroutines.
package ode
