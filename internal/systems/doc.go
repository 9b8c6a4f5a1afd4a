// Package systems provides dynamical systems used as descriptor targets.
//
// Each system implements the [ode.VectorField] interface:
//
//   - [Saddle]: linear hyperbolic saddle, analytically checkable
//   - [Duffing]: periodically forced nonlinear oscillator
//   - [Pendulum]: damped pendulum
//   - [DoubleWell]: particle in a bistable potential
//
// Systems also expose parameter get/set for sweeps over system families.
package systems
