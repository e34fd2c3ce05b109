// Package ivp provides initial value problem primitives for the
// continuation toolkit.
//
// The package defines the fundamental types shared by integrators and
// the shooting adapter:
//
//   - [State]: vector representing system state
//   - [VectorField]: right hand side of dU/dt = f(U, p, t), normalized
//     over the in-place and out-of-place calling conventions
//   - [Spec]: immutable IVP template (field, dimensions, default span)
//   - [Solver]: interval integrator interface
//   - [Solution]: sampled trajectory, possibly reduced to the final state
//
// # Thread Safety
//
// Spec and VectorField values are immutable after construction and may be
// shared across goroutines. Solver implementations in package integrators
// keep no per-call state and are reentrant.
package ivp
