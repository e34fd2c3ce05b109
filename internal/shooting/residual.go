// Package shooting turns an initial value problem into an algebraic
// constraint for zero finding: integrate the field from a trial state
// over the span and measure the boundary mismatch between start and end.
package shooting

import (
	"github.com/san-kum/contlab/internal/ivp"
)

// BoundaryCond compares the start and end states of one integration and
// writes the mismatch into out. len(out) equals the state dimension.
type BoundaryCond func(out []float64, uStart, uEnd, p ivp.State, tspan [2]float64)

// Periodic is the closure condition of a periodic orbit: the end state
// must return to the start state.
func Periodic(out []float64, uStart, uEnd, p ivp.State, tspan [2]float64) {
	for i := range out {
		out[i] = uEnd[i] - uStart[i]
	}
}

// Residual is the shooting constraint. It is immutable after
// construction; the shared Spec is read-only, so concurrent Eval calls
// are safe as long as the solver is reentrant.
type Residual struct {
	abstol float64
	reltol float64
	spec   ivp.Spec
	method ivp.Solver
	bc     BoundaryCond
}

func NewResidual(spec ivp.Spec, method ivp.Solver, bc BoundaryCond, reltol, abstol float64) *Residual {
	return &Residual{
		abstol: abstol,
		reltol: reltol,
		spec:   spec,
		method: method,
		bc:     bc,
	}
}

// Eval integrates the template field from u over tspan with parameters p
// and writes the boundary mismatch into out. Only the final state is
// retained from the integration. A solver failure is returned unchanged;
// the caller decides whether to reject the trial point.
func (r *Residual) Eval(out []float64, u, p ivp.State, tspan [2]float64) error {
	opts := ivp.Options{AbsTol: r.abstol, RelTol: r.reltol}
	sol, err := r.method.Solve(r.spec.Field, u, p, tspan[0], tspan[1], opts)
	if err != nil {
		return err
	}
	r.bc(out, u, sol.Final(), p, tspan)
	return nil
}
