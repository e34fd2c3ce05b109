package integrators

import "github.com/san-kum/contlab/internal/ivp"

// Euler is the explicit first order method. Mostly useful as a
// cross-check and for cheap smoke tests.
type Euler struct{}

func NewEuler() *Euler { return &Euler{} }

func (e *Euler) Name() string { return "euler" }

func (e *Euler) Solve(field ivp.VectorField, u0, p ivp.State, t0, t1 float64, opts ivp.Options) (*ivp.Solution, error) {
	n := len(u0)
	span := t1 - t0

	h := opts.InitialStep
	if h == 0 {
		h = span / 100.0
	}
	steps := fixedStepCount(span, h, opts.MaxSteps)
	h = span / float64(steps)

	u := u0.Clone()
	sol := &ivp.Solution{}
	if opts.SaveStart {
		sol.Append(t0, u)
	}
	if span == 0 {
		sol.Append(t1, u)
		return sol, nil
	}

	du := make(ivp.State, n)
	for s := 0; s < steps; s++ {
		t := t0 + float64(s)*h
		field.Eval(du, u, p, t)
		for i := 0; i < n; i++ {
			u[i] += h * du[i]
		}
		if !u.IsValid() {
			return nil, &ivp.IntegrationError{T: t + h, Step: s + 1, Err: ivp.ErrInvalidState}
		}
		if opts.SaveSteps && s < steps-1 {
			sol.Append(t+h, u)
		}
	}

	sol.Append(t1, u)
	return sol, nil
}
