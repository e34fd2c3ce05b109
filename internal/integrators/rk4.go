package integrators

import (
	"math"

	"github.com/san-kum/contlab/internal/ivp"
)

// RK4 is the classic fixed-step fourth order method. The step count is
// chosen so the grid lands exactly on t1.
type RK4 struct{}

func NewRK4() *RK4 { return &RK4{} }

func (r *RK4) Name() string { return "rk4" }

func (r *RK4) Solve(field ivp.VectorField, u0, p ivp.State, t0, t1 float64, opts ivp.Options) (*ivp.Solution, error) {
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

	k1 := make(ivp.State, n)
	k2 := make(ivp.State, n)
	k3 := make(ivp.State, n)
	k4 := make(ivp.State, n)
	stage := make(ivp.State, n)

	for s := 0; s < steps; s++ {
		t := t0 + float64(s)*h

		field.Eval(k1, u, p, t)
		for i := 0; i < n; i++ {
			stage[i] = u[i] + h*0.5*k1[i]
		}
		field.Eval(k2, stage, p, t+h*0.5)
		for i := 0; i < n; i++ {
			stage[i] = u[i] + h*0.5*k2[i]
		}
		field.Eval(k3, stage, p, t+h*0.5)
		for i := 0; i < n; i++ {
			stage[i] = u[i] + h*k3[i]
		}
		field.Eval(k4, stage, p, t+h)

		h6 := h / 6.0
		for i := 0; i < n; i++ {
			u[i] += h6 * (k1[i] + 2*k2[i] + 2*k3[i] + k4[i])
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

// fixedStepCount rounds |span/h| up to a whole number of steps, capped
// by maxSteps when set.
func fixedStepCount(span, h float64, maxSteps int) int {
	steps := int(math.Ceil(math.Abs(span / h)))
	if steps < 1 {
		steps = 1
	}
	if maxSteps > 0 && steps > maxSteps {
		steps = maxSteps
	}
	return steps
}
