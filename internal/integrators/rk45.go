package integrators

import (
	"math"

	"github.com/san-kum/contlab/internal/ivp"
)

// Dormand-Prince coefficients (RK45)
var (
	a2 = 1.0 / 5.0
	a3 = 3.0 / 10.0
	a4 = 4.0 / 5.0
	a5 = 8.0 / 9.0

	b21 = 1.0 / 5.0
	b31 = 3.0 / 40.0
	b32 = 9.0 / 40.0
	b41 = 44.0 / 45.0
	b42 = -56.0 / 15.0
	b43 = 32.0 / 9.0
	b51 = 19372.0 / 6561.0
	b52 = -25360.0 / 2187.0
	b53 = 64448.0 / 6561.0
	b54 = -212.0 / 729.0
	b61 = 9017.0 / 3168.0
	b62 = -355.0 / 33.0
	b63 = 46732.0 / 5247.0
	b64 = 49.0 / 176.0
	b65 = -5103.0 / 18656.0

	c1 = 35.0 / 384.0
	c3 = 500.0 / 1113.0
	c4 = 125.0 / 192.0
	c5 = -2187.0 / 6784.0
	c6 = 11.0 / 84.0

	dc1 = c1 - 5179.0/57600.0
	dc3 = c3 - 7571.0/16695.0
	dc4 = c4 - 393.0/640.0
	dc5 = c5 - -92097.0/339200.0
	dc6 = c6 - 187.0/2100.0
	dc7 = -1.0 / 40.0
)

// RK45 is the Dormand-Prince 5(4) adaptive integrator. All per-call
// scratch lives on the stack of Solve, so one value may serve
// concurrent evaluations.
type RK45 struct {
	safety   float64
	minScale float64
	maxScale float64
}

func NewRK45() *RK45 {
	return &RK45{
		safety:   0.9,
		minScale: 0.2,
		maxScale: 10.0,
	}
}

func (r *RK45) Name() string { return "rk45" }

func (r *RK45) Solve(field ivp.VectorField, u0, p ivp.State, t0, t1 float64, opts ivp.Options) (*ivp.Solution, error) {
	n := len(u0)
	span := t1 - t0
	dir := 1.0
	if span < 0 {
		dir = -1.0
	}

	if opts.AbsTol == 0 && opts.RelTol == 0 {
		opts.AbsTol = ivp.DefaultAbsTol
		opts.RelTol = ivp.DefaultRelTol
	}

	h := opts.InitialStep
	if h == 0 {
		h = span / 100.0
	}
	// a caller-supplied step must move in the span direction
	h = math.Copysign(h, span)
	minStep := opts.MinStep
	if minStep == 0 {
		minStep = 1e-12 * math.Abs(span)
	}
	maxSteps := opts.MaxSteps
	if maxSteps == 0 {
		maxSteps = 1000000
	}

	u := u0.Clone()
	t := t0

	sol := &ivp.Solution{}
	if opts.SaveStart {
		sol.Append(t, u)
	}
	if span == 0 {
		sol.Append(t1, u)
		return sol, nil
	}

	k1 := make(ivp.State, n)
	k2 := make(ivp.State, n)
	k3 := make(ivp.State, n)
	k4 := make(ivp.State, n)
	k5 := make(ivp.State, n)
	k6 := make(ivp.State, n)
	k7 := make(ivp.State, n)
	stage := make(ivp.State, n)
	uNew := make(ivp.State, n)

	steps := 0
	for dir*(t1-t) > 0 {
		if steps >= maxSteps {
			return nil, &ivp.IntegrationError{T: t, Step: steps, Err: ivp.ErrMaxSteps}
		}
		steps++

		if dir*(t+h-t1) > 0 {
			h = t1 - t
		}

		field.Eval(k1, u, p, t)

		for i := 0; i < n; i++ {
			stage[i] = u[i] + h*b21*k1[i]
		}
		field.Eval(k2, stage, p, t+a2*h)

		for i := 0; i < n; i++ {
			stage[i] = u[i] + h*(b31*k1[i]+b32*k2[i])
		}
		field.Eval(k3, stage, p, t+a3*h)

		for i := 0; i < n; i++ {
			stage[i] = u[i] + h*(b41*k1[i]+b42*k2[i]+b43*k3[i])
		}
		field.Eval(k4, stage, p, t+a4*h)

		for i := 0; i < n; i++ {
			stage[i] = u[i] + h*(b51*k1[i]+b52*k2[i]+b53*k3[i]+b54*k4[i])
		}
		field.Eval(k5, stage, p, t+a5*h)

		for i := 0; i < n; i++ {
			stage[i] = u[i] + h*(b61*k1[i]+b62*k2[i]+b63*k3[i]+b64*k4[i]+b65*k5[i])
		}
		field.Eval(k6, stage, p, t+h)

		for i := 0; i < n; i++ {
			uNew[i] = u[i] + h*(c1*k1[i]+c3*k3[i]+c4*k4[i]+c5*k5[i]+c6*k6[i])
		}
		field.Eval(k7, uNew, p, t+h)

		// error per unit step: accepting |errEst|/h against the weight
		// keeps the accumulated error over the whole span tracking the
		// tolerances instead of growing with the step count
		errRatio := 0.0
		for i := 0; i < n; i++ {
			errEst := dc1*k1[i] + dc3*k3[i] + dc4*k4[i] + dc5*k5[i] + dc6*k6[i] + dc7*k7[i]
			rc := opts.AbsTol + opts.RelTol*math.Max(math.Abs(u[i]), math.Abs(uNew[i]))
			errRatio = math.Max(errRatio, math.Abs(errEst)/rc)
		}

		if math.IsNaN(errRatio) || math.IsInf(errRatio, 0) {
			// trial step overflowed, no usable estimate: shrink hard
			h *= r.minScale
			if math.Abs(h) < minStep {
				return nil, &ivp.IntegrationError{T: t, Step: steps, Err: ivp.ErrStepTooSmall}
			}
			continue
		}

		if errRatio <= 1 {
			t += h
			copy(u, uNew)
			if !u.IsValid() {
				return nil, &ivp.IntegrationError{T: t, Step: steps, Err: ivp.ErrInvalidState}
			}
			if opts.SaveSteps && dir*(t1-t) > 0 {
				sol.Append(t, u)
			}

			if errRatio > 0 {
				h *= math.Min(r.maxScale, r.safety*math.Pow(errRatio, -0.2))
			} else {
				h *= r.maxScale
			}
		} else {
			h *= math.Max(r.minScale, r.safety*math.Pow(errRatio, -0.25))
			if math.Abs(h) < minStep {
				return nil, &ivp.IntegrationError{T: t, Step: steps, Err: ivp.ErrStepTooSmall}
			}
		}
	}

	sol.Append(t1, u)
	return sol, nil
}
