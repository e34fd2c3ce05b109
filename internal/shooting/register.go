package shooting

import (
	"errors"
	"fmt"

	"github.com/san-kum/contlab/internal/continuation"
	"github.com/san-kum/contlab/internal/integrators"
	"github.com/san-kum/contlab/internal/ivp"
)

// ErrParameterCount rejects a registration whose parameter names do not
// match the parameter vector, before any registry side effect.
var ErrParameterCount = errors.New("shooting: parameter name count does not match parameter vector")

// Options tunes one registration. Zero values fall back to the
// documented defaults: Periodic boundary condition, Dormand-Prince RK45,
// RelTol 1e-6 and AbsTol 1e-8.
type Options struct {
	BoundaryCond   BoundaryCond
	ParameterNames []string
	Method         ivp.Solver
	RelTol         float64
	AbsTol         float64
}

func (o Options) withDefaults() Options {
	if o.BoundaryCond == nil {
		o.BoundaryCond = Periodic
	}
	if o.Method == nil {
		o.Method = integrators.Default()
	}
	if o.RelTol == 0 {
		o.RelTol = ivp.DefaultRelTol
	}
	if o.AbsTol == 0 {
		o.AbsTol = ivp.DefaultAbsTol
	}
	return o
}

// Register wires a shooting constraint named name into prob: variables
// {name}.u, {name}.p and {name}.tspan, one residual function of output
// dimension len(u0) over [state, parameters, tspan], and inactive scalar
// bindings for every parameter plus {name}.t0 and {name}.t1. Releasing
// any of those for a sweep is the caller's decision.
//
// tspan is either a single value T, normalized to (0, T), or its first
// two elements are taken as (t0, t1).
func Register(prob *continuation.Problem, name string, field ivp.VectorField, u0, p0, tspan []float64, opts Options) error {
	t0, t1 := NormalizeTSpan(tspan)
	opts = opts.withDefaults()

	spec := ivp.NewSpec(field, u0, p0, t0, t1)
	res := NewResidual(spec, opts.Method, opts.BoundaryCond, opts.RelTol, opts.AbsTol)

	names := opts.ParameterNames
	if names == nil {
		names = make([]string, len(p0))
		for i := range p0 {
			names[i] = fmt.Sprintf("%s.p%d", name, i+1)
		}
	}
	if len(names) != len(p0) {
		return fmt.Errorf("%w: %d names for %d parameters", ErrParameterCount, len(names), len(p0))
	}

	uVar, err := prob.AddVariable(name+".u", len(u0), u0)
	if err != nil {
		return err
	}
	pVar, err := prob.AddVariable(name+".p", len(p0), p0)
	if err != nil {
		return err
	}
	tVar, err := prob.AddVariable(name+".tspan", 2, []float64{t0, t1})
	if err != nil {
		return err
	}

	eval := func(out []float64, args ...[]float64) error {
		return res.Eval(out, args[0], args[1], [2]float64{args[2][0], args[2][1]})
	}
	if _, err := prob.AddFunction(name, len(u0), eval, uVar, pVar, tVar); err != nil {
		return err
	}

	if err := prob.AddParameters(names, pVar, false); err != nil {
		return err
	}
	return prob.AddParameters([]string{name + ".t0", name + ".t1"}, tVar, false)
}

// NormalizeTSpan expands a scalar span T to (0, T); longer inputs
// contribute their first two elements.
func NormalizeTSpan(tspan []float64) (float64, float64) {
	switch len(tspan) {
	case 0:
		return 0, 0
	case 1:
		return 0, tspan[0]
	default:
		return tspan[0], tspan[1]
	}
}
