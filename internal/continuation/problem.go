// Package continuation implements the variable/function registry that a
// continuation run is assembled from. A Problem holds named vector
// variables, residual functions over those variables, and scalar
// parameter bindings into variable slots that can be frozen or released
// for a sweep.
package continuation

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrDuplicateName = errors.New("continuation: name already registered")
	ErrUnknownName   = errors.New("continuation: unknown name")
	ErrDimension     = errors.New("continuation: dimension mismatch")
)

// EvalFunc evaluates a residual into out. args holds the current values
// of the function's dependency variables, in registration order.
type EvalFunc func(out []float64, args ...[]float64) error

// Var is a named vector variable. Values is the current point; Initial
// keeps the registration-time value for resets.
type Var struct {
	Name    string
	Dim     int
	Initial []float64
	Values  []float64
}

// Func is a named residual function over a fixed ordered set of
// variables.
type Func struct {
	Name   string
	OutDim int
	Deps   []*Var

	fn EvalFunc
}

type param struct {
	v      *Var
	slot   int
	active bool
}

// Parameter describes one scalar parameter binding.
type Parameter struct {
	Name   string
	Value  float64
	Active bool
}

// Problem is the registry. Every mutating call either succeeds fully or
// leaves the Problem unchanged.
type Problem struct {
	vars    map[string]*Var
	funcs   map[string]*Func
	params  map[string]*param
	ordered []string // parameter names in registration order
}

func NewProblem() *Problem {
	return &Problem{
		vars:   make(map[string]*Var),
		funcs:  make(map[string]*Func),
		params: make(map[string]*param),
	}
}

// AddVariable registers a vector variable. A nil init means zeros;
// otherwise len(init) must equal dim. Dimension zero is allowed so a
// parameterless system still registers its parameter variable.
func (p *Problem) AddVariable(name string, dim int, init []float64) (*Var, error) {
	if dim < 0 {
		return nil, fmt.Errorf("%w: variable %s has dimension %d", ErrDimension, name, dim)
	}
	if _, ok := p.vars[name]; ok {
		return nil, fmt.Errorf("%w: variable %s", ErrDuplicateName, name)
	}
	if init != nil && len(init) != dim {
		return nil, fmt.Errorf("%w: variable %s expects %d values, got %d", ErrDimension, name, dim, len(init))
	}

	v := &Var{
		Name:    name,
		Dim:     dim,
		Initial: make([]float64, dim),
		Values:  make([]float64, dim),
	}
	if init != nil {
		copy(v.Initial, init)
		copy(v.Values, init)
	}
	p.vars[name] = v
	return v, nil
}

// AddFunction registers a residual function depending on the given
// variables, which must already belong to this problem.
func (p *Problem) AddFunction(name string, outDim int, fn EvalFunc, deps ...*Var) (*Func, error) {
	if outDim <= 0 {
		return nil, fmt.Errorf("%w: function %s has output dimension %d", ErrDimension, name, outDim)
	}
	if _, ok := p.funcs[name]; ok {
		return nil, fmt.Errorf("%w: function %s", ErrDuplicateName, name)
	}
	for _, d := range deps {
		if d == nil || p.vars[d.Name] != d {
			return nil, fmt.Errorf("%w: function %s depends on unregistered variable", ErrUnknownName, name)
		}
	}

	f := &Func{Name: name, OutDim: outDim, Deps: deps, fn: fn}
	p.funcs[name] = f
	return f, nil
}

// AddParameters binds one display name to each scalar slot of v. The
// active flag decides whether the slots start released or frozen; the
// binding itself carries no further semantics, sweep drivers interpret
// it. The call is atomic: a duplicate or mismatched name set leaves the
// problem unchanged.
func (p *Problem) AddParameters(names []string, v *Var, active bool) error {
	if v == nil || p.vars[v.Name] != v {
		return fmt.Errorf("%w: parameter binding target", ErrUnknownName)
	}
	if len(names) != v.Dim {
		return fmt.Errorf("%w: %d parameter names for variable %s of dimension %d",
			ErrDimension, len(names), v.Name, v.Dim)
	}
	for _, name := range names {
		if _, ok := p.params[name]; ok {
			return fmt.Errorf("%w: parameter %s", ErrDuplicateName, name)
		}
	}

	for i, name := range names {
		p.params[name] = &param{v: v, slot: i, active: active}
		p.ordered = append(p.ordered, name)
	}
	return nil
}

func (p *Problem) Var(name string) (*Var, error) {
	v, ok := p.vars[name]
	if !ok {
		return nil, fmt.Errorf("%w: variable %s", ErrUnknownName, name)
	}
	return v, nil
}

func (p *Problem) Func(name string) (*Func, error) {
	f, ok := p.funcs[name]
	if !ok {
		return nil, fmt.Errorf("%w: function %s", ErrUnknownName, name)
	}
	return f, nil
}

// SetVariable overwrites the current value of a variable.
func (p *Problem) SetVariable(name string, values []float64) error {
	v, err := p.Var(name)
	if err != nil {
		return err
	}
	if len(values) != v.Dim {
		return fmt.Errorf("%w: variable %s expects %d values, got %d", ErrDimension, name, v.Dim, len(values))
	}
	copy(v.Values, values)
	return nil
}

// SetParameter writes one scalar parameter slot.
func (p *Problem) SetParameter(name string, value float64) error {
	prm, ok := p.params[name]
	if !ok {
		return fmt.Errorf("%w: parameter %s", ErrUnknownName, name)
	}
	prm.v.Values[prm.slot] = value
	return nil
}

// Activate releases a frozen parameter for continuation.
func (p *Problem) Activate(name string) error { return p.setActive(name, true) }

// Deactivate freezes a parameter at its current value.
func (p *Problem) Deactivate(name string) error { return p.setActive(name, false) }

func (p *Problem) setActive(name string, active bool) error {
	prm, ok := p.params[name]
	if !ok {
		return fmt.Errorf("%w: parameter %s", ErrUnknownName, name)
	}
	prm.active = active
	return nil
}

// Parameters lists all bindings in registration order.
func (p *Problem) Parameters() []Parameter {
	out := make([]Parameter, 0, len(p.ordered))
	for _, name := range p.ordered {
		prm := p.params[name]
		out = append(out, Parameter{Name: name, Value: prm.v.Values[prm.slot], Active: prm.active})
	}
	return out
}

// VarNames lists registered variables, sorted.
func (p *Problem) VarNames() []string {
	names := make([]string, 0, len(p.vars))
	for name := range p.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NumVars and NumFuncs report registry size; tests use them to check
// failed registrations left nothing behind.
func (p *Problem) NumVars() int  { return len(p.vars) }
func (p *Problem) NumFuncs() int { return len(p.funcs) }

// EvalFunc evaluates a registered function at the current variable
// values. out must have the function's output dimension.
func (p *Problem) EvalFunc(name string, out []float64) error {
	f, err := p.Func(name)
	if err != nil {
		return err
	}
	if len(out) != f.OutDim {
		return fmt.Errorf("%w: function %s writes %d values, got buffer of %d", ErrDimension, name, f.OutDim, len(out))
	}
	args := make([][]float64, len(f.Deps))
	for i, d := range f.Deps {
		args[i] = d.Values
	}
	return f.fn(out, args...)
}
