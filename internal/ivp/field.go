package ivp

// FieldFunc is the in-place calling convention: write f(u, p, t) into du.
type FieldFunc func(du, u, p State, t float64)

// FieldFuncOut is the out-of-place calling convention: return f(u, p, t)
// as a fresh vector.
type FieldFuncOut func(u, p State, t float64) State

// VectorField normalizes both calling conventions behind a single Eval
// shape, chosen once at construction. The zero value is unusable.
type VectorField struct {
	eval FieldFunc
}

func InPlace(f FieldFunc) VectorField {
	return VectorField{eval: f}
}

func OutOfPlace(f FieldFuncOut) VectorField {
	return VectorField{eval: func(du, u, p State, t float64) {
		copy(du, f(u, p, t))
	}}
}

// Eval writes the derivative of u at time t into du.
func (v VectorField) Eval(du, u, p State, t float64) {
	v.eval(du, u, p, t)
}

// Defined reports whether the field was built from a function.
func (v VectorField) Defined() bool { return v.eval != nil }

// Spec is an immutable IVP template: the vector field, the expected
// state and parameter dimensions, and the default integration span.
// Per-evaluation state, parameters and span override the template
// without mutating it, so a single Spec is safely shared.
type Spec struct {
	Field    VectorField
	StateDim int
	ParamDim int
	T0, T1   float64
}

func NewSpec(field VectorField, u0, p0 State, t0, t1 float64) Spec {
	return Spec{
		Field:    field,
		StateDim: len(u0),
		ParamDim: len(p0),
		T0:       t0,
		T1:       t1,
	}
}
