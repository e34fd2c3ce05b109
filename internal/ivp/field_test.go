package ivp

import (
	"math"
	"testing"
)

func TestVectorField_BothConventionsAgree(t *testing.T) {
	inPlace := InPlace(func(du, u, p State, time float64) {
		du[0] = p[0] * u[1]
		du[1] = -p[0] * u[0]
	})
	outOfPlace := OutOfPlace(func(u, p State, time float64) State {
		return State{p[0] * u[1], -p[0] * u[0]}
	})

	u := State{0.3, -1.7}
	p := State{2.5}

	du1 := make(State, 2)
	du2 := make(State, 2)
	inPlace.Eval(du1, u, p, 0.5)
	outOfPlace.Eval(du2, u, p, 0.5)

	for i := range du1 {
		if du1[i] != du2[i] {
			t.Errorf("component %d: in-place %.12f, out-of-place %.12f", i, du1[i], du2[i])
		}
	}
}

func TestVectorField_Defined(t *testing.T) {
	var zero VectorField
	if zero.Defined() {
		t.Error("zero VectorField should not be defined")
	}

	f := InPlace(func(du, u, p State, time float64) {})
	if !f.Defined() {
		t.Error("constructed VectorField should be defined")
	}
}

func TestSpec_CapturesDimensions(t *testing.T) {
	f := OutOfPlace(func(u, p State, time float64) State { return State{0} })
	spec := NewSpec(f, State{1, 2, 3}, State{4, 5}, 0, 10)

	if spec.StateDim != 3 {
		t.Errorf("expected state dim 3, got %d", spec.StateDim)
	}
	if spec.ParamDim != 2 {
		t.Errorf("expected param dim 2, got %d", spec.ParamDim)
	}
	if spec.T0 != 0 || spec.T1 != 10 {
		t.Errorf("expected span (0, 10), got (%g, %g)", spec.T0, spec.T1)
	}
}

func TestState_Helpers(t *testing.T) {
	s := State{3, 4}
	if s.Norm() != 5 {
		t.Errorf("expected norm 5, got %f", s.Norm())
	}

	c := s.Clone()
	c[0] = 99
	if s[0] != 3 {
		t.Error("Clone should not share backing storage")
	}

	d := s.Sub(State{1, 1})
	if d[0] != 2 || d[1] != 3 {
		t.Errorf("unexpected difference: %v", d)
	}

	if !s.IsValid() {
		t.Error("finite state should be valid")
	}
	if (State{1, math.NaN()}).IsValid() {
		t.Error("NaN state should be invalid")
	}
	if (State{math.Inf(1)}).IsValid() {
		t.Error("Inf state should be invalid")
	}
}

func TestSolution_Final(t *testing.T) {
	sol := &Solution{}
	if sol.Final() != nil {
		t.Error("empty solution should have nil final state")
	}

	sol.Append(0, State{1})
	sol.Append(1, State{2})
	if sol.Final()[0] != 2 {
		t.Errorf("expected final state 2, got %f", sol.Final()[0])
	}
}
