package continuation

import (
	"errors"
	"testing"
)

func TestAddVariable(t *testing.T) {
	prob := NewProblem()

	v, err := prob.AddVariable("osc.u", 2, []float64{1, 0})
	if err != nil {
		t.Fatalf("AddVariable failed: %v", err)
	}
	if v.Dim != 2 || v.Values[0] != 1 || v.Values[1] != 0 {
		t.Errorf("unexpected variable: %+v", v)
	}

	if _, err := prob.AddVariable("osc.u", 2, nil); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}

	if _, err := prob.AddVariable("osc.p", 2, []float64{1}); !errors.Is(err, ErrDimension) {
		t.Errorf("expected ErrDimension for short init, got %v", err)
	}
	if prob.NumVars() != 1 {
		t.Errorf("failed registrations must not leave variables behind, have %d", prob.NumVars())
	}

	// nil init means zeros
	z, err := prob.AddVariable("osc.z", 3, nil)
	if err != nil {
		t.Fatalf("AddVariable with nil init failed: %v", err)
	}
	for i, val := range z.Values {
		if val != 0 {
			t.Errorf("expected zero init at %d, got %f", i, val)
		}
	}
}

func TestAddVariable_ZeroDim(t *testing.T) {
	prob := NewProblem()

	v, err := prob.AddVariable("sys.p", 0, nil)
	if err != nil {
		t.Fatalf("zero-dimensional variable should register: %v", err)
	}
	if err := prob.AddParameters(nil, v, false); err != nil {
		t.Errorf("empty parameter binding should succeed: %v", err)
	}
}

func TestAddFunction(t *testing.T) {
	prob := NewProblem()
	u, _ := prob.AddVariable("osc.u", 2, []float64{1, 2})

	fn := func(out []float64, args ...[]float64) error {
		out[0] = args[0][0] + args[0][1]
		return nil
	}

	if _, err := prob.AddFunction("osc", 1, fn, u); err != nil {
		t.Fatalf("AddFunction failed: %v", err)
	}
	if _, err := prob.AddFunction("osc", 1, fn, u); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}

	foreign := &Var{Name: "other.u", Dim: 1, Values: []float64{0}}
	if _, err := prob.AddFunction("osc2", 1, fn, foreign); !errors.Is(err, ErrUnknownName) {
		t.Errorf("expected ErrUnknownName for foreign variable, got %v", err)
	}

	out := make([]float64, 1)
	if err := prob.EvalFunc("osc", out); err != nil {
		t.Fatalf("EvalFunc failed: %v", err)
	}
	if out[0] != 3 {
		t.Errorf("expected 3, got %f", out[0])
	}

	if err := prob.EvalFunc("osc", make([]float64, 2)); !errors.Is(err, ErrDimension) {
		t.Errorf("expected ErrDimension for wrong buffer, got %v", err)
	}
	if err := prob.EvalFunc("nope", out); !errors.Is(err, ErrUnknownName) {
		t.Errorf("expected ErrUnknownName, got %v", err)
	}
}

func TestAddParameters_Atomic(t *testing.T) {
	prob := NewProblem()
	p, _ := prob.AddVariable("osc.p", 2, []float64{1, -1})

	if err := prob.AddParameters([]string{"mu"}, p, false); !errors.Is(err, ErrDimension) {
		t.Errorf("expected ErrDimension for short name list, got %v", err)
	}
	if len(prob.Parameters()) != 0 {
		t.Error("failed AddParameters must not register any name")
	}

	if err := prob.AddParameters([]string{"mu", "a"}, p, false); err != nil {
		t.Fatalf("AddParameters failed: %v", err)
	}

	// second binding set colliding on one name must not register the other
	q, _ := prob.AddVariable("osc.q", 2, nil)
	if err := prob.AddParameters([]string{"b", "mu"}, q, false); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}
	if len(prob.Parameters()) != 2 {
		t.Errorf("expected 2 parameters after failed binding, got %d", len(prob.Parameters()))
	}
}

func TestParameters_ValuesAndActivation(t *testing.T) {
	prob := NewProblem()
	p, _ := prob.AddVariable("osc.p", 2, []float64{1, -1})
	if err := prob.AddParameters([]string{"mu", "a"}, p, false); err != nil {
		t.Fatalf("AddParameters failed: %v", err)
	}

	params := prob.Parameters()
	if params[0].Name != "mu" || params[0].Value != 1 || params[0].Active {
		t.Errorf("unexpected first parameter: %+v", params[0])
	}
	if params[1].Name != "a" || params[1].Value != -1 {
		t.Errorf("unexpected second parameter: %+v", params[1])
	}

	if err := prob.SetParameter("a", -0.5); err != nil {
		t.Fatalf("SetParameter failed: %v", err)
	}
	if p.Values[1] != -0.5 {
		t.Errorf("SetParameter must write the variable slot, got %f", p.Values[1])
	}

	if err := prob.Activate("mu"); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}
	if !prob.Parameters()[0].Active {
		t.Error("mu should be active")
	}
	if err := prob.Deactivate("mu"); err != nil {
		t.Fatalf("Deactivate failed: %v", err)
	}
	if prob.Parameters()[0].Active {
		t.Error("mu should be inactive again")
	}

	if err := prob.Activate("nope"); !errors.Is(err, ErrUnknownName) {
		t.Errorf("expected ErrUnknownName, got %v", err)
	}
}

func TestSetVariable(t *testing.T) {
	prob := NewProblem()
	v, _ := prob.AddVariable("osc.u", 2, []float64{1, 0})

	if err := prob.SetVariable("osc.u", []float64{3, 4}); err != nil {
		t.Fatalf("SetVariable failed: %v", err)
	}
	if v.Values[0] != 3 || v.Values[1] != 4 {
		t.Errorf("unexpected values: %v", v.Values)
	}
	if v.Initial[0] != 1 {
		t.Error("SetVariable must not touch the initial value")
	}

	if err := prob.SetVariable("osc.u", []float64{1}); !errors.Is(err, ErrDimension) {
		t.Errorf("expected ErrDimension, got %v", err)
	}
	if err := prob.SetVariable("nope", []float64{1, 2}); !errors.Is(err, ErrUnknownName) {
		t.Errorf("expected ErrUnknownName, got %v", err)
	}
}
