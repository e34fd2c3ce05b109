package systems

import (
	"math"
	"testing"

	"github.com/san-kum/contlab/internal/ivp"
)

func TestRegistry(t *testing.T) {
	for _, name := range List() {
		sys, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%q) failed: %v", name, err)
		}
		if sys.Name() != name {
			t.Errorf("Get(%q) returned system named %q", name, sys.Name())
		}
		if len(sys.DefaultState()) != sys.Dim() {
			t.Errorf("%s: default state has %d components for dimension %d", name, len(sys.DefaultState()), sys.Dim())
		}
		if len(sys.DefaultParams()) != len(sys.ParamNames()) {
			t.Errorf("%s: %d default parameters for %d names", name, len(sys.DefaultParams()), len(sys.ParamNames()))
		}
		if len(sys.DefaultTSpan()) != 2 {
			t.Errorf("%s: default tspan must have two elements", name)
		}
		if !sys.Field().Defined() {
			t.Errorf("%s: field not defined", name)
		}
	}

	if _, err := Get("brusselator"); err == nil {
		t.Error("expected error for unknown system")
	}
}

func TestHopf_FieldValues(t *testing.T) {
	sys := NewHopf()
	du := make(ivp.State, 2)

	// on the unit circle with p=(1,-1) the radial part cancels
	sys.Field().Eval(du, ivp.State{1, 0}, ivp.State{1, -1}, 0)
	if du[0] != 0 {
		t.Errorf("expected du1 = 0 on the unit circle, got %g", du[0])
	}
	if du[1] != 1 {
		t.Errorf("expected du2 = 1 on the unit circle, got %g", du[1])
	}
}

func TestHopf_UnitCircleIsInvariant(t *testing.T) {
	sys := NewHopf()
	du := make(ivp.State, 2)
	p := ivp.State{1, -1}

	for _, theta := range []float64{0, 0.7, 1.9, 3.5, 5.2} {
		u := ivp.State{math.Cos(theta), math.Sin(theta)}
		sys.Field().Eval(du, u, p, 0)

		// radial velocity u·du must vanish on the orbit
		radial := u[0]*du[0] + u[1]*du[1]
		if math.Abs(radial) > 1e-12 {
			t.Errorf("theta=%.2f: radial velocity %g, expected 0", theta, radial)
		}
	}
}

func TestVanDerPol_FieldValues(t *testing.T) {
	sys := NewVanDerPol()
	du := make(ivp.State, 2)

	sys.Field().Eval(du, ivp.State{2, 0}, ivp.State{1}, 0)
	if du[0] != 0 {
		t.Errorf("expected du1 = 0 at rest, got %g", du[0])
	}
	if du[1] != -2 {
		t.Errorf("expected du2 = -2, got %g", du[1])
	}
}

func TestLorenz_FixedPointAtOrigin(t *testing.T) {
	sys := NewLorenz()
	du := make(ivp.State, 3)

	sys.Field().Eval(du, ivp.State{0, 0, 0}, sys.DefaultParams(), 0)
	for i, v := range du {
		if v != 0 {
			t.Errorf("component %d: origin must be a fixed point, got %g", i, v)
		}
	}
}

func TestDuffing_Wells(t *testing.T) {
	sys := NewDuffing()
	du := make(ivp.State, 2)
	p := sys.DefaultParams() // alpha=-1, beta=1: wells at x=±1

	for _, x := range []float64{1, -1} {
		sys.Field().Eval(du, ivp.State{x, 0}, p, 0)
		if du[0] != 0 || du[1] != 0 {
			t.Errorf("x=%g must be a fixed point, got %v", x, du)
		}
	}
}
