package systems

import (
	"math"

	"github.com/san-kum/contlab/internal/ivp"
)

// Hopf is the Hopf normal form
//
//	du1/dt = p1*u1 - u2 + p2*u1*(u1² + u2²)
//	du2/dt = u1 + p1*u2 + p2*u2*(u1² + u2²)
//
// With p = (1, -1) the unit circle is an exact periodic orbit of period
// 2π, which makes it the standard smoke test for periodic shooting.
type Hopf struct{}

func NewHopf() *Hopf { return &Hopf{} }

func (h *Hopf) Name() string { return "hopf" }
func (h *Hopf) Dim() int     { return 2 }

func (h *Hopf) Field() ivp.VectorField {
	return ivp.OutOfPlace(func(u, p ivp.State, _ float64) ivp.State {
		r2 := u[0]*u[0] + u[1]*u[1]
		return ivp.State{
			p[0]*u[0] - u[1] + p[1]*u[0]*r2,
			u[0] + p[0]*u[1] + p[1]*u[1]*r2,
		}
	})
}

func (h *Hopf) DefaultState() ivp.State  { return ivp.State{1.0, 0.0} }
func (h *Hopf) DefaultParams() ivp.State { return ivp.State{1.0, -1.0} }
func (h *Hopf) DefaultTSpan() []float64  { return []float64{0, 2 * math.Pi} }
func (h *Hopf) ParamNames() []string     { return []string{"mu", "a"} }
