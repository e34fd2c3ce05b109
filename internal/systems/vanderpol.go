package systems

import "github.com/san-kum/contlab/internal/ivp"

// VanDerPol is the Van der Pol oscillator with p = (mu):
//
//	du1/dt = u2
//	du2/dt = mu*(1 - u1²)*u2 - u1
//
// Written in the in-place convention.
type VanDerPol struct{}

func NewVanDerPol() *VanDerPol { return &VanDerPol{} }

func (v *VanDerPol) Name() string { return "vanderpol" }
func (v *VanDerPol) Dim() int     { return 2 }

func (v *VanDerPol) Field() ivp.VectorField {
	return ivp.InPlace(func(du, u, p ivp.State, _ float64) {
		du[0] = u[1]
		du[1] = p[0]*(1-u[0]*u[0])*u[1] - u[0]
	})
}

func (v *VanDerPol) DefaultState() ivp.State  { return ivp.State{2.0, 0.0} }
func (v *VanDerPol) DefaultParams() ivp.State { return ivp.State{1.0} }

// DefaultTSpan is close to the mu=1 limit cycle period, a good starting
// span for a periodic shooting setup.
func (v *VanDerPol) DefaultTSpan() []float64 { return []float64{0, 6.6633} }
func (v *VanDerPol) ParamNames() []string    { return []string{"mu"} }
