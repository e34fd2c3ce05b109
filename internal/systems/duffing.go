package systems

import "github.com/san-kum/contlab/internal/ivp"

// Duffing is the unforced Duffing oscillator with p = (alpha, beta, delta):
//
//	du1/dt = u2
//	du2/dt = -delta*u2 - alpha*u1 - beta*u1³
type Duffing struct{}

func NewDuffing() *Duffing { return &Duffing{} }

func (d *Duffing) Name() string { return "duffing" }
func (d *Duffing) Dim() int     { return 2 }

func (d *Duffing) Field() ivp.VectorField {
	return ivp.OutOfPlace(func(u, p ivp.State, _ float64) ivp.State {
		x, v := u[0], u[1]
		return ivp.State{v, -p[2]*v - p[0]*x - p[1]*x*x*x}
	})
}

func (d *Duffing) DefaultState() ivp.State  { return ivp.State{1.0, 0.0} }
func (d *Duffing) DefaultParams() ivp.State { return ivp.State{-1.0, 1.0, 0.3} }
func (d *Duffing) DefaultTSpan() []float64  { return []float64{0, 10.0} }
func (d *Duffing) ParamNames() []string     { return []string{"alpha", "beta", "delta"} }
