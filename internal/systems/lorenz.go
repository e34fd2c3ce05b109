package systems

import "github.com/san-kum/contlab/internal/ivp"

// Lorenz is the Lorenz system with p = (sigma, rho, beta).
type Lorenz struct{}

func NewLorenz() *Lorenz { return &Lorenz{} }

func (l *Lorenz) Name() string { return "lorenz" }
func (l *Lorenz) Dim() int     { return 3 }

func (l *Lorenz) Field() ivp.VectorField {
	return ivp.InPlace(func(du, u, p ivp.State, _ float64) {
		du[0] = p[0] * (u[1] - u[0])
		du[1] = u[0]*(p[1]-u[2]) - u[1]
		du[2] = u[0]*u[1] - p[2]*u[2]
	})
}

func (l *Lorenz) DefaultState() ivp.State  { return ivp.State{1.0, 1.0, 1.0} }
func (l *Lorenz) DefaultParams() ivp.State { return ivp.State{10.0, 28.0, 8.0 / 3.0} }
func (l *Lorenz) DefaultTSpan() []float64  { return []float64{0, 1.0} }
func (l *Lorenz) ParamNames() []string     { return []string{"sigma", "rho", "beta"} }
