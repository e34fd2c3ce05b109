package ivp

// Options controls a single Solve call. Tolerances are per-component
// error bounds: a step is accepted when the local error estimate stays
// below AbsTol + RelTol*|u| in every component.
//
// The defaults are RelTol=1e-6 and AbsTol=1e-8.
type Options struct {
	AbsTol float64
	RelTol float64

	// InitialStep is the first step size (fixed-step solvers use it for
	// every step). If 0, solvers pick (t1-t0)/100.
	InitialStep float64

	// MinStep aborts integration with ErrStepTooSmall when adaptive
	// control would shrink below it. If 0, 1e-12*(t1-t0) is used.
	MinStep float64

	// MaxSteps aborts with ErrMaxSteps. If 0, 1_000_000 is used.
	MaxSteps int

	// SaveSteps retains every accepted step in the Solution. SaveStart
	// additionally retains the initial sample. With both false only the
	// final state is kept.
	SaveSteps bool
	SaveStart bool
}

const (
	DefaultRelTol = 1e-6
	DefaultAbsTol = 1e-8
)

func DefaultOptions() Options {
	return Options{
		AbsTol: DefaultAbsTol,
		RelTol: DefaultRelTol,
	}
}

// Solution is the sampled trajectory of a Solve call. States[i] is the
// state at Times[i]; the last sample is always the state at t1.
type Solution struct {
	Times  []float64
	States []State
}

func (s *Solution) Final() State {
	if len(s.States) == 0 {
		return nil
	}
	return s.States[len(s.States)-1]
}

func (s *Solution) Append(t float64, u State) {
	s.Times = append(s.Times, t)
	s.States = append(s.States, u.Clone())
}

// Solver integrates du/dt = field(u, p, t) from u0 over [t0, t1] and
// returns the sampled trajectory. Implementations must be reentrant:
// concurrent Solve calls on one Solver value must not interfere.
type Solver interface {
	Name() string
	Solve(field VectorField, u0, p State, t0, t1 float64, opts Options) (*Solution, error)
}
