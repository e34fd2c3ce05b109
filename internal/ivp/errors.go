package ivp

import (
	"errors"
	"fmt"
)

// Integration failure modes. Callers are expected to treat any of these
// as a failed evaluation and retry with a different trial point; no
// recovery happens below this layer.
var (
	// ErrStepTooSmall indicates adaptive step control underflowed MinStep.
	ErrStepTooSmall = errors.New("ivp: step size below minimum")

	// ErrMaxSteps indicates the step budget ran out before reaching t1.
	ErrMaxSteps = errors.New("ivp: maximum step count exceeded")

	// ErrInvalidState indicates the integrated state went NaN or Inf.
	ErrInvalidState = errors.New("ivp: invalid state (NaN or Inf detected)")
)

// IntegrationError wraps a failure with the time and step at which the
// integrator gave up.
type IntegrationError struct {
	T    float64
	Step int
	Err  error
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("integration failed at step %d (t=%.6g): %v", e.Step, e.T, e.Err)
}

func (e *IntegrationError) Unwrap() error {
	return e.Err
}
