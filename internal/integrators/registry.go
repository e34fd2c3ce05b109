package integrators

import (
	"fmt"
	"sort"

	"github.com/san-kum/contlab/internal/ivp"
)

var factories = map[string]func() ivp.Solver{
	"rk45":  func() ivp.Solver { return NewRK45() },
	"rk4":   func() ivp.Solver { return NewRK4() },
	"euler": func() ivp.Solver { return NewEuler() },
}

// Get returns a fresh solver by name.
func Get(name string) (ivp.Solver, error) {
	fn, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

// Default is the method used when a caller does not pick one.
func Default() ivp.Solver { return NewRK45() }

func List() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
