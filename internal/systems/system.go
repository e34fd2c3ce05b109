// Package systems ships the built-in parametrized vector fields used to
// exercise shooting problems from the CLI and the tests.
package systems

import (
	"fmt"
	"sort"

	"github.com/san-kum/contlab/internal/ivp"
)

// System is a named vector field with sensible starting values for a
// shooting setup.
type System interface {
	Name() string
	Dim() int
	Field() ivp.VectorField
	DefaultState() ivp.State
	DefaultParams() ivp.State
	DefaultTSpan() []float64
	ParamNames() []string
}

var factories = map[string]func() System{
	"hopf":      func() System { return NewHopf() },
	"vanderpol": func() System { return NewVanDerPol() },
	"lorenz":    func() System { return NewLorenz() },
	"duffing":   func() System { return NewDuffing() },
}

func Get(name string) (System, error) {
	fn, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown system: %s", name)
	}
	return fn(), nil
}

func List() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
