package systems

import (
	"fmt"
	"sort"

	"github.com/san-kum/ldsim/internal/ode"
)

// Named is a vector field with a default starting point.
type Named interface {
	ode.VectorField
	DefaultState() ode.State
}

var registry = map[string]func() Named{
	"saddle":      func() Named { return NewSaddle() },
	"duffing":     func() Named { return NewDuffing() },
	"pendulum":    func() Named { return NewPendulum() },
	"double_well": func() Named { return NewDoubleWell() },
}

// New returns a fresh instance of a registered system.
func New(name string) (Named, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown system: %s", name)
	}
	return fn(), nil
}

// List returns the registered system names, sorted.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
