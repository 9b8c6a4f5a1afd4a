// Package descriptors provides stock pointwise descriptor functions.
package descriptors

import (
	"math"

	"github.com/san-kum/ldsim/internal/descriptor"
	"github.com/san-kum/ldsim/internal/ode"
)

// Arclength is the classic M = ||dx/dt||: the descriptor field measures
// trajectory arclength.
func Arclength() descriptor.Pointwise {
	return func(dx, x ode.State, p ode.Params, t float64) float64 {
		return dx.Norm()
	}
}

// PNorm is M = sum |dx_i/dt|^p, the p-norm family of descriptors.
func PNorm(p float64) descriptor.Pointwise {
	return func(dx, x ode.State, _ ode.Params, t float64) float64 {
		sum := 0.0
		for _, v := range dx {
			sum += math.Pow(math.Abs(v), p)
		}
		return sum
	}
}

// Unit is M = 1: the descriptor equals the elapsed integration time and
// serves as the reference scenario for sign conventions.
func Unit() descriptor.Pointwise {
	return func(dx, x ode.State, p ode.Params, t float64) float64 {
		return 1
	}
}

var registry = map[string]func() descriptor.Pointwise{
	"arclength": Arclength,
	"p2":        func() descriptor.Pointwise { return PNorm(2) },
	"p0.5":      func() descriptor.Pointwise { return PNorm(0.5) },
	"unit":      Unit,
}

// ByName returns a registered pointwise function, or nil if unknown.
func ByName(name string) descriptor.Pointwise {
	fn, ok := registry[name]
	if !ok {
		return nil
	}
	return fn()
}

// Names lists the registered descriptor function names.
func Names() []string {
	return []string{"arclength", "p2", "p0.5", "unit"}
}
