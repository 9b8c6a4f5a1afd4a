package descriptor

import (
	"fmt"
	"strings"

	"github.com/san-kum/ldsim/internal/ode"
)

// Pointwise is the function M(dx, x, p, t) integrated along trajectories
// to produce a descriptor value. It must be side-effect free.
type Pointwise func(dx, x ode.State, p ode.Params, t float64) float64

// Direction selects which trajectory branches contribute to the field.
type Direction int

const (
	Forward Direction = iota
	Backward
	Both
)

var directionNames = map[Direction]string{
	Forward:  "forward",
	Backward: "backward",
	Both:     "both",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

func (d Direction) valid() bool {
	_, ok := directionNames[d]
	return ok
}

func (d Direction) hasForward() bool  { return d == Forward || d == Both }
func (d Direction) hasBackward() bool { return d == Backward || d == Both }

// ParseDirection maps "forward", "backward", or "both" to a Direction.
func ParseDirection(s string) (Direction, error) {
	for d, name := range directionNames {
		if name == s {
			return d, nil
		}
	}
	return 0, &ConfigurationError{Option: "direction", Value: s, Accepted: []string{"forward", "backward", "both"}}
}

// Method selects the computation strategy.
type Method int

const (
	// Augmented integrates M alongside the trajectory via extra state
	// accumulators.
	Augmented Method = iota
	// Postprocessed solves the original system and integrates M over the
	// stored trajectory by quadrature.
	Postprocessed
)

var methodNames = map[Method]string{
	Augmented:     "augmented",
	Postprocessed: "postprocessed",
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

func (m Method) valid() bool {
	_, ok := methodNames[m]
	return ok
}

// ParseMethod maps "augmented" or "postprocessed" to a Method.
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if name == s {
			return m, nil
		}
	}
	return 0, &ConfigurationError{Option: "method", Value: s, Accepted: []string{"augmented", "postprocessed"}}
}

// ConfigurationError reports an unrecognized option value at construction
// time. No problem object is built when one is returned.
type ConfigurationError struct {
	Option   string
	Value    string
	Accepted []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("descriptor: invalid %s %q (accepted: %s)",
		e.Option, e.Value, strings.Join(e.Accepted, ", "))
}
