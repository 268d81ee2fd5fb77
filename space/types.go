package space

import "errors"

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

var (
	// ErrDuplicateParameter is returned when adding a parameter whose name
	// already exists in the registry.
	ErrDuplicateParameter = errors.New("space: duplicate parameter name")

	// ErrEmptyValues is returned when a parameter is declared with no
	// allowed values.
	ErrEmptyValues = errors.New("space: parameter has no allowed values")

	// ErrUnknownParameter is returned when a constraint or a thread
	// modifier names a parameter that was never registered.
	ErrUnknownParameter = errors.New("space: unknown parameter name")

	// ErrEmptySearchSpace is returned by Build when enumeration (Cartesian
	// product filtered by constraints) yields zero configurations.
	ErrEmptySearchSpace = errors.New("space: enumeration produced an empty search space")

	// ErrInvalidAxis is returned when a thread modifier names an axis
	// outside the dimensions of the base work size it targets.
	ErrInvalidAxis = errors.New("space: axis index out of range")

	// ErrInvalidGeometry is returned when a base global/local work size has
	// zero or more than three dimensions.
	ErrInvalidGeometry = errors.New("space: base work size must have 1-3 dimensions")
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Parameter
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Parameter is a named discrete axis with an ordered, non-empty set of
// integer values. Two parameters are equal iff their names match.
type Parameter struct {
	name   string
	values []int64

	// posOf maps a value to its position within values, so PSO-style
	// strategies can address a parameter by value-list index rather than
	// by raw value.
	posOf map[int64]int
}

// Name returns the parameter's declared name.
func (p Parameter) Name() string { return p.name }

// Values returns a copy of the parameter's ordered allowed values. The
// caller may not mutate the registry's internal state through it.
func (p Parameter) Values() []int64 {
	out := make([]int64, len(p.values))
	copy(out, p.values)

	return out
}

// Len returns the number of allowed values for this parameter.
func (p Parameter) Len() int { return len(p.values) }

// ValueAt returns the value at a given position in the declared value list.
func (p Parameter) ValueAt(pos int) int64 { return p.values[pos] }

// PositionOf returns the position of a value in the declared value list.
func (p Parameter) PositionOf(value int64) (int, bool) {
	pos, ok := p.posOf[value]

	return pos, ok
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Configuration
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Configuration is a total mapping from parameter name to one of its
// allowed values, along with the stable index it was assigned during
// enumeration. Configurations are immutable once constructed by Build.
type Configuration struct {
	index  int
	values []int64 // aligned with the registry's declaration order
}

// Index returns the configuration's stable position (0..N-1) in the space
// that produced it.
func (c Configuration) Index() int { return c.index }

// Values returns a copy of the configuration's values, in parameter
// declaration order.
func (c Configuration) Values() []int64 {
	out := make([]int64, len(c.values))
	copy(out, c.values)

	return out
}

// Equal reports whether two configurations carry the same values in the
// same declared order. It does not compare indices, so configurations
// drawn from different (but structurally identical) spaces still compare
// equal when their content matches.
func (c Configuration) Equal(other Configuration) bool {
	if len(c.values) != len(other.values) {
		return false
	}
	for i, v := range c.values {
		if other.values[i] != v {
			return false
		}
	}

	return true
}
