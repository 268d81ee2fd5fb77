// Package config loads a tuning session - parameters, a closed set of
// constraint kinds, thread geometry, and a strategy selection - from a
// YAML document.
//
// Go constraints in the space package are arbitrary predicates and cannot
// be serialized; this package supports only a small closed set of
// constraint kinds (divisible, equals, lessEqual, lessThan) over exactly
// two parameter names. Arbitrary predicates still require calling
// space.ConstraintSet.AddConstraint directly from Go. This is a
// deliberate restriction of the YAML surface, not a gap in the core.
//
// Load aggregates every problem found in one document - missing fields,
// unknown constraint kinds, unknown parameters, an unknown strategy name
// - into a single error via github.com/hashicorp/go-multierror, instead
// of stopping at the first one.
package config
