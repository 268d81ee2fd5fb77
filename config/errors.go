package config

import "errors"

// ErrUnknownConstraintKind is returned when a ConstraintSpec names a kind
// outside the closed set (divisible, equals, lessEqual, lessThan).
var ErrUnknownConstraintKind = errors.New("config: unknown constraint kind")

// ErrUnknownStrategy is returned when a StrategySpec names a strategy
// other than full, random, annealing, pso.
var ErrUnknownStrategy = errors.New("config: unknown strategy")

// ErrMissingField is returned when a required field is empty or zero
// where the schema requires a value (a parameter with no name or no
// values, a constraint with other than two parameter names).
var ErrMissingField = errors.New("config: missing required field")
