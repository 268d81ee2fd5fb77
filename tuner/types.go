package tuner

import "github.com/katalvlaran/kerntune/search"

// InfeasibilityKind classifies why the external runner could not produce a
// runtime for a configuration. The core never branches on the specific
// kind — all of them collapse to search.InfeasibleCost() — but a driver
// needs a concrete type to report through EvaluateFunc rather than
// inventing its own.
type InfeasibilityKind int

const (
	// CompileFailed means the generated kernel source did not build.
	CompileFailed InfeasibilityKind = iota
	// ResourceExceeded means the configuration exceeds a device limit
	// (local memory, work-group size, register pressure).
	ResourceExceeded
	// LaunchFailed means the kernel built but could not be launched.
	LaunchFailed
	// ValidationFailed means the kernel ran but its output did not match
	// the reference.
	ValidationFailed
)

// String renders the infeasibility kind for logging.
func (k InfeasibilityKind) String() string {
	switch k {
	case CompileFailed:
		return "CompileFailed"
	case ResourceExceeded:
		return "ResourceExceeded"
	case LaunchFailed:
		return "LaunchFailed"
	case ValidationFailed:
		return "ValidationFailed"
	default:
		return "Unknown"
	}
}

// EvaluateResult is what an EvaluateFunc returns: either a measured runtime
// in seconds, or an infeasibility kind explaining why none was produced.
type EvaluateResult struct {
	Seconds  float64
	Feasible bool
	Kind     InfeasibilityKind
}

// EvaluateFunc compiles and runs the configuration at the given space
// index and reports a runtime in seconds or an infeasibility kind. This is
// the one abstract boundary the core consumes from the external GPU-API
// wrapper, kernel-source layer, and reference-output validator.
type EvaluateFunc func(index int) EvaluateResult

// toCost collapses an EvaluateResult into the tagged search.Cost the core
// operates on, discarding the specific InfeasibilityKind: every failure
// mode maps to the same infeasibility sentinel, since no strategy branches
// on why a configuration failed.
func toCost(r EvaluateResult) search.Cost {
	if !r.Feasible {
		return search.InfeasibleCost()
	}

	return search.FeasibleCost(r.Seconds)
}
