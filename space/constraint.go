package space

// Predicate evaluates a constraint over the current values of the
// parameters it was declared with, in that same declared order.
type Predicate func(values []int64) bool

// constraint binds a predicate to the declaration-order indices of the
// parameters it reads, so evaluation never has to resolve names at
// enumeration time.
type constraint struct {
	names   []string
	indices []int
	pred    Predicate
}

// ConstraintSet evaluates user-supplied predicates over parameter tuples
// and rejects infeasible points. A constraint referencing an unknown
// parameter is rejected at add time, not at evaluation time.
type ConstraintSet struct {
	registry    *Registry
	constraints []constraint
}

// NewConstraintSet returns an empty constraint set bound to reg. reg must
// already contain every parameter the constraints will reference.
func NewConstraintSet(reg *Registry) *ConstraintSet {
	return &ConstraintSet{registry: reg}
}

// AddConstraint registers pred, declared over the named parameters (in the
// order they must be supplied to pred). Returns ErrUnknownParameter if any
// name is not registered.
//
// Complexity: O(k) where k = len(names).
func (cs *ConstraintSet) AddConstraint(names []string, pred Predicate) error {
	indices := make([]int, len(names))
	for i, name := range names {
		idx, ok := cs.registry.IndexOf(name)
		if !ok {
			return ErrUnknownParameter
		}
		indices[i] = idx
	}

	nameCopy := make([]string, len(names))
	copy(nameCopy, names)

	cs.constraints = append(cs.constraints, constraint{names: nameCopy, indices: indices, pred: pred})

	return nil
}

// Evaluate checks every registered constraint against a candidate tuple,
// values, aligned with the registry's declaration order. Evaluation
// short-circuits on the first failing predicate.
//
// Complexity: O(c*k) worst case, c constraints each reading k parameters.
func (cs *ConstraintSet) Evaluate(values []int64) bool {
	buf := make([]int64, 0, 4)
	for _, c := range cs.constraints {
		buf = buf[:0]
		for _, idx := range c.indices {
			buf = append(buf, values[idx])
		}
		if !c.pred(buf) {
			return false
		}
	}

	return true
}

// Len returns the number of registered constraints.
func (cs *ConstraintSet) Len() int { return len(cs.constraints) }
