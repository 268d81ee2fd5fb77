package space

import "strconv"

// Space is the ordered sequence of feasible configurations produced by
// enumeration: the Cartesian product over parameters in declaration order,
// filtered by a ConstraintSet. Once built, a Space is immutable and safe to
// share by reference across every searcher in a tuning session.
//
// Invariants:
//  1. every entry satisfies all constraints;
//  2. entries are pairwise distinct;
//  3. order is deterministic given identical inputs (lexicographic over
//     parameter declaration order, first parameter most significant).
type Space struct {
	registry *Registry
	configs  []Configuration

	// membership maps an encoded value-tuple to its configuration index,
	// so strategies can test "is this tuple feasible, and if so at what
	// index" without materializing a neighbour graph.
	membership map[string]int
}

// Build enumerates the Cartesian product of reg's parameters in
// declaration order, keeps only tuples accepted by cs, and returns the
// resulting Space. Returns ErrEmptySearchSpace if the result is empty.
//
// Complexity: O(P * C) where P is the size of the unfiltered Cartesian
// product and C is the cost of one ConstraintSet.Evaluate call.
func Build(reg *Registry, cs *ConstraintSet) (*Space, error) {
	params := reg.Parameters()
	n := len(params)

	sp := &Space{registry: reg, membership: make(map[string]int)}

	if n == 0 {
		return nil, ErrEmptySearchSpace
	}

	values := make([]int64, n)

	var advance func(axis int)
	advance = func(axis int) {
		if axis == n {
			if cs != nil && !cs.Evaluate(values) {
				return
			}
			key := encodeKey(values)
			if _, dup := sp.membership[key]; dup {
				// Defensive: the Cartesian product cannot produce
				// duplicates by construction.
				return
			}

			cfgValues := make([]int64, n)
			copy(cfgValues, values)
			idx := len(sp.configs)
			sp.configs = append(sp.configs, Configuration{index: idx, values: cfgValues})
			sp.membership[key] = idx

			return
		}

		p := params[axis]
		for _, v := range p.values {
			values[axis] = v
			advance(axis + 1)
		}
	}
	advance(0)

	if len(sp.configs) == 0 {
		return nil, ErrEmptySearchSpace
	}

	return sp, nil
}

// encodeKey renders a value tuple into a collision-free string key.
func encodeKey(values []int64) string {
	buf := make([]byte, 0, len(values)*8)
	for _, v := range values {
		buf = strconv.AppendInt(buf, v, 10)
		buf = append(buf, '|')
	}

	return string(buf)
}

// Len returns the number of feasible configurations in the space.
func (s *Space) Len() int { return len(s.configs) }

// Registry returns the parameter registry the space was built from.
func (s *Space) Registry() *Registry { return s.registry }

// At returns the configuration at a given stable index.
func (s *Space) At(index int) Configuration { return s.configs[index] }

// Configurations returns the full, declaration-order-deterministic list of
// feasible configurations. The returned slice is owned by the caller.
func (s *Space) Configurations() []Configuration {
	out := make([]Configuration, len(s.configs))
	copy(out, s.configs)

	return out
}

// IndexOf looks up the stable index of a value tuple, returning false if
// the tuple is not a feasible configuration in this space.
func (s *Space) IndexOf(values []int64) (int, bool) {
	idx, ok := s.membership[encodeKey(values)]

	return idx, ok
}

// Positions decodes a configuration index into a per-parameter position
// vector: positions[i] is the index of the configuration's i-th parameter
// value within that parameter's declared value list. PSO-style strategies
// operate on this representation.
func (s *Space) Positions(index int) []int {
	cfg := s.configs[index]
	out := make([]int, len(cfg.values))
	for i, v := range cfg.values {
		pos, _ := s.registry.At(i).PositionOf(v)
		out[i] = pos
	}

	return out
}

// IndexOfPositions encodes a per-parameter position vector back to a
// configuration index, returning false if the resulting tuple is not
// feasible in this space. It is the inverse of Positions, and used by PSO
// after a coordinate-wise position update.
func (s *Space) IndexOfPositions(positions []int) (int, bool) {
	values := make([]int64, len(positions))
	for i, pos := range positions {
		values[i] = s.registry.At(i).ValueAt(pos)
	}

	return s.IndexOf(values)
}

// Neighbours returns every configuration index whose value tuple differs
// from the configuration at index in exactly one parameter (Hamming-1 in
// parameter space). Neighbours are computed on demand by enumerating
// per-parameter substitutions and filtering by the space's membership map;
// the full neighbour graph is never materialized, since for D parameters
// it would cost O(N * Σ(v_i - 1)) space up front for a relation most
// searches only ever walk a few steps of.
//
// Complexity: O(Σ(v_i - 1)) where v_i is the value-list length of
// parameter i.
func (s *Space) Neighbours(index int) []int {
	cfg := s.configs[index]
	n := len(cfg.values)

	var out []int
	candidate := make([]int64, n)
	copy(candidate, cfg.values)

	for axis := 0; axis < n; axis++ {
		p := s.registry.At(axis)
		original := candidate[axis]
		for _, v := range p.values {
			if v == original {
				continue
			}
			candidate[axis] = v
			if nbrIdx, ok := s.IndexOf(candidate); ok {
				out = append(out, nbrIdx)
			}
		}
		candidate[axis] = original
	}

	return out
}
