// Package space builds the feasible configuration space of a parameterized
// GPU kernel: a parameter registry, an inter-parameter constraint engine, a
// thread-geometry model, and the enumerator that ties the three together
// into an ordered, deduplicated list of feasible configurations.
//
// Design goals:
//   - Determinism: identical declaration order + identical constraints
//     always produce the identical configuration ordering.
//   - Strict sentinels: only errors declared in types.go; no fmt.Errorf
//     where a sentinel suffices.
//   - Zero surprises: a Space, once built, is immutable and safe to share
//     by reference across every searcher in a tuning session.
package space
