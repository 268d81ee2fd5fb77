// Package kerntune is a search-space construction and search-strategy
// library for auto-tuning parameterized GPU compute kernels.
//
// Given a kernel whose source exposes tunable symbolic parameters (tile
// sizes, unroll factors, vector widths, work-group dimensions), kerntune
// builds the space of feasible parameter assignments and explores it with
// a pluggable strategy, using measured per-configuration runtimes (or an
// infeasibility marker) as the objective. It does not compile kernels,
// bind arguments, validate output, or talk to a GPU API - those stay the
// caller's responsibility; kerntune consumes only an evaluate function.
//
// Subpackages:
//
//	space/  — parameter registry, constraint engine, thread-geometry
//	          model, and the Cartesian-product-minus-constraints enumerator
//	search/ — the Searcher contract and its four strategies: full,
//	          random, simulated annealing, particle swarm
//	tuner/  — a session that drives a Searcher against an evaluator and
//	          ranks the results
//	config/ — loads a tuning session from a YAML document
package kerntune
