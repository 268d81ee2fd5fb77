// Package search implements the pluggable search strategies that traverse
// a built space.Space using measured per-configuration execution times as
// an objective function: full exhaustive enumeration, uniform random
// sampling, simulated annealing, and particle swarm optimization.
//
// Every strategy shares the same Searcher contract: the driver calls
// Configuration(), evaluates it externally, calls Report(cost), then
// Next(). No strategy blocks, spawns a goroutine, or shares state with
// another searcher; each owns its own PRNG, since math/rand.Rand is not
// safe for concurrent use (see rng.go).
package search
