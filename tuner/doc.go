// Package tuner wires a built search space and a searcher to an external
// kernel evaluator and accumulates the results into a ranked list.
//
// Session runs the loop a driver would otherwise hand-roll: configuration
// -> evaluate -> report -> next, repeated until the searcher declares
// itself done. Nothing here touches a GPU API, kernel source, or a CLI; it
// only drives the contract exposed by the space and search packages.
package tuner
