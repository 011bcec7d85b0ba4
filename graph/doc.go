// Package graph defines the immutable directed-graph model shared by the
// bmssp engine and its collaborators.
//
// A Graph is a dense, zero-indexed adjacency list: vertices are the integers
// [0, n) and each vertex owns an ordered slice of outgoing Edges. Construction
// is a one-shot conversion from a list-of-lists (NewGraph); once built, a
// Graph is logically immutable for the lifetime of any computation that
// reads it, so distinct goroutines may safely run separate computations
// against the same *Graph concurrently.
//
// Edges compare first by Weight, then by To, so that a slice of Edges has a
// total, deterministic order even when weights tie (NaN weights are rejected
// at construction instead of being given a tie-break rule).
package graph
