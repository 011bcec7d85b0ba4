// Package bmssp implements a single-source shortest-path engine for
// directed graphs with non-negative weights, using the recursive bounded
// multi-source relaxation (BMSSP) algorithm: a divide-and-conquer frontier
// expansion that partitions the active frontier into pivot-rooted subtrees
// and processes distance-contiguous "blocks" of vertices, instead of
// popping one vertex at a time off a single priority queue the way
// classical Dijkstra does.
//
// The public surface is deliberately small: construct an Engine over a
// *graph.Graph with New, then call Compute(source) to get a Distances slice
// (index v is the shortest distance from source to v, +Inf if unreachable).
// Everything else — pivot finding, the base case, and the recursive bmssp
// step — is internal machinery described in the package's other files.
//
// One Engine's working state (dhat, prev, tree sizes, pivot forest) is
// exclusively owned by that Engine for the duration of a single Compute
// call and reset at the start of the next one; concurrent Compute calls on
// the *same* Engine are undefined, but distinct Engines sharing the same
// read-only *graph.Graph may run concurrently.
package bmssp
