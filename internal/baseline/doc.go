// Package baseline implements classical Dijkstra over a *graph.Graph: a
// comparison baseline, not part of the bmssp engine itself. It exists so
// the property tests in bmssp_test.go (elementwise equality against
// classical Dijkstra) and the CLI's --verify flag have a trusted reference
// implementation that does not share a single line of recursion logic with
// the engine it is checking.
//
// A lazy-decrease-key container/heap runner over graph.Graph's dense
// integer vertices.
package baseline
