// Package graphgen generates random directed graphs for benchmarking and
// property testing, producing plain *graph.Graph values with no dependency
// on the bmssp engine itself.
//
// Sparse builds an Erdős–Rényi graph: include each admissible directed edge
// independently with probability p, in ascending (i, j) trial order for
// determinism given a fixed seed. Chain builds a simple directed path. Both
// emit graph.Graph directly since graph.Graph has no mutation API to build
// up incrementally — it is logically immutable once constructed.
package graphgen
