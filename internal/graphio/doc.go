// Package graphio reads graph datasets from plain-text formats into a
// *graph.Graph. Dataset loading is a concern of its own, separate from the
// bmssp engine: this package has no dependency on the bmssp or blockheap
// packages, only on graph.
//
// ReadEdgeList reads a simple "u v w" per-line format, one directed edge per
// line, vertex count inferred from the maximum index seen. ReadDIMACS reads
// the DIMACS shortest-path challenge format (a "p sp <n> <m>" problem line
// followed by "a <u> <v> <w>" arc lines, 1-indexed per the DIMACS
// convention). Both use the same scanner-driven, line-oriented parsing
// idiom: bufio.Scanner, trimmed lines, skip-blank, line-numbered error
// wrapping, plain bufio/strconv with no parsing library pulled in for
// either format.
package graphio
