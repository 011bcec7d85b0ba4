package graphgen

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/bmssp/graph"
)

// Sentinel errors for malformed generator parameters.
var (
	ErrTooFewVertices     = errors.New("graphgen: n too small")
	ErrInvalidProbability = errors.New("graphgen: probability out of [0,1]")
)

const minVertices = 1

// Sparse returns an Erdős–Rényi-style random directed graph over n
// vertices: for every ordered pair (i, j) with i != j, an edge i->j is
// included independently with probability p, weighted uniformly in
// [1, maxWeight]. Trials are run in ascending (i, j) order so the result is
// deterministic for a fixed seed.
//
// Complexity: O(n^2) Bernoulli trials, O(n*p*n) expected edges.
func Sparse(n int, p float64, maxWeight graph.Length, seed uint64) (*graph.Graph, error) {
	if n < minVertices {
		return nil, fmt.Errorf("%s: n=%d: %w", "Sparse", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%.6f: %w", "Sparse", p, ErrInvalidProbability)
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	adj := make([][]graph.Edge, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() < p {
				w := 1 + graph.Length(rng.Float64())*(maxWeight-1)
				adj[i] = append(adj[i], graph.NewEdge(graph.Vertex(j), w))
			}
		}
	}

	return graph.NewGraph(adj)
}

// Chain returns a simple directed path 0 -> 1 -> ... -> n-1, each edge
// weighted uniformly in [1, maxWeight].
//
// Complexity: O(n).
func Chain(n int, maxWeight graph.Length, seed uint64) (*graph.Graph, error) {
	if n < minVertices {
		return nil, fmt.Errorf("%s: n=%d: %w", "Chain", n, ErrTooFewVertices)
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	adj := make([][]graph.Edge, n)
	for i := 0; i < n-1; i++ {
		w := 1 + graph.Length(rng.Float64())*(maxWeight-1)
		adj[i] = append(adj[i], graph.NewEdge(graph.Vertex(i+1), w))
	}

	return graph.NewGraph(adj)
}
