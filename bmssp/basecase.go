package bmssp

import (
	"github.com/katalvlaran/bmssp/blockheap"
	"github.com/katalvlaran/bmssp/graph"
	"github.com/katalvlaran/bmssp/heap"
)

// baseCase runs a Dijkstra-style expansion from the single source in s,
// bounded by ceiling b and by count k+1. s must contain exactly one vertex;
// any other length is a programmer error and panics.
func (e *Engine) baseCase(b graph.Length, s []graph.Vertex) blockheap.Entry {
	if len(s) != 1 {
		panic("bmssp: base case requires exactly one source vertex")
	}
	x := s[0]

	u0 := map[graph.Vertex]bool{x: true}
	h := heap.New()
	h.Push(x, e.dhat[x])

	for !h.IsEmpty() && len(u0) < e.k+1 {
		u, _, _ := h.Pop()
		u0[u] = true

		edges, err := e.g.Out(u)
		if err != nil {
			panic(err)
		}
		for _, edge := range edges {
			v, wt := edge.To, edge.Weight
			cand := e.dhat[u] + wt
			if e.dhat[v] >= cand && cand < b {
				e.dhat[v] = cand
				h.Push(v, cand)
			}
		}
	}

	if len(u0) <= e.k {
		out := make([]graph.Vertex, 0, len(u0))
		for v := range u0 {
			out = append(out, v)
		}
		return blockheap.Entry{B: b, U: out}
	}

	// Shed the maximum-distance member(s) so the returned set is strictly
	// below the tightened bound, keeping the recursion's bound monotone.
	bPrime := graph.Length(0)
	first := true
	for v := range u0 {
		if first || e.dhat[v] > bPrime {
			bPrime = e.dhat[v]
			first = false
		}
	}

	out := make([]graph.Vertex, 0, len(u0))
	for v := range u0 {
		if e.dhat[v] < bPrime {
			out = append(out, v)
		}
	}

	return blockheap.Entry{B: bPrime, U: out}
}
