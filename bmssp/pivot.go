package bmssp

import "github.com/katalvlaran/bmssp/graph"

// pivots is the result of findPivots: p are the "heavy" roots (a subset of
// s) whose shortest-path subtree reached at least k vertices, and w is
// every vertex the bounded relaxation reached (including s).
type pivots struct {
	p []graph.Vertex
	w []graph.Vertex
}

// findPivots runs a bounded, breadth-limited relaxation from the frontier s
// under ceiling b, for up to k rounds. If the frontier grows to at least
// k*len(s) vertices before k rounds elapse, it returns early with every
// source as its own pivot. Otherwise it builds the pivot forest over the
// reached set and promotes sources whose subtree size is ≥ k.
func (e *Engine) findPivots(b graph.Length, s []graph.Vertex) pivots {
	inW := make(map[graph.Vertex]bool, len(s))
	w := make([]graph.Vertex, 0, len(s))
	for _, v := range s {
		if !inW[v] {
			inW[v] = true
			w = append(w, v)
		}
		e.prev[v] = noParent
	}

	wp := append([]graph.Vertex(nil), s...)

	for round := 0; round < e.k; round++ {
		inWi := make(map[graph.Vertex]bool)
		wi := make([]graph.Vertex, 0)

		for _, u := range wp {
			edges, err := e.g.Out(u)
			if err != nil {
				panic(err) // u always came from a previously validated vertex
			}
			for _, edge := range edges {
				v, wt := edge.To, edge.Weight
				cand := e.dhat[u] + wt
				// Reflexive ≥ lets an equal-cost alternative still take a
				// parent under prev; this only changes which sources
				// become pivots, never the returned distances.
				if e.dhat[v] >= cand && cand < b {
					e.dhat[v] = cand
					e.prev[v] = int(u)
					if !inWi[v] {
						inWi[v] = true
						wi = append(wi, v)
					}
				}
			}
		}

		for _, v := range wi {
			if !inW[v] {
				inW[v] = true
				w = append(w, v)
			}
		}

		if len(w) >= e.k*len(s) {
			return pivots{p: append([]graph.Vertex(nil), s...), w: w}
		}

		wp = wi
	}

	for _, v := range w {
		e.treeSize[v] = noParent
		e.forest[v] = e.forest[v][:0]
	}
	for _, v := range w {
		if e.prev[v] != noParent {
			u := graph.Vertex(e.prev[v])
			e.forest[u] = append(e.forest[u], v)
		}
	}

	p := make([]graph.Vertex, 0)
	for _, u := range s {
		if e.prev[u] == noParent && e.findTreeSize(u) >= e.k {
			p = append(p, u)
		}
	}

	return pivots{p: p, w: w}
}

// findTreeSize memoizes subtree sizes over the pivot forest built by
// findPivots. Each vertex has at most one parent, so the subtree below a
// root whose prev is unset contains no cycle; parent cycles that the
// reflexive ≥ relaxation can form through zero-weight edges are never
// reachable from such a root, so no visited guard is needed.
func (e *Engine) findTreeSize(u graph.Vertex) int {
	if e.treeSize[u] != noParent {
		return e.treeSize[u]
	}

	size := 1
	for _, v := range e.forest[u] {
		size += e.findTreeSize(v)
	}
	e.treeSize[u] = size

	return size
}
