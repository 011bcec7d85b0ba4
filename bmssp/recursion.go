package bmssp

import (
	"github.com/katalvlaran/bmssp/blockheap"
	"github.com/katalvlaran/bmssp/graph"
)

// bmssp is the recursive bounded multi-source driver. At level 0 it
// dispatches to baseCase; otherwise it finds pivots, seeds a BlockHeap with
// them, and repeatedly pulls a sub-block, recurses one level down, relaxes
// the sub-block's completed set, and reinjects vertices that still fall
// within the current ceiling.
func (e *Engine) bmssp(level int, b graph.Length, s []graph.Vertex) blockheap.Entry {
	if level == 0 {
		return e.baseCase(b, s)
	}

	piv := e.findPivots(b, s)

	m := boundedPow2((level-1)*e.t, e.n)
	d := blockheap.New(m, b)

	bd := b
	for _, p := range piv.p {
		d.Insert(p, e.dhat[p])
		if e.dhat[p] < bd {
			bd = e.dhat[p]
		}
	}

	completed := make(map[graph.Vertex]bool)
	budget := e.k * boundedPow2(level*e.t, e.n)

	for len(completed) < budget && !d.IsEmpty() {
		entry := d.Pull()
		sub := e.bmssp(level-1, entry.B, entry.U)

		for _, u := range sub.U {
			completed[u] = true
		}

		var k []blockheap.Pair
		for _, u := range sub.U {
			edges, err := e.g.Out(u)
			if err != nil {
				panic(err)
			}
			for _, edge := range edges {
				v, wt := edge.To, edge.Weight
				if e.dhat[u]+wt <= e.dhat[v] {
					nd := e.dhat[u] + wt
					e.dhat[v] = nd

					switch {
					case entry.B <= nd && nd < b:
						d.Insert(v, nd)
					case sub.B <= nd && nd < entry.B:
						k = append(k, blockheap.Pair{V: v, D: nd})
					}
				}
			}
		}

		for _, u := range entry.U {
			if sub.B <= e.dhat[u] && e.dhat[u] < entry.B {
				k = append(k, blockheap.Pair{V: u, D: e.dhat[u]})
			}
		}
		d.BatchPrepend(k)

		bd = sub.B
	}

	if bd > b {
		bd = b
	}
	for _, u := range piv.w {
		if e.dhat[u] < bd {
			completed[u] = true
		}
	}

	out := make([]graph.Vertex, 0, len(completed))
	for v := range completed {
		out = append(out, v)
	}

	return blockheap.Entry{B: bd, U: out}
}
