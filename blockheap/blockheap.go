package blockheap

import (
	"fmt"

	"github.com/katalvlaran/bmssp/graph"
	"github.com/katalvlaran/bmssp/heap"
)

// Entry is the result of a Pull: a tightened completion bound B and the set
// of vertices U pulled below it. Every vertex in U has a key ≤ B.
type Entry struct {
	B graph.Length
	U []graph.Vertex
}

// BlockHeap is a bucketed pull-many structure over vertices: Insert and
// BatchPrepend both admit a vertex with decrease-key semantics, and Pull
// removes up to M smallest entries at once, reporting the residual minimum
// key (or the constructor's B if nothing remains) as the new bound.
//
// The block size M must be positive; a non-positive M is a programmer error
// and New panics. B is not checked and may be +Inf.
type BlockHeap struct {
	m    int
	b    graph.Length
	main *heap.Heap
}

// New constructs a BlockHeap with block size m and outer distance ceiling b.
// It panics if m <= 0; callers are expected to size m from validated,
// derived recursion parameters, never directly from user input.
func New(m int, b graph.Length) *BlockHeap {
	if m <= 0 {
		panic(fmt.Sprintf("blockheap: non-positive block size %d", m))
	}

	return &BlockHeap{m: m, b: b, main: heap.New()}
}

// Insert admits (v, d) with decrease-key semantics identical to heap.Heap.Push.
func (bh *BlockHeap) Insert(v graph.Vertex, d graph.Length) {
	bh.main.Push(v, d)
}

// BatchPrepend admits each (vertex, key) pair in pairs with the same
// decrease-key semantics as Insert. See doc.go for why this re-inserts into
// the shared ordered structure rather than maintaining a separate
// surfaced-ahead bucket.
func (bh *BlockHeap) BatchPrepend(pairs []Pair) {
	for _, p := range pairs {
		bh.main.Push(p.V, p.D)
	}
}

// Pair is one (vertex, key) entry passed to BatchPrepend.
type Pair struct {
	V graph.Vertex
	D graph.Length
}

// Pull removes up to M smallest entries into U and reports B', the smallest
// key still remaining (or the constructor's B if the heap is now empty).
// Pull never fails: it simply returns fewer than M entries if the heap is
// exhausted early.
//
// Complexity: O(M log n).
func (bh *BlockHeap) Pull() Entry {
	u := make([]graph.Vertex, 0, bh.m)
	for i := 0; i < bh.m && !bh.main.IsEmpty(); i++ {
		v, _, _ := bh.main.Pop()
		u = append(u, v)
	}

	bPrime := bh.b
	if !bh.main.IsEmpty() {
		_, d, _ := bh.main.Top()
		bPrime = d
	}

	return Entry{B: bPrime, U: u}
}

// IsEmpty reports whether the structure holds no entries.
func (bh *BlockHeap) IsEmpty() bool {
	return bh.main.IsEmpty()
}
