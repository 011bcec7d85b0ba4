package heap

import (
	stdheap "container/heap"

	"github.com/katalvlaran/bmssp/graph"
)

// entry is one (vertex, key) slot tracked by Heap. idx mirrors its position
// in the backing slice so Push can call stdheap.Fix in O(log n) instead of
// doing a linear search for decrease-key.
type entry struct {
	v   graph.Vertex
	key graph.Length
	idx int
}

// innerHeap implements container/heap.Interface over *entry, ordered by key
// ascending with ties broken by vertex id ascending, so the order is total
// and deterministic even when keys collide.
type innerHeap []*entry

func (h innerHeap) Len() int { return len(h) }

func (h innerHeap) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].v < h[j].v
}

func (h innerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].idx = i
	h[j].idx = j
}

func (h *innerHeap) Push(x interface{}) {
	e := x.(*entry)
	e.idx = len(*h)
	*h = append(*h, e)
}

func (h *innerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return e
}

// Heap is an ordered-unique min-heap over vertices: each vertex appears at
// most once, keyed by its current best-known distance. It is not safe for
// concurrent use.
type Heap struct {
	items innerHeap
	pos   map[graph.Vertex]*entry
}

// New returns an empty Heap.
func New() *Heap {
	return &Heap{pos: make(map[graph.Vertex]*entry)}
}

// Push inserts (v, d) with decrease-key semantics: if v is already present
// with key d' ≤ d, Push is a no-op; if d' > d, v's key is lowered to d in
// place. Either way, v appears at most once afterward.
//
// Complexity: O(log n).
func (h *Heap) Push(v graph.Vertex, d graph.Length) {
	if e, ok := h.pos[v]; ok {
		if e.key <= d {
			return
		}
		e.key = d
		stdheap.Fix(&h.items, e.idx)
		return
	}

	e := &entry{v: v, key: d}
	stdheap.Push(&h.items, e)
	h.pos[v] = e
}

// Pop removes and returns the vertex with the smallest key (ties broken by
// vertex id). It returns ErrEmpty if the heap holds no entries.
//
// Complexity: O(log n).
func (h *Heap) Pop() (graph.Vertex, graph.Length, error) {
	if len(h.items) == 0 {
		return 0, 0, ErrEmpty
	}
	e := stdheap.Pop(&h.items).(*entry)
	delete(h.pos, e.v)

	return e.v, e.key, nil
}

// Top returns the smallest (vertex, key) pair without removing it.
func (h *Heap) Top() (graph.Vertex, graph.Length, error) {
	if len(h.items) == 0 {
		return 0, 0, ErrEmpty
	}
	return h.items[0].v, h.items[0].key, nil
}

// IsEmpty reports whether the heap holds no entries.
func (h *Heap) IsEmpty() bool {
	return len(h.items) == 0
}

// Len returns the number of entries currently stored.
func (h *Heap) Len() int {
	return len(h.items)
}
