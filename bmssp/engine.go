package bmssp

import (
	"math"

	"github.com/katalvlaran/bmssp/graph"
)

// noParent marks the absence of a pivot-forest parent in prev, and a
// subtree size not yet computed in treeSize.
const noParent = -1

// inf is the +∞ sentinel used for unreached vertices and the top-level
// recursion bound. math.Inf isn't a constant expression, so this is a
// package-level var rather than a const.
var inf = graph.Length(math.Inf(1))

// Engine computes single-source shortest paths over a fixed *graph.Graph
// using the BMSSP recursion. Its working arrays (dhat, prev, treeSize,
// forest) are reused and reset across calls to Compute to avoid
// reallocating on every query.
type Engine struct {
	g *graph.Graph
	n int

	// Recursion parameters, derived once from n in New.
	t, k, level int

	// Working state, owned exclusively for the duration of one Compute call.
	dhat     []graph.Length
	prev     []int
	treeSize []int
	forest   [][]graph.Vertex
}

// New constructs an Engine over g. g is read-only for the lifetime of the
// Engine; distinct Engines over the same g may run Compute concurrently.
func New(g *graph.Graph) *Engine {
	n := g.Len()
	e := &Engine{
		g:        g,
		n:        n,
		dhat:     make([]graph.Length, n),
		prev:     make([]int, n),
		treeSize: make([]int, n),
		forest:   make([][]graph.Vertex, n),
	}
	if n > 1 {
		e.deriveParams(n)
	}

	return e
}

// Level reports the top recursion level L the engine derived from its
// graph's vertex count; callers that want to annotate a Compute call (e.g.
// for tracing) without reaching into engine internals can read it here.
func (e *Engine) Level() int {
	if e.level < 1 {
		return 1
	}

	return e.level
}

// deriveParams computes t, k, and the top recursion level L from n,
// clamped so that t, k, L ≥ 1 even for the smallest graphs that reach it
// (n ≥ 2; n ≤ 1 is short-circuited by Compute before these parameters are
// ever used).
func (e *Engine) deriveParams(n int) {
	log2n := math.Log2(float64(n))

	t := int(math.Floor(math.Pow(log2n, 2.0/3.0)))
	if t < 1 {
		t = 1
	}

	k := int(math.Ceil(math.Pow(log2n, 1.0/3.0)))
	if k < 1 {
		k = 1
	}

	level := int(math.Ceil(log2n / float64(t)))
	if level < 1 {
		level = 1
	}

	e.t, e.k, e.level = t, k, level
}

// Compute returns the shortest distance from source to every vertex:
// Compute(source)[v] is +Inf if v is unreachable, and Compute(source)[source]
// is always 0. It returns ErrEmptyGraph if the graph has no vertices, or
// ErrInvalidSource if source is outside [0, n).
//
// Complexity: sub-Dijkstra on sparse graphs, the whole point of partitioning
// the frontier into pivot-rooted, distance-bounded blocks instead of popping
// one vertex at a time.
func (e *Engine) Compute(source graph.Vertex) (graph.Distances, error) {
	if e.n == 0 {
		return nil, ErrEmptyGraph
	}
	if int(source) < 0 || int(source) >= e.n {
		return nil, ErrInvalidSource
	}

	e.reset()
	e.dhat[source] = 0

	if e.n == 1 {
		return e.snapshot(), nil
	}

	e.bmssp(e.level, inf, []graph.Vertex{source})

	return e.snapshot(), nil
}

// reset clears all working state for a fresh Compute call.
func (e *Engine) reset() {
	for v := 0; v < e.n; v++ {
		e.dhat[v] = inf
		e.prev[v] = noParent
		e.treeSize[v] = noParent
		e.forest[v] = nil
	}
}

// snapshot returns a caller-owned copy of the current distance array.
func (e *Engine) snapshot() graph.Distances {
	out := make(graph.Distances, e.n)
	copy(out, e.dhat)

	return out
}

// boundedPow2 returns 2^exp, saturating to n+1 instead of overflowing: the
// recursion's block size and outer budget never need to exceed n+1 (no
// pulled/completed set can ever hold more than n vertices). When the
// nominal budget would exceed n, the caller simply runs until its block
// heap empties.
func boundedPow2(exp, n int) int {
	if exp <= 0 {
		return 1
	}
	if exp > 62 {
		return n + 1
	}
	v := 1 << uint(exp)
	if v <= 0 || v > n {
		return n + 1
	}

	return v
}
