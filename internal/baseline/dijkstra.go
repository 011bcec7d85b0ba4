package baseline

import (
	stdheap "container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/bmssp/graph"
)

// ErrInvalidSource is returned when source is outside [0, g.Len()).
var ErrInvalidSource = errors.New("baseline: source vertex out of range")

// Dijkstra computes shortest distances from source to every vertex of g
// using a classical single-source priority-queue relaxation. It is the
// trusted reference this module's property tests check bmssp.Engine
// against; it deliberately does not reuse any bmssp/heap/blockheap type.
//
// Complexity: O((V+E) log V).
func Dijkstra(g *graph.Graph, source graph.Vertex) (graph.Distances, error) {
	n := g.Len()
	if int(source) < 0 || int(source) >= n {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSource, source)
	}

	dist := make(graph.Distances, n)
	for v := range dist {
		dist[v] = graph.Length(math.Inf(1))
	}
	dist[source] = 0

	visited := make([]bool, n)
	pq := make(nodePQ, 0, n)
	stdheap.Push(&pq, &nodeItem{v: source, d: 0})

	for pq.Len() > 0 {
		item := stdheap.Pop(&pq).(*nodeItem)
		u, d := item.v, item.d
		if visited[u] {
			continue
		}
		visited[u] = true

		edges, err := g.Out(u)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			nd := d + e.Weight
			if nd < dist[e.To] {
				dist[e.To] = nd
				stdheap.Push(&pq, &nodeItem{v: e.To, d: nd})
			}
		}
	}

	return dist, nil
}

// nodeItem pairs a vertex with its tentative distance for the heap below.
type nodeItem struct {
	v graph.Vertex
	d graph.Length
}

// nodePQ is a lazy-decrease-key min-heap of *nodeItem ordered by d ascending:
// a vertex may appear more than once, with stale entries simply skipped via
// the visited check on pop.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].d < pq[j].d }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
