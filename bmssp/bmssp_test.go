package bmssp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bmssp/bmssp"
	"github.com/katalvlaran/bmssp/graph"
	"github.com/katalvlaran/bmssp/internal/baseline"
	"github.com/katalvlaran/bmssp/internal/graphgen"
)

func mustGraph(t *testing.T, adj [][]graph.Edge) *graph.Graph {
	t.Helper()
	g, err := graph.NewGraph(adj)
	require.NoError(t, err)
	return g
}

func inf() graph.Length { return graph.Length(math.Inf(1)) }

func TestCompute_Chain(t *testing.T) {
	g := mustGraph(t, [][]graph.Edge{
		{graph.NewEdge(1, 1), graph.NewEdge(2, 4)},
		{graph.NewEdge(2, 2), graph.NewEdge(3, 5)},
		{graph.NewEdge(3, 1)},
		{},
	})

	dist, err := bmssp.New(g).Compute(0)
	require.NoError(t, err)
	assert.Equal(t, graph.Distances{0, 1, 3, 4}, dist)
}

func TestCompute_MixedDirectionsWithUnreachable(t *testing.T) {
	g := mustGraph(t, [][]graph.Edge{
		{graph.NewEdge(1, 1), graph.NewEdge(2, 4)},
		{graph.NewEdge(2, 2)},
		{graph.NewEdge(0, 1)},
		{graph.NewEdge(1, 1), graph.NewEdge(2, 5)},
	})

	dist, err := bmssp.New(g).Compute(1)
	require.NoError(t, err)
	require.Len(t, dist, 4)
	assert.Equal(t, graph.Length(3), dist[0])
	assert.Equal(t, graph.Length(0), dist[1])
	assert.Equal(t, graph.Length(2), dist[2])
	assert.True(t, math.IsInf(float64(dist[3]), 1))
}

func TestCompute_Singleton(t *testing.T) {
	g := mustGraph(t, [][]graph.Edge{{}})

	dist, err := bmssp.New(g).Compute(0)
	require.NoError(t, err)
	assert.Equal(t, graph.Distances{0}, dist)
}

func TestCompute_ParallelEdges(t *testing.T) {
	g := mustGraph(t, [][]graph.Edge{
		{graph.NewEdge(1, 7), graph.NewEdge(1, 2)},
		{},
	})

	dist, err := bmssp.New(g).Compute(0)
	require.NoError(t, err)
	assert.Equal(t, graph.Length(2), dist[1])
}

// TestCompute_SelfLoop checks that self-loops never improve distance.
func TestCompute_SelfLoop(t *testing.T) {
	g := mustGraph(t, [][]graph.Edge{
		{graph.NewEdge(0, 5)},
	})

	dist, err := bmssp.New(g).Compute(0)
	require.NoError(t, err)
	assert.Equal(t, graph.Distances{0}, dist)
}

func TestCompute_ZeroWeightPath(t *testing.T) {
	g := mustGraph(t, [][]graph.Edge{
		{graph.NewEdge(1, 0)},
		{graph.NewEdge(2, 0)},
		{graph.NewEdge(3, 3)},
		{},
	})

	dist, err := bmssp.New(g).Compute(0)
	require.NoError(t, err)
	assert.Equal(t, graph.Distances{0, 0, 0, 3}, dist)
}

func TestCompute_EmptyGraph(t *testing.T) {
	g := mustGraph(t, nil)

	_, err := bmssp.New(g).Compute(0)
	assert.ErrorIs(t, err, bmssp.ErrEmptyGraph)
}

func TestCompute_InvalidSource(t *testing.T) {
	g := mustGraph(t, [][]graph.Edge{{}, {}})

	_, err := bmssp.New(g).Compute(5)
	assert.ErrorIs(t, err, bmssp.ErrInvalidSource)

	_, err = bmssp.New(g).Compute(-1)
	assert.ErrorIs(t, err, bmssp.ErrInvalidSource)
}

// TestCompute_SourceAlwaysZero checks that dhat[s] == 0 regardless of which
// vertex is chosen as the source.
func TestCompute_SourceAlwaysZero(t *testing.T) {
	g := mustGraph(t, [][]graph.Edge{
		{graph.NewEdge(1, 3)},
		{graph.NewEdge(2, 4)},
		{},
	})

	for s := graph.Vertex(0); s < 3; s++ {
		dist, err := bmssp.New(g).Compute(s)
		require.NoError(t, err)
		assert.Zero(t, dist[s])
	}
}

// TestCompute_Deterministic checks that repeated Compute calls on the same
// graph and source yield identical distance arrays.
func TestCompute_Deterministic(t *testing.T) {
	g := mustGraph(t, [][]graph.Edge{
		{graph.NewEdge(1, 3), graph.NewEdge(2, 1)},
		{graph.NewEdge(2, 1)},
		{graph.NewEdge(1, 1), graph.NewEdge(3, 6)},
		{},
	})

	e := bmssp.New(g)
	first, err := e.Compute(0)
	require.NoError(t, err)
	second, err := e.Compute(0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestCompute_LargerThanSingleBlock exercises a larger graph (n = 64) whose
// top-level block size is smaller than n, so the top level pulls several
// blocks. The weight-2 edges i->i+3 are shortcuts: the shortest distance to
// n-1 is 2*(n-1)/3, not n-1.
func TestCompute_LargerThanSingleBlock(t *testing.T) {
	const n = 64
	adj := make([][]graph.Edge, n)
	for i := 0; i < n; i++ {
		if i+1 < n {
			adj[i] = append(adj[i], graph.NewEdge(graph.Vertex(i+1), 1))
		}
		if i+3 < n {
			adj[i] = append(adj[i], graph.NewEdge(graph.Vertex(i+3), 2))
		}
	}
	g := mustGraph(t, adj)

	dist, err := bmssp.New(g).Compute(0)
	require.NoError(t, err)
	assert.Equal(t, graph.Length(0), dist[0])
	assert.Equal(t, graph.Length(2*(n-1)/3), dist[n-1])
	_ = inf()
}

// TestCompute_MatchesDijkstra checks that, across many random (n, p, seed)
// graphs, Compute agrees with the classical baseline on every vertex,
// including unreachable ones.
func TestCompute_MatchesDijkstra(t *testing.T) {
	cases := []struct {
		n    int
		p    float64
		seed uint64
	}{
		{8, 0.5, 1},
		{16, 0.3, 2},
		{32, 0.15, 3},
		{32, 0.05, 4},
		{64, 0.1, 5},
		{100, 0.02, 6},
		{100, 0.3, 7},
	}

	for _, c := range cases {
		g, err := graphgen.Sparse(c.n, c.p, 20, c.seed)
		require.NoError(t, err)

		want, err := baseline.Dijkstra(g, 0)
		require.NoError(t, err)

		got, err := bmssp.New(g).Compute(0)
		require.NoError(t, err)

		require.Len(t, got, len(want))
		for v := range want {
			if math.IsInf(float64(want[v]), 1) {
				assert.Truef(t, math.IsInf(float64(got[v]), 1),
					"n=%d p=%v seed=%d vertex=%d: want unreachable, got %v",
					c.n, c.p, c.seed, v, got[v])
				continue
			}
			assert.InDeltaf(t, float64(want[v]), float64(got[v]), 1e-3,
				"n=%d p=%v seed=%d vertex=%d", c.n, c.p, c.seed, v)
		}
	}
}

// TestCompute_TriangleInequality checks that for every edge (u, v, w)
// reachable from the source, dhat[v] <= dhat[u] + w.
func TestCompute_TriangleInequality(t *testing.T) {
	g, err := graphgen.Sparse(40, 0.2, 15, 11)
	require.NoError(t, err)

	dist, err := bmssp.New(g).Compute(0)
	require.NoError(t, err)

	for u := graph.Vertex(0); int(u) < g.Len(); u++ {
		out, err := g.Out(u)
		require.NoError(t, err)
		for _, e := range out {
			if math.IsInf(float64(dist[u]), 1) {
				continue
			}
			assert.LessOrEqualf(t, float64(dist[e.To]), float64(dist[u]+e.Weight)+1e-4,
				"edge %d->%d weight %v violates triangle inequality", u, e.To, e.Weight)
		}
	}
}

// TestCompute_NonNegative checks that every finite distance is non-negative.
func TestCompute_NonNegative(t *testing.T) {
	g, err := graphgen.Sparse(30, 0.25, 9, 21)
	require.NoError(t, err)

	dist, err := bmssp.New(g).Compute(0)
	require.NoError(t, err)

	for _, d := range dist {
		if math.IsInf(float64(d), 1) {
			continue
		}
		assert.GreaterOrEqual(t, float64(d), 0.0)
	}
}
