package baseline_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bmssp/graph"
	"github.com/katalvlaran/bmssp/internal/baseline"
)

func TestDijkstra_Chain(t *testing.T) {
	g, err := graph.NewGraph([][]graph.Edge{
		{graph.NewEdge(1, 1), graph.NewEdge(2, 4)},
		{graph.NewEdge(2, 2), graph.NewEdge(3, 5)},
		{graph.NewEdge(3, 1)},
		{},
	})
	require.NoError(t, err)

	dist, err := baseline.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, graph.Distances{0, 1, 3, 4}, dist)
}

func TestDijkstra_Unreachable(t *testing.T) {
	g, err := graph.NewGraph([][]graph.Edge{
		{graph.NewEdge(1, 1)},
		{},
		{},
	})
	require.NoError(t, err)

	dist, err := baseline.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(float64(dist[2]), 1))
}

func TestDijkstra_InvalidSource(t *testing.T) {
	g, err := graph.NewGraph([][]graph.Edge{{}})
	require.NoError(t, err)

	_, err = baseline.Dijkstra(g, 5)
	assert.ErrorIs(t, err, baseline.ErrInvalidSource)
}
