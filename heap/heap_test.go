package heap_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bmssp/graph"
	"github.com/katalvlaran/bmssp/heap"
)

func TestHeap_EmptyPopTop(t *testing.T) {
	h := heap.New()
	assert.True(t, h.IsEmpty())

	_, _, err := h.Pop()
	assert.True(t, errors.Is(err, heap.ErrEmpty))

	_, _, err = h.Top()
	assert.True(t, errors.Is(err, heap.ErrEmpty))
}

func TestHeap_PopOrder(t *testing.T) {
	h := heap.New()
	h.Push(3, 5)
	h.Push(1, 2)
	h.Push(2, 2) // ties with vertex 1 on key; vertex id breaks the tie

	v, d, err := h.Pop()
	require.NoError(t, err)
	assert.Equal(t, graph.Vertex(1), v)
	assert.Equal(t, graph.Length(2), d)

	v, _, err = h.Pop()
	require.NoError(t, err)
	assert.Equal(t, graph.Vertex(2), v)

	v, _, err = h.Pop()
	require.NoError(t, err)
	assert.Equal(t, graph.Vertex(3), v)

	assert.True(t, h.IsEmpty())
}

func TestHeap_DecreaseKeyUniqueness(t *testing.T) {
	h := heap.New()
	h.Push(1, 10)
	h.Push(1, 3) // strictly smaller: replaces the stored key
	h.Push(1, 7) // larger than stored key: no-op

	assert.Equal(t, 1, h.Len())
	v, d, err := h.Top()
	require.NoError(t, err)
	assert.Equal(t, graph.Vertex(1), v)
	assert.Equal(t, graph.Length(3), d)
}

func TestHeap_NeverDuplicatesAVertex(t *testing.T) {
	h := heap.New()
	for _, d := range []graph.Length{9, 4, 7, 1, 2} {
		h.Push(42, d)
	}
	assert.Equal(t, 1, h.Len())

	v, d, err := h.Pop()
	require.NoError(t, err)
	assert.Equal(t, graph.Vertex(42), v)
	assert.Equal(t, graph.Length(1), d)
	assert.True(t, h.IsEmpty())
}
