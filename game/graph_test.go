package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func cycle4(t *testing.T) *Graph {
	t.Helper()
	g, err := NewGraph(4, []Edge{NewEdge(0, 1), NewEdge(1, 2), NewEdge(2, 3), NewEdge(3, 0)})
	require.NoError(t, err)
	return g
}

func TestNewEdge(t *testing.T) {
	t.Run("canonical order", func(t *testing.T) {
		require.Equal(t, Edge{A: 0, B: 3}, NewEdge(3, 0), "Smaller node should come first")
		require.Equal(t, NewEdge(1, 2), NewEdge(2, 1), "Orientation should not matter")
	})

	t.Run("shared endpoints", func(t *testing.T) {
		require.True(t, NewEdge(0, 1).SharesNode(NewEdge(1, 2)))
		require.False(t, NewEdge(0, 1).SharesNode(NewEdge(2, 3)))
	})
}

func TestNewGraph(t *testing.T) {
	t.Run("valid cycle", func(t *testing.T) {
		g := cycle4(t)
		require.Equal(t, 4, g.NumNodes())
		require.Equal(t, 4, g.NumEdges())
		require.Equal(t, []Edge{{0, 1}, {0, 3}, {1, 2}, {2, 3}}, g.Edges(), "Edges should be sorted")
		require.True(t, g.HasEdge(Edge{A: 3, B: 0}), "Lookup should accept either orientation")
	})

	t.Run("rejects disconnected graph", func(t *testing.T) {
		_, err := NewGraph(4, []Edge{NewEdge(0, 1), NewEdge(2, 3)})
		require.ErrorIs(t, err, ErrDisconnectedGraph)
	})

	t.Run("rejects fewer than two edges", func(t *testing.T) {
		_, err := NewGraph(2, []Edge{NewEdge(0, 1)})
		require.ErrorIs(t, err, ErrInsufficientEdges)
	})

	t.Run("rejects self loop", func(t *testing.T) {
		_, err := NewGraph(3, []Edge{NewEdge(0, 1), NewEdge(1, 1), NewEdge(1, 2)})
		require.ErrorIs(t, err, ErrSelfLoop)
	})

	t.Run("rejects duplicate edge", func(t *testing.T) {
		_, err := NewGraph(3, []Edge{NewEdge(0, 1), NewEdge(1, 0), NewEdge(1, 2)})
		require.ErrorIs(t, err, ErrDuplicateEdge)
	})

	t.Run("rejects unknown node", func(t *testing.T) {
		_, err := NewGraph(3, []Edge{NewEdge(0, 1), NewEdge(1, 5)})
		require.ErrorIs(t, err, ErrUnknownNode)
	})
}

func TestNeighbors(t *testing.T) {
	g := cycle4(t)

	t.Run("edges sharing an endpoint", func(t *testing.T) {
		require.Equal(t, []Edge{{0, 3}, {1, 2}}, g.Neighbors(NewEdge(0, 1)))
		require.Equal(t, []Edge{{0, 1}, {2, 3}}, g.Neighbors(NewEdge(2, 1)))
	})

	t.Run("star center edge", func(t *testing.T) {
		star, err := NewGraph(5, []Edge{{0, 1}, {0, 2}, {0, 3}, {3, 4}})
		require.NoError(t, err)
		require.Equal(t, []Edge{{0, 1}, {0, 2}, {3, 4}}, star.Neighbors(NewEdge(0, 3)))
	})

	t.Run("panics on unknown edge", func(t *testing.T) {
		require.Panics(t, func() {
			g.Neighbors(NewEdge(0, 2))
		}, "Asking for an edge that is not on the board is a bug")
	})

	t.Run("adjacency excludes the edge itself", func(t *testing.T) {
		require.True(t, g.Adjacent(NewEdge(0, 1), NewEdge(1, 2)))
		require.False(t, g.Adjacent(NewEdge(0, 1), NewEdge(0, 1)))
		require.False(t, g.Adjacent(NewEdge(0, 1), NewEdge(2, 3)))
		require.False(t, g.Adjacent(NewEdge(0, 1), NewEdge(1, 3)), "Non-edges are never adjacent")
	})
}

func TestShortestDistance(t *testing.T) {
	g, err := NewGraph(5, []Edge{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	require.NoError(t, err)

	require.Equal(t, 0, g.ShortestDistance(2, 2))
	require.Equal(t, 4, g.ShortestDistance(0, 4))
	require.Equal(t, g.ShortestDistance(4, 1), g.ShortestDistance(1, 4), "Distance should be symmetric")
	require.Equal(t, []int{2, 1, 0, 1, 2}, g.Distances(2))

	require.Panics(t, func() {
		g.ShortestDistance(0, 9)
	})
	require.Panics(t, func() {
		g.Distances(-1)
	})
}
