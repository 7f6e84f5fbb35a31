package bfs_test

import (
	"testing"

	"github.com/katalvlaran/regionpart/bfs"
	"github.com/katalvlaran/regionpart/geometry"
	"github.com/katalvlaran/regionpart/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildChain(t *testing.T, n int) *graph.Graph {
	t.Helper()
	g := graph.New()
	for i := 0; i < n; i++ {
		g.AddVertex(i, geometry.Point{X: i, Y: 0})
	}
	for i := 0; i < n-1; i++ {
		require.NoError(t, g.AddEdge(i, i, i+1, 1))
	}

	return g
}

func TestWalk_VisitsEveryReachableVertex(t *testing.T) {
	g := buildChain(t, 5)
	var order []int
	_, err := bfs.Walk(g.Vertex(0), func(v *graph.Vertex, depth int) (bool, error) {
		order = append(order, v.ID)
		return false, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestWalk_StopsOnMatch(t *testing.T) {
	g := buildChain(t, 5)
	var order []int
	found, err := bfs.Walk(g.Vertex(0), func(v *graph.Vertex, depth int) (bool, error) {
		order = append(order, v.ID)
		return v.ID == 2, nil
	})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestWalk_NeverVisitsTwice(t *testing.T) {
	g := graph.New()
	g.AddVertex(0, geometry.Point{X: 0, Y: 0})
	g.AddVertex(1, geometry.Point{X: 1, Y: 0})
	g.AddVertex(2, geometry.Point{X: 2, Y: 0})
	require.NoError(t, g.AddEdge(0, 0, 1, 1))
	require.NoError(t, g.AddEdge(1, 1, 2, 1))
	require.NoError(t, g.AddEdge(2, 2, 0, 1)) // triangle, creates a cycle back to 0

	visits := map[int]int{}
	_, err := bfs.Walk(g.Vertex(0), func(v *graph.Vertex, depth int) (bool, error) {
		visits[v.ID]++
		return false, nil
	})
	require.NoError(t, err)
	for id, count := range visits {
		assert.Equalf(t, 1, count, "vertex %d visited %d times", id, count)
	}
}

func TestWalk_MaxDepthLimitsEnqueue(t *testing.T) {
	g := buildChain(t, 5)
	var order []int
	_, err := bfs.Walk(g.Vertex(0), func(v *graph.Vertex, depth int) (bool, error) {
		order = append(order, v.ID)
		return false, nil
	}, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, order)
}
