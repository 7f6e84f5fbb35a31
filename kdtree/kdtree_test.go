package kdtree_test

import (
	"testing"

	"github.com/katalvlaran/regionpart/geometry"
	"github.com/katalvlaran/regionpart/graph"
	"github.com/katalvlaran/regionpart/kdtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGraphAt(pts ...geometry.Point) *graph.Graph {
	g := graph.New()
	for i, p := range pts {
		g.AddVertex(i, p)
	}

	return g
}

func buildTree(t *testing.T, g *graph.Graph, maxAccumulation int) *kdtree.Tree {
	t.Helper()
	rect, ok := g.Bounds()
	require.True(t, ok)

	tree := kdtree.New(rect, maxAccumulation)
	for _, v := range g.Vertices() {
		tree.Insert(v)
	}
	tree.Divide()

	return tree
}

func TestTree_NoSplitUnderCapacity(t *testing.T) {
	g := newGraphAt(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 1, Y: 0}, geometry.Point{X: 2, Y: 0})
	tree := buildTree(t, g, 10)

	leaves := tree.Leaves()
	require.Len(t, leaves, 1)
	assert.Len(t, leaves[0].Vertices, 3)
}

func TestTree_SplitsIntoFourSingletons(t *testing.T) {
	g := newGraphAt(
		geometry.Point{X: 0, Y: 0},
		geometry.Point{X: 10, Y: 0},
		geometry.Point{X: 0, Y: 10},
		geometry.Point{X: 10, Y: 10},
	)
	tree := buildTree(t, g, 1)

	leaves := tree.Leaves()
	require.Len(t, leaves, 4)
	total := 0
	for _, l := range leaves {
		assert.LessOrEqual(t, len(l.Vertices), 1)
		total += len(l.Vertices)
	}
	assert.Equal(t, 4, total)
}

func TestTree_LeafCoverage(t *testing.T) {
	g := newGraphAt(
		geometry.Point{X: 0, Y: 0}, geometry.Point{X: 1, Y: 0}, geometry.Point{X: 100, Y: 0}, geometry.Point{X: 101, Y: 0},
	)
	tree := buildTree(t, g, 2)

	for _, l := range tree.Leaves() {
		for _, v := range l.Vertices {
			assert.Truef(t, l.Rect.Contains(v.Location), "leaf rect must contain its own vertex %v", v.Location)
		}
	}
}

func TestTree_PartitionCompleteness(t *testing.T) {
	pts := []geometry.Point{{0, 0}, {1, 0}, {2, 0}, {100, 0}, {101, 0}}
	g := newGraphAt(pts...)
	tree := buildTree(t, g, 3)

	seen := make(map[int]bool)
	for _, l := range tree.Leaves() {
		for _, v := range l.Vertices {
			assert.False(t, seen[v.ID], "vertex %d must not appear in two leaves", v.ID)
			seen[v.ID] = true
		}
	}
	assert.Len(t, seen, len(pts))
}

func TestTree_DegenerateCoordinates_DoesNotLoopForever(t *testing.T) {
	// All vertices share the same coordinates: a split can never make
	// progress, so the guard must return the Accumulator as an oversized
	// leaf rather than recursing without termination.
	pts := make([]geometry.Point, 5)
	for i := range pts {
		pts[i] = geometry.Point{X: 7, Y: 7}
	}
	g := newGraphAt(pts...)
	tree := buildTree(t, g, 2)

	leaves := tree.Leaves()
	require.Len(t, leaves, 1)
	assert.Len(t, leaves[0].Vertices, 5)
}
