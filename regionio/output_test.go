package regionio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regionpart/geometry"
	"github.com/katalvlaran/regionpart/graph"
	"github.com/katalvlaran/regionpart/regionio"
)

func buildSquare(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	g.AddVertex(0, geometry.Point{X: 0, Y: 0})
	g.AddVertex(1, geometry.Point{X: 10, Y: 0})
	g.AddVertex(2, geometry.Point{X: 0, Y: 10})
	g.AddVertex(3, geometry.Point{X: 10, Y: 10})
	require.NoError(t, g.AddEdge(0, 0, 1, 1))
	require.NoError(t, g.AddEdge(1, 1, 3, 1))
	require.NoError(t, g.AddEdge(2, 2, 3, 1))
	require.NoError(t, g.AddEdge(3, 0, 2, 1))

	return g
}

func TestWriteRegions_RoundTripsThroughReadRegions(t *testing.T) {
	g := buildSquare(t)
	regions := [][]*graph.Vertex{
		{g.Vertex(0), g.Vertex(1)},
		{},
		{g.Vertex(2), g.Vertex(3)},
	}

	var buf bytes.Buffer
	require.NoError(t, regionio.WriteRegions(&buf, regions))

	assert.Equal(t, "0\n0 1 \n1\n\n2\n2 3 \n", buf.String())

	parsed, err := regionio.ReadRegions(&buf, g)
	require.NoError(t, err)
	require.Len(t, parsed, 3)
	assert.ElementsMatch(t, []int{0, 1}, idsOf(parsed[0]))
	assert.Empty(t, parsed[1])
	assert.ElementsMatch(t, []int{2, 3}, idsOf(parsed[2]))
}

func idsOf(vs []*graph.Vertex) []int {
	out := make([]int, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.ID)
	}

	return out
}

func TestWriteShardFiles_AnnotatesBoundaryVertices(t *testing.T) {
	g := buildSquare(t)
	regions := [][]*graph.Vertex{
		{g.Vertex(0), g.Vertex(1)},
		{g.Vertex(2), g.Vertex(3)},
	}

	dir := t.TempDir()
	require.NoError(t, regionio.WriteShardFiles(dir, regions))

	content, err := os.ReadFile(filepath.Join(dir, "nodes_0.csv"))
	require.NoError(t, err)
	// Region 0 holds vertices 0,1; vertex 1 has a boundary neighbour (3) in
	// region 1, which must also appear, annotated with region 1.
	assert.Contains(t, string(content), "0,0,0,0\n")
	assert.Contains(t, string(content), "1,10,0,0\n")
	assert.Contains(t, string(content), "3,10,10,1\n")
}

func TestGroupRegions_CoversEveryNonEmptyRegion(t *testing.T) {
	g := graph.New()
	// Two clusters of region centroids, far apart on the x axis.
	for i := 0; i < 4; i++ {
		g.AddVertex(i, geometry.Point{X: i, Y: 0})
	}
	for i := 4; i < 8; i++ {
		g.AddVertex(i, geometry.Point{X: 1000 + i, Y: 0})
	}

	regions := [][]*graph.Vertex{
		{g.Vertex(0), g.Vertex(1)},
		{g.Vertex(2), g.Vertex(3)},
		{g.Vertex(4), g.Vertex(5)},
		{g.Vertex(6), g.Vertex(7)},
	}

	groups, err := regionio.GroupRegions(regions, 2)
	require.NoError(t, err)

	total := 0
	for _, grp := range groups {
		total += len(grp)
	}
	assert.Equal(t, 4, total)
}
