package pipeline_test

import (
	"testing"

	"github.com/katalvlaran/regionpart/geometry"
	"github.com/katalvlaran/regionpart/graph"
	"github.com/katalvlaran/regionpart/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_EmptyGraph(t *testing.T) {
	g := graph.New()
	_, err := pipeline.Run(g, pipeline.Config{MaxAccumulation: 10}, nil)
	assert.ErrorIs(t, err, pipeline.ErrEmptyBounds)
}

func TestRun_TrivialNoSplit(t *testing.T) {
	g := graph.New()
	g.AddVertex(0, geometry.Point{X: 0, Y: 0})
	g.AddVertex(1, geometry.Point{X: 1, Y: 0})
	g.AddVertex(2, geometry.Point{X: 2, Y: 0})
	require.NoError(t, g.AddEdge(0, 0, 1, 1))

	result, err := pipeline.Run(g, pipeline.Config{MaxAccumulation: 10}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.LeafCount)
	require.Len(t, result.Regions, 1)
	assert.Len(t, result.Regions[0], 3)
}

func TestRun_SplitsAndCoversEveryVertex(t *testing.T) {
	g := graph.New()
	pts := []geometry.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	for i, p := range pts {
		g.AddVertex(i, p)
	}
	require.NoError(t, g.AddEdge(0, 0, 1, 1))
	require.NoError(t, g.AddEdge(1, 1, 2, 1))
	require.NoError(t, g.AddEdge(2, 2, 3, 1))

	result, err := pipeline.Run(g, pipeline.Config{MaxAccumulation: 2}, nil)
	require.NoError(t, err)

	total := 0
	for _, r := range result.Regions {
		total += len(r)
	}
	assert.Equal(t, 4, total)
}
