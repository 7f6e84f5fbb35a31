package pipeline

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/regionpart/consolidate"
	"github.com/katalvlaran/regionpart/graph"
	"github.com/katalvlaran/regionpart/kdtree"
	"github.com/sirupsen/logrus"
)

// ErrEmptyBounds is returned when Run is asked to partition a graph with no
// vertices. The core's EncapsulateAll reports this as ok == false (see
// package geometry); the pipeline is where that ambiguity resolves to a
// hard error, since there is nothing to partition.
var ErrEmptyBounds = errors.New("pipeline: graph has no vertices to partition")

// Config holds the single tunable the core accepts: the leaf capacity
// threshold. Validation (positive integer) happens at the CLI boundary
// (cmd/regionpart), not here — Run trusts its caller.
type Config struct {
	MaxAccumulation int
}

// Result is the outcome of a full partition run, plus counters useful for
// logging.
type Result struct {
	Regions   [][]*graph.Vertex
	LeafCount int
}

// Run executes the full pipeline — k-d subdivision then consolidation —
// against g, logging stage boundaries to log. A nil log is replaced with a
// logger that discards output.
func Run(g *graph.Graph, cfg Config, log *logrus.Logger) (*Result, error) {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	bounds, ok := g.Bounds()
	if !ok {
		return nil, ErrEmptyBounds
	}

	log.WithFields(logrus.Fields{
		"vertices":         g.Len(),
		"max_accumulation": cfg.MaxAccumulation,
	}).Info("building k-d partition")

	tree := kdtree.New(bounds, cfg.MaxAccumulation)
	for _, v := range g.Vertices() {
		tree.Insert(v)
	}
	tree.Divide()
	leaves := tree.Leaves()

	log.WithField("leaves", len(leaves)).Info("k-d partition complete")

	leafVertices := make([][]*graph.Vertex, len(leaves))
	for i, l := range leaves {
		leafVertices[i] = l.Vertices
	}

	regions, err := consolidate.Consolidate(leafVertices)
	if err != nil {
		log.WithError(err).Error("consolidation failed")

		return nil, fmt.Errorf("pipeline: consolidate: %w", err)
	}

	log.WithField("regions", len(regions)).Info("consolidation complete")

	return &Result{Regions: regions, LeafCount: len(leaves)}, nil
}
