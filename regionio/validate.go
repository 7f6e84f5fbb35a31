package regionio

import (
	"fmt"

	"github.com/katalvlaran/regionpart/graph"
	"github.com/katalvlaran/regionpart/unionfind"
)

// ValidatePartition checks the two universal properties spec.md §8 names
// for a finished partition against the original graph: partition
// completeness (every graph vertex appears in exactly one region) and
// region connectivity (every non-empty region is connected under edges
// with both endpoints inside it). It is a read-only check used by the
// validate subcommand; it never mutates g or regions.
func ValidatePartition(g *graph.Graph, regions [][]*graph.Vertex) error {
	owner := make(map[int]int, g.Len())
	for regionID, members := range regions {
		for _, v := range members {
			if prior, ok := owner[v.ID]; ok {
				return fmt.Errorf("regionio: vertex %d appears in both region %d and region %d", v.ID, prior, regionID)
			}
			owner[v.ID] = regionID
		}
	}
	for _, v := range g.Vertices() {
		if _, ok := owner[v.ID]; !ok {
			return fmt.Errorf("regionio: vertex %d is not assigned to any region", v.ID)
		}
	}

	for regionID, members := range regions {
		if len(members) == 0 {
			continue
		}
		dsu := unionfind.New()
		for _, v := range members {
			dsu.Find(v.ID)
			for _, e := range v.Edges() {
				other := v.Other(e)
				if owner[other.ID] == regionID {
					dsu.Union(v.ID, other.ID)
				}
			}
		}
		root := dsu.Find(members[0].ID)
		for _, v := range members[1:] {
			if dsu.Find(v.ID) != root {
				return fmt.Errorf("regionio: region %d is not connected (vertex %d is unreachable from vertex %d within the region)", regionID, v.ID, members[0].ID)
			}
		}
	}

	return nil
}
