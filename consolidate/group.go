package consolidate

import (
	"github.com/katalvlaran/regionpart/graph"
	"github.com/katalvlaran/regionpart/unionfind"
)

// groupByFirstSeen partitions members by their union-find root, preserving
// the order in which each root was first encountered while scanning
// members. This is what makes "largest group wins, ties broken by first
// encountered" (phase 1) and "seed is the first vertex of the cluster"
// (phase 3) both deterministic and reproducible from members' own order.
func groupByFirstSeen(members []*graph.Vertex, dsu *unionfind.DSU) [][]*graph.Vertex {
	indexByRoot := make(map[int]int, len(members))
	var groups [][]*graph.Vertex

	for _, v := range members {
		root := dsu.Find(v.ID)
		idx, ok := indexByRoot[root]
		if !ok {
			idx = len(groups)
			indexByRoot[root] = idx
			groups = append(groups, nil)
		}
		groups[idx] = append(groups[idx], v)
	}

	return groups
}
