package consolidate

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/regionpart/bfs"
	"github.com/katalvlaran/regionpart/graph"
	"github.com/katalvlaran/regionpart/unionfind"
)

// Consolidate takes an ordered sequence of leaf vertex lists and returns an
// ordered list of final regions, indexed by final region id (some may be
// empty — a leaf whose every member was detached and re-homed elsewhere
// still holds its slot in the output, just empty).
func Consolidate(leaves [][]*graph.Vertex) ([][]*graph.Vertex, error) {
	c := &consolidator{
		vertexRegion: make(map[int]int),
		globalDSU:    unionfind.New(),
	}

	c.splitLeaves(leaves)
	c.clusterDetached()
	if err := c.rehomeDetached(); err != nil {
		return nil, err
	}

	return c.materialize(leaves)
}

type consolidator struct {
	vertexRegion  map[int]int
	nextRegionID  int
	detachedOrder []*graph.Vertex
	globalDSU     *unionfind.DSU
}

// splitLeaves is phase 1: assign each leaf a fresh region id, split it into
// connected components via a local union-find, and detach every component
// except the largest (ties broken by first-encountered root).
func (c *consolidator) splitLeaves(leaves [][]*graph.Vertex) {
	for _, leaf := range leaves {
		regionID := c.nextRegionID
		c.nextRegionID++
		for _, v := range leaf {
			c.vertexRegion[v.ID] = regionID
		}

		local := unionfind.New()
		for _, v := range leaf {
			for _, e := range v.Edges() {
				other := v.Other(e)
				if r, ok := c.vertexRegion[other.ID]; ok && r == regionID {
					local.Union(v.ID, other.ID)
				}
			}
		}

		groups := groupByFirstSeen(leaf, local)
		sort.SliceStable(groups, func(i, j int) bool {
			return len(groups[i]) > len(groups[j])
		})

		for i := 1; i < len(groups); i++ {
			for _, v := range groups[i] {
				c.vertexRegion[v.ID] = unassigned
				c.detachedOrder = append(c.detachedOrder, v)
				c.globalDSU.Find(v.ID)
			}
		}
	}
}

// clusterDetached is phase 2: union every detached vertex with its detached
// neighbours, over the single global union-find.
func (c *consolidator) clusterDetached() {
	for _, v := range c.detachedOrder {
		for _, e := range v.Edges() {
			other := v.Other(e)
			if c.vertexRegion[other.ID] == unassigned {
				c.globalDSU.Union(v.ID, other.ID)
			}
		}
	}
}

// rehomeDetached is phase 3: for each detached cluster, BFS outward from
// its seed (the first vertex of the cluster in detachedOrder) over graph
// edges until a vertex still holding a region is found, and assign every
// cluster member to that region.
func (c *consolidator) rehomeDetached() error {
	clusters := groupByFirstSeen(c.detachedOrder, c.globalDSU)

	for _, cluster := range clusters {
		seed := cluster[0]
		target := unassigned

		found, err := bfs.Walk(seed, func(v *graph.Vertex, depth int) (bool, error) {
			for _, e := range v.Edges() {
				other := v.Other(e)
				if r := c.vertexRegion[other.ID]; r != unassigned {
					target = r

					return true, nil
				}
			}

			return false, nil
		})
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: cluster seeded at vertex %d", ErrOrphanCluster, seed.ID)
		}

		for _, v := range cluster {
			c.vertexRegion[v.ID] = target
		}
	}

	return nil
}

// materialize is phase 4: walk the original input order (the concatenation
// of every leaf's vertex list) and bucket each vertex into its resolved
// region.
func (c *consolidator) materialize(leaves [][]*graph.Vertex) ([][]*graph.Vertex, error) {
	regions := make([][]*graph.Vertex, c.nextRegionID)
	for _, leaf := range leaves {
		for _, v := range leaf {
			r := c.vertexRegion[v.ID]
			if r == unassigned {
				return nil, fmt.Errorf("%w: vertex %d", ErrUnassignedVertex, v.ID)
			}
			regions[r] = append(regions[r], v)
		}
	}

	return regions, nil
}
