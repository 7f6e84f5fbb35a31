package regionio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/regionpart/geometry"
	"github.com/katalvlaran/regionpart/graph"
	"github.com/katalvlaran/regionpart/kdtree"
)

// WriteRegions writes regions in the format spec.md §6 describes: two lines
// per region, in ascending region-id order — the region id, then its member
// vertex ids separated by spaces and terminated by a trailing space and
// newline. Empty regions still emit both lines, with an empty second line.
func WriteRegions(w io.Writer, regions [][]*graph.Vertex) error {
	bw := bufio.NewWriter(w)
	for id, members := range regions {
		if _, err := fmt.Fprintf(bw, "%d\n", id); err != nil {
			return fmt.Errorf("regionio: write region %d: %w", id, err)
		}
		for _, v := range members {
			if _, err := fmt.Fprintf(bw, "%d ", v.ID); err != nil {
				return fmt.Errorf("regionio: write region %d: %w", id, err)
			}
		}
		if _, err := fmt.Fprint(bw, "\n"); err != nil {
			return fmt.Errorf("regionio: write region %d: %w", id, err)
		}
	}

	return bw.Flush()
}

// ReadRegions is WriteRegions's inverse: it parses a region file back into
// one vertex slice per region, in ascending region-id order, resolving
// each id against g. It is used by the validate subcommand to re-check a
// previously written partition's testable properties (spec.md §8) without
// re-running the pipeline.
func ReadRegions(r io.Reader, g *graph.Graph) ([][]*graph.Vertex, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var regions [][]*graph.Vertex
	for sc.Scan() {
		idLine := strings.TrimSpace(sc.Text())
		if idLine == "" {
			continue
		}
		regionID, err := strconv.Atoi(idLine)
		if err != nil {
			return nil, fmt.Errorf("regionio: region file: region id line: %w", err)
		}
		if !sc.Scan() {
			return nil, fmt.Errorf("regionio: region file: region %d: missing member line", regionID)
		}
		fields := strings.Fields(sc.Text())

		for len(regions) <= regionID {
			regions = append(regions, nil)
		}

		members := make([]*graph.Vertex, 0, len(fields))
		for _, f := range fields {
			id, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("regionio: region file: region %d: %w", regionID, err)
			}
			v := g.Vertex(id)
			if v == nil {
				return nil, fmt.Errorf("regionio: region file: region %d: %w: %d", regionID, graph.ErrUnknownVertex, id)
			}
			members = append(members, v)
		}
		regions[regionID] = members
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("regionio: region file: %w", err)
	}

	return regions, nil
}

// WriteShardFiles is the supplemented per-region writer grounded on the
// original tool's regionfile.py: one nodes_<region_id>.csv file per
// non-empty region under dir, each line `id,x,y,owning_region_id`. Every
// in-region vertex is written first (owning_region_id == region id), then
// every boundary vertex — a neighbour of some in-region vertex that belongs
// to a different region — annotated with its true owning region id, so a
// downstream shard can resolve a cross-region edge endpoint without a
// second lookup. dir is created if it does not already exist; it is not
// cleared first (unlike the original's delete-then-recreate, which is a
// destructive operation this library leaves to its caller).
func WriteShardFiles(dir string, regions [][]*graph.Vertex) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("regionio: shard dir: %w", err)
	}

	vertexRegion := make(map[int]int, countVertices(regions))
	for regionID, members := range regions {
		for _, v := range members {
			vertexRegion[v.ID] = regionID
		}
	}

	for regionID, members := range regions {
		if len(members) == 0 {
			continue
		}
		if err := writeShardFile(dir, regionID, members, vertexRegion); err != nil {
			return err
		}
	}

	return nil
}

func writeShardFile(dir string, regionID int, members []*graph.Vertex, vertexRegion map[int]int) error {
	path := filepath.Join(dir, fmt.Sprintf("nodes_%d.csv", regionID))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("regionio: shard file %s: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	saved := make(map[int]bool, len(members))

	for _, v := range members {
		if _, err := fmt.Fprintf(bw, "%d,%d,%d,%d\n", v.ID, v.Location.X, v.Location.Y, regionID); err != nil {
			return fmt.Errorf("regionio: shard file %s: %w", path, err)
		}
		saved[v.ID] = true
	}

	for _, v := range members {
		for _, e := range v.Edges() {
			other := v.Other(e)
			if saved[other.ID] {
				continue
			}
			if _, err := fmt.Fprintf(bw, "%d,%d,%d,%d\n", other.ID, other.Location.X, other.Location.Y, vertexRegion[other.ID]); err != nil {
				return fmt.Errorf("regionio: shard file %s: %w", path, err)
			}
			saved[other.ID] = true
		}
	}

	return bw.Flush()
}

func countVertices(regions [][]*graph.Vertex) int {
	n := 0
	for _, r := range regions {
		n += len(r)
	}

	return n
}

// GroupRegions is the supplemented second-level pass grounded on the
// original tool's regiongrouper.py: it computes each non-empty region's
// centroid (the center of the rectangle encapsulating its members'
// locations) and feeds those centroids through a fresh kdtree with
// maxAccumulation as its leaf capacity; a superregion holds more than
// maxAccumulation region-centers where the kdtree keeps an oversized leaf
// (see kdtree.Tree.Divide). The result groups
// first-level region ids into coarser superregions for routing; it does not
// touch vertex-to-region assignment at all; it is a read-only consumer of
// Consolidate's output via region centroids.
func GroupRegions(regions [][]*graph.Vertex, maxAccumulation int) ([][]int, error) {
	type center struct {
		regionID int
		loc      geometry.Point
	}

	var centers []center
	for regionID, members := range regions {
		if len(members) == 0 {
			continue
		}
		pts := make([]geometry.Point, len(members))
		for i, v := range members {
			pts[i] = v.Location
		}
		rect, ok := geometry.EncapsulateAll(pts)
		if !ok {
			continue
		}
		centers = append(centers, center{regionID: regionID, loc: rect.Center()})
	}

	if len(centers) == 0 {
		return nil, nil
	}

	locs := make([]geometry.Point, len(centers))
	for i, c := range centers {
		locs[i] = c.loc
	}
	bounds, ok := geometry.EncapsulateAll(locs)
	if !ok {
		return nil, nil
	}

	tree := kdtree.New(bounds, maxAccumulation)

	// Insert one synthetic vertex per center, keyed by its index into
	// centers, so the kdtree routes purely on location; centers[v.ID]
	// recovers the originating region id after leaf extraction.
	g := graph.New()
	for i, c := range centers {
		g.AddVertex(i, c.loc)
	}
	for _, v := range g.Vertices() {
		tree.Insert(v)
	}
	tree.Divide()

	var superregions [][]int
	for _, leaf := range tree.Leaves() {
		group := make([]int, len(leaf.Vertices))
		for i, v := range leaf.Vertices {
			group[i] = centers[v.ID].regionID
		}
		sort.Ints(group)
		if len(group) > 0 {
			superregions = append(superregions, group)
		}
	}

	return superregions, nil
}
