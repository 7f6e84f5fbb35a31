package kdtree

import (
	"github.com/katalvlaran/regionpart/geometry"
	"github.com/katalvlaran/regionpart/graph"
)

// node is the tagged-variant interface every tree node satisfies: insert
// routes a vertex to the right place, divide recurses (or returns self
// unchanged once capacity is satisfied), rect reports the node's bounding
// rectangle, and collectLeaves appends this node's leaves, left before
// right, to out.
type node interface {
	insert(v *graph.Vertex)
	divide(depth int, maxAccumulation int) node
	rect() geometry.Rectangle
	collectLeaves(out *[]Leaf)
}

// accumulator is a leaf node: a rectangle and the vertices routed into it so
// far. Once len(items) exceeds max_accumulation, divide replaces it (in its
// parent) with a split node.
type accumulator struct {
	r     geometry.Rectangle
	items []*graph.Vertex
}

// split is an internal node: a rectangle and two children whose rectangles
// exactly partition it (no overlap, no gap) under half-open containment.
type split struct {
	r           geometry.Rectangle
	left, right node
}

// Leaf is one terminal region of a finished tree: its rectangle and the
// vertices whose locations fall inside it, in the order they were inserted
// into the tree (which, since Tree.Insert is called once per graph vertex in
// graph iteration order, is the graph's own insertion order).
type Leaf struct {
	Rect     geometry.Rectangle
	Vertices []*graph.Vertex
}

// Tree is the k-d spatial subdivision over a fixed bounding rectangle and
// capacity. Build with New, populate with Insert for every vertex, then call
// Divide once; Leaves is only meaningful after Divide.
type Tree struct {
	root            node
	maxAccumulation int
}
