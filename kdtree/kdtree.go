package kdtree

import (
	"github.com/katalvlaran/regionpart/geometry"
	"github.com/katalvlaran/regionpart/graph"
)

// New returns a Tree with an empty root Accumulator spanning rect.
func New(rect geometry.Rectangle, maxAccumulation int) *Tree {
	return &Tree{
		root:            &accumulator{r: rect},
		maxAccumulation: maxAccumulation,
	}
}

// Insert routes v into the tree. Call this for every vertex before Divide;
// calling it after Divide has no defined routing target for a vertex whose
// location falls in a region a prior split already carved up differently
// (Insert always routes through whatever shape the tree currently has, so in
// practice it still lands somewhere, but Tree is meant to be built insert-
// all-then-divide-once, per the source's two-phase construction).
func (t *Tree) Insert(v *graph.Vertex) {
	t.root.insert(v)
}

// Divide recursively splits every Accumulator in the tree that holds more
// than max_accumulation items, alternating split axis by depth starting at
// 0. An Accumulator whose pivot split on its own axis would send every item
// to one child is kept whole as an oversized leaf (see accumulator.divide);
// the other axis is not tried for it. Calling Divide again after the tree is
// already divided is a no-op: every Accumulator either satisfies the
// capacity bound or is kept whole again by the same check.
func (t *Tree) Divide() {
	t.root = t.root.divide(0, t.maxAccumulation)
}

// Leaves returns every leaf region in left-then-right traversal order.
func (t *Tree) Leaves() []Leaf {
	var out []Leaf
	t.root.collectLeaves(&out)

	return out
}

func (a *accumulator) insert(v *graph.Vertex) {
	a.items = append(a.items, v)
}

func (a *accumulator) rect() geometry.Rectangle { return a.r }

func (a *accumulator) collectLeaves(out *[]Leaf) {
	*out = append(*out, Leaf{Rect: a.r, Vertices: a.items})
}

func (s *split) insert(v *graph.Vertex) {
	if s.left.rect().Contains(v.Location) {
		s.left.insert(v)
	} else {
		s.right.insert(v)
	}
}

func (s *split) rect() geometry.Rectangle { return s.r }

func (s *split) divide(depth int, maxAccumulation int) node {
	s.left = s.left.divide(depth+1, maxAccumulation)
	s.right = s.right.divide(depth+1, maxAccumulation)

	return s
}

func (s *split) collectLeaves(out *[]Leaf) {
	s.left.collectLeaves(out)
	s.right.collectLeaves(out)
}
