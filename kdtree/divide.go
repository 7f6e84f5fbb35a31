package kdtree

import (
	"sort"

	"github.com/katalvlaran/regionpart/geometry"
	"github.com/katalvlaran/regionpart/graph"
)

// divide implements the Accumulator case of the algorithm: unchanged if
// already within capacity, otherwise split along the depth-alternating axis
// and recurse into the freshly created Split at the same depth (which then
// recurses into its own two children at depth+1 — see split.divide).
func (a *accumulator) divide(depth int, maxAccumulation int) node {
	n := len(a.items)
	if n <= maxAccumulation {
		return a
	}

	axis := depth % 2
	var rect1, rect2 geometry.Rectangle
	if axis == 0 {
		rect1, rect2 = a.splitVertical()
	} else {
		rect1, rect2 = a.splitHorizontal()
	}

	// Guard against degenerate coordinate collisions: if every item routed to
	// one child, the split made no progress and would recurse forever on
	// identical inputs. Treat this Accumulator as an oversized leaf instead.
	// The check uses the current axis only, so items that share this axis's
	// pivot coordinate but differ on the other axis are also kept together.
	count1, count2 := 0, 0
	for _, v := range a.items {
		if rect1.Contains(v.Location) {
			count1++
		} else {
			count2++
		}
	}
	if count1 == 0 || count2 == 0 {
		return a
	}

	s := &split{
		r:     a.r,
		left:  &accumulator{r: rect1},
		right: &accumulator{r: rect2},
	}
	for _, v := range a.items {
		s.insert(v)
	}

	return s.divide(depth, maxAccumulation)
}

// pivotIndex is the deliberately off-true-median index: min(n-1, (n/2)+1).
// It biases the left/bottom child to take strictly more points when n is
// even. Reproduced verbatim from the source; do not "correct" it.
func pivotIndex(n int) int {
	idx := n/2 + 1
	if idx > n-1 {
		idx = n - 1
	}

	return idx
}

// splitVertical sorts items by ascending x (stable on ties), picks the
// pivot, and builds the left/right child rectangles so the pivot item's x
// coordinate becomes the right child's left edge.
func (a *accumulator) splitVertical() (left, right geometry.Rectangle) {
	sorted := append([]*graph.Vertex(nil), a.items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Location.X < sorted[j].Location.X
	})
	m := sorted[pivotIndex(len(sorted))].Location.X

	rect := a.r
	left = geometry.Rectangle{X: rect.X, Y: rect.Y, W: m - rect.Left(), H: rect.H}
	right = geometry.Rectangle{X: left.Right(), Y: rect.Y, W: rect.Right() - left.Right(), H: rect.H}

	return left, right
}

// splitHorizontal is splitVertical's y-axis counterpart.
func (a *accumulator) splitHorizontal() (bottom, top geometry.Rectangle) {
	sorted := append([]*graph.Vertex(nil), a.items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Location.Y < sorted[j].Location.Y
	})
	m := sorted[pivotIndex(len(sorted))].Location.Y

	rect := a.r
	bottom = geometry.Rectangle{X: rect.X, Y: rect.Y, W: rect.W, H: m - rect.Bottom()}
	top = geometry.Rectangle{X: rect.X, Y: bottom.Top(), W: rect.W, H: rect.Top() - bottom.Top()}

	return bottom, top
}
