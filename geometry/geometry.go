package geometry

// Left returns the rectangle's minimum x coordinate.
func (r Rectangle) Left() int { return r.X }

// Bottom returns the rectangle's minimum y coordinate.
func (r Rectangle) Bottom() int { return r.Y }

// Right returns the rectangle's exclusive maximum x coordinate.
func (r Rectangle) Right() int { return r.X + r.W }

// Top returns the rectangle's exclusive maximum y coordinate.
func (r Rectangle) Top() int { return r.Y + r.H }

// Center returns the integer midpoint of the rectangle, truncating division
// toward zero the way the source tool does (W and H are never negative in
// practice, so this matches floor division).
func (r Rectangle) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside the rectangle under half-open
// containment: X <= p.X < X+W and Y <= p.Y < Y+H.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Bottom() && p.Y < r.Top()
}

// Encapsulate grows the rectangle in place to admit p, preserving half-open
// containment. Growing the lower bound moves X/Y down to p's coordinate;
// growing the upper bound must extend one past p, since the upper bound is
// exclusive — this +1 is what lets a tree built from Encapsulated rectangles
// still contain every input point after a split.
func (r *Rectangle) Encapsulate(p Point) {
	if p.X < r.Left() {
		r.W += r.Left() - p.X
		r.X = p.X
	} else if p.X >= r.Right() {
		r.W += p.X - r.Right() + 1
	}
	if p.Y < r.Bottom() {
		r.H += r.Bottom() - p.Y
		r.Y = p.Y
	} else if p.Y >= r.Top() {
		r.H += p.Y - r.Top() + 1
	}
}

// EncapsulateAll seeds a zero-size rectangle at the first point of pts and
// grows it with Encapsulate for every later point. Every later point ends up
// inside the result; the first point does too unless, on some axis, no later
// point has a coordinate at or above its own (the zero-size seed does not
// contain it, and growing the lower bound leaves the upper bound in place).
// It reports ok == false for an empty sequence, in which case the returned
// Rectangle is the zero value and must not be used.
func EncapsulateAll(pts []Point) (rect Rectangle, ok bool) {
	if len(pts) == 0 {
		return Rectangle{}, false
	}
	rect = Rectangle{X: pts[0].X, Y: pts[0].Y, W: 0, H: 0}
	for _, p := range pts[1:] {
		rect.Encapsulate(p)
	}

	return rect, true
}
