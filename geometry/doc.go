// Package geometry provides the integer-coordinate primitives shared by the
// spatial partitioner: Point and Rectangle.
//
// Rectangle is half-open on both axes: a point (px, py) lies inside a
// rectangle (x, y, w, h) iff x <= px < x+w and y <= py < y+h. Every
// Rectangle-growing operation (Encapsulate, EncapsulateAll) preserves this
// half-open contract, including on the upper bound where growth must add one
// past the admitted coordinate.
//
// Types here are value types: callers copy them freely, and only
// Encapsulate mutates (in place, by design, mirroring the growth of a
// bounding box as vertices are inserted one at a time).
package geometry
