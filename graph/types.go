package graph

import "github.com/katalvlaran/regionpart/geometry"

// Vertex is a single graph node: an integer id, its 2-D location, and the
// set of edges incident to it (keyed by edge id, for O(1) lookup and
// overwrite-on-collision).
type Vertex struct {
	ID       int
	Location geometry.Point

	edges      map[int]*Edge
	edgeOrder  []int
}

// Edges returns the vertex's incident edges in the order they were added.
func (v *Vertex) Edges() []*Edge {
	out := make([]*Edge, 0, len(v.edgeOrder))
	for _, id := range v.edgeOrder {
		out = append(out, v.edges[id])
	}

	return out
}

// Other returns the endpoint of e that is not v. Callers must only call this
// with an edge actually incident to v; behaviour is undefined otherwise
// (mirrors the source, which never guards this either).
func (v *Vertex) Other(e *Edge) *Vertex {
	if e.A == v {
		return e.B
	}

	return e.A
}

// Edge joins two vertices with an integer weight. A and B are the stable
// endpoints; Other (see Vertex.Other) resolves "the other side" relative to
// a given vertex.
type Edge struct {
	ID     int
	A, B   *Vertex
	Weight int
}
