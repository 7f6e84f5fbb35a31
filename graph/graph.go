package graph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/regionpart/geometry"
)

// ErrUnknownVertex is returned by AddEdge when either endpoint id has not
// been registered with AddVertex.
var ErrUnknownVertex = errors.New("graph: unknown vertex id")

// Graph is a weighted, undirected graph over integer vertex/edge ids. It is
// built incrementally via AddVertex/AddEdge and is read-only once loading is
// complete — no method here removes a vertex or edge.
type Graph struct {
	vertices    map[int]*Vertex
	vertexOrder []int

	edges     map[int]*Edge
	edgeOrder []int

	bounds    geometry.Rectangle
	hasBounds bool
}

// New returns an empty graph ready for AddVertex/AddEdge.
func New() *Graph {
	return &Graph{
		vertices: make(map[int]*Vertex),
		edges:    make(map[int]*Edge),
	}
}

// AddVertex registers a vertex at id with the given location. If id already
// exists, its record is replaced — matching the source's overwrite-on-
// collision behaviour — though its former edges remain reachable from the
// edge map, exactly as the source leaves them.
//
// The first vertex ever added seeds Bounds() as a zero-size rectangle at its
// location; every subsequent vertex grows Bounds() via Rectangle.Encapsulate.
func (g *Graph) AddVertex(id int, loc geometry.Point) {
	if !g.hasBounds {
		g.bounds = geometry.Rectangle{X: loc.X, Y: loc.Y, W: 0, H: 0}
		g.hasBounds = true
	} else {
		g.bounds.Encapsulate(loc)
	}

	if _, exists := g.vertices[id]; !exists {
		g.vertexOrder = append(g.vertexOrder, id)
	}
	g.vertices[id] = &Vertex{ID: id, Location: loc, edges: make(map[int]*Edge)}
}

// AddEdge registers an edge at id joining vertices idA and idB with the
// given weight, and appends it to both endpoints' adjacency. Returns
// ErrUnknownVertex, wrapped with the offending id, if either endpoint is
// unregistered.
func (g *Graph) AddEdge(id, idA, idB, weight int) error {
	a, ok := g.vertices[idA]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownVertex, idA)
	}
	b, ok := g.vertices[idB]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownVertex, idB)
	}

	e := &Edge{ID: id, A: a, B: b, Weight: weight}

	if _, exists := g.edges[id]; !exists {
		g.edgeOrder = append(g.edgeOrder, id)
	}
	g.edges[id] = e

	if _, exists := a.edges[id]; !exists {
		a.edgeOrder = append(a.edgeOrder, id)
	}
	a.edges[id] = e

	if a != b {
		if _, exists := b.edges[id]; !exists {
			b.edgeOrder = append(b.edgeOrder, id)
		}
		b.edges[id] = e
	}

	return nil
}

// Vertex returns the vertex registered at id, or nil if none exists.
func (g *Graph) Vertex(id int) *Vertex {
	return g.vertices[id]
}

// Vertices returns every vertex in insertion order. Downstream components
// (kdtree, consolidate) rely on this order for deterministic tie-breaking.
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, 0, len(g.vertexOrder))
	for _, id := range g.vertexOrder {
		out = append(out, g.vertices[id])
	}

	return out
}

// Edge returns the edge registered at id, or nil if none exists.
func (g *Graph) Edge(id int) *Edge {
	return g.edges[id]
}

// Edges returns every edge in insertion order.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		out = append(out, g.edges[id])
	}

	return out
}

// Bounds returns the rectangle grown over every vertex added so far (the
// same seed-then-Encapsulate construction as geometry.EncapsulateAll, with
// the same exception for the first vertex's location), and whether any
// vertex has been added at all (false on an empty graph, mirroring
// geometry.EncapsulateAll's ok return).
func (g *Graph) Bounds() (geometry.Rectangle, bool) {
	return g.bounds, g.hasBounds
}

// Len reports the number of vertices currently registered.
func (g *Graph) Len() int {
	return len(g.vertexOrder)
}
