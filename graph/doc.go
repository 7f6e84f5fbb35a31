// Package graph implements the integer-keyed vertex/edge model consumed by
// the spatial partitioner: vertices carry a location and an adjacency set of
// edges; the graph incrementally tracks the bounding rectangle of every
// vertex it has seen.
//
// The graph is built once and read many times: AddVertex/AddEdge populate it
// during parsing, and every downstream package (kdtree, consolidate) treats
// it as read-only. Iteration order over vertices and edges is insertion
// order — the k-d pivot tie-breaks and the consolidator's "largest component
// wins" tie-break both depend on it, so callers must not assume otherwise.
package graph
