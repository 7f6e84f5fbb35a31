// Package regionpart partitions a planar, weighted, undirected graph into
// disjoint vertex regions suitable for sharding a graph across workers in a
// distributed shortest-path service.
//
// The partition is produced in two stages:
//
//	geometry/    — Point and half-open Rectangle primitives
//	graph/       — the integer-keyed Vertex/Edge/Graph model
//	kdtree/      — spatial subdivision into capacity-bounded leaf regions
//	unionfind/   — path-compressed, union-by-rank disjoint-set forest
//	bfs/         — breadth-first traversal used by the re-homing search
//	consolidate/ — repairs leaf regions against graph edge topology
//
// pipeline/ wires those packages into a single Run call; regionio/ reads
// vertex/edge input and writes region output; cmd/regionpart is the
// command-line front end.
//
//	go get github.com/katalvlaran/regionpart
package regionpart
