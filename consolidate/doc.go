// Package consolidate repairs a spatial partition (a sequence of leaf
// vertex lists, as produced by package kdtree) against the graph's edge
// topology, producing a final set of vertex regions that are each
// internally connected.
//
// The algorithm runs in four phases: split every leaf into its connected
// components via a per-leaf union-find, keeping the largest component under
// the leaf's original region id and detaching the rest; cluster the
// detached vertices among themselves via a second, global union-find;
// re-home each detached cluster into a neighbouring region by breadth-first
// search over graph edges (package bfs); and finally materialise every
// vertex into its resolved region, in the original input order.
package consolidate
