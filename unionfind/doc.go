// Package unionfind implements a path-compressed, union-by-rank disjoint-set
// forest over int keys, the same algorithm the teacher hand-rolls inline for
// Kruskal's MST (see prim_kruskal.Kruskal), lifted out into a reusable type
// because the partitioner needs two independent instances of it: one scoped
// to a single leaf region's members, and one scoped globally to every
// detached vertex.
//
// Find uses iterative path compression (no recursion, so depth is never a
// stack-overflow concern); Union reports whether it actually merged two
// distinct classes, letting callers count merges without a second Find.
package unionfind
