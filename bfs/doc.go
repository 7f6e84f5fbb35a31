// Package bfs provides breadth-first traversal over a graph.Graph, visiting
// each reachable vertex exactly once in non-decreasing distance from a
// start vertex.
//
// Walk's Visitor is handed each dequeued vertex and its depth, and runs
// before that vertex's neighbours are enqueued, so it can inspect the
// vertex's edges itself and stop the walk as soon as any neighbour matches,
// rather than waiting to dequeue it. The region consolidator's re-homing
// search (see package consolidate) relies on this. Walk itself handles the
// enqueue/visited bookkeeping.
package bfs
