// Package regionio is the I/O glue around the core partitioning packages:
// parsing vertex/edge input (CSV, per spec, and the legacy whitespace
// counts-prefixed text format from the original tool) into a graph.Graph,
// and writing the consolidated regions back out.
//
// WriteRegions matches the plain region-file format exactly. WriteShardFiles
// and GroupRegions are supplemented from the original tool's regionfile.py
// and regiongrouper.py: per-region shard files annotated with boundary
// vertices, and a second k-d pass grouping region centroids into coarser
// superregions for routing. Neither changes anything about the core
// algorithms — both are read-only consumers of their output.
package regionio
