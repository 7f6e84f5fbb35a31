// Package kdtree builds the two-node-variant spatial subdivision tree used
// to produce leaf regions bounded by a configured vertex capacity.
//
// A Tree is built in two phases: every vertex is inserted into a single root
// Accumulator (Tree.Insert), then Tree.Divide recursively splits any
// Accumulator exceeding max_accumulation into a Split with two fresh
// Accumulator children, alternating the split axis by recursion depth
// (vertical at even depth, horizontal at odd). An Accumulator whose split
// would leave one child empty is kept as an oversized leaf. The split pivot is
// deliberately biased off the true median (see divide.go); this is load-
// bearing and must not be "fixed" to a true median — doing so changes which
// vertices land in which leaf.
//
// Leaves() walks the finished tree left-then-right and returns one Leaf per
// Accumulator, in that traversal order.
package kdtree
