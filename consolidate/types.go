package consolidate

import "errors"

// ErrOrphanCluster is returned when a detached cluster's breadth-first
// search (phase 3) exhausts the graph reachable from its seed without
// finding any vertex still holding a region assignment — the cluster is
// entirely isolated from the rest of the graph.
var ErrOrphanCluster = errors.New("consolidate: detached cluster has no re-home target")

// ErrUnassignedVertex is returned when materialisation (phase 4) finds a
// vertex still without a region assignment. This indicates an invariant
// violation in phases 1-3, not a property of the input graph.
var ErrUnassignedVertex = errors.New("consolidate: vertex left unassigned after re-homing")

const unassigned = -1
