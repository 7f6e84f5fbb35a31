// Package pipeline orchestrates the two-stage partitioning algorithm —
// kdtree.Tree construction and division, followed by consolidate.Consolidate
// — against a loaded graph.Graph, logging stage boundaries with
// github.com/sirupsen/logrus. The algorithm packages themselves (geometry,
// graph, kdtree, unionfind, bfs, consolidate) never log; this package and
// the cmd/regionpart front end are the only places in the module that do,
// matching the teacher's separation of pure algorithmic code from
// orchestration glue.
package pipeline
