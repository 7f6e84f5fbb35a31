package bfs

import "github.com/katalvlaran/regionpart/graph"

type queueItem struct {
	v     *graph.Vertex
	depth int
}

// Walk runs a breadth-first traversal of g starting at start, calling visit
// on every dequeued vertex until visit reports stop, returns an error, or
// the frontier is exhausted. It reports whether visit ever returned
// stop == true.
func Walk(start *graph.Vertex, visit Visitor, opts ...Option) (found bool, err error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	visited := map[int]bool{start.ID: true}
	queue := []queueItem{{v: start, depth: 0}}
	o.onEnqueue(start, 0)

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		stop, visitErr := visit(item.v, item.depth)
		if visitErr != nil {
			return false, visitErr
		}
		if stop {
			return true, nil
		}

		nextDepth := item.depth + 1
		if o.maxDepth > 0 && nextDepth > o.maxDepth {
			continue
		}
		for _, e := range item.v.Edges() {
			nbr := item.v.Other(e)
			if visited[nbr.ID] {
				continue
			}
			visited[nbr.ID] = true
			o.onEnqueue(nbr, nextDepth)
			queue = append(queue, queueItem{v: nbr, depth: nextDepth})
		}
	}

	return false, nil
}
