package bfs

import "github.com/katalvlaran/regionpart/graph"

// Visitor is called once per dequeued vertex, in BFS order. It returns
// stop == true to end the walk immediately (Walk then returns without
// enqueueing that vertex's neighbours), or an error to abort the walk
// entirely.
type Visitor func(v *graph.Vertex, depth int) (stop bool, err error)

// Option configures a Walk via functional arguments, following the same
// pattern the teacher's bfs package uses.
type Option func(*options)

type options struct {
	onEnqueue func(v *graph.Vertex, depth int)
	maxDepth  int
}

func defaultOptions() options {
	return options{
		onEnqueue: func(*graph.Vertex, int) {},
		maxDepth:  0,
	}
}

// WithOnEnqueue registers a callback invoked every time a vertex is newly
// enqueued (including the start vertex, at depth 0).
func WithOnEnqueue(fn func(v *graph.Vertex, depth int)) Option {
	return func(o *options) {
		if fn != nil {
			o.onEnqueue = fn
		}
	}
}

// WithMaxDepth stops the walk from enqueueing any vertex beyond depth d.
// d == 0 (the default) means no limit.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d > 0 {
			o.maxDepth = d
		}
	}
}
