package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/regionpart/graph"
	"github.com/katalvlaran/regionpart/regionio"
)

// openGraph opens vertexPath (and, for the csv format, edgePath if set) and
// parses them into a graph.Graph, dispatching on format ("csv" or "txt", the
// legacy whitespace counts-prefixed format from the original tool, which has
// no separate edge file since it inlines both vertex and edge sections).
func openGraph(vertexPath, edgePath, format string) (*graph.Graph, error) {
	switch format {
	case "csv":
		return openCSVGraph(vertexPath, edgePath)
	case "txt":
		return openTextGraph(vertexPath)
	default:
		return nil, fmt.Errorf("regionpart: unknown format %q (want \"csv\" or \"txt\")", format)
	}
}

func openCSVGraph(vertexPath, edgePath string) (*graph.Graph, error) {
	vf, err := os.Open(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("regionpart: open vertices: %w", err)
	}
	defer vf.Close()

	var edges io.Reader
	if edgePath != "" {
		ef, err := os.Open(edgePath)
		if err != nil {
			return nil, fmt.Errorf("regionpart: open edges: %w", err)
		}
		defer ef.Close()
		edges = ef
	}

	return regionio.ParseCSV(vf, edges)
}

func openTextGraph(vertexPath string) (*graph.Graph, error) {
	f, err := os.Open(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("regionpart: open: %w", err)
	}
	defer f.Close()

	return regionio.ParseText(f)
}
