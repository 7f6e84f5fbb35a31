// Command regionpart runs the spatial region partitioner over a vertex/edge
// graph loaded from CSV (or the legacy whitespace text format) and writes
// the resulting regions to a file, or validates a previously written one.
package main

func main() {
	Execute()
}
