package regionio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/regionpart/geometry"
	"github.com/katalvlaran/regionpart/graph"
)

// ParseCSV reads the vertex CSV (id,x,y[,extra...]) and, if edges is
// non-nil, the edge CSV (id_a,id_b,weight,edge_id), returning the populated
// graph. Trailing columns on vertex rows are ignored. An edge referencing an
// unknown vertex id is a fatal parse error, surfaced as graph.ErrUnknownVertex.
func ParseCSV(vertices io.Reader, edges io.Reader) (*graph.Graph, error) {
	g := graph.New()

	vr := csv.NewReader(vertices)
	vr.FieldsPerRecord = -1
	vr.TrimLeadingSpace = true
	for {
		rec, err := vr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("regionio: vertex csv: %w", err)
		}
		if len(rec) < 3 {
			return nil, fmt.Errorf("regionio: vertex csv: want at least 3 fields, got %d", len(rec))
		}
		id, x, y, err := parseIntTriple(rec[0], rec[1], rec[2])
		if err != nil {
			return nil, fmt.Errorf("regionio: vertex csv: %w", err)
		}
		g.AddVertex(id, geometry.Point{X: x, Y: y})
	}

	if edges == nil {
		return g, nil
	}

	er := csv.NewReader(edges)
	er.FieldsPerRecord = -1
	er.TrimLeadingSpace = true
	for {
		rec, err := er.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("regionio: edge csv: %w", err)
		}
		if len(rec) < 4 {
			return nil, fmt.Errorf("regionio: edge csv: want at least 4 fields, got %d", len(rec))
		}
		idA, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("regionio: edge csv: %w", err)
		}
		idB, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("regionio: edge csv: %w", err)
		}
		weight, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("regionio: edge csv: %w", err)
		}
		id, err := strconv.Atoi(rec[3])
		if err != nil {
			return nil, fmt.Errorf("regionio: edge csv: %w", err)
		}
		if err := g.AddEdge(id, idA, idB, weight); err != nil {
			return nil, fmt.Errorf("regionio: edge csv: %w", err)
		}
	}

	return g, nil
}

// ParseText reads the legacy whitespace counts-prefixed format the original
// tool's parse_txt accepted: a vertex count, that many "id x y" lines, an
// edge count, then that many "id_a id_b weight id" lines.
func ParseText(r io.Reader) (*graph.Graph, error) {
	g := graph.New()
	sc := bufio.NewScanner(r)

	readInt := func() (int, error) {
		if !sc.Scan() {
			return 0, io.ErrUnexpectedEOF
		}

		return strconv.Atoi(strings.TrimSpace(sc.Text()))
	}

	vertCount, err := readInt()
	if err != nil {
		return nil, fmt.Errorf("regionio: text format: vertex count: %w", err)
	}
	for i := 0; i < vertCount; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("regionio: text format: vertex line %d: %w", i, io.ErrUnexpectedEOF)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) < 3 {
			return nil, fmt.Errorf("regionio: text format: vertex line %d: want 3 fields, got %d", i, len(fields))
		}
		id, x, y, err := parseIntTriple(fields[0], fields[1], fields[2])
		if err != nil {
			return nil, fmt.Errorf("regionio: text format: vertex line %d: %w", i, err)
		}
		g.AddVertex(id, geometry.Point{X: x, Y: y})
	}

	edgeCount, err := readInt()
	if err != nil {
		return nil, fmt.Errorf("regionio: text format: edge count: %w", err)
	}
	for i := 0; i < edgeCount; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("regionio: text format: edge line %d: %w", i, io.ErrUnexpectedEOF)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) < 4 {
			return nil, fmt.Errorf("regionio: text format: edge line %d: want 4 fields, got %d", i, len(fields))
		}
		idA, errA := strconv.Atoi(fields[0])
		idB, errB := strconv.Atoi(fields[1])
		weight, errW := strconv.Atoi(fields[2])
		id, errID := strconv.Atoi(fields[3])
		if err := firstErr(errA, errB, errW, errID); err != nil {
			return nil, fmt.Errorf("regionio: text format: edge line %d: %w", i, err)
		}
		if err := g.AddEdge(id, idA, idB, weight); err != nil {
			return nil, fmt.Errorf("regionio: text format: edge line %d: %w", i, err)
		}
	}

	return g, nil
}

func parseIntTriple(a, b, c string) (int, int, int, error) {
	x, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return 0, 0, 0, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return 0, 0, 0, err
	}
	z, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return 0, 0, 0, err
	}

	return x, y, z, nil
}

func firstErr(errs ...error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}

	return nil
}
