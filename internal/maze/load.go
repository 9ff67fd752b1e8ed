package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrGraphFormat reports a graph file that does not parse as exactly
// EdgeCount whitespace-delimited (label, label, weight) records.
// Distinct from open failures, which wrap the underlying os error.
var ErrGraphFormat = errors.New("malformed graph file")

// Load reads the maze definition from path.
func Load(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open graph: %w", err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read graph %s: %w", path, err)
	}
	return g, nil
}

// Read parses a maze definition: EdgeCount records of
// <source-label> <destination-label> <weight>, whitespace-delimited.
// Short files, extra fields, unknown labels, and negative weights are
// all rejected rather than silently read as garbage.
func Read(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var fields []string
	for sc.Scan() {
		fields = append(fields, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read graph: %w", err)
	}

	if len(fields) != EdgeCount*3 {
		return nil, fmt.Errorf("%w: got %d fields, want %d", ErrGraphFormat, len(fields), EdgeCount*3)
	}

	edges := make([]Edge, 0, EdgeCount)
	for i := 0; i < EdgeCount; i++ {
		rec := fields[i*3 : i*3+3]

		from, err := parseLabel(rec[0])
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrGraphFormat, i+1, err)
		}
		to, err := parseLabel(rec[1])
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrGraphFormat, i+1, err)
		}
		weight, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: weight %q is not an integer", ErrGraphFormat, i+1, rec[2])
		}
		if weight < 0 {
			return nil, fmt.Errorf("%w: record %d: negative weight %d", ErrGraphFormat, i+1, weight)
		}

		edges = append(edges, Edge{From: from, To: to, Weight: weight})
	}

	return &Graph{Edges: edges}, nil
}

func parseLabel(field string) (Node, error) {
	if len(field) != 1 {
		return 0, fmt.Errorf("label %q is not a single character", field)
	}
	return ParseNode(field[0])
}
