package graph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

var ErrMissingHeader = errors.New("graph: missing vertex count header")

// Read parses a graph from r. The input is whitespace separated: the vertex
// count first, then any number of "from to weight" triples, each adding one
// directed edge. Reading stops silently at the first triple that is truncated,
// malformed or names a vertex outside the graph.
func Read(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("failed to read graph header: %w", err)
		}
		return nil, ErrMissingHeader
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: got %q", ErrMissingHeader, sc.Text())
	}

	g := New(n)
	for {
		from, to, weight, ok := readTriple(sc, n)
		if !ok {
			break
		}
		g.AddEdge(from, to, weight, None)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read graph edges: %w", err)
	}
	return g, nil
}

func readTriple(sc *bufio.Scanner, n int) (int, int, float64, bool) {
	var fields [3]string
	for i := range fields {
		if !sc.Scan() {
			return 0, 0, 0, false
		}
		fields[i] = sc.Text()
	}
	from, err := strconv.Atoi(fields[0])
	if err != nil || from < 0 || from >= n {
		return 0, 0, 0, false
	}
	to, err := strconv.Atoi(fields[1])
	if err != nil || to < 0 || to >= n {
		return 0, 0, 0, false
	}
	weight, err := strconv.ParseFloat(fields[2], 64)
	if err != nil || weight < 0 {
		return 0, 0, 0, false
	}
	return from, to, weight, true
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open graph file: %w", err)
	}
	defer f.Close()

	return Read(f)
}
