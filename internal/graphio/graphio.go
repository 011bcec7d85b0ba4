package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/bmssp/graph"
)

// Sentinel errors for malformed input, wrapped with line numbers by the
// readers below.
var (
	ErrMalformedLine  = errors.New("graphio: malformed line")
	ErrMissingProblem = errors.New("graphio: DIMACS input has no problem line")
)

// ReadEdgeList reads a directed weighted graph from r, one edge per
// non-blank line in "u v w" form (integer endpoints, float32 weight,
// whitespace-separated). Lines beginning with '#' are treated as comments
// and skipped. The returned graph has one more vertex than the largest
// endpoint seen.
func ReadEdgeList(r io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)
	var edges []struct {
		u, v int
		w    graph.Length
	}
	maxV := -1
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: %w", lineNum, ErrMalformedLine)
		}

		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", lineNum, ErrMalformedLine, err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", lineNum, ErrMalformedLine, err)
		}
		w, err := strconv.ParseFloat(fields[2], 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", lineNum, ErrMalformedLine, err)
		}

		edges = append(edges, struct {
			u, v int
			w    graph.Length
		}{u, v, graph.Length(w)})

		if u > maxV {
			maxV = u
		}
		if v > maxV {
			maxV = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphio: reading edge list: %w", err)
	}

	adj := make([][]graph.Edge, maxV+1)
	for _, e := range edges {
		adj[e.u] = append(adj[e.u], graph.NewEdge(graph.Vertex(e.v), e.w))
	}

	return graph.NewGraph(adj)
}

// ReadDIMACS reads a directed weighted graph from r in the DIMACS shortest
// path challenge format: a single problem line "p sp <n> <m>" declaring
// vertex and arc counts, followed by "a <u> <v> <w>" arc lines. Vertices are
// 1-indexed in the file and translated to 0-indexed graph.Vertex values.
// Comment lines start with 'c' and are skipped.
func ReadDIMACS(r io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)
	n := -1
	var adj [][]graph.Edge
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "c":
			continue
		case "p":
			if len(fields) != 4 || fields[1] != "sp" {
				return nil, fmt.Errorf("line %d: %w", lineNum, ErrMalformedLine)
			}
			parsedN, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %v", lineNum, ErrMalformedLine, err)
			}
			n = parsedN
			adj = make([][]graph.Edge, n)
		case "a":
			if n < 0 {
				return nil, fmt.Errorf("line %d: %w", lineNum, ErrMissingProblem)
			}
			if len(fields) != 4 {
				return nil, fmt.Errorf("line %d: %w", lineNum, ErrMalformedLine)
			}
			u, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %v", lineNum, ErrMalformedLine, err)
			}
			v, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %v", lineNum, ErrMalformedLine, err)
			}
			w, err := strconv.ParseFloat(fields[3], 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %v", lineNum, ErrMalformedLine, err)
			}
			adj[u-1] = append(adj[u-1], graph.NewEdge(graph.Vertex(v-1), graph.Length(w)))
		default:
			return nil, fmt.Errorf("line %d: %w", lineNum, ErrMalformedLine)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphio: reading DIMACS input: %w", err)
	}
	if n < 0 {
		return nil, ErrMissingProblem
	}

	return graph.NewGraph(adj)
}
