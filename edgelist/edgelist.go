package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/konig/bipartite"
)

// ErrMalformedInput is wrapped by every ParseError.
var ErrMalformedInput = errors.New("edgelist: malformed input")

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// ParseError reports the offending line of a malformed edge list.
type ParseError struct {
	Line int    // 1-based line number, 0 for read failures
	Text string // raw line content
	Err  error  // wraps ErrMalformedInput
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("edgelist: %v", e.Err)
	}

	return fmt.Sprintf("edgelist: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func malformed(line int, text, format string, args ...interface{}) error {
	return &ParseError{Line: line, Text: text, Err: errors.Wrapf(ErrMalformedInput, format, args...)}
}

// Parse reads an edge list from r into a new graph built with opts.
// No graph is returned unless the whole input is well formed.
func Parse(r io.Reader, opts ...bipartite.GraphOption) (*bipartite.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	scan := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		lineNo++

		return sc.Text(), true
	}

	header, ok := scan()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, &ParseError{Err: errors.Wrap(ErrMalformedInput, err.Error())}
		}

		return nil, malformed(1, "", "missing edge count")
	}
	m, err := parseCount(header)
	if err != nil {
		return nil, malformed(lineNo, header, "%v", err)
	}

	g := bipartite.NewGraph(opts...)
	for i := 0; i < m; i++ {
		text, ok := scan()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, &ParseError{Err: errors.Wrap(ErrMalformedInput, err.Error())}
			}

			return nil, malformed(lineNo+1, "", "expected %d edges, got %d", m, i)
		}
		u, v, err := parseEdge(text)
		if err != nil {
			return nil, malformed(lineNo, text, "%v", err)
		}
		g.AddEdge(u, v)
	}

	for {
		text, ok := scan()
		if !ok {
			break
		}
		if strings.TrimSpace(text) != "" {
			return nil, malformed(lineNo, text, "unexpected line after %d edges", m)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{Err: errors.Wrap(ErrMalformedInput, err.Error())}
	}

	return g, nil
}

func parseCount(text string) (int, error) {
	fields := strings.Fields(text)
	if len(fields) != 1 {
		return 0, errors.Errorf("edge count line needs 1 token, got %d", len(fields))
	}
	m, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, errors.Errorf("edge count %q is not an integer", fields[0])
	}
	if m < 0 {
		return 0, errors.Errorf("edge count %d is negative", m)
	}

	return m, nil
}

func parseEdge(text string) (bipartite.Left, bipartite.Right, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, 0, errors.Errorf("edge line needs 2 tokens, got %d", len(fields))
	}
	s, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, errors.Errorf("left vertex %q is not an integer", fields[0])
	}
	l, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, errors.Errorf("right vertex %q is not an integer", fields[1])
	}

	return bipartite.Left(s), bipartite.Right(l), nil
}

// Write emits g as an edge list, edges in g.Edges() order.
func Write(w io.Writer, g *bipartite.Graph) error {
	if g == nil {
		return bipartite.ErrGraphNil
	}
	bw := bufio.NewWriter(w)
	edges := g.Edges()
	if _, err := fmt.Fprintln(bw, len(edges)); err != nil {
		return errors.WithStack(err)
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "%d %d\n", int(e.From), int(e.To)); err != nil {
			return errors.WithStack(err)
		}
	}

	return errors.WithStack(bw.Flush())
}
