package bipartite

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for the bipartite data model.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bipartite: graph is nil")

	// ErrUnknownEdge indicates a matched pair that is not an edge of the graph.
	ErrUnknownEdge = errors.New("bipartite: matched pair is not an edge")

	// ErrLeftMatchedTwice indicates that a Left vertex appears as the partner
	// of more than one Right vertex.
	ErrLeftMatchedTwice = errors.New("bipartite: left vertex matched twice")
)

// Left identifies a vertex on the left side (side A).
type Left int

// Right identifies a vertex on the right side (side B).
type Right int

// Side tags which partition a Vertex belongs to.
type Side uint8

const (
	// SideLeft marks a Left vertex.
	SideLeft Side = iota
	// SideRight marks a Right vertex.
	SideRight
)

// String returns "L" or "R".
func (s Side) String() string {
	if s == SideLeft {
		return "L"
	}

	return "R"
}

// Vertex is a side-tagged vertex identifier.
type Vertex struct {
	Side Side
	ID   int
}

// L wraps a Left ID as a Vertex.
func L(u Left) Vertex { return Vertex{Side: SideLeft, ID: int(u)} }

// R wraps a Right ID as a Vertex.
func R(v Right) Vertex { return Vertex{Side: SideRight, ID: int(v)} }

// IsLeft reports whether x lives on the left side.
func (x Vertex) IsLeft() bool { return x.Side == SideLeft }

// Left returns the Left ID of x. It is meaningful only if x.IsLeft().
func (x Vertex) Left() Left { return Left(x.ID) }

// Right returns the Right ID of x. It is meaningful only if !x.IsLeft().
func (x Vertex) Right() Right { return Right(x.ID) }

// String renders x as "L3" or "R7".
func (x Vertex) String() string {
	return x.Side.String() + strconv.Itoa(x.ID)
}

// Less orders vertices left side first, then by ascending ID.
func (x Vertex) Less(y Vertex) bool {
	if x.Side != y.Side {
		return x.Side < y.Side
	}

	return x.ID < y.ID
}

// Edge connects a Left vertex to a Right vertex.
type Edge struct {
	From Left
	To   Right
}

// String renders e as "L1→R2".
func (e Edge) String() string {
	return fmt.Sprintf("%v→%v", L(e.From), R(e.To))
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDedup drops repeated (u, v) edges on insertion. Without it duplicates
// are kept; they are harmless to the algorithms but cost extra work.
func WithDedup() GraphOption {
	return func(g *Graph) { g.dedup = true }
}
