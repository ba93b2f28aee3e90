// Package torusgraph defines node identity, directions and the Graph type
// for the torusgraph subpackage of github.com/katalvlaran/torus.
package torusgraph

import (
	"fmt"
	"strconv"
	"strings"
)

// ID identifies a node by its coordinates. Two nodes of a graph never share an ID.
type ID struct {
	X, Y int
}

// String renders the ID as "(x,y)". This is also its canonical text encoding.
func (id ID) String() string {
	return "(" + strconv.Itoa(id.X) + "," + strconv.Itoa(id.Y) + ")"
}

// MarshalText implements encoding.TextMarshaler using the "(x,y)" form.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; it accepts exactly what ParseID accepts.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*id = parsed

	return nil
}

// ParseID parses the "(x,y)" form produced by ID.String.
// Blanks around the parentheses and the numbers are ignored.
// ParseID does not check the coordinates against any graph.
func ParseID(s string) (ID, error) {
	t := strings.TrimSpace(s)
	if len(t) < 2 || t[0] != '(' || t[len(t)-1] != ')' {
		return ID{}, fmt.Errorf("%w: %q", ErrMalformedID, s)
	}
	xs, ys, ok := strings.Cut(t[1:len(t)-1], ",")
	if !ok {
		return ID{}, fmt.Errorf("%w: %q", ErrMalformedID, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q: %v", ErrMalformedID, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q: %v", ErrMalformedID, s, err)
	}

	return ID{X: x, Y: y}, nil
}

// Direction names one of the four wraparound neighbors of a node.
// The numeric order is the order in which Neighbors reports them.
type Direction int

const (
	// Up is (x, (y+1) mod H).
	Up Direction = iota
	// Right is ((x+1) mod W, y).
	Right
	// Left is ((x-1+W) mod W, y).
	Left
	// Down is (x, (y-1+H) mod H).
	Down
)

// NumDirections is the number of neighbors every node has.
const NumDirections = 4

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Left:
		return "left"
	case Down:
		return "down"
	default:
		return "direction(" + strconv.Itoa(int(d)) + ")"
	}
}

// valid reports whether d is one of Up, Right, Left, Down.
func (d Direction) valid() bool {
	return d >= Up && d <= Down
}

// Node is a grid position together with its four wraparound neighbors.
// Nodes are created by New and never change afterwards.
type Node struct {
	id        ID
	neighbors [NumDirections]ID
}

// ID returns the node's coordinates.
func (n Node) ID() ID { return n.id }

// Neighbors returns the neighbor IDs in Up, Right, Left, Down order.
func (n Node) Neighbors() [NumDirections]ID { return n.neighbors }

// Neighbor returns the neighbor in direction d.
// It panics if d is not a valid Direction; use Graph.Neighbor for a checked lookup.
func (n Node) Neighbor(d Direction) ID { return n.neighbors[d] }

// String renders the node as its ID, "(x,y)".
func (n Node) String() string { return n.id.String() }

// Graph is a width×height toroidal grid. It is immutable once built.
// nodes holds every node in row-major order: nodes[y*width+x].
type Graph struct {
	width, height int
	nodes         []Node
}
