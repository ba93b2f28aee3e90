// Package torusgraph builds the node arena and wraparound adjacency of a
// toroidal grid and answers read-only queries against it.
package torusgraph

import (
	"fmt"
	"math"
)

// New constructs a width×height toroidal Graph and connects every node to
// its Up, Right, Left and Down neighbors through wraparound arithmetic.
// Returns ErrBadDimensions if width or height is not positive or if
// width×height does not fit in an int.
// Algorithmic complexity: O(W×H) time and memory.
func New(width, height int) (*Graph, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, width, height)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %d×%d overflows", ErrBadDimensions, width, height)
	}
	g := &Graph{
		width:  width,
		height: height,
		nodes:  make([]Node, width*height),
	}
	// Nodes first, then adjacency, so that every neighbor ID is resolved
	// through the same wrap used for lookups.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.nodes[g.index(x, y)].id = ID{X: x, Y: y}
		}
	}
	for i := range g.nodes {
		n := &g.nodes[i]
		x, y := n.id.X, n.id.Y
		n.neighbors[Up] = g.Wrap(x, y+1)
		n.neighbors[Right] = g.Wrap(x+1, y)
		n.neighbors[Left] = g.Wrap(x-1, y)
		n.neighbors[Down] = g.Wrap(x, y-1)
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Graph) Width() int { return g.width }

// Height returns the number of rows.
func (g *Graph) Height() int { return g.height }

// Len returns the number of nodes, Width()×Height().
func (g *Graph) Len() int { return len(g.nodes) }

// Contains reports whether id lies within [0,W)×[0,H).
// Complexity: O(1).
func (g *Graph) Contains(id ID) bool {
	return id.X >= 0 && id.X < g.width && id.Y >= 0 && id.Y < g.height
}

// Wrap normalizes arbitrary coordinates onto the grid using a non-negative
// modulo, so Wrap(-1, 0) is (W-1, 0).
// Complexity: O(1).
func (g *Graph) Wrap(x, y int) ID {
	return ID{X: mod(x, g.width), Y: mod(y, g.height)}
}

// Node returns the node identified by id.
// Returns ErrNodeNotFound if id is out of range. Callers that hold
// unnormalized coordinates must pass them through Wrap first.
func (g *Graph) Node(id ID) (Node, error) {
	i, err := g.lookup(id)
	if err != nil {
		return Node{}, err
	}

	return g.nodes[i], nil
}

// Nodes returns a copy of every node in row-major order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Neighbors returns the four neighbor IDs of id in Up, Right, Left, Down order.
// On grids narrower or shorter than 3 the same ID may appear more than once,
// and on a 1-wide or 1-high grid a node is its own neighbor.
// Returns ErrNodeNotFound if id is out of range.
func (g *Graph) Neighbors(id ID) ([]ID, error) {
	i, err := g.lookup(id)
	if err != nil {
		return nil, err
	}
	nb := g.nodes[i].neighbors

	return nb[:], nil
}

// Neighbor returns the neighbor of id in direction d.
// Returns ErrNodeNotFound or ErrBadDirection.
func (g *Graph) Neighbor(id ID, d Direction) (ID, error) {
	if !d.valid() {
		return ID{}, fmt.Errorf("%w: %d", ErrBadDirection, int(d))
	}
	i, err := g.lookup(id)
	if err != nil {
		return ID{}, err
	}

	return g.nodes[i].neighbors[d], nil
}

// Adjacent reports whether b is one of a's four neighbors.
// IDs outside the graph are never adjacent.
func (g *Graph) Adjacent(a, b ID) bool {
	i, err := g.lookup(a)
	if err != nil || !g.Contains(b) {
		return false
	}
	for _, nb := range g.nodes[i].neighbors {
		if nb == b {
			return true
		}
	}

	return false
}

// EdgeCost is the cost of moving from a to b: the Manhattan distance
// |ax-bx| + |ay-by| on the flat grid, without wraparound.
// Adjacency is not enforced. For adjacent nodes the result is 1, except
// across a wrapped edge where it is W-1 or H-1.
// Returns ErrNodeNotFound if either ID is out of range.
func (g *Graph) EdgeCost(a, b ID) (int, error) {
	if err := g.check(a, b); err != nil {
		return 0, err
	}

	return abs(a.X-b.X) + abs(a.Y-b.Y), nil
}

// HeuristicDistance is the squared straight-line distance between a and b on
// the flat grid, without wraparound. It ranks frontier nodes and is never
// added to a path cost.
// Returns ErrNodeNotFound if either ID is out of range.
func (g *Graph) HeuristicDistance(a, b ID) (int, error) {
	if err := g.check(a, b); err != nil {
		return 0, err
	}
	dx, dy := a.X-b.X, a.Y-b.Y

	return dx*dx + dy*dy, nil
}

// lookup resolves id to its arena index.
func (g *Graph) lookup(id ID) (int, error) {
	if !g.Contains(id) {
		return 0, fmt.Errorf("%w: %s in %d×%d grid", ErrNodeNotFound, id, g.width, g.height)
	}

	return g.index(id.X, id.Y), nil
}

// check validates both endpoints of a distance query.
func (g *Graph) check(a, b ID) error {
	if _, err := g.lookup(a); err != nil {
		return err
	}
	_, err := g.lookup(b)

	return err
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Graph) index(x, y int) int {
	return y*g.width + x
}

// mod is the mathematical modulo: the result is always in [0,m) for m > 0.
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
