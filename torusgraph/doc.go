// Package torusgraph treats a rectangular width×height grid whose edges wrap
// around (a torus, or "pacman" topology) as an immutable graph.
//
// What:
//
//   - ID is the structural identity of a node: its (X, Y) coordinates.
//     It is comparable and used directly as a map key.
//   - Node carries its ID and exactly four neighbor IDs, in the fixed order
//     Up, Right, Left, Down.
//   - Graph owns every node of the grid in a flat arena indexed by y*width+x
//     and answers identity lookup, neighbor queries, edge cost and heuristic
//     distance.
//
// Adjacency wraps: for a node (x,y) in a W×H grid
//
//	Up    = (x, (y+1) mod H)
//	Right = ((x+1) mod W, y)
//	Left  = ((x-1+W) mod W, y)
//	Down  = (x, (y-1+H) mod H)
//
// so every node has exactly four neighbors and there is no boundary case.
//
// Distances do not wrap. EdgeCost is the Manhattan distance and
// HeuristicDistance the squared Euclidean distance between two coordinates,
// both computed as if the grid were flat. Moving across a wrapped edge of a
// 5-wide grid, from (4,0) to (0,0), therefore costs 4, not 1.
//
// Complexity:
//
//   - New:                O(W×H) time and memory.
//   - Node, Neighbors:    O(1).
//   - EdgeCost, Heuristic: O(1).
//
// Concurrency:
//
//	A Graph is never mutated after New returns. Any number of goroutines may
//	query it concurrently without synchronization.
//
// Errors:
//
//   - ErrBadDimensions: width or height is not positive, or W×H overflows int.
//   - ErrNodeNotFound:  an ID lies outside [0,W)×[0,H).
//   - ErrBadDirection:  a Direction outside Up..Down.
//   - ErrMalformedID:   text is not of the form "(x,y)".
package torusgraph
