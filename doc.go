// Package torus computes shortest paths on rectangular grids whose edges
// wrap around: leaving the east edge re-enters on the west edge, and the
// same for north and south ("pacman" topology).
//
// What is in here?
//
//	• torusgraph/: immutable W×H torus: "(x,y)" node identity, four
//	  wraparound neighbors per node, edge cost and heuristic distance
//	• astar/: single-pair A* search with a step-wise state machine,
//	  an indexed-heap frontier, slog logging, OpenTelemetry spans and
//	  Prometheus metrics
//	• examples/torusroute: demo binary running YAML query batches
//
// Quick ASCII example (3×3, arrows show the wrap from (0,0)):
//
//	(0,2)  (1,2)  (2,2)
//	  ▲
//	(0,1)  (1,1)  (2,1)
//	  ▲
//	(0,0)▶ (1,0)  (2,0)◀ left of (0,0)
//	  ▼ down of (0,0) is (0,2)
//
// Distances (EdgeCost, HeuristicDistance) are measured on the flat grid and
// ignore the wrap; adjacency does not. See the torusgraph and astar package
// docs for what that means for returned paths.
//
//	go get github.com/katalvlaran/torus
package torus
