// Package astar implements single-pair A* search over a toroidal grid graph.
//
// Overview:
//
//   - A Search owns the whole state of one query: the open set (frontier),
//     the closed set, the cameFrom predecessor map and the g/f score tables.
//   - It repeatedly pops the open node with the lowest f-score, stops when that
//     node is the goal, and otherwise relaxes the node's neighbors.
//   - The graph is only read. Any number of searches may share one
//     *torusgraph.Graph concurrently; a single Search must not be shared.
//
// State machine:
//
//	Running ──(goal popped)──────────▶ Succeeded
//	   │
//	   ├──(frontier emptied)─────────▶ Exhausted   (ErrSearchExhausted)
//	   │
//	   └──(node lookup failed)───────▶ Aborted     (torusgraph.ErrNodeNotFound)
//
// Scores:
//
//   - g(n): accumulated Graph.EdgeCost from start along the best path found.
//   - f(n): g(n) + Graph.HeuristicDistance(n, goal). Used only for ranking.
//
// On a torusgraph.Graph both distances are wrap-unaware while adjacency wraps,
// so the heuristic is not admissible and the returned path is the one this
// ranking finds, not necessarily the cheapest one.
//
// Tie-break:
//
//	Among open nodes with equal f, the node that entered the open set first
//	wins. Lowering a node's score keeps its original position in that order.
//	This is the same choice a linear scan over an insertion-ordered open list
//	makes when it keeps the first strictly smaller f.
//
// Frontier:
//
//	An indexed binary heap ordered by (f, insertion sequence) with in-place
//	decrease-key through heap.Fix. Every node enters the open set at most once,
//	since closed nodes are never relaxed again.
//
// Complexity:
//
//   - Time:  O(V log V) for V = W×H nodes, four neighbors each.
//   - Space: O(V) for the score tables, predecessor map and heap.
//
// Observability:
//
//   - WithLogger: structured log/slog records (Debug per expansion, Info per run).
//   - WithTracer: one OpenTelemetry span per Run, "astar.Search".
//   - Prometheus metrics are registered on the default registry:
//     torus_astar_search_total{result}, torus_astar_search_expanded_nodes,
//     torus_astar_search_path_length, torus_astar_search_duration_seconds.
//
// Errors (sentinel):
//
//   - ErrNilGraph        if NewSearch receives a nil Graph.
//   - ErrSearchExhausted if the frontier empties before the goal is reached.
//   - torusgraph.ErrNodeNotFound (wrapped) if start, goal, or any neighbor
//     reported by the graph is not a node of it. The run aborts immediately.
//
// A failed search never returns a partial path.
package astar
