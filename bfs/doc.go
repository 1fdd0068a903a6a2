// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted (hop-count) shortest-path distances, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Edge weights are ignored: every edge counts as one hop.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: hop distance per vertex index (-1 when unreached)
//   - Parent: BFS-tree predecessor per vertex index (-1 for the root/unreached)
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0) and a
//     cancellation context.
//
// Determinism
//
//	core.Graph.Neighbors returns adjacency in insertion order and BFS enqueues
//	neighbors in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
