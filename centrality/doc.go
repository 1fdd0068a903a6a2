// SPDX-License-Identifier: MIT

// Package centrality computes per-vertex and per-edge centrality scores of a
// distance-weighted, undirected core.Graph.
//
// What:
//
//   - Closeness:   normalized closeness over the reachable set,
//     (r−1)/Σd where r counts the reached vertices (source included);
//     NaN for a vertex that reaches nobody.
//   - Betweenness: Brandes' algorithm on weighted shortest paths, halved for
//     undirected graphs, unnormalized.
//   - Eigenvector: principal eigenvector of the weighted adjacency matrix by
//     power iteration, unit Euclidean norm.
//   - Convergence: per-edge convergence degree |in−out|/(in+out) over
//     hop-count shortest paths.
//
// Closeness and Betweenness honor a path-length cutoff (WithCutoff): paths
// longer than the cutoff are ignored, exactly as if the target were
// unreachable.
//
// Edge weights are distances everywhere except Eigenvector, which uses them
// as adjacency strengths.
//
// Determinism: all results depend only on the graph contents and vertex
// order; no randomness is involved.
//
// Complexity (V vertices, E edges):
//
//	Closeness, Betweenness: O(V·(V + E) log V) time, O(V + E) space.
//	Eigenvector:            O(k·(V + E)) for k iterations.
//	Convergence:            O(V·(V + E)) time, O(V + E) space.
package centrality
