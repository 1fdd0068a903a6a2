// Package dijkstra computes weighted shortest paths over a core.Graph.
//
// Every edge of a core.Graph carries a strictly positive "distance", so the
// classic lazy-decrease-key Dijkstra applies without a negative-weight scan.
//
// Two entry points are provided:
//
//   - Dijkstra(g, source, opts...) — single-source distances; optionally the
//     shortest-path counts (sigma), predecessor lists and settle order that
//     Brandes-style betweenness needs (WithPathCounts).
//   - AllPairs(g, opts...) — the V×V distance matrix, one Dijkstra per source.
//
// Options:
//
//	– WithMaxDistance(c): paths longer than c are ignored; vertices farther
//	  than c stay at +Inf. This is the "cutoff" used by the centrality
//	  metrics to trade exactness for speed on large graphs.
//	– WithPathCounts(): fill Result.Sigma, Result.Pred and Result.Order.
//
// Ties: two path lengths whose relative difference is below 1e-10 are
// considered equal, so floating-point noise does not split shortest-path
// counts.
//
// Complexity:
//
//	– Dijkstra: Time O((V + E) log V), Space O(V + E).
//	– AllPairs: Time O(V·(V + E) log V), Space O(V²).
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the graph pointer is nil.
//	– ErrVertexNotFound if the source index is out of range.
//	– ErrBadMaxDistance if WithMaxDistance received a negative or NaN value.
package dijkstra
