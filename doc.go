// Package lvlath computes structural metrics of weighted, undirected graphs
// and keeps them in an incrementally updated results document.
//
// The library half is plain graph code:
//
//	core/        — thread-safe Graph with dense vertex indices
//	builder/     — deterministic generators (complete, cycle, path, star, grid, random)
//	bfs/         — hop distances
//	dijkstra/    — weighted shortest paths, path counts, all-pairs
//	efficiency/  — global and local efficiency
//	centrality/  — closeness, betweenness, eigenvector, edge convergence
//	series/      — degree distribution entropy, Hurst exponent (R/S)
//	matrix/      — sparse Laplacian (CSR) and scipy-compatible .npz files
//	graphml/     — GraphML reader
//
// The cosmo/ tree turns it into a batch pipeline over simulation snapshots:
//
//	cosmo/keypath      — artifact path → (simulation, realization, snapshot)
//	cosmo/accumulator  — the nested results tree and its JSON form
//	cosmo/metrics      — metric catalog and the skip/retry/compute gate
//	cosmo/pipeline     — bounded parallel evaluation and the reducer
//	cosmo/store        — atomic load/save of the results document
//	cosmo/config, cosmo/logging, cosmo/telemetry, cosmo/discovery
//
// and cmd/graphmetrics wires everything into one command:
//
//	graphmetrics --root ./quijote/grafos --snapnum 000 --workers 8
//
// A run only computes what the stored document is missing: scalars present
// in the document are trusted, sequences are recomputed when empty or of the
// wrong length, and spectral artifacts are always rewritten.
package lvlath
