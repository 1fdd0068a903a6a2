// SPDX-License-Identifier: MIT

// Package builder provides deterministic constructors for distance-weighted
// fixture graphs: complete graphs, cycles, paths, stars, grids and seeded
// random graphs.
//
// One orchestrator, BuildGraph(bopts, cons...), creates a fresh core.Graph,
// resolves the builder configuration once and applies the constructors in
// order. Every constructor:
//
//   - validates its parameters and returns sentinel errors (never panics);
//   - adds vertices through the configured ID scheme, in ascending index order;
//   - emits edges in a documented, stable order;
//   - draws one weight per edge from the configured WeightFn.
//
// Same inputs, options and seed ⇒ identical graphs. The metric packages use
// these fixtures for closed-form checks (a cycle is regular, a complete graph
// with unit weights has efficiency 1, a star has degenerate leaves).
package builder
