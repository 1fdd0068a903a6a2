// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// impl_basic.go — Complete, Cycle, Path and Star constructors.
//
// Determinism:
//   • Vertices 0..n-1 via cfg.idFn in ascending order.
//   • Complete: pairs (i,j), i<j, lexicographic. Cycle: i→(i+1)%n.
//     Path: i→i+1. Star: hub 0 → leaves 1..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

const (
	methodComplete = "Complete"
	methodCycle    = "Cycle"
	methodPath     = "Path"
	methodStar     = "Star"

	minCompleteNodes = 1
	minCycleNodes    = 3
	minPathNodes     = 2
	minStarNodes     = 2
)

// Complete returns a Constructor that builds the complete graph K_n (n ≥ 1).
// Complexity: O(n) vertices + O(n²) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(methodComplete, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(methodComplete, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(methodCycle, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(methodCycle, g, cfg, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds the simple path P_n (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(methodPath, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(methodPath, g, cfg, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor that builds a star with hub at index 0 and
// n-1 leaves (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(methodStar, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(methodStar, g, cfg, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
