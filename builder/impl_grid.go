// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// impl_grid.go — R×C 4-neighborhood grid.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and rows*cols ≥ 2 (else ErrTooFewVertices).
//   • Vertex r*cols+c has ID cfg.idFn(r*cols+c) (row-major).
//   • Edges: for each cell in row-major order, right neighbor then down neighbor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

const (
	methodGrid   = "Grid"
	minGridCells = 2
)

// Grid returns a Constructor that builds a rows×cols grid graph.
// Complexity: O(rows*cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < 1 || cols < 1 || rows*cols < minGridCells {
			return fmt.Errorf("%s: %dx%d: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}
		ids, err := addVertices(methodGrid, g, cfg, rows*cols)
		if err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cur := r*cols + c
				if c+1 < cols {
					if err = addEdge(methodGrid, g, cfg, ids[cur], ids[cur+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = addEdge(methodGrid, g, cfg, ids[cur], ids[cur+cols]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
