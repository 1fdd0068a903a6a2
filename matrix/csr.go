package matrix

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath/core"
)

// CSR is a compressed sparse row matrix.
//
// Row i owns Data[Indptr[i]:Indptr[i+1]] at columns
// Indices[Indptr[i]:Indptr[i+1]], columns strictly increasing.
type CSR struct {
	Rows, Cols int
	Data       []float64
	Indices    []int
	Indptr     []int
}

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return len(m.Data) }

// At returns the entry at (i, j); absent entries are 0.
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows || j < 0 || j >= m.Cols {
		return 0, fmt.Errorf("At(%d,%d) on %dx%d: %w", i, j, m.Rows, m.Cols, ErrOutOfRange)
	}
	lo, hi := m.Indptr[i], m.Indptr[i+1]
	k := lo + sort.SearchInts(m.Indices[lo:hi], j)
	if k < hi && m.Indices[k] == j {
		return m.Data[k], nil
	}

	return 0, nil
}

// Dense expands m into a row-major [][]float64. Intended for small matrices.
func (m *CSR) Dense() [][]float64 {
	out := make([][]float64, m.Rows)
	for i := range out {
		out[i] = make([]float64, m.Cols)
		for k := m.Indptr[i]; k < m.Indptr[i+1]; k++ {
			out[i][m.Indices[k]] = m.Data[k]
		}
	}

	return out
}

// Laplacian returns L = D − W for g, with W[u][v] the edge distance and
// D[v][v] the sum of distances on edges incident to v. Rows and columns
// follow vertex indices. Zero diagonal entries (isolated vertices) are not
// stored.
func Laplacian(g *core.Graph) (*CSR, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	m := &CSR{
		Rows:    n,
		Cols:    n,
		Data:    make([]float64, 0, n+2*g.EdgeCount()),
		Indices: make([]int, 0, n+2*g.EdgeCount()),
		Indptr:  make([]int, 1, n+1),
	}

	type entry struct {
		col int
		val float64
	}
	row := make([]entry, 0)
	for v := 0; v < n; v++ {
		row = row[:0]
		var deg float64
		for _, nb := range g.Neighbors(v) {
			deg += nb.Weight
			row = append(row, entry{col: nb.Vertex, val: -nb.Weight})
		}
		if deg != 0 {
			row = append(row, entry{col: v, val: deg})
		}
		sort.Slice(row, func(a, b int) bool { return row[a].col < row[b].col })
		for _, e := range row {
			m.Indices = append(m.Indices, e.col)
			m.Data = append(m.Data, e.val)
		}
		m.Indptr = append(m.Indptr, len(m.Data))
	}

	return m, nil
}
