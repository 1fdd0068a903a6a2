package matrix_test

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/matrix"
	"github.com/stretchr/testify/require"
)

// weightedTriangle: a—b(1), b—c(2), a—c(4) plus isolated d.
func weightedTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []struct {
		u, v string
		w    float64
	}{{"a", "b", 1}, {"b", "c", 2}, {"a", "c", 4}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}
	_, err := g.AddVertex("d")
	require.NoError(t, err)

	return g
}

func TestLaplacian_Dense(t *testing.T) {
	l, err := matrix.Laplacian(weightedTriangle(t))
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{5, -1, -4, 0},
		{-1, 3, -2, 0},
		{-4, -2, 6, 0},
		{0, 0, 0, 0},
	}, l.Dense())
	require.Equal(t, 9, l.NNZ(), "isolated diagonal is not stored")
	require.Equal(t, []int{0, 3, 6, 9, 9}, l.Indptr)
}

func TestLaplacian_RowsSumToZeroAndSymmetric(t *testing.T) {
	l, err := matrix.Laplacian(weightedTriangle(t))
	require.NoError(t, err)
	d := l.Dense()
	for i := range d {
		var sum float64
		for j := range d[i] {
			sum += d[i][j]
			require.Equal(t, d[i][j], d[j][i])
		}
		require.InDelta(t, 0, sum, 1e-12)
	}
}

func TestCSR_At(t *testing.T) {
	l, err := matrix.Laplacian(weightedTriangle(t))
	require.NoError(t, err)
	v, err := l.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, -4.0, v)
	v, err = l.At(3, 1)
	require.NoError(t, err)
	require.Zero(t, v)
	_, err = l.At(4, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestLaplacian_NilGraph(t *testing.T) {
	_, err := matrix.Laplacian(nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)
}

func TestNPZ_RoundTrip(t *testing.T) {
	l, err := matrix.Laplacian(weightedTriangle(t))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "laplacian_000.npz")
	require.NoError(t, matrix.WriteNPZ(path, l))

	back, err := matrix.ReadNPZ(path)
	require.NoError(t, err)
	require.Equal(t, l, back)

	// No temporary siblings are left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestNPZ_MemberLayout(t *testing.T) {
	l, err := matrix.Laplacian(weightedTriangle(t))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, matrix.EncodeNPZ(&buf, l))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
		require.Equal(t, zip.Deflate, f.Method)

		rc, err := f.Open()
		require.NoError(t, err)
		raw, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())

		require.Equal(t, "\x93NUMPY\x01\x00", string(raw[:8]))
		hlen := int(raw[8]) | int(raw[9])<<8
		require.Zero(t, (10+hlen)%64, "%s header is 64-byte aligned", f.Name)
		require.Equal(t, byte('\n'), raw[10+hlen-1])
	}
	require.Equal(t, []string{"indices.npy", "indptr.npy", "format.npy", "shape.npy", "data.npy"}, names)
}

func TestReadNPZ_Rejects(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.npz")
	require.NoError(t, os.WriteFile(bad, []byte("not a zip"), 0o644))
	_, err := matrix.ReadNPZ(bad)
	require.Error(t, err)

	empty := filepath.Join(dir, "empty.npz")
	f, err := os.Create(empty)
	require.NoError(t, err)
	require.NoError(t, zip.NewWriter(f).Close())
	require.NoError(t, f.Close())
	_, err = matrix.ReadNPZ(empty)
	require.ErrorIs(t, err, matrix.ErrBadArchive)

	require.ErrorIs(t, matrix.WriteNPZ(filepath.Join(dir, "x.npz"), nil), matrix.ErrNilMatrix)
}
