package discovery_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/cosmo/discovery"
)

func touch(t *testing.T, root string, rel ...string) {
	t.Helper()
	for _, r := range rel {
		p := filepath.Join(root, r)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("<graphml/>"), 0o644))
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	touch(t, root,
		"fid/graph_000.xml",
		"fid/graph_001.xml",
		"lh/3/graph_000.xml",
		"lh/12/graph_000.xml",
		"lh/12/laplacian_000.npz",
		"notes/readme_000.txt",
	)

	got, err := discovery.Find(root, ".xml", "000")
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(root, "fid/graph_000.xml"),
		filepath.Join(root, "lh/12/graph_000.xml"),
		filepath.Join(root, "lh/3/graph_000.xml"),
	}, got)

	snaps, err := discovery.Snapshots(root, ".xml")
	require.NoError(t, err)
	require.Equal(t, []string{"000", "001"}, snaps)
}

func TestFind_MissingRoot(t *testing.T) {
	_, err := discovery.Find(filepath.Join(t.TempDir(), "nope"), ".xml", "000")
	require.ErrorIs(t, err, os.ErrNotExist)
}
