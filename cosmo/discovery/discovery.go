// Package discovery finds the graph artifacts of one snapshot under a root
// directory.
package discovery

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/katalvlaran/lvlath/cosmo/keypath"
)

// Find walks root and returns, sorted, every regular file with extension
// ext whose snapshot token (keypath.SnapshotOf) equals snapshot.
func Find(root, ext, snapshot string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ext {
			return nil
		}
		if keypath.SnapshotOf(path) == snapshot {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discovery: %w", err)
	}
	sort.Strings(out)

	return out, nil
}

// Snapshots returns the distinct snapshot tokens of the files with
// extension ext under root, sorted.
func Snapshots(root, ext string) ([]string, error) {
	seen := make(map[string]struct{})
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ext {
			seen[keypath.SnapshotOf(path)] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discovery: %w", err)
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)

	return out, nil
}
