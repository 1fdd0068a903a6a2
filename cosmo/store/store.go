// Package store persists the accumulator tree as a single JSON document.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/katalvlaran/lvlath/cosmo/accumulator"
)

// Indent is the indentation of saved documents.
const Indent = "    "

// Gateway loads and saves the accumulator tree.
type Gateway interface {
	Load() (*accumulator.Tree, error)
	Save(tree *accumulator.Tree) error
}

// File is a Gateway backed by one JSON file.
type File struct {
	Path string
}

// Load implements Gateway.
func (f File) Load() (*accumulator.Tree, error) { return Load(f.Path) }

// Save implements Gateway.
func (f File) Save(tree *accumulator.Tree) error { return Save(f.Path, tree) }

// Load reads the document at path. A missing file yields an empty tree.
func Load(path string) (*accumulator.Tree, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return accumulator.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	tree := accumulator.New()
	if err = tree.UnmarshalJSON(raw); err != nil {
		return nil, fmt.Errorf("store: %s: %w", path, err)
	}

	return tree, nil
}

// Save writes tree to path through a temporary file in the same directory,
// so readers see either the old or the new document.
func Save(path string, tree *accumulator.Tree) error {
	raw, err := tree.MarshalIndent("", Indent)
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}

	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(append(raw, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("store: write: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("store: sync: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	return nil
}
