// Package keypath maps graph artifact paths to their position in the
// accumulator tree.
//
// Two directory layouts are recognized:
//
//	<root>/<simulation>/<file>                 Flat
//	<root>/<simulation>/<realization>/<file>   Nested
//
// A path is Nested exactly when its parent directory name is made of ASCII
// digits only; the realization is then that parent and the simulation the
// grandparent. Otherwise the parent directory is the simulation.
package keypath

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnclassifiable is returned when a path cannot be mapped to a Key.
var ErrUnclassifiable = errors.New("keypath: unclassifiable artifact path")

// Shape distinguishes the two simulation layouts.
type Shape int

const (
	// Flat simulations map snapshot → record.
	Flat Shape = iota + 1

	// Nested simulations map realization → snapshot → record.
	Nested
)

// String implements fmt.Stringer.
func (s Shape) String() string {
	switch s {
	case Flat:
		return "flat"
	case Nested:
		return "nested"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Key locates one metric record. Realization is empty for Flat keys.
type Key struct {
	Shape       Shape
	Simulation  string
	Realization string
	Snapshot    string
}

// String renders the key as a slash-joined path.
func (k Key) String() string {
	if k.Shape == Nested {
		return k.Simulation + "/" + k.Realization + "/" + k.Snapshot
	}

	return k.Simulation + "/" + k.Snapshot
}

// Classify derives the Key of artifactPath for the given snapshot.
// Pure; the file is never touched.
func Classify(artifactPath, snapshot string) (Key, error) {
	if snapshot == "" {
		return Key{}, fmt.Errorf("%w: %s: empty snapshot", ErrUnclassifiable, artifactPath)
	}
	dir := filepath.Dir(filepath.Clean(artifactPath))
	parent, ok := dirName(dir)
	if !ok {
		return Key{}, fmt.Errorf("%w: %s: no parent directory", ErrUnclassifiable, artifactPath)
	}
	if !IsIndex(parent) {
		return Key{Shape: Flat, Simulation: parent, Snapshot: snapshot}, nil
	}

	grand, ok := dirName(filepath.Dir(dir))
	if !ok {
		return Key{}, fmt.Errorf("%w: %s: realization %q has no simulation directory",
			ErrUnclassifiable, artifactPath, parent)
	}

	return Key{Shape: Nested, Simulation: grand, Realization: parent, Snapshot: snapshot}, nil
}

// SnapshotOf returns the last "_"-separated token of the file name cut at
// its first dot: "graph_3_004.xml" → "004", "graph_000.v2.xml" → "000".
func SnapshotOf(path string) string {
	stem, _, _ := strings.Cut(filepath.Base(path), ".")
	if i := strings.LastIndexByte(stem, '_'); i >= 0 {
		return stem[i+1:]
	}

	return stem
}

// dirName returns the last element of dir, rejecting roots and ".".
func dirName(dir string) (string, bool) {
	name := filepath.Base(dir)
	switch name {
	case ".", "..", string(filepath.Separator), "":
		return "", false
	}

	return name, true
}

// IsIndex reports whether s is a non-empty run of ASCII digits, the form of
// realization directories and snapshot tokens.
func IsIndex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
