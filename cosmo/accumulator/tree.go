package accumulator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath/cosmo/keypath"
)

// ErrShapeConflict is returned when a key of one shape targets a simulation
// that already holds records of the other shape.
var ErrShapeConflict = errors.New("accumulator: simulation shape conflict")

// Simulation is one top-level entry of the tree. Exactly one of Snapshots
// (Flat) or Realizations (Nested) is in use, as told by Shape.
type Simulation struct {
	Shape        keypath.Shape
	Snapshots    map[string]Record
	Realizations map[string]map[string]Record
}

func newSimulation(shape keypath.Shape) *Simulation {
	s := &Simulation{Shape: shape}
	if shape == keypath.Nested {
		s.Realizations = make(map[string]map[string]Record)
	} else {
		s.Snapshots = make(map[string]Record)
	}

	return s
}

// empty reports whether no record of s holds a value, in which case its
// shape is not yet binding.
func (s *Simulation) empty() bool {
	for _, rec := range s.Snapshots {
		if len(rec) > 0 {
			return false
		}
	}
	for _, snaps := range s.Realizations {
		for _, rec := range snaps {
			if len(rec) > 0 {
				return false
			}
		}
	}

	return true
}

func (s *Simulation) clone() *Simulation {
	out := &Simulation{Shape: s.Shape}
	if s.Snapshots != nil {
		out.Snapshots = make(map[string]Record, len(s.Snapshots))
		for snap, rec := range s.Snapshots {
			out.Snapshots[snap] = rec.Clone()
		}
	}
	if s.Realizations != nil {
		out.Realizations = make(map[string]map[string]Record, len(s.Realizations))
		for rz, snaps := range s.Realizations {
			cp := make(map[string]Record, len(snaps))
			for snap, rec := range snaps {
				cp[snap] = rec.Clone()
			}
			out.Realizations[rz] = cp
		}
	}

	return out
}

// Tree is the whole accumulator document.
type Tree struct {
	sims map[string]*Simulation
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{sims: make(map[string]*Simulation)}
}

// Len returns the number of simulations.
func (t *Tree) Len() int { return len(t.sims) }

// Names returns the simulation names in ascending order.
func (t *Tree) Names() []string {
	out := make([]string, 0, len(t.sims))
	for name := range t.sims {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Simulation returns the named simulation.
func (t *Tree) Simulation(name string) (*Simulation, bool) {
	s, ok := t.sims[name]
	return s, ok
}

// Record returns the record at k without creating anything.
func (t *Tree) Record(k keypath.Key) (Record, bool) {
	s, ok := t.sims[k.Simulation]
	if !ok || s.Shape != k.Shape {
		return nil, false
	}
	if k.Shape == keypath.Nested {
		rec, ok := s.Realizations[k.Realization][k.Snapshot]
		return rec, ok
	}
	rec, ok := s.Snapshots[k.Snapshot]

	return rec, ok
}

// Ensure returns the record at k, creating the simulation, realization and
// record as needed. The returned map is owned by t: writes to it are
// writes to the tree.
func (t *Tree) Ensure(k keypath.Key) (Record, error) {
	if k.Shape != keypath.Flat && k.Shape != keypath.Nested {
		return nil, fmt.Errorf("accumulator: key %s has no shape", k)
	}
	if t.sims == nil {
		t.sims = make(map[string]*Simulation)
	}
	s, ok := t.sims[k.Simulation]
	switch {
	case !ok:
		s = newSimulation(k.Shape)
		t.sims[k.Simulation] = s
	case s.Shape != k.Shape:
		if !s.empty() {
			return nil, fmt.Errorf("%w: %q is %s, key %s is %s",
				ErrShapeConflict, k.Simulation, s.Shape, k, k.Shape)
		}
		s = newSimulation(k.Shape)
		t.sims[k.Simulation] = s
	}

	if k.Shape == keypath.Flat {
		rec, ok := s.Snapshots[k.Snapshot]
		if !ok {
			rec = make(Record)
			s.Snapshots[k.Snapshot] = rec
		}
		return rec, nil
	}

	snaps, ok := s.Realizations[k.Realization]
	if !ok {
		snaps = make(map[string]Record)
		s.Realizations[k.Realization] = snaps
	}
	rec, ok := snaps[k.Snapshot]
	if !ok {
		rec = make(Record)
		snaps[k.Snapshot] = rec
	}

	return rec, nil
}

// Merge writes every metric of rec into the record at k, overwriting
// metrics of the same name and leaving all others untouched. Values are
// copied.
func (t *Tree) Merge(k keypath.Key, rec Record) error {
	dst, err := t.Ensure(k)
	if err != nil {
		return err
	}
	for name, v := range rec {
		dst[name] = v.Clone()
	}

	return nil
}

// Clone returns a deep copy of t.
func (t *Tree) Clone() *Tree {
	out := &Tree{sims: make(map[string]*Simulation, len(t.sims))}
	for name, s := range t.sims {
		out.sims[name] = s.clone()
	}

	return out
}

// Records returns the number of records held by t.
func (t *Tree) Records() int {
	n := 0
	for _, s := range t.sims {
		n += len(s.Snapshots)
		for _, snaps := range s.Realizations {
			n += len(snaps)
		}
	}

	return n
}
