package accumulator

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/katalvlaran/lvlath/cosmo/keypath"
)

// codec sorts map keys so that equal trees encode to equal bytes.
var codec = sonic.ConfigStd

// MarshalJSON encodes t in the plain nested-object layout.
func (t *Tree) MarshalJSON() ([]byte, error) {
	return codec.Marshal(t.document())
}

// MarshalIndent is MarshalJSON with indentation.
func (t *Tree) MarshalIndent(prefix, indent string) ([]byte, error) {
	return codec.MarshalIndent(t.document(), prefix, indent)
}

func (t *Tree) document() map[string]interface{} {
	doc := make(map[string]interface{}, len(t.sims))
	for name, s := range t.sims {
		if s.Shape == keypath.Nested {
			doc[name] = s.Realizations
		} else {
			doc[name] = s.Snapshots
		}
	}

	return doc
}

// UnmarshalJSON replaces t with the decoded document. A simulation is read
// as Nested only when all its realization and snapshot keys are indices
// (keypath.IsIndex) and every snapshot entry is an object; otherwise it is
// Flat and object-valued metrics are kept raw.
func (t *Tree) UnmarshalJSON(data []byte) error {
	var doc map[string]map[string]map[string]json.RawMessage
	if err := codec.Unmarshal(sanitizeNonFinite(data), &doc); err != nil {
		return fmt.Errorf("accumulator: decode: %w", err)
	}

	sims := make(map[string]*Simulation, len(doc))
	for name, level2 := range doc {
		shape := detectShape(level2)
		s := newSimulation(shape)
		for outer, level3 := range level2 {
			if shape == keypath.Flat {
				rec, err := decodeRecord(level3)
				if err != nil {
					return fmt.Errorf("accumulator: %s/%s: %w", name, outer, err)
				}
				s.Snapshots[outer] = rec
				continue
			}
			snaps := make(map[string]Record, len(level3))
			for snap, raw := range level3 {
				var fields map[string]json.RawMessage
				if err := codec.Unmarshal(raw, &fields); err != nil {
					return fmt.Errorf("accumulator: %s/%s/%s: %w", name, outer, snap, err)
				}
				rec, err := decodeRecord(fields)
				if err != nil {
					return fmt.Errorf("accumulator: %s/%s/%s: %w", name, outer, snap, err)
				}
				snaps[snap] = rec
			}
			s.Realizations[outer] = snaps
		}
		sims[name] = s
	}
	t.sims = sims

	return nil
}

// detectShape reports Nested for realization → snapshot → object documents
// with at least one snapshot entry, Flat for everything else.
func detectShape(level2 map[string]map[string]json.RawMessage) keypath.Shape {
	entries := 0
	for outer, level3 := range level2 {
		if !keypath.IsIndex(outer) {
			return keypath.Flat
		}
		for snap, raw := range level3 {
			if !keypath.IsIndex(snap) || !isObject(raw) {
				return keypath.Flat
			}
			entries++
		}
	}
	if entries == 0 {
		return keypath.Flat
	}

	return keypath.Nested
}

func isObject(raw json.RawMessage) bool {
	b := bytes.TrimSpace(raw)

	return len(b) > 0 && b[0] == '{'
}

func decodeRecord(fields map[string]json.RawMessage) (Record, error) {
	rec := make(Record, len(fields))
	for metric, raw := range fields {
		var v Value
		if err := v.UnmarshalJSON(raw); err != nil {
			return nil, fmt.Errorf("%s: %w", metric, err)
		}
		rec[metric] = v
	}

	return rec, nil
}

// sanitizeNonFinite rewrites the bare tokens NaN, Infinity and -Infinity
// outside strings to null. Input without such tokens is returned as is.
func sanitizeNonFinite(data []byte) []byte {
	if !bytes.Contains(data, []byte("NaN")) && !bytes.Contains(data, []byte("Infinity")) {
		return data
	}
	out := make([]byte, 0, len(data))
	inString, escaped := false, false
	for i := 0; i < len(data); i++ {
		c := data[i]
		if inString {
			out = append(out, c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		if c == '"' {
			inString = true
			out = append(out, c)
			continue
		}
		if n := nonFiniteLen(data[i:]); n > 0 {
			out = append(out, jsonNull...)
			i += n - 1
			continue
		}
		out = append(out, c)
	}

	return out
}

func nonFiniteLen(b []byte) int {
	for _, tok := range []string{"-Infinity", "Infinity", "NaN"} {
		if bytes.HasPrefix(b, []byte(tok)) {
			return len(tok)
		}
	}

	return 0
}
