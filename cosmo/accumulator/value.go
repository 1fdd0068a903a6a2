package accumulator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/bytedance/sonic"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindScalar Kind = iota + 1
	KindSequence
	KindRef
	KindRaw
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindRef:
		return "ref"
	case KindRaw:
		return "raw"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is one metric value.
type Value struct {
	Kind     Kind
	Scalar   float64
	Sequence []float64
	Ref      string
	Raw      json.RawMessage
}

// Scalar returns a scalar Value.
func Scalar(f float64) Value { return Value{Kind: KindScalar, Scalar: f} }

// Sequence returns a sequence Value holding a copy of xs. A nil xs yields an
// empty, non-nil sequence.
func Sequence(xs []float64) Value {
	cp := make([]float64, len(xs))
	copy(cp, xs)

	return Value{Kind: KindSequence, Sequence: cp}
}

// Ref returns a reference Value (e.g. the path of an external artifact).
func Ref(s string) Value { return Value{Kind: KindRef, Ref: s} }

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	out := v
	if v.Sequence != nil {
		out.Sequence = append([]float64(nil), v.Sequence...)
	}
	if v.Raw != nil {
		out.Raw = append(json.RawMessage(nil), v.Raw...)
	}

	return out
}

// Record maps metric names to values.
type Record map[string]Value

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v.Clone()
	}

	return out
}

// Names returns the metric names of r in ascending order.
func (r Record) Names() []string {
	out := make([]string, 0, len(r))
	for k := range r {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

var jsonNull = []byte("null")

// MarshalJSON encodes v; non-finite floats become null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindScalar:
		return appendFloat(nil, v.Scalar), nil
	case KindSequence:
		buf := make([]byte, 0, 2+len(v.Sequence)*8)
		buf = append(buf, '[')
		for i, x := range v.Sequence {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendFloat(buf, x)
		}
		return append(buf, ']'), nil
	case KindRef:
		return sonic.Marshal(v.Ref)
	case KindRaw:
		if len(v.Raw) == 0 {
			return jsonNull, nil
		}
		return v.Raw, nil
	default:
		return nil, fmt.Errorf("accumulator: cannot encode value of %s", v.Kind)
	}
}

// UnmarshalJSON decodes null and numbers as scalars, arrays of numbers or
// nulls as sequences, strings as references and anything else as raw.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("accumulator: empty value")
	}
	switch c := data[0]; {
	case bytes.Equal(data, jsonNull):
		*v = Scalar(math.NaN())
	case c == '"':
		var s string
		if err := sonic.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Ref(s)
	case c == '[':
		var xs []*float64
		if err := sonic.Unmarshal(data, &xs); err != nil {
			*v = Value{Kind: KindRaw, Raw: append(json.RawMessage(nil), data...)}
			return nil
		}
		seq := make([]float64, len(xs))
		for i, p := range xs {
			if p == nil {
				seq[i] = math.NaN()
				continue
			}
			seq[i] = *p
		}
		*v = Value{Kind: KindSequence, Sequence: seq}
	case c == '-' || (c >= '0' && c <= '9'):
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("accumulator: bad number %s: %w", data, err)
		}
		*v = Scalar(f)
	default:
		*v = Value{Kind: KindRaw, Raw: append(json.RawMessage(nil), data...)}
	}

	return nil
}

func appendFloat(buf []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(buf, jsonNull...)
	}

	return strconv.AppendFloat(buf, f, 'g', -1, 64)
}
