package metrics

import (
	"fmt"

	"github.com/katalvlaran/lvlath/cosmo/accumulator"
)

// Decision is the gate verdict for one metric of one record.
type Decision int

const (
	// Missing: no value stored; compute.
	Missing Decision = iota + 1

	// Retryable: a value is stored but cannot be trusted; recompute.
	Retryable

	// Trusted: the stored value stands; skip.
	Trusted
)

// String implements fmt.Stringer.
func (d Decision) String() string {
	switch d {
	case Missing:
		return "missing"
	case Retryable:
		return "retryable"
	case Trusted:
		return "trusted"
	default:
		return fmt.Sprintf("Decision(%d)", int(d))
	}
}

// NeedsCompute reports whether the metric must be (re)computed.
func (d Decision) NeedsCompute() bool { return d != Trusted }

// Policy selects how a stored value is judged.
type Policy int

const (
	// PolicyScalar trusts any stored value.
	PolicyScalar Policy = iota + 1

	// PolicySequence trusts only a non-empty sequence of the expected length.
	PolicySequence

	// PolicyAlways never trusts a stored value.
	PolicyAlways
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case PolicyScalar:
		return "scalar"
	case PolicySequence:
		return "sequence"
	case PolicyAlways:
		return "always"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Decide judges the value stored under name in rec. wantLen is the
// expected sequence length; a negative wantLen disables the length check.
//
//	absent                               → Missing
//	Scalar:   present                    → Trusted
//	Sequence: not a sequence, empty,
//	          or length ≠ wantLen        → Retryable
//	          otherwise                  → Trusted
//	Always:   present                    → Retryable
func Decide(rec accumulator.Record, name string, policy Policy, wantLen int) Decision {
	v, ok := rec[name]
	if !ok {
		return Missing
	}
	switch policy {
	case PolicyScalar:
		return Trusted
	case PolicySequence:
		if v.Kind != accumulator.KindSequence || len(v.Sequence) == 0 {
			return Retryable
		}
		if wantLen >= 0 && len(v.Sequence) != wantLen {
			return Retryable
		}
		return Trusted
	default:
		return Retryable
	}
}
