package series

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Sentinel errors for series statistics.
var (
	// ErrEmptySeries is returned for an empty input.
	ErrEmptySeries = errors.New("series: empty series")

	// ErrZeroSum is returned when a distribution cannot be normalized.
	ErrZeroSum = errors.New("series: values sum to zero")

	// ErrNegativeValue is returned when a probability mass is negative.
	ErrNegativeValue = errors.New("series: negative value")

	// ErrSeriesTooShort is returned when the R/S estimator has fewer than
	// two usable window sizes.
	ErrSeriesTooShort = errors.New("series: series too short for R/S analysis")
)

// Distribution normalizes non-negative integer values (e.g. a degree
// sequence) so that they sum to 1.
func Distribution(values []int) ([]float64, error) {
	if len(values) == 0 {
		return nil, ErrEmptySeries
	}
	total := 0
	for i, v := range values {
		if v < 0 {
			return nil, fmt.Errorf("Distribution: index %d: %w", i, ErrNegativeValue)
		}
		total += v
	}
	if total == 0 {
		return nil, ErrZeroSum
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v) / float64(total)
	}

	return out, nil
}

// Entropy returns the Shannon entropy −Σ p·ln p of pk after normalizing it
// to sum 1. Zero entries contribute nothing.
func Entropy(pk []float64) (float64, error) {
	if len(pk) == 0 {
		return 0, ErrEmptySeries
	}
	var total float64
	for i, p := range pk {
		if p < 0 || math.IsNaN(p) {
			return 0, fmt.Errorf("Entropy: index %d: %w", i, ErrNegativeValue)
		}
		total += p
	}
	if total == 0 {
		return 0, ErrZeroSum
	}
	q := make([]float64, len(pk))
	for i, p := range pk {
		q[i] = p / total
	}

	return stat.Entropy(q), nil
}
