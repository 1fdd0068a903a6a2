package series

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Rescaled-range defaults: 15 logarithmically spaced window sizes covering
// the middle quarter of the log range [0, ln N].
const (
	rsRatio = 0.25
	rsSteps = 15

	// expectedRSGammaLimit is the window size above which the gamma-function
	// ratio of the Anis-Lloyd-Peters correction is replaced by its asymptote.
	expectedRSGammaLimit = 340
)

// HurstOptions tunes HurstRS. The zero value is not useful; use
// DefaultHurstOptions.
type HurstOptions struct {
	// Windows overrides the window sizes; nil selects WindowSizes(len(data)).
	Windows []int

	// Corrected subtracts the Anis-Lloyd-Peters expected R/S before fitting
	// and adds 0.5 to the slope.
	Corrected bool

	// Unbiased uses the n−1 denominator for the per-window standard deviation.
	Unbiased bool
}

// DefaultHurstOptions returns corrected, unbiased estimation over the
// default window sizes.
func DefaultHurstOptions() HurstOptions {
	return HurstOptions{Corrected: true, Unbiased: true}
}

// HurstRS estimates the Hurst exponent of data by rescaled-range analysis:
// for every window size n the series is cut into ⌊N/n⌋ non-overlapping
// windows, each window's cumulative mean-adjusted range R is divided by its
// standard deviation S, and the mean R/S is regressed on n in log-log space.
//
// Windows whose range is zero are skipped; window sizes with no usable
// window are dropped. Fewer than two remaining sizes yield ErrSeriesTooShort.
//
// Complexity: O(N·k) for k window sizes.
func HurstRS(data []float64, opts HurstOptions) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptySeries
	}
	windows := opts.Windows
	if windows == nil {
		windows = WindowSizes(len(data))
	}

	xs := make([]float64, 0, len(windows))
	ys := make([]float64, 0, len(windows))
	for _, n := range windows {
		if n < 2 || n > len(data) {
			continue
		}
		rs, ok := meanRescaledRange(data, n, opts.Unbiased)
		if !ok {
			continue
		}
		y := math.Log(rs)
		if opts.Corrected {
			y -= math.Log(ExpectedRS(n))
		}
		xs = append(xs, math.Log(float64(n)))
		ys = append(ys, y)
	}
	if len(xs) < 2 {
		return 0, fmt.Errorf("HurstRS: N=%d, usable windows=%d: %w", len(data), len(xs), ErrSeriesTooShort)
	}

	_, slope := stat.LinearRegression(xs, ys, nil, false)
	if opts.Corrected {
		slope += 0.5
	}

	return slope, nil
}

// WindowSizes returns the default R/S window sizes for a series of length
// total: exp of rsSteps evenly spaced points starting at ln(total)·(1−r)/2
// and spanning ln(total)·r (r = 1/4), rounded, deduplicated, ascending.
func WindowSizes(total int) []int {
	if total < 1 {
		return nil
	}
	l := math.Log(float64(total))
	span := l * rsRatio
	start := l * (1 - rsRatio) * 0.5

	seen := make(map[int]struct{}, rsSteps)
	out := make([]int, 0, rsSteps)
	for i := 0; i < rsSteps; i++ {
		n := int(math.RoundToEven(math.Exp(start + float64(i)/rsSteps*span)))
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Ints(out)

	return out
}

// meanRescaledRange returns the mean R/S over the ⌊N/n⌋ windows of size n,
// and false when every window has zero range.
func meanRescaledRange(data []float64, n int, unbiased bool) (float64, bool) {
	m := len(data) / n
	var sum float64
	used := 0
	for w := 0; w < m; w++ {
		seq := data[w*n : (w+1)*n]

		var mean float64
		for _, x := range seq {
			mean += x
		}
		mean /= float64(n)

		var cum, lo, hi, sq float64
		for i, x := range seq {
			dev := x - mean
			sq += dev * dev
			cum += dev
			if i == 0 || cum < lo {
				lo = cum
			}
			if i == 0 || cum > hi {
				hi = cum
			}
		}
		r := hi - lo
		if r == 0 {
			continue
		}
		den := float64(n)
		if unbiased {
			den = float64(n - 1)
		}
		s := math.Sqrt(sq / den)
		sum += r / s
		used++
	}
	if used == 0 {
		return 0, false
	}

	return sum / float64(used), true
}

// ExpectedRS is the Anis-Lloyd-Peters expected R/S of a window of size n
// drawn from white noise.
func ExpectedRS(n int) float64 {
	nf := float64(n)
	front := (nf - 0.5) / nf
	var back float64
	for i := 1; i < n; i++ {
		back += math.Sqrt((nf - float64(i)) / float64(i))
	}
	var middle float64
	if n <= expectedRSGammaLimit {
		a, _ := math.Lgamma((nf - 1) * 0.5)
		b, _ := math.Lgamma(nf * 0.5)
		middle = math.Exp(a-b) / math.Sqrt(math.Pi)
	} else {
		middle = 1 / math.Sqrt(nf*math.Pi*0.5)
	}

	return front * middle * back
}
