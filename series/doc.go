// Package series provides the scalar statistics lvlath derives from a
// graph's degree sequence viewed as a one-dimensional series:
//
//   - Distribution: degrees normalized to a probability vector.
//   - Entropy: Shannon entropy (natural log) of a probability vector.
//   - HurstRS: rescaled-range (R/S) estimate of the Hurst exponent with the
//     Anis-Lloyd-Peters small-sample correction and a least-squares
//     (degree-1 polynomial) fit in log-log space.
//
// All functions are pure, deterministic and allocation-light; none of them
// mutate their input slices.
package series
