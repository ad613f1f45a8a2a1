// SPDX-License-Identifier: MIT

package reduce

import (
	"math"
	"slices"
)

// MedianOf returns the unweighted 50th percentile of the non-nodata values
// among values[indices]. Weights are ignored. Nodata entries are removed
// before ranking, they do not count as zero. NaN if nothing remains.
//
// Complexity: O(n log n) time, O(n) memory (values must not be reordered
// in place, so the valid subset is copied).
func MedianOf(values []float64, indices []int, _ []float64) float64 {
	return nanPercentile(values, indices, 50)
}

// Percentile returns a Kernel computing the p-th percentile (0 ≤ p ≤ 100)
// of the non-nodata values with linear interpolation between closest ranks.
// It is not part of the built-in registry; pass it to Resolve as a custom
// kernel. Panics if p is outside [0, 100] or NaN (programmer error).
func Percentile(p float64) Kernel {
	if math.IsNaN(p) || p < 0 || p > 100 {
		panic(panicPercentileRange)
	}

	return func(values []float64, indices []int, _ []float64) float64 {
		return nanPercentile(values, indices, p)
	}
}

const panicPercentileRange = "reduce: Percentile: p must be within [0, 100]"

// nanPercentile gathers the valid values, sorts them and interpolates at
// rank (n-1)·p/100.
func nanPercentile(values []float64, indices []int, p float64) float64 {
	valid := make([]float64, 0, len(indices))
	for _, i := range indices {
		if v := values[i]; !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}
	n := len(valid)
	if n == 0 {
		return NoData
	}
	slices.Sort(valid)

	rank := float64(n-1) * p / 100
	lo := int(math.Floor(rank))
	hi := lo + 1
	if hi >= n {
		return valid[n-1]
	}
	t := rank - float64(lo)

	return lerp(valid[lo], valid[hi], t)
}

// lerp interpolates between a and b, anchoring on the nearer endpoint so
// that t=0 and t=1 reproduce a and b exactly.
func lerp(a, b, t float64) float64 {
	d := b - a
	if t >= 0.5 {
		return b - d*(1-t)
	}

	return a + d*t
}
