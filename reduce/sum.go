// SPDX-License-Identifier: MIT

package reduce

import "math"

// SumOf returns the unweighted sum of the non-nodata values.
//
// Weights do not scale the result. They are summed only to detect the
// degenerate case: when the contributing weights total zero the result is
// NaN, otherwise it is Σv.
//
// Complexity: O(n) time, O(1) memory.
func SumOf(values []float64, indices []int, weights []float64) float64 {
	var vSum, wSum float64
	for k, i := range indices {
		v := values[i]
		if math.IsNaN(v) {
			continue
		}
		vSum += v
		wSum += weights[k]
	}
	if wSum == 0 {
		return NoData
	}

	return vSum
}

// ConductanceOf returns Σ(v·w) over the non-nodata values without dividing
// by the weight total. The weights are expected to be relative fractions
// already (see Entry.Relative); NaN is returned when they total zero.
//
// Complexity: O(n) time, O(1) memory.
func ConductanceOf(values []float64, indices []int, weights []float64) float64 {
	var vAgg, wSum float64
	for k, i := range indices {
		v := values[i]
		if math.IsNaN(v) {
			continue
		}
		w := weights[k]
		vAgg += v * w
		wSum += w
	}
	if wSum == 0 {
		return NoData
	}

	return vAgg
}
