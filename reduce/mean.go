// SPDX-License-Identifier: MIT

package reduce

import "math"

// MeanOf returns the weighted arithmetic mean Σ(w·v) / Σw.
//
// Nodata entries are left out of both sums. Returns NaN when the total
// weight of the remaining entries is zero.
//
// Complexity: O(n) time, O(1) memory.
func MeanOf(values []float64, indices []int, weights []float64) float64 {
	var vSum, wSum float64
	for k, i := range indices {
		v := values[i]
		if math.IsNaN(v) {
			continue
		}
		w := weights[k]
		vSum += w * v
		wSum += w
	}
	if wSum == 0 {
		return NoData
	}

	return vSum / wSum
}

// HarmonicMeanOf returns the weighted harmonic mean Σw / Σ(w/v).
//
// Entries are skipped when the value is nodata or exactly zero, or when
// the weight is not positive. Returns NaN if either sum stays zero.
//
// Complexity: O(n) time, O(1) memory.
func HarmonicMeanOf(values []float64, indices []int, weights []float64) float64 {
	var vAgg, wSum float64
	for k, i := range indices {
		v := values[i]
		if math.IsNaN(v) || v == 0 {
			continue
		}
		w := weights[k]
		if w > 0 {
			wSum += w
			vAgg += w / v
		}
	}
	if vAgg == 0 || wSum == 0 {
		return NoData
	}

	return wSum / vAgg
}

// GeometricMeanOf returns the weighted geometric mean exp(Σ(w·ln|v|) / Σw),
// computed in log space to avoid overflow of the running product.
//
// Algorithm:
//  1. Sum all weights; a zero sum means no weighting is possible → NaN.
//  2. For entries with a non-nodata, non-zero value and a positive weight,
//     accumulate w·ln|v| and w, and count the negative values.
//  3. Result = (-1)^count · exp(Σ(w·ln|v|) / Σw), NaN if Σw is zero.
//
// The sign counter lets a set of negative values produce a real result:
// two negatives cancel, an odd count yields a negative mean.
//
// Complexity: O(n) time, O(1) memory.
func GeometricMeanOf(values []float64, indices []int, weights []float64) float64 {
	var normSum float64
	for k := range indices {
		normSum += weights[k]
	}
	if normSum == 0 {
		return NoData
	}

	var vAgg, wSum float64
	flips := 0
	for k, i := range indices {
		v := values[i]
		if math.IsNaN(v) || v == 0 {
			continue
		}
		w := weights[k]
		if w > 0 {
			vAgg += w * math.Log(math.Abs(v))
			wSum += w
			if v < 0 {
				flips++
			}
		}
	}
	if wSum == 0 {
		return NoData
	}

	mean := math.Exp((1.0 / wSum) * vAgg)
	if flips%2 == 1 {
		return -mean
	}

	return mean
}
