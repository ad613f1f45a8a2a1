// SPDX-License-Identifier: MIT

package reduce

import "math"

// MinimumOf returns the smallest non-nodata value among values[indices].
// Weights are accepted for signature compatibility and ignored.
//
// The running minimum is seeded from values[indices[0]] without a nodata
// check. A nodata seed is replaced by the first valid value encountered,
// so the result is NaN only when every value is nodata (or indices is empty).
//
// Complexity: O(n) time, O(1) memory.
func MinimumOf(values []float64, indices []int, _ []float64) float64 {
	if len(indices) == 0 {
		return NoData
	}
	vMin := values[indices[0]]
	for _, i := range indices {
		v := values[i]
		if math.IsNaN(v) {
			continue
		}
		if v < vMin || math.IsNaN(vMin) {
			vMin = v
		}
	}

	return vMin
}

// MaximumOf returns the largest non-nodata value among values[indices].
// Seeding and nodata handling mirror MinimumOf.
//
// Complexity: O(n) time, O(1) memory.
func MaximumOf(values []float64, indices []int, _ []float64) float64 {
	if len(indices) == 0 {
		return NoData
	}
	vMax := values[indices[0]]
	for _, i := range indices {
		v := values[i]
		if math.IsNaN(v) {
			continue
		}
		if v > vMax || math.IsNaN(vMax) {
			vMax = v
		}
	}

	return vMax
}

// MaxOverlapOf returns the value of the source cell with the largest
// weight ("winner takes the cell").
//
// The weight bar is raised before the value is inspected: a nodata cell
// with a large weight is not adopted, yet later cells must still beat its
// weight. If the heaviest cell is nodata the result may therefore stay at
// a lighter earlier value, or NaN, even when other valid cells exist.
//
// Complexity: O(n) time, O(1) memory.
func MaxOverlapOf(values []float64, indices []int, weights []float64) float64 {
	maxW := 0.0
	v := NoData
	for k, i := range indices {
		w := weights[k]
		if w > maxW {
			maxW = w
			vTemp := values[i]
			if math.IsNaN(vTemp) {
				continue
			}
			v = vTemp
		}
	}

	return v
}
