// SPDX-License-Identifier: MIT

package reduce

import "math"

// ModeOf returns the value with the greatest accumulated weight
// (area-weighted mode).
//
// ModeOf MUTATES weights: it is used as the frequency buffer. The caller
// must treat the slice as consumed after the call. Use ModeScratch when
// the weights have to survive.
//
// Algorithm:
//  1. Walk positions k = 0..n-1, skipping nodata values.
//  2. Compare values[indices[k]] with every earlier position j < k; on the
//     first equal value add weights[k] into weights[j] and stop. The earliest
//     occurrence of a value therefore holds its total weight.
//  3. Scan every position for the largest weight, using a strict > so ties
//     go to the earliest position, and return the value found there.
//
// Returns NaN when every value is nodata or no weight is positive. Nodata
// positions are not merged but still take part in the final scan with their
// own weight: if a nodata cell holds the largest weight the result is NaN,
// even when lighter valid cells exist.
//
// Complexity: O(n²) time, O(1) extra memory. Overlap counts per
// destination cell are small, so the quadratic merge is cheaper than
// allocating a frequency table.
func ModeOf(values []float64, indices []int, weights []float64) float64 {
	found := 0
	for k, i := range indices {
		v := values[i]
		if math.IsNaN(v) {
			continue
		}
		found++
		for j := 0; j < k; j++ {
			if values[indices[j]] == v {
				weights[j] += weights[k]
				break
			}
		}
	}
	if found == 0 {
		return NoData
	}

	wMax := 0.0
	mode := NoData
	for k, i := range indices {
		if weights[k] > wMax {
			wMax = weights[k]
			mode = values[i]
		}
	}

	return mode
}

// ModeScratch computes ModeOf on a copy of weights held in scratch, leaving
// weights untouched. scratch is grown when shorter than weights; the buffer
// actually used is returned so callers can reuse it on the next cell.
//
// Complexity: O(n²) time; allocates only when scratch is too small.
func ModeScratch(values []float64, indices []int, weights, scratch []float64) (float64, []float64) {
	if cap(scratch) < len(weights) {
		scratch = make([]float64, len(weights))
	}
	scratch = scratch[:len(weights)]
	copy(scratch, weights)

	return ModeOf(values, indices, scratch), scratch
}
