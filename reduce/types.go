// SPDX-License-Identifier: MIT

package reduce

import "math"

// NoData is the sentinel marking a missing source value or an undefined
// result. It is a quiet NaN, so compare with IsNoData, never with ==.
var NoData = math.NaN()

// IsNoData reports whether v is the nodata sentinel.
func IsNoData(v float64) bool { return math.IsNaN(v) }

// Kernel reduces the source cells of one destination cell to a value.
//
//   - values:  all source values, NaN meaning nodata.
//   - indices: positions into values of the overlapping source cells.
//   - weights: overlap weight per entry of indices (same length, same order).
//
// A Kernel returns NaN when no entry contributes.
type Kernel func(values []float64, indices []int, weights []float64) float64

// Entry pairs a kernel with its weight convention.
// Relative=true means the kernel expects weights already normalised to
// fractions and its output must not be renormalised by the caller.
type Entry struct {
	Kernel   Kernel
	Relative bool
}

// Registry maps a method name to its Entry.
type Registry map[string]Entry
