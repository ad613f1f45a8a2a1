// SPDX-License-Identifier: MIT

package overlap

import "math"

// FromTriplets builds a Table with nDest rows and nSource columns from
// parallel (dst, src, w) triplets.
//
// Implementation:
//   - Stage 1: validate dimensions, slice lengths and index ranges.
//   - Stage 2: count entries per destination and prefix-sum into Indptr.
//   - Stage 3: scatter triplets into their rows in input order (stable), so
//     the per-row order equals the order the overlaps were produced in.
//
// Duplicate (dst, src) pairs are kept as separate entries.
//
// Errors: ErrShape, ErrLengthMismatch, ErrIndexOutOfRange.
//
// Complexity: O(nnz + nDest) time and memory.
func FromTriplets(nDest, nSource int, dst, src []int, w []float64) (*Table, error) {
	// Stage 1: validate.
	if nDest <= 0 || nSource <= 0 {
		return nil, overlapErrorf(opFromTriplets, ErrShape)
	}
	if len(dst) != len(src) || len(src) != len(w) {
		return nil, overlapErrorf(opFromTriplets, ErrLengthMismatch)
	}
	for k := range dst {
		if dst[k] < 0 || dst[k] >= nDest || src[k] < 0 || src[k] >= nSource {
			return nil, overlapErrorf(opFromTriplets, ErrIndexOutOfRange)
		}
	}

	// Stage 2: row counts → Indptr.
	indptr := make([]int, nDest+1)
	for _, d := range dst {
		indptr[d+1]++
	}
	for d := 0; d < nDest; d++ {
		indptr[d+1] += indptr[d]
	}

	// Stage 3: stable scatter; next[d] is the write cursor of row d.
	nnz := len(dst)
	indices := make([]int, nnz)
	weights := make([]float64, nnz)
	next := make([]int, nDest)
	copy(next, indptr[:nDest])
	for k, d := range dst {
		p := next[d]
		indices[p] = src[k]
		weights[p] = w[k]
		next[d]++
	}

	return &Table{Indptr: indptr, Indices: indices, Weights: weights, NSource: nSource}, nil
}

// Validate checks the CSR invariants of t.
//
// Errors (in this order):
//   - ErrNilTable if t is nil.
//   - ErrShape if Indptr is empty, does not start at 0, decreases, or
//     NSource is not positive.
//   - ErrLengthMismatch if Indices/Weights lengths differ from Indptr's end.
//   - ErrIndexOutOfRange if a source index is outside [0, NSource).
//
// Complexity: O(nnz + nDest).
func (t *Table) Validate() error {
	if t == nil {
		return overlapErrorf(opValidate, ErrNilTable)
	}
	if len(t.Indptr) == 0 || t.Indptr[0] != 0 || t.NSource <= 0 {
		return overlapErrorf(opValidate, ErrShape)
	}
	for d := 1; d < len(t.Indptr); d++ {
		if t.Indptr[d] < t.Indptr[d-1] {
			return overlapErrorf(opValidate, ErrShape)
		}
	}
	end := t.Indptr[len(t.Indptr)-1]
	if len(t.Indices) != end || len(t.Weights) != end {
		return overlapErrorf(opValidate, ErrLengthMismatch)
	}
	for _, i := range t.Indices {
		if i < 0 || i >= t.NSource {
			return overlapErrorf(opValidate, ErrIndexOutOfRange)
		}
	}

	return nil
}

// Relative returns a copy of t whose weights are fractions of the source
// cell: w / sourceArea[src]. This is the weight convention of relative
// methods such as conductance.
//
// A nil sourceArea uses the table's own per-source weight totals, which
// equal the source areas when every source cell is fully covered by the
// destination grid. A zero area yields zero weights for that source.
//
// Errors: ErrNilTable/ErrShape/... from Validate, ErrLengthMismatch if
// len(sourceArea) != NSource, ErrInvalidArea for negative, NaN or ±Inf areas.
//
// Complexity: O(nnz + nSource) time; allocates the new Weights (and the
// totals when sourceArea is nil).
func (t *Table) Relative(sourceArea []float64) (*Table, error) {
	if err := t.Validate(); err != nil {
		return nil, overlapErrorf(opRelative, err)
	}

	area := sourceArea
	if area == nil {
		area = t.sourceTotals()
	} else if len(area) != t.NSource {
		return nil, overlapErrorf(opRelative, ErrLengthMismatch)
	}
	for _, a := range area {
		if a < 0 || math.IsNaN(a) || math.IsInf(a, 0) {
			return nil, overlapErrorf(opRelative, ErrInvalidArea)
		}
	}

	weights := make([]float64, len(t.Weights))
	for k, i := range t.Indices {
		if a := area[i]; a != 0 {
			weights[k] = t.Weights[k] / a
		}
	}

	return &Table{Indptr: t.Indptr, Indices: t.Indices, Weights: weights, NSource: t.NSource}, nil
}

// sourceTotals sums the weights per source cell (column sums).
func (t *Table) sourceTotals() []float64 {
	totals := make([]float64, t.NSource)
	for k, i := range t.Indices {
		totals[i] += t.Weights[k]
	}

	return totals
}
