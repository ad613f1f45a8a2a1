// SPDX-License-Identifier: MIT

package overlap

// Table is a CSR sparse matrix of overlaps: rows are destination cells,
// columns are source cells.
//
// Row d occupies Indices[Indptr[d]:Indptr[d+1]] and the parallel range of
// Weights. Within a row, entries keep the order in which the overlaps were
// produced; kernels accumulate in that order, so it is part of the result.
//
// A Table is read-only once built. Relative shares Indptr and Indices with
// its receiver, and Apply never writes to any of the slices.
type Table struct {
	Indptr  []int     // len = NDest()+1, Indptr[0] = 0, non-decreasing
	Indices []int     // source cell per entry, 0 ≤ i < NSource
	Weights []float64 // overlap weight per entry
	NSource int       // number of source cells (columns)
}

// NDest returns the number of destination cells (rows).
func (t *Table) NDest() int {
	if t == nil || len(t.Indptr) == 0 {
		return 0
	}

	return len(t.Indptr) - 1
}

// Len returns the number of stored overlaps.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.Indices)
}

// Row returns the source indices and weights overlapping destination d.
// The slices alias the table; callers must not modify them.
// Panics if d is out of range, like a slice index.
func (t *Table) Row(d int) ([]int, []float64) {
	lo, hi := t.Indptr[d], t.Indptr[d+1]

	return t.Indices[lo:hi:hi], t.Weights[lo:hi:hi]
}
