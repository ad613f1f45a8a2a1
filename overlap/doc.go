// SPDX-License-Identifier: MIT

// Package overlap stores source/destination overlaps as a compressed sparse
// row (CSR) table and runs a reduction kernel over every destination cell.
//
// What:
//
//   - Table holds, per destination cell (row), the overlapping source cells
//     (columns) and their overlap weights, in the order they were produced.
//   - FromTriplets builds a Table from (destination, source, weight) triplets.
//   - Relative converts raw overlap weights into fractions of the source cell.
//   - Apply resolves a method through package reduce and reduces each row.
//
// Why:
//
//	The overlap geometry is computed elsewhere; this package is the seam
//	between those weights and the reduce kernels. Apply hands every kernel a
//	private copy of the row weights, so the in-place mode kernel never
//	corrupts the table and the table can be reused for the next variable.
//
// Complexity:
//
//   - FromTriplets: O(nnz + nDest) time and memory.
//   - Relative:     O(nnz + nSource).
//   - Apply:        Σ cost(kernel, row length); one scratch buffer of the
//     longest row length is allocated once.
//
// Errors:
//
//   - ErrNilTable, ErrShape, ErrIndexOutOfRange, ErrLengthMismatch,
//     ErrInvalidArea; method resolution errors from package reduce are
//     passed through and match reduce.ErrUnknownMethod or
//     reduce.ErrInvalidMethodType.
package overlap
