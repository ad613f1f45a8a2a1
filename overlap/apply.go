// SPDX-License-Identifier: MIT

package overlap

import "github.com/katalvlaran/regrid/reduce"

// Apply reduces values onto the destination cells of t with the given
// method and returns one value per destination cell.
//
// method is anything reduce.Resolve accepts: a registered name, a
// reduce.Method, or a custom kernel (whose relative flag comes from
// WithDefaultRelative).
//
// Implementation:
//   - Stage 1: validate t and len(values) == t.NSource.
//   - Stage 2: resolve the method; for relative methods switch to
//     t.Relative(sourceArea).
//   - Stage 3: for each row copy the weights into one reused scratch buffer
//     and call the kernel. Rows without overlaps get the fill value.
//
// The table is never modified, not even by mode, and values is only read.
//
// Errors: table validation errors, ErrLengthMismatch, ErrInvalidArea, and
// the reduce resolution errors (reduce.ErrUnknownMethod,
// reduce.ErrInvalidMethodType), each wrapped with the "Apply" tag.
//
// Complexity: Σ kernel cost per row; O(NDest + longest row) extra memory.
func Apply(values []float64, t *Table, method any, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)

	// Stage 1: validate inputs.
	if err := t.Validate(); err != nil {
		return nil, overlapErrorf(opApply, err)
	}
	if len(values) != t.NSource {
		return nil, overlapErrorf(opApply, ErrLengthMismatch)
	}

	// Stage 2: resolve the kernel and its weight convention.
	kernel, relative, err := reduce.Resolve(method, o.registry, o.defaultRelative)
	if err != nil {
		return nil, overlapErrorf(opApply, err)
	}
	if relative {
		if t, err = t.Relative(o.sourceArea); err != nil {
			return nil, overlapErrorf(opApply, err)
		}
	}

	// Stage 3: reduce row by row in destination order.
	nDest := t.NDest()
	longest := 0
	for d := 0; d < nDest; d++ {
		if n := t.Indptr[d+1] - t.Indptr[d]; n > longest {
			longest = n
		}
	}
	scratch := make([]float64, longest)
	out := make([]float64, nDest)
	for d := 0; d < nDest; d++ {
		indices, weights := t.Row(d)
		if len(indices) == 0 {
			out[d] = o.fill
			continue
		}
		w := scratch[:len(weights)]
		copy(w, weights)
		out[d] = kernel(values, indices, w)
	}

	return out, nil
}
