// SPDX-License-Identifier: MIT

// Package reduce provides weighted reduction kernels for regridding: each
// kernel turns the source cells overlapping one destination cell into a
// single destination value.
//
// 🚀 What is a reduction kernel?
//
//	A regridder knows, for every destination cell, which source cells
//	overlap it and by how much (e.g. the area of intersection). A kernel
//	receives that cell's slice of source indices and overlap weights
//	together with the global source values and aggregates them:
//
//	  value = kernel(values, indices, weights)
//
// ✨ Built-in methods:
//   - mean            — weighted arithmetic mean
//   - harmonic_mean   — weighted harmonic mean (zero values skipped)
//   - geometric_mean  — weighted geometric mean in log space, sign-aware
//   - sum             — unweighted sum, weights only gate the empty case
//   - minimum/maximum — unweighted extrema
//   - mode            — value with the largest accumulated weight
//   - median          — unweighted 50th percentile
//   - conductance     — weighted sum over relative weights (not normalised)
//   - max_overlap     — value of the cell with the largest weight
//
// Nodata:
//
//	NaN marks a source cell without a valid measurement. Kernels skip such
//	cells and return NaN when nothing contributes (all nodata, zero total
//	weight, empty slice). Kernels never panic or return errors on
//	degenerate numeric input.
//
// Buffers:
//
//	Kernels never modify values or indices. ModeOf uses weights as scratch
//	space and leaves it modified; use ModeScratch to keep weights intact.
//	Different destination cells may be reduced concurrently as long as
//	their weight buffers are not shared.
//
// ⚙️ Usage:
//
//	kernel, relative, err := reduce.Resolve("mean", reduce.Methods(), false)
//	if err != nil {
//	  // handle ErrUnknownMethod or ErrInvalidMethodType
//	}
//	v := kernel(values, indices, weights)
//
// Complexity:
//
//   - O(n) per call for every method except mode (O(n²)) and median
//     (O(n log n)), where n = len(indices).
package reduce
