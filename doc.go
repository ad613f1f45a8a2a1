// Package regrid is a toolkit of weighted reduction kernels for regridding
// values from one grid onto another.
//
// 🚀 What is regrid?
//
//	Given, for each destination cell, the overlapping source cells and the
//	size of each overlap, regrid computes the destination value with a
//	chosen statistic:
//		• Means: arithmetic, harmonic, geometric (area-weighted)
//		• Order statistics: minimum, maximum, median, percentiles
//		• Categorical: area-weighted mode, max overlap
//		• Flow-style: sum, conductance (relative weights)
//
// ✨ Why choose regrid?
//
//   - NaN-as-nodata everywhere – missing cells are skipped, empty cells stay NaN
//   - Deterministic – accumulation follows the overlap order exactly
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – pass your own kernel wherever a method name is accepted
//
// Under the hood:
//
//	reduce/  — kernels, the Method enumeration, the registry and Resolve
//	overlap/ — CSR overlap table, relative weights, Apply over all cells
//
// Quick example:
//
//	tbl, _ := overlap.FromTriplets(nDest, nSource, dst, src, area)
//	out, err := overlap.Apply(values, tbl, "mean")
//
//	go get github.com/katalvlaran/regrid
package regrid
