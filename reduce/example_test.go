// SPDX-License-Identifier: MIT

package reduce_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/regrid/reduce"
)

// ExampleResolve picks a kernel by name and applies it to one destination
// cell overlapped by three source cells, one of them nodata.
func ExampleResolve() {
	values := []float64{1, 2, 3, math.NaN()}
	indices := []int{0, 1, 3}
	weights := []float64{0.5, 1.5, 2}

	kernel, relative, err := reduce.Resolve("mean", reduce.Methods(), false)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("mean=%.3f relative=%v\n", kernel(values, indices, weights), relative)
	// Output:
	// mean=1.750 relative=false
}

// ExampleModeOf shows the area-weighted mode and its side effect on weights.
func ExampleModeOf() {
	values := []float64{1, 1, 2}
	weights := []float64{1, 1, 3}

	fmt.Println(reduce.ModeOf(values, []int{0, 1, 2}, weights))
	fmt.Println(weights)
	// Output:
	// 2
	// [2 1 3]
}

// ExampleMaxOverlapOf illustrates that a heavier nodata cell still raises the
// weight bar.
func ExampleMaxOverlapOf() {
	values := []float64{10, math.NaN(), 5}
	fmt.Println(reduce.MaxOverlapOf(values, []int{0, 1, 2}, []float64{0.5, 0.9, 0.3}))
	// Output:
	// 10
}

// ExampleResolve_unknown shows the error listing the available methods.
func ExampleResolve_unknown() {
	_, _, err := reduce.Resolve("average", nil, false)
	fmt.Println(err)
	// Output:
	// reduce: unknown method "average"; available methods are: conductance, geometric_mean, harmonic_mean, max_overlap, maximum, mean, median, minimum, mode, sum
}
