// SPDX-License-Identifier: MIT

package overlap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regrid/overlap"
	"github.com/katalvlaran/regrid/reduce"
)

// newTestTable builds three destination cells over four source cells:
//
//	d0 ← s0 (1.0), s1 (1.0)
//	d1 ← s1 (0.5), s2 (1.5), s3 (2.0)
//	d2 ← (nothing)
func newTestTable(t *testing.T) *overlap.Table {
	t.Helper()
	tbl, err := overlap.FromTriplets(3, 4,
		[]int{0, 0, 1, 1, 1},
		[]int{0, 1, 1, 2, 3},
		[]float64{1, 1, 0.5, 1.5, 2},
	)
	require.NoError(t, err)

	return tbl
}

// TestApply_Mean reduces every row; empty rows get the nodata fill.
func TestApply_Mean(t *testing.T) {
	tbl := newTestTable(t)
	values := []float64{2, 4, math.NaN(), 10}

	out, err := overlap.Apply(values, tbl, "mean")
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, 3.0, out[0])
	assert.InDelta(t, (0.5*4+2*10)/2.5, out[1], 1e-12)
	assert.True(t, math.IsNaN(out[2]))
}

// TestApply_ModeKeepsTable verifies the table survives the in-place kernel
// and repeated calls give identical results.
func TestApply_ModeKeepsTable(t *testing.T) {
	tbl := newTestTable(t)
	before := append([]float64(nil), tbl.Weights...)
	values := []float64{1, 1, 7, 1}

	first, err := overlap.Apply(values, tbl, reduce.Mode)
	require.NoError(t, err)
	second, err := overlap.Apply(values, tbl, reduce.Mode)
	require.NoError(t, err)

	assert.Equal(t, before, tbl.Weights)
	assert.Equal(t, 1.0, first[0])
	assert.Equal(t, 1.0, first[1], "1 accumulates 0.5+2 and beats 7 with 1.5")
	assert.Equal(t, first[:2], second[:2])
}

// TestApply_ConductanceUsesRelativeWeights checks the relative switch.
func TestApply_ConductanceUsesRelativeWeights(t *testing.T) {
	tbl := newTestTable(t)
	values := []float64{2, 4, 6, 8}
	area := []float64{1, 2, 3, 4}

	out, err := overlap.Apply(values, tbl, "conductance", overlap.WithSourceArea(area))
	require.NoError(t, err)
	assert.InDelta(t, 2*1.0+4*0.5, out[0], 1e-12)
	assert.InDelta(t, 4*0.25+6*0.5+8*0.5, out[1], 1e-12)
}

// TestApply_CustomKernel uses WithDefaultRelative for callables.
func TestApply_CustomKernel(t *testing.T) {
	tbl := newTestTable(t)
	values := []float64{2, 4, 6, 8}
	sumW := func(_ []float64, _ []int, weights []float64) float64 {
		s := 0.0
		for _, w := range weights {
			s += w
		}

		return s
	}

	raw, err := overlap.Apply(values, tbl, sumW)
	require.NoError(t, err)
	assert.Equal(t, 2.0, raw[0])

	// relative weights computed from per-source totals: s1 is split 1 : 0.5
	rel, err := overlap.Apply(values, tbl, sumW, overlap.WithDefaultRelative(true))
	require.NoError(t, err)
	assert.InDelta(t, 1+1/1.5, rel[0], 1e-12)
}

// TestApply_Fill overrides the value used for rows without overlaps.
func TestApply_Fill(t *testing.T) {
	out, err := overlap.Apply([]float64{1, 2, 3, 4}, newTestTable(t), "sum", overlap.WithFill(-9999))
	require.NoError(t, err)
	assert.Equal(t, -9999.0, out[2])
	assert.Equal(t, 3.0, out[0])
}

// TestApply_Registry resolves names against a caller-supplied registry.
func TestApply_Registry(t *testing.T) {
	reg := reduce.Registry{"p100": {Kernel: reduce.Percentile(100)}}
	out, err := overlap.Apply([]float64{1, 2, 3, 4}, newTestTable(t), "p100", overlap.WithRegistry(reg))
	require.NoError(t, err)
	assert.Equal(t, 4.0, out[1])

	_, err = overlap.Apply([]float64{1, 2, 3, 4}, newTestTable(t), "mean", overlap.WithRegistry(reg))
	assert.ErrorIs(t, err, reduce.ErrUnknownMethod)
}

// TestApply_Errors covers input validation and resolution failures.
func TestApply_Errors(t *testing.T) {
	tbl := newTestTable(t)

	_, err := overlap.Apply([]float64{1, 2, 3, 4}, nil, "mean")
	assert.ErrorIs(t, err, overlap.ErrNilTable)

	_, err = overlap.Apply([]float64{1, 2}, tbl, "mean")
	assert.ErrorIs(t, err, overlap.ErrLengthMismatch)

	_, err = overlap.Apply([]float64{1, 2, 3, 4}, tbl, "nonexistent")
	assert.ErrorIs(t, err, reduce.ErrUnknownMethod)

	_, err = overlap.Apply([]float64{1, 2, 3, 4}, tbl, 42)
	assert.ErrorIs(t, err, reduce.ErrInvalidMethodType)

	_, err = overlap.Apply([]float64{1, 2, 3, 4}, tbl, "conductance", overlap.WithSourceArea([]float64{1}))
	assert.ErrorIs(t, err, overlap.ErrLengthMismatch)
}

// TestApply_AllMethodsMatchDirectCalls compares Apply with calling each
// kernel by hand on copies of the rows.
func TestApply_AllMethodsMatchDirectCalls(t *testing.T) {
	tbl := newTestTable(t)
	values := []float64{3, -1, 3, 5}

	for _, m := range reduce.AllMethods() {
		if m.Relative() {
			continue
		}
		out, err := overlap.Apply(values, tbl, m.String())
		require.NoError(t, err, m.String())
		for d := 0; d < 2; d++ {
			idx, ws := tbl.Row(d)
			want := m.Kernel()(values, idx, append([]float64(nil), ws...))
			assert.Equal(t, want, out[d], "%s row %d", m, d)
		}
	}
}
