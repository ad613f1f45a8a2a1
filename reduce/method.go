// SPDX-License-Identifier: MIT

package reduce

import "fmt"

// Method enumerates the built-in reduction methods.
type Method int

const (
	// Mean is the weighted arithmetic mean.
	Mean Method = iota
	// HarmonicMean is the weighted harmonic mean.
	HarmonicMean
	// GeometricMean is the weighted geometric mean.
	GeometricMean
	// Sum is the unweighted sum.
	Sum
	// Minimum is the unweighted minimum.
	Minimum
	// Maximum is the unweighted maximum.
	Maximum
	// Mode is the area-weighted mode.
	Mode
	// Median is the unweighted median.
	Median
	// Conductance is the weighted sum over relative weights.
	Conductance
	// MaxOverlap takes the value of the most overlapping cell.
	MaxOverlap

	methodCount // sentinel, keep last
)

// methodTable is indexed by Method.
var methodTable = [methodCount]struct {
	name     string
	kernel   Kernel
	relative bool
}{
	Mean:          {"mean", MeanOf, false},
	HarmonicMean:  {"harmonic_mean", HarmonicMeanOf, false},
	GeometricMean: {"geometric_mean", GeometricMeanOf, false},
	Sum:           {"sum", SumOf, false},
	Minimum:       {"minimum", MinimumOf, false},
	Maximum:       {"maximum", MaximumOf, false},
	Mode:          {"mode", ModeOf, false},
	Median:        {"median", MedianOf, false},
	Conductance:   {"conductance", ConductanceOf, true},
	MaxOverlap:    {"max_overlap", MaxOverlapOf, false},
}

// Valid reports whether m is one of the built-in methods.
func (m Method) Valid() bool { return m >= 0 && m < methodCount }

// String returns the registry name of m, e.g. "harmonic_mean".
func (m Method) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodTable[m].name
}

// Kernel returns the kernel of m, or nil for an invalid Method.
func (m Method) Kernel() Kernel {
	if !m.Valid() {
		return nil
	}

	return methodTable[m].kernel
}

// Relative reports whether m expects relative weights.
func (m Method) Relative() bool {
	return m.Valid() && methodTable[m].relative
}

// AllMethods returns the built-in methods in declaration order.
func AllMethods() []Method {
	out := make([]Method, methodCount)
	for m := Mean; m < methodCount; m++ {
		out[m] = m
	}

	return out
}

// ParseMethod returns the Method registered under name.
// Unknown names yield an error wrapping ErrUnknownMethod.
func ParseMethod(name string) (Method, error) {
	for m := Mean; m < methodCount; m++ {
		if methodTable[m].name == name {
			return m, nil
		}
	}

	return 0, unknownMethodError(name, builtin.Names())
}
