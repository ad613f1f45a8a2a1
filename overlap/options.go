// SPDX-License-Identifier: MIT

// Functional configuration for Apply.
//   - Option / options (functional options with internal state),
//   - documented defaults,
//   - gatherOptions helper that applies setters over the defaults.

package overlap

import (
	"math"

	"github.com/katalvlaran/regrid/reduce"
)

// DefaultRelative is the relative flag assumed for custom kernels, which
// have no registry entry to consult.
const DefaultRelative = false

// DefaultFill is written for destination cells without any overlap: NaN,
// i.e. reduce.NoData. It is a function because NaN is not a constant.
func DefaultFill() float64 { return math.NaN() }

// Option mutates Apply's configuration. Safe to apply repeatedly.
type Option func(*options)

// options holds the effective configuration after applying Option setters.
type options struct {
	registry        reduce.Registry // nil ⇒ reduce built-ins
	defaultRelative bool            // DefaultRelative
	sourceArea      []float64       // nil ⇒ per-source weight totals
	fill            float64         // DefaultFill()
}

// WithRegistry resolves method names against r instead of the built-in
// registry. A nil r restores the built-ins.
func WithRegistry(r reduce.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithDefaultRelative sets the relative flag used when the method is a
// custom kernel rather than a registered name.
func WithDefaultRelative(relative bool) Option {
	return func(o *options) { o.defaultRelative = relative }
}

// WithSourceArea supplies the area of every source cell for converting
// overlaps to relative weights. Validated by Table.Relative when used.
func WithSourceArea(area []float64) Option {
	return func(o *options) { o.sourceArea = area }
}

// WithFill sets the value written for destination cells with no overlaps.
func WithFill(v float64) Option {
	return func(o *options) { o.fill = v }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) options {
	o := options{
		defaultRelative: DefaultRelative,
		fill:            DefaultFill(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
