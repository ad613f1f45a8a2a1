// SPDX-License-Identifier: MIT

package reduce

import (
	"fmt"
	"slices"
	"strings"
)

// builtin is the process-wide table of built-in methods. It is filled once
// at package initialisation and never written afterwards; Methods hands
// out copies.
var builtin = func() Registry {
	r := make(Registry, methodCount)
	for m := Mean; m < methodCount; m++ {
		r[m.String()] = Entry{Kernel: m.Kernel(), Relative: m.Relative()}
	}

	return r
}()

// Methods returns a copy of the built-in registry. Callers may add their
// own entries to the copy without affecting other users.
func Methods() Registry {
	out := make(Registry, len(builtin))
	for name, e := range builtin {
		out[name] = e
	}

	return out
}

// Names returns the registered method names in lexicographic order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Lookup returns the entry registered under name.
func (r Registry) Lookup(name string) (Entry, error) {
	e, ok := r[name]
	if !ok {
		return Entry{}, unknownMethodError(name, r.Names())
	}

	return e, nil
}

// Resolve turns a method name or kernel into a kernel and its relative flag.
//
// Accepted forms of method:
//   - string: looked up in registry; the stored (Kernel, Relative) pair is
//     returned unchanged. Unknown names wrap ErrUnknownMethod and list every
//     registered name.
//   - Method: looked up in registry by its String() name.
//   - Kernel, or a func with the Kernel signature: returned as is with
//     defaultRelative, since a custom kernel has no entry to consult.
//
// Anything else, including a nil function, wraps ErrInvalidMethodType.
// A nil registry means the built-in one.
//
// Complexity: O(1) apart from the map lookup; no side effects.
func Resolve(method any, registry Registry, defaultRelative bool) (Kernel, bool, error) {
	if registry == nil {
		registry = builtin
	}

	switch m := method.(type) {
	case string:
		e, err := registry.Lookup(m)
		if err != nil {
			return nil, false, err
		}

		return e.Kernel, e.Relative, nil
	case Method:
		e, err := registry.Lookup(m.String())
		if err != nil {
			return nil, false, err
		}

		return e.Kernel, e.Relative, nil
	case Kernel:
		if m == nil {
			return nil, false, fmt.Errorf("%w: nil kernel", ErrInvalidMethodType)
		}

		return m, defaultRelative, nil
	case func([]float64, []int, []float64) float64:
		if m == nil {
			return nil, false, fmt.Errorf("%w: nil kernel", ErrInvalidMethodType)
		}

		return m, defaultRelative, nil
	default:
		return nil, false, fmt.Errorf("%w: got %T", ErrInvalidMethodType, method)
	}
}

func unknownMethodError(name string, names []string) error {
	return fmt.Errorf("%w %q; available methods are: %s",
		ErrUnknownMethod, name, strings.Join(names, ", "))
}
