// SPDX-License-Identifier: MIT

package reduce

import "errors"

var (
	// ErrUnknownMethod indicates a method name that is not in the registry.
	ErrUnknownMethod = errors.New("reduce: unknown method")

	// ErrInvalidMethodType indicates a method that is neither a name nor a kernel.
	ErrInvalidMethodType = errors.New("reduce: method must be a name or a kernel")
)
