// SPDX-License-Identifier: MIT

package overlap

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "overlap: ". Callers match with errors.Is;
// operation context is added by overlapErrorf.
var (
	// ErrNilTable indicates a nil *Table was passed.
	ErrNilTable = errors.New("overlap: nil table")

	// ErrShape indicates non-positive dimensions or a malformed Indptr.
	ErrShape = errors.New("overlap: invalid table shape")

	// ErrIndexOutOfRange indicates a destination or source index outside the table.
	ErrIndexOutOfRange = errors.New("overlap: index out of range")

	// ErrLengthMismatch indicates parallel slices of different lengths, or
	// values whose length differs from the number of source cells.
	ErrLengthMismatch = errors.New("overlap: length mismatch")

	// ErrInvalidArea indicates a negative, NaN or infinite source area.
	ErrInvalidArea = errors.New("overlap: invalid source area")
)

// Operation names used as error context.
const (
	opFromTriplets = "FromTriplets"
	opValidate     = "Validate"
	opRelative     = "Relative"
	opApply        = "Apply"
)

// overlapErrorf wraps err with the operation tag, keeping errors.Is intact.
func overlapErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
