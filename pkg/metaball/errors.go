package metaball

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is matched by every RangeError.
	ErrInvalidRange = errors.New("metaball: invalid range")
	// ErrInvalidSize is matched by every SizeError.
	ErrInvalidSize = errors.New("metaball: invalid size")
	// ErrInvalidCount is returned for a negative number of blobs.
	ErrInvalidCount = errors.New("metaball: invalid count")
)

// RangeError reports an inverted range, or a negative lower bound for a
// count or radius.
type RangeError struct {
	Field string
	Range Range
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("metaball: invalid %s range [%d, %d]", e.Field, e.Range.Lo, e.Range.Hi)
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }

// SizeError reports a non-positive grid size.
type SizeError struct {
	Size int32
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("metaball: grid size must be positive, got %d", e.Size)
}

func (e *SizeError) Unwrap() error { return ErrInvalidSize }
