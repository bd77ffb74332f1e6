package sparsebitset

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is the sentinel wrapped by *IndexOutOfRangeError, the
// value Insert panics with when an index exceeds the container's configured
// universe, W0*W1*Wd-1. Contains and Remove report false for such an index.
var ErrIndexOutOfRange = errors.New("sparsebitset: index out of range")

// IndexOutOfRangeError carries the offending index and the container's
// maximum representable index.
//
// The original underlying error can be accessed via errors.Unwrap; it is
// always ErrIndexOutOfRange.
type IndexOutOfRangeError struct {
	Index uint64
	Max   uint64
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("sparsebitset: index %d exceeds max index %d", e.Index, e.Max)
}

func (e *IndexOutOfRangeError) Unwrap() error { return ErrIndexOutOfRange }

// ErrCursorMismatch names the precondition violation of applying a Cursor
// taken from one container (or one block-width configuration) to another,
// since a cursor's (i0, j1) encoding is only meaningful relative to the
// widths it was taken from. No function in this module returns it: MoveTo
// does not check where a cursor came from.
var ErrCursorMismatch = errors.New("sparsebitset: cursor taken from a different container shape")
