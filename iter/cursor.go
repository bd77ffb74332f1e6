package iter

// Cursor is a compact, opaque snapshot of a BlockIter's scan position: the
// top-level slot (i0) about to be visited and, within it, the next Level1
// position (j1). It encodes only a position, never a borrow, so it crosses
// goroutine and lock boundaries freely.
//
// Resuming from a Cursor re-fetches the operand at i0 and discards any
// Level1 bits below j1; if the operand has only had elements removed since
// the cursor was taken, every remaining element at or after the cursor is
// still yielded in order. Under arbitrary mutation, resuming makes forward
// progress and never repeats an element within one session, but elements
// inserted before the cursor may be missed.
type Cursor uint64

// terminal is the cursor value for "iteration is finished". i0/j1 are both
// bounded by a block width of at most 256, so packing them into the low 64
// bits can never legitimately produce all ones.
const terminal Cursor = ^Cursor(0)

func newCursor(i0, j1 uint) Cursor {
	return Cursor(uint64(i0)<<32 | uint64(j1))
}

func (c Cursor) decode() (i0, j1 uint, ok bool) {
	if c == terminal {
		return 0, 0, false
	}
	return uint(c >> 32), uint(c & 0xffffffff), true
}

// Done reports whether this cursor represents the end of iteration.
func (c Cursor) Done() bool {
	return c == terminal
}
