package iter

// IndexCursor is a compact, opaque snapshot of an IndexIter's scan
// position: the (i0, i1) block the next index would come from, plus the
// bit offset id within that block's data. Unlike Cursor, which only
// resolves to the start of a block, an IndexCursor resumes mid-block —
// required for MoveTo to resume an index-granular traversal correctly
// (see IndexIter.MoveTo).
//
// It encodes only a position, never a borrow, so it crosses goroutine and
// lock boundaries freely. The same resumption guarantees as Cursor apply:
// exact if the operand is unchanged, safe (no repeats, forward progress)
// under removal-only mutation, best-effort under arbitrary mutation.
type IndexCursor uint64

// indexTerminal is the cursor value for "iteration is finished". Each
// field is bounded by a block width of at most 256, so 20 bits per field
// leaves every legitimate value far below all-ones.
const indexTerminal IndexCursor = ^IndexCursor(0)

func newIndexCursor(i0, i1, id uint) IndexCursor {
	return IndexCursor(uint64(i0)<<40 | uint64(i1)<<20 | uint64(id))
}

func (c IndexCursor) decode() (i0, i1, id uint, ok bool) {
	if c == indexTerminal {
		return 0, 0, 0, false
	}
	return uint(c >> 40), uint((c >> 20) & 0xfffff), uint(c & 0xfffff), true
}

// Done reports whether this cursor represents the end of iteration.
func (c IndexCursor) Done() bool {
	return c == indexTerminal
}
