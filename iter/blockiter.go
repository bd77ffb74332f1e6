package iter

import (
	"github.com/go-faster/sparsebitset/block"
	"github.com/go-faster/sparsebitset/view"
)

// ControlFlow is the result of a Traverse callback: Continue keeps
// visiting, Break stops the traversal early.
type ControlFlow int

const (
	Continue ControlFlow = iota
	Break
)

// BlockIter yields an operand's DataBlocks in ascending (i0, i1) order. It
// holds the current i0's Level1 mask across calls, so advancing within one
// top-level slot never re-fetches it from the operand.
type BlockIter[L0 block.Bits[L0], L1 block.Bits[L1], D block.Bits[D]] struct {
	src view.Hierarchical[L0, L1, D]

	l0rem L0 // Level0 bits not yet visited; the current i0 is already cleared here
	cur   uint
	l1rem L1 // Level1 bits not yet visited within cur
}

// NewBlockIter builds a block iterator over src, starting at its first
// populated (i0, i1).
func NewBlockIter[L0 block.Bits[L0], L1 block.Bits[L1], D block.Bits[D]](src view.Hierarchical[L0, L1, D]) *BlockIter[L0, L1, D] {
	return &BlockIter[L0, L1, D]{src: src, l0rem: *src.Level0Mask()}
}

func (it *BlockIter[L0, L1, D]) advance() bool {
	for it.l1rem.IsZero() {
		if it.l0rem.IsZero() {
			return false
		}
		i0 := uint(it.l0rem.TrailingZeros())
		it.l0rem = it.l0rem.ClearBit(i0)
		it.cur = i0
		it.l1rem = *it.src.Level1Mask(i0)
	}
	return true
}

// Next returns the next DataBlock in ascending (i0, i1) order, or ok=false
// once every populated block has been visited.
func (it *BlockIter[L0, L1, D]) Next() (i0, i1 uint, data D, ok bool) {
	if it.l1rem.IsZero() && !it.advance() {
		return 0, 0, data, false
	}
	i1 = uint(it.l1rem.TrailingZeros())
	it.l1rem = it.l1rem.ClearBit(i1)
	return it.cur, i1, *it.src.DataBlock(it.cur, i1), true
}

// Cursor snapshots the position Next would resume from, without consuming
// it.
func (it *BlockIter[L0, L1, D]) Cursor() Cursor {
	if !it.l1rem.IsZero() {
		return newCursor(it.cur, uint(it.l1rem.TrailingZeros()))
	}
	l0rem := it.l0rem
	for !l0rem.IsZero() {
		i0 := uint(l0rem.TrailingZeros())
		l1 := *it.src.Level1Mask(i0)
		if !l1.IsZero() {
			return newCursor(i0, uint(l1.TrailingZeros()))
		}
		l0rem = l0rem.ClearBit(i0)
	}
	return terminal
}

// MoveTo re-seats the iterator at or after c. See Cursor's doc comment for
// the resumption guarantees under concurrent mutation.
func (it *BlockIter[L0, L1, D]) MoveTo(c Cursor) {
	i0, j1, ok := c.decode()
	if !ok {
		var zeroL0 L0
		var zeroL1 L1
		it.l0rem, it.l1rem = zeroL0, zeroL1
		return
	}

	it.cur = i0
	it.l1rem = *it.src.Level1Mask(i0)
	for b := uint(0); b < j1; b++ {
		if it.l1rem.TestBit(b) {
			it.l1rem = it.l1rem.ClearBit(b)
		}
	}

	l0rem := *it.src.Level0Mask()
	for b := uint(0); b <= i0; b++ {
		if l0rem.TestBit(b) {
			l0rem = l0rem.ClearBit(b)
		}
	}
	it.l0rem = l0rem
}

// Traverse visits every remaining block, stopping early if f returns Break.
func (it *BlockIter[L0, L1, D]) Traverse(f func(i0, i1 uint, data D) ControlFlow) ControlFlow {
	for {
		i0, i1, data, ok := it.Next()
		if !ok {
			return Continue
		}
		if f(i0, i1, data) == Break {
			return Break
		}
	}
}

// Clone returns an independent iterator at the same position; advancing one
// does not affect the other.
func (it *BlockIter[L0, L1, D]) Clone() *BlockIter[L0, L1, D] {
	c := *it
	return &c
}
