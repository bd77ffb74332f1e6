package iter

import (
	"github.com/go-faster/sparsebitset/block"
	"github.com/go-faster/sparsebitset/config"
	"github.com/go-faster/sparsebitset/view"
)

// IndexIter yields global indices in ascending order: a BlockIter plus a
// per-block bit scan. Cursor/MoveTo resume at index (bit) granularity via
// IndexCursor, distinct from the block iterator's own block-granular
// Cursor.
type IndexIter[L0 block.Bits[L0], L1 block.Bits[L1], D block.Bits[D]] struct {
	blocks *BlockIter[L0, L1, D]
	w1, wd int

	i0, i1 uint
	rem    D
}

// NewIndexIter builds an index iterator over src.
func NewIndexIter[L0 block.Bits[L0], L1 block.Bits[L1], D block.Bits[D]](src view.Hierarchical[L0, L1, D], w1, wd int) *IndexIter[L0, L1, D] {
	return NewIndexIterFromBlocks(NewBlockIter(src), w1, wd)
}

// NewIndexIterFromBlocks layers an index scan on top of an existing block
// iterator, which may already be mid-traversal (e.g. resumed via MoveTo).
func NewIndexIterFromBlocks[L0 block.Bits[L0], L1 block.Bits[L1], D block.Bits[D]](blocks *BlockIter[L0, L1, D], w1, wd int) *IndexIter[L0, L1, D] {
	return &IndexIter[L0, L1, D]{blocks: blocks, w1: w1, wd: wd}
}

// Next returns the next global index in ascending order, or ok=false once
// exhausted.
func (it *IndexIter[L0, L1, D]) Next() (x uint64, ok bool) {
	for it.rem.IsZero() {
		i0, i1, data, ok := it.blocks.Next()
		if !ok {
			return 0, false
		}
		it.i0, it.i1, it.rem = i0, i1, data
	}
	id := uint(it.rem.TrailingZeros())
	it.rem = it.rem.ClearBit(id)
	return config.Recompose(it.i0, it.i1, id, it.w1, it.wd), true
}

// Traverse visits every remaining index, stopping early if f returns Break.
func (it *IndexIter[L0, L1, D]) Traverse(f func(x uint64) ControlFlow) ControlFlow {
	for {
		x, ok := it.Next()
		if !ok {
			return Continue
		}
		if f(x) == Break {
			return Break
		}
	}
}

// ForEach visits every remaining index in order. It is Traverse without a
// ControlFlow result, for callers that never stop early.
func (it *IndexIter[L0, L1, D]) ForEach(f func(x uint64)) {
	it.Traverse(func(x uint64) ControlFlow {
		f(x)
		return Continue
	})
}

// Clone returns an independent iterator at the same position.
func (it *IndexIter[L0, L1, D]) Clone() *IndexIter[L0, L1, D] {
	c := *it
	c.blocks = it.blocks.Clone()
	return &c
}

// Cursor snapshots the position Next would resume from, without consuming
// it. If the current data block is exhausted, it peeks ahead (via a
// cloned block iterator, so it.blocks itself is not advanced) past any
// block whose hierarchy bit is set but whose actual data is empty — the
// same skip Next() itself performs — to find the next real element.
func (it *IndexIter[L0, L1, D]) Cursor() IndexCursor {
	if !it.rem.IsZero() {
		return newIndexCursor(it.i0, it.i1, uint(it.rem.TrailingZeros()))
	}
	peek := it.blocks.Clone()
	for {
		i0, i1, data, ok := peek.Next()
		if !ok {
			return indexTerminal
		}
		if !data.IsZero() {
			return newIndexCursor(i0, i1, uint(data.TrailingZeros()))
		}
	}
}

// MoveTo re-seats the iterator at or after c. See IndexCursor's doc
// comment for the resumption guarantees under concurrent mutation.
func (it *IndexIter[L0, L1, D]) MoveTo(c IndexCursor) {
	var zeroD D
	i0, i1, id, ok := c.decode()
	if !ok {
		it.blocks.MoveTo(terminal)
		it.i0, it.i1, it.rem = 0, 0, zeroD
		return
	}

	it.blocks.MoveTo(newCursor(i0, i1))
	bi0, bi1, data, ok := it.blocks.Next()
	if !ok {
		it.i0, it.i1, it.rem = 0, 0, zeroD
		return
	}

	// Bits below id are only skipped when the cursor's own block is still
	// there; a later block is resumed from its first bit.
	if bi0 == i0 && bi1 == i1 {
		for b := uint(0); b < id; b++ {
			if data.TestBit(b) {
				data = data.ClearBit(b)
			}
		}
	}
	it.i0, it.i1, it.rem = bi0, bi1, data
}
