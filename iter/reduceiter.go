package iter

import (
	"github.com/go-faster/sparsebitset/block"
	"github.com/go-faster/sparsebitset/config"
	"github.com/go-faster/sparsebitset/setop"
	"github.com/go-faster/sparsebitset/view"
)

// ReduceBlockIter drives an N-ary setop.Reduce directly over its individual
// operands rather than through the single combined view.Hierarchical the
// Reduce value itself publishes. Doing so lets it skip an operand's
// DataBlock fetch entirely for any (i0, i1) where that operand's own
// Level1 mask bit is clear, instead of folding a zero value into the
// combine after fetching it anyway.
type ReduceBlockIter[L0 block.Bits[L0], L1 block.Bits[L1], D block.Bits[D]] struct {
	op       setop.BitSetOp
	operands []view.Hierarchical[L0, L1, D]
	cache    l1Cache[L1]

	l0rem L0
	cur   uint
	l1rem L1
}

// NewReduceBlockIter builds a block iterator that folds op across operands,
// caching each operand's resolved Level1 mask per i0 according to policy.
func NewReduceBlockIter[L0 block.Bits[L0], L1 block.Bits[L1], D block.Bits[D]](op setop.BitSetOp, operands []view.Hierarchical[L0, L1, D], policy config.CachePolicy) *ReduceBlockIter[L0, L1, D] {
	it := &ReduceBlockIter[L0, L1, D]{
		op:       op,
		operands: operands,
		cache:    newCache[L1](policy, len(operands)),
	}
	acc := *operands[0].Level0Mask()
	for _, s := range operands[1:] {
		acc = setop.HierarchyOp(op, acc, *s.Level0Mask())
	}
	it.l0rem = acc
	return it
}

func (it *ReduceBlockIter[L0, L1, D]) refreshLevel1(i0 uint) L1 {
	acc := *it.operands[0].Level1Mask(i0)
	it.cache.refresh(0, acc)
	for k, s := range it.operands[1:] {
		v := *s.Level1Mask(i0)
		it.cache.refresh(k+1, v)
		acc = setop.HierarchyOp(it.op, acc, v)
	}
	return acc
}

func (it *ReduceBlockIter[L0, L1, D]) advance() bool {
	for it.l1rem.IsZero() {
		if it.l0rem.IsZero() {
			return false
		}
		i0 := uint(it.l0rem.TrailingZeros())
		it.l0rem = it.l0rem.ClearBit(i0)
		it.cur = i0
		it.l1rem = it.refreshLevel1(i0)
	}
	return true
}

// Next returns the next combined DataBlock in ascending (i0, i1) order.
func (it *ReduceBlockIter[L0, L1, D]) Next() (i0, i1 uint, data D, ok bool) {
	if it.l1rem.IsZero() && !it.advance() {
		return 0, 0, data, false
	}
	i1 = uint(it.l1rem.TrailingZeros())
	it.l1rem = it.l1rem.ClearBit(i1)

	var acc D
	first := true
	for k, s := range it.operands {
		l1 := it.cache.at(k)
		if !l1.TestBit(i1) {
			continue
		}
		v := *s.DataBlock(it.cur, i1)
		if first {
			acc = v
			first = false
		} else {
			acc = setop.DataOp(it.op, acc, v)
		}
	}
	return it.cur, i1, acc, true
}

// Traverse visits every remaining block, stopping early if f returns Break.
func (it *ReduceBlockIter[L0, L1, D]) Traverse(f func(i0, i1 uint, data D) ControlFlow) ControlFlow {
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
