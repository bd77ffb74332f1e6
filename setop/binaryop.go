package setop

import (
	"github.com/go-faster/sparsebitset/block"
	"github.com/go-faster/sparsebitset/view"
)

// BinaryOp is a lazy two-operand virtual set: every view.Hierarchical
// accessor combines the two operands' answers for the same query rather
// than precomputing anything, so a BinaryOp allocates nothing beyond the
// one block value each accessor returns.
type BinaryOp[L0 block.Bits[L0], L1 block.Bits[L1], D block.Bits[D]] struct {
	op     BitSetOp
	s1, s2 view.Hierarchical[L0, L1, D]
}

func newBinaryOp[L0 block.Bits[L0], L1 block.Bits[L1], D block.Bits[D]](op BitSetOp, s1, s2 view.Hierarchical[L0, L1, D]) *BinaryOp[L0, L1, D] {
	return &BinaryOp[L0, L1, D]{op: op, s1: s1, s2: s2}
}

// And returns a virtual set of every index present in both s1 and s2.
func And[L0 block.Bits[L0], L1 block.Bits[L1], D block.Bits[D]](s1, s2 view.Hierarchical[L0, L1, D]) *BinaryOp[L0, L1, D] {
	return newBinaryOp(AndOp, s1, s2)
}

// Or returns a virtual set of every index present in s1, s2, or both.
func Or[L0 block.Bits[L0], L1 block.Bits[L1], D block.Bits[D]](s1, s2 view.Hierarchical[L0, L1, D]) *BinaryOp[L0, L1, D] {
	return newBinaryOp(OrOp, s1, s2)
}

// Xor returns a virtual set of every index present in exactly one of s1, s2.
func Xor[L0 block.Bits[L0], L1 block.Bits[L1], D block.Bits[D]](s1, s2 view.Hierarchical[L0, L1, D]) *BinaryOp[L0, L1, D] {
	return newBinaryOp(XorOp, s1, s2)
}

// AndNot returns a virtual set of every index present in s1 but absent from
// s2.
func AndNot[L0 block.Bits[L0], L1 block.Bits[L1], D block.Bits[D]](s1, s2 view.Hierarchical[L0, L1, D]) *BinaryOp[L0, L1, D] {
	return newBinaryOp(AndNotOp, s1, s2)
}

// Op reports which BitSetOp this virtual set applies.
func (b *BinaryOp[L0, L1, D]) Op() BitSetOp { return b.op }

func (b *BinaryOp[L0, L1, D]) Level0Mask() *L0 {
	v := HierarchyOp(b.op, *b.s1.Level0Mask(), *b.s2.Level0Mask())
	return &v
}

func (b *BinaryOp[L0, L1, D]) Level1Mask(i0 uint) *L1 {
	v := HierarchyOp(b.op, *b.s1.Level1Mask(i0), *b.s2.Level1Mask(i0))
	return &v
}

func (b *BinaryOp[L0, L1, D]) DataBlock(i0, i1 uint) *D {
	v := DataOp(b.op, *b.s1.DataBlock(i0, i1), *b.s2.DataBlock(i0, i1))
	return &v
}

// TrustedHierarchy reports false unless op is Or: only Or's hierarchy_op
// and data_op agree (both Or), so a combined mask bit there is set only
// where some operand genuinely has data. And's combined bit does not
// promise the operands' data actually intersects; Xor's hierarchy_op (Or,
// not Xor) can gate a sub-tree whose data cancels to zero — breaking
// A^A's idempotence if trusted; AndNot's hierarchy_op is just s1's own
// mask, unrefined by whatever s2 removed — breaking A\A's idempotence the
// same way. So only Or propagates operand trust; the other three always
// report false, regardless of s1/s2's own trust.
func (b *BinaryOp[L0, L1, D]) TrustedHierarchy() bool {
	if !b.op.propagatesTrust() {
		return false
	}
	return b.s1.TrustedHierarchy() && b.s2.TrustedHierarchy()
}
