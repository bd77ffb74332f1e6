package setop

import (
	"github.com/go-faster/sparsebitset/block"
	"github.com/go-faster/sparsebitset/view"
)

// Reduce is a lazy N-ary virtual set: every view.Hierarchical accessor
// folds the same BitSetOp across every operand's answer for that query.
// Like BinaryOp, it recomputes the fold on every call rather than caching
// anything, so it stays correct if an underlying operand (a live Container)
// mutates between queries.
type Reduce[L0 block.Bits[L0], L1 block.Bits[L1], D block.Bits[D]] struct {
	op       BitSetOp
	operands []view.Hierarchical[L0, L1, D]
}

// NewReduce folds op across operands, left to right, and reports ok=false
// if operands is empty — there is no identity element to fall back on, so
// an empty reduction has no result rather than a trivial one.
func NewReduce[L0 block.Bits[L0], L1 block.Bits[L1], D block.Bits[D]](op BitSetOp, operands []view.Hierarchical[L0, L1, D]) (*Reduce[L0, L1, D], bool) {
	if len(operands) == 0 {
		return nil, false
	}
	return &Reduce[L0, L1, D]{op: op, operands: operands}, true
}

func (r *Reduce[L0, L1, D]) Op() BitSetOp { return r.op }

func (r *Reduce[L0, L1, D]) Level0Mask() *L0 {
	acc := *r.operands[0].Level0Mask()
	for _, s := range r.operands[1:] {
		acc = HierarchyOp(r.op, acc, *s.Level0Mask())
	}
	return &acc
}

func (r *Reduce[L0, L1, D]) Level1Mask(i0 uint) *L1 {
	acc := *r.operands[0].Level1Mask(i0)
	for _, s := range r.operands[1:] {
		acc = HierarchyOp(r.op, acc, *s.Level1Mask(i0))
	}
	return &acc
}

func (r *Reduce[L0, L1, D]) DataBlock(i0, i1 uint) *D {
	acc := *r.operands[0].DataBlock(i0, i1)
	for _, s := range r.operands[1:] {
		acc = DataOp(r.op, acc, *s.DataBlock(i0, i1))
	}
	return &acc
}

// TrustedHierarchy mirrors BinaryOp.TrustedHierarchy: only Or propagates
// operand trust; And, Xor, and AndNot always report false.
func (r *Reduce[L0, L1, D]) TrustedHierarchy() bool {
	if !r.op.propagatesTrust() {
		return false
	}
	for _, s := range r.operands {
		if !s.TrustedHierarchy() {
			return false
		}
	}
	return true
}
