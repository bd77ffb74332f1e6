package setop

import "github.com/go-faster/sparsebitset/block"

type kind uint8

const (
	kindAnd kind = iota
	kindOr
	kindXor
	kindAndNot
)

// BitSetOp names a binary set operation and the two properties of it that
// the hierarchy-walking code needs to reason about correctness and
// short-circuiting, independent of which block width it is applied to.
type BitSetOp interface {
	// HierarchyOperandsContainResult reports whether a hierarchy mask bit
	// clear on either operand proves the combined result is absent there,
	// without needing to evaluate the other operand. Only intersection has
	// this property: for And, a 0 bit on either side forces a 0 result; for
	// Or/Xor/AndNot, the result can still be nonzero off either bit alone.
	HierarchyOperandsContainResult() bool
	// EmptyHierarchyImpliesEmptyResult reports whether an operand with an
	// entirely zero Level0 mask proves the combined result is empty too.
	// True for And (nothing to intersect with) and AndNot when the empty
	// side is the left operand (nothing to subtract from); false for Or and
	// Xor, where an empty operand just leaves the other side unchanged.
	EmptyHierarchyImpliesEmptyResult() bool
	// propagatesTrust reports whether this op's composed hierarchy is
	// trusted when both operands are. Only Or has this property: its
	// hierarchy_op (Or) and data_op (Or) agree, so a combined mask bit is
	// set only where some operand genuinely has data there. And's combined
	// mask bit does not promise the operands' data actually intersects;
	// Xor's hierarchy_op (Or, not Xor) can gate a sub-tree where the data
	// cancels to zero; AndNot's hierarchy_op is just the left operand's own
	// mask, unrefined by anything the right operand removed. So And, Xor,
	// and AndNot all report false unconditionally.
	propagatesTrust() bool

	name() string
	kind() kind
}

type opAnd struct{}

func (opAnd) HierarchyOperandsContainResult() bool   { return true }
func (opAnd) EmptyHierarchyImpliesEmptyResult() bool { return true }
func (opAnd) propagatesTrust() bool                  { return false }
func (opAnd) name() string                           { return "And" }
func (opAnd) kind() kind                             { return kindAnd }

type opOr struct{}

func (opOr) HierarchyOperandsContainResult() bool   { return false }
func (opOr) EmptyHierarchyImpliesEmptyResult() bool { return false }
func (opOr) propagatesTrust() bool                  { return true }
func (opOr) name() string                           { return "Or" }
func (opOr) kind() kind                             { return kindOr }

// opXor's hierarchy_op is Or, not Xor: the hierarchy level cannot cull on
// symmetric difference, since a set bit on both sides can still cancel out
// at the data level, so the hierarchy mask must stay a superset (the union)
// of where a difference could exist.
type opXor struct{}

func (opXor) HierarchyOperandsContainResult() bool   { return false }
func (opXor) EmptyHierarchyImpliesEmptyResult() bool { return false }
func (opXor) propagatesTrust() bool                  { return false }
func (opXor) name() string                           { return "Xor" }
func (opXor) kind() kind                             { return kindXor }

// opAndNot's hierarchy_op returns the left operand's mask unchanged: the
// right operand can only remove members, never introduce a hierarchy bit
// the left side didn't already have, so traversal only needs to walk the
// left operand's hierarchy.
type opAndNot struct{}

func (opAndNot) HierarchyOperandsContainResult() bool   { return false }
func (opAndNot) EmptyHierarchyImpliesEmptyResult() bool { return true }
func (opAndNot) propagatesTrust() bool                  { return false }
func (opAndNot) name() string                           { return "AndNot" }
func (opAndNot) kind() kind                             { return kindAndNot }

// AndOp, OrOp, XorOp, AndNotOp are the four BitSetOp values. They carry no
// state and can be shared across any number of operations. The And, Or,
// Xor, AndNot constructor functions below build a BinaryOp from one of
// these plus two operands.
var (
	AndOp    BitSetOp = opAnd{}
	OrOp     BitSetOp = opOr{}
	XorOp    BitSetOp = opXor{}
	AndNotOp BitSetOp = opAndNot{}
)

// HierarchyOp combines two hierarchy-level (Level0 or Level1) mask blocks
// per op.
func HierarchyOp[T block.Bits[T]](op BitSetOp, left, right T) T {
	switch op.kind() {
	case kindAnd:
		return left.And(right)
	case kindAndNot:
		return left
	default: // Or, Xor
		return left.Or(right)
	}
}

// DataOp combines two leaf data blocks per op.
func DataOp[T block.Bits[T]](op BitSetOp, left, right T) T {
	switch op.kind() {
	case kindAnd:
		return left.And(right)
	case kindOr:
		return left.Or(right)
	case kindXor:
		return left.Xor(right)
	case kindAndNot:
		return left.AndNot(right)
	default:
		panic("setop: unreachable op kind")
	}
}
