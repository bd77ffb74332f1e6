package iter

import (
	"github.com/go-faster/sparsebitset/block"
	"github.com/go-faster/sparsebitset/view"
)

// Equal reports whether a and b contain the same indices.
//
// Hierarchy masks can only over-report presence, never under-report it: a
// clear mask bit always means a genuinely empty sub-tree, but a set bit
// might gate one that is, after all, empty (an untrusted operand). So a
// mask mismatch only proves inequality when both operands are trusted;
// otherwise Equal must still descend and compare the actual content, which
// is always exact regardless of trust.
func Equal[L0 block.Bits[L0], L1 block.Bits[L1], D block.Bits[D]](a, b view.Hierarchical[L0, L1, D]) bool {
	trusted := a.TrustedHierarchy() && b.TrustedHierarchy()

	aL0, bL0 := *a.Level0Mask(), *b.Level0Mask()
	if trusted && aL0 != bL0 {
		return false
	}

	equal := true
	combined0 := aL0.Or(bL0)
	block.ForEachSetBit(combined0, func(i0 uint) bool {
		aSet, bSet := aL0.TestBit(i0), bL0.TestBit(i0)
		if trusted && aSet != bSet {
			equal = false
			return false
		}

		var aL1, bL1 L1
		if aSet {
			aL1 = *a.Level1Mask(i0)
		}
		if bSet {
			bL1 = *b.Level1Mask(i0)
		}
		if trusted && aL1 != bL1 {
			equal = false
			return false
		}

		combined1 := aL1.Or(bL1)
		block.ForEachSetBit(combined1, func(i1 uint) bool {
			var aD, bD D
			if aL1.TestBit(i1) {
				aD = *a.DataBlock(i0, i1)
			}
			if bL1.TestBit(i1) {
				bD = *b.DataBlock(i0, i1)
			}
			if aD != bD {
				equal = false
				return false
			}
			return true
		})
		return equal
	})
	return equal
}
