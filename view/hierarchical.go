// Package view defines the hierarchical view capability: the minimal set of
// accessors any operand — a concrete container, a virtual set, or a custom
// type adapted through view/implement — must expose to be usable as an
// iteration or algebra operand.
package view

// Hierarchical is the capability every bitset operand publishes. L0 and L1
// are the mask block types at the top two tree levels; D is the data block
// type at the leaves.
//
// Level1Mask and DataBlock are queried on demand by the caching iterator and
// the virtual-set algebra; implementations must not assume they are called
// in any particular order beyond "Level0Mask before the Level1Mask it
// gates, Level1Mask before the DataBlock it gates" — which is exactly the
// order the hierarchy itself enforces.
type Hierarchical[L0, L1, D any] interface {
	// Level0Mask returns the single top-level presence mask.
	Level0Mask() *L0
	// Level1Mask returns the Level1 presence mask for top-level slot i0.
	// May also be called for an i0 whose own Level0Mask bit is clear (a
	// union or difference queries every operand at each combined i0); the
	// result must then be an empty mask.
	Level1Mask(i0 uint) *L1
	// DataBlock returns the leaf block at (i0, i1).
	DataBlock(i0, i1 uint) *D
	// TrustedHierarchy reports whether every set mask bit is guaranteed to
	// gate a genuinely non-empty sub-tree. Consumers — notably structural
	// equality and the caching iterator's short-circuit skip — must not
	// assume a mask bit implies non-empty data unless this is true.
	TrustedHierarchy() bool
}
