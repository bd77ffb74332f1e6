// Package implement is the opt-in "custom bitset hook": it lets an external
// type publish a view.Hierarchical without implementing the interface's
// methods directly, by supplying plain accessor functions instead. It is
// kept out of the main view package deliberately, the same way the
// reference spec keeps this capability behind a separate "impl" surface so
// it never shows up in default autocomplete for ordinary callers.
package implement

import "github.com/go-faster/sparsebitset/view"

// Adapter turns four accessor functions into a view.Hierarchical[L0, L1, D].
// Use this to make a foreign type — one you cannot add methods to, or one
// whose natural representation isn't a *Container at all — usable as an
// operand of the algebra in setop and as a target of the iterators in iter.
type Adapter[L0, L1, D any] struct {
	Level0MaskFunc      func() *L0
	Level1MaskFunc      func(i0 uint) *L1
	DataBlockFunc       func(i0, i1 uint) *D
	TrustedHierarchyVal bool
}

var _ view.Hierarchical[struct{}, struct{}, struct{}] = Adapter[struct{}, struct{}, struct{}]{}

func (a Adapter[L0, L1, D]) Level0Mask() *L0 {
	return a.Level0MaskFunc()
}

func (a Adapter[L0, L1, D]) Level1Mask(i0 uint) *L1 {
	return a.Level1MaskFunc(i0)
}

func (a Adapter[L0, L1, D]) DataBlock(i0, i1 uint) *D {
	return a.DataBlockFunc(i0, i1)
}

func (a Adapter[L0, L1, D]) TrustedHierarchy() bool {
	return a.TrustedHierarchyVal
}
