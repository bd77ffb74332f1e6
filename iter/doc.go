// Package iter drives any view.Hierarchical operand — a Container or a
// setop virtual set — through ascending (i0, i1) block order or, layered on
// top, ascending global index order.
//
// The block iterator fetches each operand's Level1 mask once per top-level
// slot instead of once per data step; this is the same "skip whole
// sub-trees behind a coarser summary" idea as a two-level active-block
// bitmap index, generalized here to an arbitrary operator tree instead of a
// single concrete bitmap.
package iter
