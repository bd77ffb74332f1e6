// Package sparsebitset implements a hierarchical sparse bitset: an ordered
// set of non-negative integers laid out as a fixed-depth tree of bitblocks
// instead of a flat bitmap.
//
// A Container[L0, L1, D] owns a single Level0 presence mask, a pool of
// Level1 presence masks, and a pool of leaf data blocks. Memory use is
// proportional to the number of populated blocks, not to the largest
// inserted index, and every level of the tree is itself a bitblock, so
// population counts and bit scans at every level reuse the same hardware
// word operations.
//
// The three type parameters select the bitblock width at each level — see
// package block for the available widths. Package setop builds lazy,
// allocation-free binary and n-ary set operations over any number of
// containers (or other operation results); package iter drives the
// resulting operand tree with a caching, cursor-resumable iterator.
package sparsebitset
