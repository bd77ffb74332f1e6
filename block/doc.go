// Package block defines the bitblock capability used by every level of the
// hierarchical bitset: a fixed-width bitmask with population count, bit scan,
// and bitwise combine operations.
//
// Bits[T] is a self-referential ("F-bounded") generic constraint: T
// implements Bits[T] in terms of itself, which lets generic code parameterized
// as [T Bits[T]] call And/Or/Xor/... without ever branching on the concrete
// width. Concrete block types are small comparable arrays, so every combine
// operation returns a new value by copy rather than allocating on the heap.
//
// Three widths are first-class: Block64, Block128, and Block256. Block128 and
// Block256 gain a CPU-capability-gated combine path selected once at package
// init time; both paths are plain Go and produce identical results, so callers
// never need to know which one ran.
package block
