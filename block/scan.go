package block

// ForEachSetBit calls fn once for every set bit of b, in ascending order,
// stopping early if fn returns false. It walks the block in O(popcount)
// steps via TrailingZeros instead of O(Width()) via TestBit, the same
// trailing-zero bit-scan technique the reference repo's segmented bitsets
// use for their own "skip straight to the next set bit" paths.
func ForEachSetBit[T Bits[T]](b T, fn func(i uint) bool) {
	for !b.IsZero() {
		i := uint(b.TrailingZeros())
		if !fn(i) {
			return
		}
		b = b.ClearBit(i)
	}
}
