// Package slotpool provides a single-writer arena of fixed-size slots with
// an intrusive free list.
//
// Unlike the side-vector free list the reference repo's index/hnsw package
// keeps (a growing []uint64 of released ids that never shrinks), a released
// slot here stores its own "next free" pointer inside its own bookkeeping
// word. Clearing a fully populated pool costs zero bytes beyond the pool's
// own storage, at the price of zeroing the slot body on release — a price
// already paid for a second reason: a stale parent index that still points
// at a released slot must read back as empty, and zero is empty.
//
// Index 0 is reserved as the empty sentinel: permanently zero, never
// allocated, never freed, and the value every parent position holds while
// its own presence bit is clear.
package slotpool
