package iter

import (
	"github.com/go-faster/sparsebitset/config"
)

// fixedCacheCap bounds the array-backed fixedCache. Chosen generously above
// any realistic Reduce operand count while staying array-sized rather than
// slice-sized.
//
// Go has no const generics, so FixedCache[N] from the original design (a
// stack-resident array sized by a caller-chosen N) is realized as a single
// fixed capacity shared by every caller. Exceeding it is not a fault: it
// falls back to the same backing a DynamicCache uses, rather than panicking
// or invoking undefined behavior, since Go has no unsafe escape hatch here
// worth taking for it.
const fixedCacheCap = 8

// l1Cache holds, for the current i0, each operand's own resolved Level1
// mask — fetched once per i0 rather than once per Data-level step, so the
// N-ary reduce iterator can test an operand's own bit at i1 before deciding
// whether it needs that operand's DataBlock at all.
type l1Cache[L1 any] interface {
	refresh(slot int, v L1)
	at(slot int) L1
}

type noCache[L1 any] struct {
	slots []L1
}

func newNoCache[L1 any](n int) *noCache[L1] {
	return &noCache[L1]{slots: make([]L1, n)}
}

func (c *noCache[L1]) refresh(slot int, v L1) { c.slots[slot] = v }
func (c *noCache[L1]) at(slot int) L1         { return c.slots[slot] }

type fixedCache[L1 any] struct {
	slots    [fixedCacheCap]L1
	overflow []L1 // only allocated if n > fixedCacheCap
}

func newFixedCache[L1 any](n int) *fixedCache[L1] {
	c := &fixedCache[L1]{}
	if n > fixedCacheCap {
		c.overflow = make([]L1, n-fixedCacheCap)
	}
	return c
}

func (c *fixedCache[L1]) refresh(slot int, v L1) {
	if slot < fixedCacheCap {
		c.slots[slot] = v
		return
	}
	c.overflow[slot-fixedCacheCap] = v
}

func (c *fixedCache[L1]) at(slot int) L1 {
	if slot < fixedCacheCap {
		return c.slots[slot]
	}
	return c.overflow[slot-fixedCacheCap]
}

type dynamicCache[L1 any] struct {
	slots []L1
}

func newDynamicCache[L1 any](n int) *dynamicCache[L1] {
	return &dynamicCache[L1]{slots: make([]L1, n)}
}

func (c *dynamicCache[L1]) refresh(slot int, v L1) { c.slots[slot] = v }
func (c *dynamicCache[L1]) at(slot int) L1         { return c.slots[slot] }

// newCache picks the l1Cache implementation for policy. NoCache still needs
// somewhere to put the operand's mask for the duration of one i0's data
// scan — "no cache" means it is refetched every i0, not that it is never
// stored at all — so it shares fixedCache/dynamicCache's storage shape with
// the smallest backing that fits.
func newCache[L1 any](policy config.CachePolicy, n int) l1Cache[L1] {
	switch policy {
	case config.FixedCache:
		return newFixedCache[L1](n)
	case config.DynamicCache:
		return newDynamicCache[L1](n)
	default:
		return newNoCache[L1](n)
	}
}
