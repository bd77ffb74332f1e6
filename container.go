package sparsebitset

import (
	"github.com/go-faster/sparsebitset/block"
	"github.com/go-faster/sparsebitset/config"
	"github.com/go-faster/sparsebitset/internal/slotpool"
	"github.com/go-faster/sparsebitset/iter"
	"github.com/go-faster/sparsebitset/view"
)

// Container is the tri-level hierarchical bitset. L0 selects the Level0
// mask block type, L1 the Level1 mask block type, D the leaf data block
// type; each may be a different width.
//
// A Container is owned by a single writer at a time. Concurrent reads of an
// unchanging Container are safe; nothing here takes a lock.
type Container[L0 block.Bits[L0], L1 block.Bits[L1], D block.Bits[D]] struct {
	w0, w1, wd int

	level0    L0
	level1Idx []uint32 // length w0; Level1 slot index per i0, 0 = sentinel

	level1Pool *slotpool.Pool[L1]
	level1Data []uint32 // row-major, row = level1 slot index, length w1 per row

	dataPool *slotpool.Pool[D]

	logger       *Logger
	capacityHint int
}

// New creates an empty Container. The Level0 mask is zeroed and both pools
// start pre-populated with only the empty sentinel slot.
func New[L0 block.Bits[L0], L1 block.Bits[L1], D block.Bits[D]](opts ...Option[L0, L1, D]) *Container[L0, L1, D] {
	var zeroL0 L0
	var zeroL1 L1
	var zeroD D

	c := &Container[L0, L1, D]{
		w0:         zeroL0.Width(),
		w1:         zeroL1.Width(),
		wd:         zeroD.Width(),
		level1Idx:  make([]uint32, zeroL0.Width()),
		level1Pool: slotpool.New[L1](),
		// One row pre-allocated for the sentinel Level1 slot (index 0), so
		// DataBlock on an i0 with no Level1 slot allocated yet — the
		// sentinel path every never-populated or fully-cleared i0 takes —
		// indexes a real row instead of a nil slice. Every entry defaults
		// to slotpool.Null, which resolves to dataPool's own sentinel.
		level1Data: make([]uint32, zeroL1.Width()),
		dataPool:   slotpool.New[D](),
		logger:     NoopLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.capacityHint > 0 {
		c.level1Pool.Reserve(c.capacityHint + 1)
		c.dataPool.Reserve(c.capacityHint + 1)
	}

	return c
}

// From builds a Container from a sequence of indices.
func From[L0 block.Bits[L0], L1 block.Bits[L1], D block.Bits[D]](indices []uint64, opts ...Option[L0, L1, D]) *Container[L0, L1, D] {
	c := New[L0, L1, D](opts...)
	for _, x := range indices {
		c.Insert(x)
	}
	return c
}

// MaxIndex returns the largest index this Container can represent.
func (c *Container[L0, L1, D]) MaxIndex() uint64 {
	return config.MaxIndex(c.w0, c.w1, c.wd)
}

func (c *Container[L0, L1, D]) checkRange(x uint64) {
	if max := c.MaxIndex(); x > max {
		c.logger.Warn("index out of range", "index", x, "max", max)
		panic(&IndexOutOfRangeError{Index: x, Max: max})
	}
}

func (c *Container[L0, L1, D]) ensureLevel1DataRow(slotIdx uint32) {
	need := (int(slotIdx) + 1) * c.w1
	if len(c.level1Data) >= need {
		return
	}
	c.logger.Debug("level1 data row storage grew", "slot", slotIdx, "len", need)
	grown := make([]uint32, need)
	copy(grown, c.level1Data)
	c.level1Data = grown
}

// Insert adds x to the set and reports whether it was previously absent.
//
// Insert panics with *IndexOutOfRangeError if x exceeds MaxIndex(); that is
// a precondition violation, not a runtime error.
func (c *Container[L0, L1, D]) Insert(x uint64) bool {
	c.checkRange(x)
	i0, i1, id := config.Decompose(x, c.w1, c.wd)

	slotIdx := c.level1Idx[i0]
	if slotIdx == slotpool.Null {
		beforeLen := c.level1Pool.Len()
		slotIdx = c.level1Pool.Alloc()
		if grew := c.level1Pool.Len() - beforeLen; grew > 0 {
			c.logger.Debug("level1 pool grew", "len", c.level1Pool.Len())
		}
		c.ensureLevel1DataRow(slotIdx)
		c.level1Idx[i0] = slotIdx
		c.level0 = c.level0.SetBit(i0)
	}

	level1 := c.level1Pool.Get(slotIdx)
	row := uint64(slotIdx)*uint64(c.w1) + uint64(i1)

	dataSlotIdx := c.level1Data[row]
	if dataSlotIdx == slotpool.Null {
		beforeLen := c.dataPool.Len()
		dataSlotIdx = c.dataPool.Alloc()
		if grew := c.dataPool.Len() - beforeLen; grew > 0 {
			c.logger.Debug("data pool grew", "len", c.dataPool.Len())
		}
		c.level1Data[row] = dataSlotIdx
		*level1 = (*level1).SetBit(i1)
	}

	data := c.dataPool.Get(dataSlotIdx)
	wasSet := (*data).TestBit(id)
	*data = (*data).SetBit(id)
	return !wasSet
}

// Contains reports whether x is a member of the set.
func (c *Container[L0, L1, D]) Contains(x uint64) bool {
	if x > c.MaxIndex() {
		return false
	}
	i0, i1, id := config.Decompose(x, c.w1, c.wd)

	if !c.level0.TestBit(i0) {
		return false
	}
	slotIdx := c.level1Idx[i0]
	level1 := c.level1Pool.Get(slotIdx)
	if !(*level1).TestBit(i1) {
		return false
	}
	row := uint64(slotIdx)*uint64(c.w1) + uint64(i1)
	dataSlotIdx := c.level1Data[row]
	return (*c.dataPool.Get(dataSlotIdx)).TestBit(id)
}

// Remove deletes x from the set and reports whether it was present.
func (c *Container[L0, L1, D]) Remove(x uint64) bool {
	if x > c.MaxIndex() {
		return false
	}
	i0, i1, id := config.Decompose(x, c.w1, c.wd)

	if !c.level0.TestBit(i0) {
		return false
	}
	slotIdx := c.level1Idx[i0]
	level1 := c.level1Pool.Get(slotIdx)
	if !(*level1).TestBit(i1) {
		return false
	}
	row := uint64(slotIdx)*uint64(c.w1) + uint64(i1)
	dataSlotIdx := c.level1Data[row]
	data := c.dataPool.Get(dataSlotIdx)
	if !(*data).TestBit(id) {
		return false
	}

	*data = (*data).ClearBit(id)
	if (*data).IsZero() {
		c.dataPool.Free(dataSlotIdx)
		c.level1Data[row] = slotpool.Null
		*level1 = (*level1).ClearBit(i1)

		if (*level1).IsZero() {
			c.level1Pool.Free(slotIdx)
			c.level1Idx[i0] = slotpool.Null
			c.level0 = c.level0.ClearBit(i0)
		}
	}
	return true
}

// IsEmpty reports whether the set has no members.
func (c *Container[L0, L1, D]) IsEmpty() bool {
	return c.level0.IsZero()
}

// Len counts the set's members. This walks every populated data block, so
// it is O(#data blocks), not O(1).
func (c *Container[L0, L1, D]) Len() int {
	total := 0
	block.ForEachSetBit(c.level0, func(i0 uint) bool {
		slotIdx := c.level1Idx[i0]
		level1 := c.level1Pool.Get(slotIdx)
		block.ForEachSetBit(*level1, func(i1 uint) bool {
			row := uint64(slotIdx)*uint64(c.w1) + uint64(i1)
			dataSlotIdx := c.level1Data[row]
			total += (*c.dataPool.Get(dataSlotIdx)).CountOnes()
			return true
		})
		return true
	})
	return total
}

// Clear returns every allocated Level1 and data slot to its pool's free
// list. Pool storage is not released.
func (c *Container[L0, L1, D]) Clear() {
	var zero L0
	c.level0 = zero
	for i := range c.level1Idx {
		c.level1Idx[i] = slotpool.Null
	}
	for i := range c.level1Data {
		c.level1Data[i] = slotpool.Null
	}
	c.level1Pool.Clear()
	c.dataPool.Clear()
}

// Level0Mask implements view.Hierarchical.
func (c *Container[L0, L1, D]) Level0Mask() *L0 {
	return &c.level0
}

// Level1Mask implements view.Hierarchical. i0 must have its Level0Mask bit
// set; otherwise the returned pointer addresses the sentinel slot.
func (c *Container[L0, L1, D]) Level1Mask(i0 uint) *L1 {
	return c.level1Pool.Get(c.level1Idx[i0])
}

// DataBlock implements view.Hierarchical. (i0, i1) must have their Level0
// and Level1Mask bits set; otherwise the returned pointer addresses the
// sentinel slot.
func (c *Container[L0, L1, D]) DataBlock(i0, i1 uint) *D {
	slotIdx := c.level1Idx[i0]
	row := uint64(slotIdx)*uint64(c.w1) + uint64(i1)
	return c.dataPool.Get(c.level1Data[row])
}

// TrustedHierarchy implements view.Hierarchical. A concrete Container's
// hierarchy masks are always exact.
func (c *Container[L0, L1, D]) TrustedHierarchy() bool {
	return true
}

// BlockIter returns a DataBlock iterator over the container in ascending
// (i0, i1) order.
func (c *Container[L0, L1, D]) BlockIter() *iter.BlockIter[L0, L1, D] {
	return iter.NewBlockIter[L0, L1, D](c)
}

// Iter returns an index iterator over the container in ascending order.
func (c *Container[L0, L1, D]) Iter() *iter.IndexIter[L0, L1, D] {
	return iter.NewIndexIter[L0, L1, D](c, c.w1, c.wd)
}

// Equal reports whether c and other contain the same indices. other may be
// another Container or any setop virtual set of matching block widths.
func (c *Container[L0, L1, D]) Equal(other view.Hierarchical[L0, L1, D]) bool {
	return iter.Equal[L0, L1, D](c, other)
}
