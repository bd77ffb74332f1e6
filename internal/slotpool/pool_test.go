package slotpool

import "testing"

func TestPool_AllocFreeReuse(t *testing.T) {
	p := New[uint64]()

	if p.Len() != 1 {
		t.Fatalf("expected fresh pool to hold only the sentinel, got len %d", p.Len())
	}

	a := p.Alloc()
	b := p.Alloc()
	if a == Null || b == Null || a == b {
		t.Fatalf("expected distinct non-sentinel slots, got %d %d", a, b)
	}

	*p.Get(a) = 42
	p.Free(a)

	if got := *p.Get(a); got != 0 {
		t.Errorf("expected freed slot body to be zeroed, got %d", got)
	}

	reused := p.Alloc()
	if reused != a {
		t.Errorf("expected Alloc to reuse freed slot %d, got %d", a, reused)
	}
}

func TestPool_FreeListWellFormed(t *testing.T) {
	p := New[uint64]()

	ids := make([]uint32, 5)
	for i := range ids {
		ids[i] = p.Alloc()
	}
	for _, id := range ids {
		p.Free(id)
	}

	if got := p.FreeListLen(); got != len(ids) {
		t.Errorf("expected free list length %d, got %d", len(ids), got)
	}

	seen := map[uint32]bool{}
	for i := 0; i < len(ids); i++ {
		id := p.Alloc()
		if seen[id] {
			t.Fatalf("free list yielded duplicate slot %d", id)
		}
		seen[id] = true
	}
	if got := p.FreeListLen(); got != 0 {
		t.Errorf("expected free list to be drained, got length %d", got)
	}
}

func TestPool_Clear(t *testing.T) {
	p := New[uint64]()
	for i := 0; i < 10; i++ {
		id := p.Alloc()
		*p.Get(id) = uint64(i + 1)
	}

	p.Clear()

	if got := p.FreeListLen(); got != 10 {
		t.Errorf("expected 10 free slots after Clear, got %d", got)
	}

	for i := 1; i < p.Len(); i++ {
		if got := *p.Get(uint32(i)); got != 0 {
			t.Errorf("expected slot %d body zeroed after Clear, got %d", i, got)
		}
	}

	// Reinserting the same count of elements should not grow pool storage.
	lenBefore := p.Len()
	for i := 0; i < 10; i++ {
		p.Alloc()
	}
	if p.Len() != lenBefore {
		t.Errorf("expected slot reuse after Clear, pool grew from %d to %d", lenBefore, p.Len())
	}
}

func TestPool_SentinelImmutable(t *testing.T) {
	p := New[uint64]()
	if got := *p.Get(p.Sentinel()); got != 0 {
		t.Errorf("expected sentinel body zero, got %d", got)
	}
}
