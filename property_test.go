package sparsebitset_test

import (
	"math/rand"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/require"

	"github.com/go-faster/sparsebitset/block"
	"github.com/go-faster/sparsebitset/iter"
	"github.com/go-faster/sparsebitset/setop"
	"github.com/go-faster/sparsebitset/view"
)

// opRNG drives a seeded sequence of insert/remove/lookup operations, the
// same seeded-rand.Rand idiom the surrounding tests use for reproducible
// randomized coverage.
type opRNG struct {
	rand *rand.Rand
	seed int64
}

func newOpRNG(seed int64) *opRNG {
	return &opRNG{rand: rand.New(rand.NewSource(seed)), seed: seed} // nolint gosec
}

func (r *opRNG) index(max uint64) uint64 {
	return uint64(r.rand.Int63n(int64(max)))
}

// randomOps runs n random insert/remove operations against both c and ref,
// and against an independent RoaringBitmap oracle truncated to 32 bits.
func randomOps(t *testing.T, r *opRNG, c *container64, ref map[uint64]struct{}, oracle *roaring.Bitmap, n int) {
	t.Helper()
	max := c.MaxIndex()
	for i := 0; i < n; i++ {
		x := r.index(max)
		switch r.rand.Intn(4) {
		case 0, 1:
			c.Insert(x)
			ref[x] = struct{}{}
			oracle.Add(uint32(x))
		case 2:
			c.Remove(x)
			delete(ref, x)
			oracle.Remove(uint32(x))
		case 3:
			_, inRef := ref[x]
			require.Equal(t, inRef, c.Contains(x))
			require.Equal(t, inRef, oracle.Contains(uint32(x)))
		}
	}
}

func TestPropertyRandomOpsAgreeWithReferenceAndOracle(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42} {
		r := newOpRNG(seed)
		c := newContainer()
		ref := make(map[uint64]struct{})
		oracle := roaring.New()

		randomOps(t, r, c, ref, oracle, 3000)

		require.Equal(t, len(ref), c.Len())
		for x := range ref {
			require.True(t, c.Contains(x))
			require.True(t, oracle.Contains(uint32(x)))
		}

		var want []uint64
		c.Iter().ForEach(func(x uint64) { want = append(want, x) })
		require.Equal(t, len(ref), len(want))
		for _, x := range want {
			_, ok := ref[x]
			require.True(t, ok)
		}
	}
}

// TestPropertyIntersectionAgreesWithOracle cross-checks setop.And against
// RoaringBitmap's And over the same randomly built pair of sets.
func TestPropertyIntersectionAgreesWithOracle(t *testing.T) {
	r := newOpRNG(7)
	a, b := newContainer(), newContainer()
	oracleA, oracleB := roaring.New(), roaring.New()

	for i := 0; i < 2000; i++ {
		x := r.index(a.MaxIndex())
		if r.rand.Intn(2) == 0 {
			a.Insert(x)
			oracleA.Add(uint32(x))
		} else {
			b.Insert(x)
			oracleB.Add(uint32(x))
		}
		if r.rand.Intn(5) == 0 {
			// occasional overlap to exercise non-trivial intersections
			a.Insert(x)
			b.Insert(x)
			oracleA.Add(uint32(x))
			oracleB.Add(uint32(x))
		}
	}

	wantOracle := roaring.And(oracleA, oracleB)

	and := setop.And[block.Block64, block.Block64, block.Block64](a, b)
	var got []uint64
	iterateHierarchical(and, func(x uint64) { got = append(got, x) })

	require.Equal(t, int(wantOracle.GetCardinality()), len(got))
	for _, x := range got {
		require.True(t, wantOracle.Contains(uint32(x)))
	}
}

// iterateHierarchical walks any view.Hierarchical operand — a Container or
// a setop virtual set alike — via its BlockIter.
func iterateHierarchical(src view.Hierarchical[block.Block64, block.Block64, block.Block64], visit func(x uint64)) {
	bi := iter.NewBlockIter[block.Block64, block.Block64, block.Block64](src)
	bi.Traverse(func(i0, i1 uint, data block.Block64) iter.ControlFlow {
		block.ForEachSetBit(data, func(id uint) bool {
			visit(uint64(i0)*4096 + uint64(i1)*64 + uint64(id))
			return true
		})
		return iter.Continue
	})
}
