package setop_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-faster/sparsebitset"
	"github.com/go-faster/sparsebitset/block"
	"github.com/go-faster/sparsebitset/setop"
	"github.com/go-faster/sparsebitset/view"
)

type container64 = sparsebitset.Container[block.Block64, block.Block64, block.Block64]

func newC(indices ...uint64) *container64 {
	return sparsebitset.From[block.Block64, block.Block64, block.Block64](indices)
}

func collect(t *testing.T, h view.Hierarchical[block.Block64, block.Block64, block.Block64], w0, w1, wd int) []uint64 {
	t.Helper()
	var got []uint64
	block.ForEachSetBit(*h.Level0Mask(), func(i0 uint) bool {
		l1 := h.Level1Mask(i0)
		block.ForEachSetBit(*l1, func(i1 uint) bool {
			d := h.DataBlock(i0, i1)
			block.ForEachSetBit(*d, func(id uint) bool {
				got = append(got, uint64(i0)*uint64(w1)*uint64(wd)+uint64(i1)*uint64(wd)+uint64(id))
				return true
			})
			return true
		})
		return true
	})
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	return got
}

func TestBinaryOpAnd(t *testing.T) {
	a := newC(1, 2, 3, 64, 128)
	b := newC(2, 3, 4, 128, 256)

	op := setop.And[block.Block64, block.Block64, block.Block64](a, b)
	require.Equal(t, []uint64{2, 3, 128}, collect(t, op, 64, 64, 64))
	require.False(t, op.TrustedHierarchy())
}

func TestBinaryOpOr(t *testing.T) {
	a := newC(1, 2, 3)
	b := newC(3, 4, 5)

	op := setop.Or[block.Block64, block.Block64, block.Block64](a, b)
	require.Equal(t, []uint64{1, 2, 3, 4, 5}, collect(t, op, 64, 64, 64))
	require.True(t, op.TrustedHierarchy())
}

func TestBinaryOpXor(t *testing.T) {
	a := newC(1, 2, 3)
	b := newC(3, 4, 5)

	op := setop.Xor[block.Block64, block.Block64, block.Block64](a, b)
	require.Equal(t, []uint64{1, 2, 4, 5}, collect(t, op, 64, 64, 64))
	require.False(t, op.TrustedHierarchy())
}

// TestBinaryOpXorSelfIsEmpty guards Xor's idempotence: even though its
// hierarchy_op is Or (so Level0Mask/Level1Mask stay nonempty), the data
// level must still cancel to zero.
func TestBinaryOpXorSelfIsEmpty(t *testing.T) {
	a := newC(1, 2, 3, 4096+1)
	op := setop.Xor[block.Block64, block.Block64, block.Block64](a, a)
	require.Empty(t, collect(t, op, 64, 64, 64))
	require.False(t, op.TrustedHierarchy())
}

func TestBinaryOpAndNot(t *testing.T) {
	a := newC(1, 2, 3, 64)
	b := newC(2, 3, 128)

	op := setop.AndNot[block.Block64, block.Block64, block.Block64](a, b)
	require.Equal(t, []uint64{1, 64}, collect(t, op, 64, 64, 64))
	require.False(t, op.TrustedHierarchy())
}

// TestBinaryOpAndNotSelfIsEmpty guards AndNot's idempotence: its
// hierarchy_op leaves s1's mask unrefined, so Level0Mask/Level1Mask stay
// nonempty even though every data block must cancel to zero.
func TestBinaryOpAndNotSelfIsEmpty(t *testing.T) {
	a := newC(1, 2, 3, 4096+1)
	op := setop.AndNot[block.Block64, block.Block64, block.Block64](a, a)
	require.Empty(t, collect(t, op, 64, 64, 64))
	require.False(t, op.TrustedHierarchy())
}

func TestBinaryOpComposes(t *testing.T) {
	a := newC(1, 2, 3)
	b := newC(2, 3, 4)
	c := newC(4, 5, 6)

	orAB := setop.Or[block.Block64, block.Block64, block.Block64](a, b)
	nested := setop.And[block.Block64, block.Block64, block.Block64](orAB, c)
	require.Equal(t, []uint64{4}, collect(t, nested, 64, 64, 64))
}

func TestAndNotHierarchySkipsEmptySubtree(t *testing.T) {
	// a has Level0 bit for i0=5 (index 5*4096) set, b clears the only member
	// of that sub-tree via AndNot, leaving a's hierarchy bit set over an
	// empty leaf; A AndNot B at that sub-tree must still yield nothing.
	a := newC(5*4096, 1)
	b := newC(5 * 4096)

	diff := setop.AndNot[block.Block64, block.Block64, block.Block64](a, b)
	require.Equal(t, []uint64{1}, collect(t, diff, 64, 64, 64))
}

func TestReduceOr(t *testing.T) {
	a := newC(1)
	b := newC(2)
	c := newC(3)

	operands := []view.Hierarchical[block.Block64, block.Block64, block.Block64]{a, b, c}
	r, ok := setop.NewReduce(setop.OrOp, operands)
	require.True(t, ok)
	require.Equal(t, []uint64{1, 2, 3}, collect(t, r, 64, 64, 64))
	require.True(t, r.TrustedHierarchy())
}

func TestReduceAndNeverTrusted(t *testing.T) {
	a := newC(1, 2)
	b := newC(1, 2)

	operands := []view.Hierarchical[block.Block64, block.Block64, block.Block64]{a, b}
	r, ok := setop.NewReduce(setop.AndOp, operands)
	require.True(t, ok)
	require.Equal(t, []uint64{1, 2}, collect(t, r, 64, 64, 64))
	require.False(t, r.TrustedHierarchy())
}

func TestReduceEmptyOperandsNotOk(t *testing.T) {
	_, ok := setop.NewReduce[block.Block64, block.Block64, block.Block64](setop.OrOp, nil)
	require.False(t, ok)
}
