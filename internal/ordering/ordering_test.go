package ordering_test

import (
	"testing"

	"cardboard/internal/ordering"

	"github.com/stretchr/testify/assert"
)

func TestClampIndex(t *testing.T) {
	assert.Equal(t, 0, ordering.ClampIndex(-5, 3))
	assert.Equal(t, 0, ordering.ClampIndex(0, 3))
	assert.Equal(t, 2, ordering.ClampIndex(2, 3))
	assert.Equal(t, 3, ordering.ClampIndex(3, 3))
	assert.Equal(t, 3, ordering.ClampIndex(99, 3))
	assert.Equal(t, 0, ordering.ClampIndex(7, 0))
}

func TestInsertAt_EveryValidIndex(t *testing.T) {
	seq := []string{"a", "b", "c"}

	for i := 0; i <= len(seq); i++ {
		got := ordering.InsertAt(seq, "x", i)
		assert.Len(t, got, len(seq)+1)
		assert.Equal(t, "x", got[i])
	}

	// Input must stay untouched
	assert.Equal(t, []string{"a", "b", "c"}, seq)
}

func TestInsertAt_ClampsOutOfRange(t *testing.T) {
	seq := []int{1, 2}

	assert.Equal(t, []int{9, 1, 2}, ordering.InsertAt(seq, 9, -3))
	assert.Equal(t, []int{1, 2, 9}, ordering.InsertAt(seq, 9, 10))
}

func TestInsertAt_EmptySequence(t *testing.T) {
	got := ordering.InsertAt(nil, "only", 5)
	assert.Equal(t, []string{"only"}, got)
}

func TestReorder(t *testing.T) {
	seq := []string{"a", "b", "c"}

	assert.Equal(t, []string{"b", "a", "c"}, ordering.Reorder(seq, 1, 0))
	assert.Equal(t, []string{"b", "c", "a"}, ordering.Reorder(seq, 0, 2))
	assert.Equal(t, []string{"a", "b", "c"}, seq)
}

func TestReorder_SameIndexIsIdempotent(t *testing.T) {
	seq := []int{10, 20, 30, 40}

	for i := range seq {
		assert.Equal(t, seq, ordering.Reorder(seq, i, i))
	}
}

func TestReorder_ClampsTarget(t *testing.T) {
	seq := []string{"a", "b", "c"}

	assert.Equal(t, []string{"b", "a", "c"}, ordering.Reorder(seq, 1, -7))
	assert.Equal(t, []string{"a", "c", "b"}, ordering.Reorder(seq, 1, 99))
}

func TestReorder_FromOutOfRangeIsNoOp(t *testing.T) {
	seq := []string{"a", "b"}

	assert.Equal(t, seq, ordering.Reorder(seq, -1, 0))
	assert.Equal(t, seq, ordering.Reorder(seq, 2, 0))
}

func TestRemove(t *testing.T) {
	seq := []string{"a", "b", "c"}

	got, ok := ordering.Remove(seq, "b")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "c"}, got)
	assert.Equal(t, []string{"a", "b", "c"}, seq)

	got, ok = ordering.Remove(seq, "z")
	assert.False(t, ok)
	assert.Equal(t, seq, got)
}

func TestIndexOf(t *testing.T) {
	seq := []int{5, 6, 7}

	assert.Equal(t, 1, ordering.IndexOf(seq, 6))
	assert.Equal(t, -1, ordering.IndexOf(seq, 8))
	assert.Equal(t, -1, ordering.IndexOf([]int(nil), 1))
}
