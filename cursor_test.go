package randperm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorFullTraversal(t *testing.T) {
	p, err := New(100, 0)
	assert.NoError(t, err)

	cur := p.Cursor()
	count := uint64(0)
	for {
		v, ok := cur.Next()
		if !ok {
			break
		}
		assert.True(t, v == p.Permute(count), "cursor value at %d diverges from Permute", count)
		count++
	}
	assert.True(t, count == 100, "expected 100 values, got %d", count)

	// exhausted stays exhausted
	_, ok := cur.Next()
	assert.False(t, ok, "cursor produced a value after exhaustion")
	_, ok = cur.Next()
	assert.False(t, ok, "cursor produced a value after exhaustion")
}

func TestCursorAtMidSequence(t *testing.T) {
	p, err := New(1000, 42)
	assert.NoError(t, err)

	cur := p.CursorAt(990)
	for i := uint64(990); i < 1000; i++ {
		v, ok := cur.Next()
		assert.True(t, ok, "cursor exhausted early at index %d", i)
		assert.True(t, v == p.Permute(i), "cursor value at %d diverges from Permute", i)
	}
	_, ok := cur.Next()
	assert.False(t, ok, "cursor produced a value past the universe bound")
}

func TestCursorAtOrPastBoundIsExhausted(t *testing.T) {
	p, err := New(100, 0)
	assert.NoError(t, err)

	for _, start := range []uint64{100, 101, math.MaxUint64} {
		cur := p.CursorAt(start)
		_, ok := cur.Next()
		assert.False(t, ok, "cursor starting at %d must be exhausted", start)
	}
}

func TestCursorsAreIndependent(t *testing.T) {
	p, err := New(100, 0)
	assert.NoError(t, err)

	c1 := p.Cursor()
	c2 := p.Cursor()
	v1, _ := c1.Next()
	_, _ = c1.Next()
	_, _ = c1.Next()
	v2, _ := c2.Next()
	assert.True(t, v1 == v2, "advancing one cursor moved the other")
}

func TestCursorAtMaxUniverseDoesNotWrap(t *testing.T) {
	// Universe 2^64-1 hits the fast-path table, so construction is instant.
	// The last valid index is 2^64-2; exhaustion must come from the explicit
	// flag, not from the index wrapping around.
	p, err := New(math.MaxUint64, 0)
	assert.NoError(t, err)

	cur := p.CursorAt(math.MaxUint64 - 1)
	v, ok := cur.Next()
	assert.True(t, ok, "expected the final index to produce a value")
	assert.True(t, v == p.Permute(math.MaxUint64-1), "final value diverges from Permute")
	_, ok = cur.Next()
	assert.False(t, ok, "cursor must be exhausted after the final index")
	_, ok = cur.Next()
	assert.False(t, ok, "cursor wrapped around after exhaustion")
}

func TestCursorOnZeroValuePermutation(t *testing.T) {
	var p Permutation
	cur := p.Cursor()
	v, ok := cur.Next()
	assert.True(t, ok && v == 0, "zero value permutation must yield exactly {0}")
	_, ok = cur.Next()
	assert.False(t, ok, "zero value permutation has only one element")
}
