package alloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStack_Scenario walks the canonical capacity-8 sequence:
// alloc 3, alloc 4, fail 2, free top, re-alloc, reset.
func TestStack_Scenario(t *testing.T) {
	s := NewStackSize(8)

	b1, err := s.Allocate(Layout{Size: 3, Align: 1})
	require.NoError(t, err)
	require.Len(t, b1, 3)
	assert.Equal(t, uintptr(3), s.InUse())

	b2, err := s.Allocate(Layout{Size: 4, Align: 1})
	require.NoError(t, err)
	require.Len(t, b2, 4)
	assert.Equal(t, uintptr(7), s.InUse())

	_, err = s.Allocate(Layout{Size: 2, Align: 1})
	require.ErrorIs(t, err, ErrExhausted, "7+2 > 8 must fail")
	assert.Equal(t, uintptr(7), s.InUse(), "failed alloc must not move the cursor")

	require.NoError(t, s.Deallocate(b2, Layout{Size: 4, Align: 1}))
	assert.Equal(t, uintptr(3), s.InUse(), "freeing the top must retract the cursor")

	b3, err := s.Allocate(Layout{Size: 4, Align: 1})
	require.NoError(t, err)
	assert.Equal(t, unsafe.SliceData(b2), unsafe.SliceData(b3), "retracted space is reused")
	assert.Equal(t, uintptr(7), s.InUse())

	s.Reset()
	assert.Equal(t, uintptr(0), s.InUse())
}

func TestStack_Alignment(t *testing.T) {
	s := NewStackSize(256)

	_, err := s.Allocate(Layout{Size: 1, Align: 1})
	require.NoError(t, err)

	for _, align := range []uintptr{2, 4, 8, 16, 64} {
		b, err := s.Allocate(Layout{Size: 3, Align: align})
		require.NoError(t, err, "align %d", align)
		addr := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
		assert.Zero(t, addr%align, "block must honor alignment %d", align)
	}
}

func TestStack_CursorArithmetic(t *testing.T) {
	s := NewStackSize(64)

	before := s.InUse()
	b, err := s.Allocate(Layout{Size: 5, Align: 8})
	require.NoError(t, err)

	start := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	off := start - s.base()
	assert.GreaterOrEqual(t, off, before, "block starts at or after the old cursor")
	assert.Equal(t, off+5, s.InUse(), "new cursor is block offset plus size")
}

func TestStack_ZeroSized(t *testing.T) {
	s := NewStackSize(4)

	_, err := s.Allocate(Layout{Size: 4, Align: 1})
	require.NoError(t, err)
	require.Equal(t, uintptr(4), s.InUse())

	// Full stack: a zero-sized request still succeeds and consumes
	// nothing.
	z, err := s.Allocate(Layout{Size: 0, Align: 1})
	require.NoError(t, err)
	assert.Len(t, z, 0)
	assert.Equal(t, uintptr(4), s.InUse())
	assert.True(t, s.Owns(z))
}

func TestStack_ExhaustionIsIdempotent(t *testing.T) {
	s := NewStackSize(16)

	_, err := s.Allocate(Layout{Size: 10, Align: 1})
	require.NoError(t, err)

	for range 5 {
		_, err := s.Allocate(Layout{Size: 10, Align: 1})
		require.ErrorIs(t, err, ErrAllocFailed)
		assert.Equal(t, uintptr(10), s.InUse())
	}
}

func TestStack_LIFOWalkback(t *testing.T) {
	s := NewStackSize(32)
	l := Layout{Size: 8, Align: 1}

	a, err := s.Allocate(l)
	require.NoError(t, err)
	b, err := s.Allocate(l)
	require.NoError(t, err)
	c, err := s.Allocate(l)
	require.NoError(t, err)
	require.Equal(t, uintptr(24), s.InUse())

	require.NoError(t, s.Deallocate(c, l))
	assert.Equal(t, uintptr(16), s.InUse())
	require.NoError(t, s.Deallocate(b, l))
	assert.Equal(t, uintptr(8), s.InUse())
	require.NoError(t, s.Deallocate(a, l))
	assert.Equal(t, uintptr(0), s.InUse())
}

func TestStack_NonTopFreeIsNoop(t *testing.T) {
	s := NewStackSize(32)
	l := Layout{Size: 8, Align: 1}

	a, err := s.Allocate(l)
	require.NoError(t, err)
	b, err := s.Allocate(l)
	require.NoError(t, err)

	// a is not the top: accepted, but nothing is reclaimed.
	require.NoError(t, s.Deallocate(a, l))
	assert.Equal(t, uintptr(16), s.InUse())

	// Freeing the top afterwards walks back to a's end only.
	require.NoError(t, s.Deallocate(b, l))
	assert.Equal(t, uintptr(8), s.InUse(), "leaked block stays until reset")

	s.Reset()
	assert.Equal(t, uintptr(0), s.InUse())
}

func TestStack_DeallocateForeign(t *testing.T) {
	s := NewStackSize(8)
	foreign := make([]byte, 8)

	err := s.Deallocate(foreign, Layout{Size: 8, Align: 1})
	assert.ErrorIs(t, err, ErrForeignBlock)
	assert.Equal(t, uintptr(0), s.InUse())
}

func TestStack_Owns(t *testing.T) {
	parent := make([]byte, 16)
	s := NewStack(parent[:8])

	assert.True(t, s.Owns(parent[0:3]))
	assert.True(t, s.Owns(parent[5:8]), "range ending exactly at the boundary is inside")
	assert.True(t, s.Owns(parent[8:8]), "empty range at the boundary is inside")
	assert.False(t, s.Owns(parent[6:10]), "crossing the boundary by two bytes")
	assert.False(t, s.Owns(parent[7:9]), "crossing the boundary by one byte")
	assert.False(t, s.Owns(parent[8:12]), "entirely past the boundary")
	assert.False(t, s.Owns(nil))
	assert.False(t, s.Owns(make([]byte, 4)), "unrelated buffer")
}

func TestStack_BadLayout(t *testing.T) {
	s := NewStackSize(64)
	_, err := s.Allocate(Layout{Size: 8, Align: 3})
	assert.ErrorIs(t, err, ErrBadLayout)
	assert.Equal(t, uintptr(0), s.InUse())
}

func TestStack_Accessors(t *testing.T) {
	s := NewStackSize(32)
	assert.Equal(t, uintptr(32), s.Cap())
	assert.Equal(t, uintptr(32), s.Remaining())

	_, err := s.Allocate(Layout{Size: 12, Align: 1})
	require.NoError(t, err)
	assert.Equal(t, uintptr(12), s.InUse())
	assert.Equal(t, uintptr(20), s.Remaining())
}
