package alloc

import (
	"unsafe"

	"github.com/allockit/allockit/internal/bits"
)

// Stack is a bump-pointer allocator over a fixed buffer. Allocation
// advances a single cursor; only the most recently allocated block can
// be reclaimed (LIFO), and Reset reclaims everything at once.
//
// The buffer is owned exclusively by the allocator for its lifetime.
// Stack is not safe for concurrent use.
type Stack struct {
	buf    []byte
	cursor uintptr
}

// NewStack returns a stack allocator over buf. len(buf) fixes the
// capacity; the caller chooses the storage, so the buffer can live in
// stack or static memory and the allocator never touches the heap:
//
//	var scratch [512]byte
//	s := alloc.NewStack(scratch[:])
func NewStack(buf []byte) *Stack {
	return &Stack{buf: buf}
}

// NewStackSize is NewStack over a fresh heap buffer of n bytes, for
// callers that do not care where the backing storage lives.
func NewStackSize(n int) *Stack {
	return NewStack(make([]byte, n))
}

func (s *Stack) base() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(s.buf)))
}

// Cap returns the fixed capacity in bytes.
func (s *Stack) Cap() uintptr { return uintptr(len(s.buf)) }

// InUse returns the current cursor: the number of buffer bytes covered
// by live (or leaked non-top) allocations and their alignment padding.
func (s *Stack) InUse() uintptr { return s.cursor }

// Remaining returns the bytes left before the cursor hits capacity,
// not accounting for alignment padding of future requests.
func (s *Stack) Remaining() uintptr { return uintptr(len(s.buf)) - s.cursor }

// Allocate bumps the cursor past any padding needed to align it, then
// past l.Size. A request that does not fit fails with ErrExhausted and
// leaves the cursor untouched. Zero-sized layouts sit at the current
// cursor, consume nothing, and never fail.
func (s *Stack) Allocate(l Layout) ([]byte, error) {
	if !l.Valid() {
		return nil, ErrBadLayout
	}
	if l.Size == 0 {
		c := int(s.cursor)
		return s.buf[c:c:c], nil
	}
	pad := bits.Pad(s.base()+s.cursor, l.Align)
	start, ok := bits.Add(s.cursor, pad)
	if !ok {
		return nil, ErrExhausted
	}
	end, ok := bits.Add(start, l.Size)
	if !ok || end > uintptr(len(s.buf)) {
		return nil, ErrExhausted
	}
	s.cursor = end
	return s.buf[int(start):int(end):int(end)], nil
}

// Deallocate retracts the cursor when block is exactly the top of the
// stack. Freeing any other owned block is accepted but reclaims
// nothing until a later top-of-stack free or Reset walks back over it.
// Blocks outside the buffer yield ErrForeignBlock.
func (s *Stack) Deallocate(block []byte, l Layout) error {
	if !s.Owns(block) {
		return ErrForeignBlock
	}
	start, _ := blockRange(block)
	off := start - s.base()
	if bits.AddSat(off, l.Size) == s.cursor {
		s.cursor = off
	}
	return nil
}

// Owns reports whether block lies fully inside the stack's buffer.
// Total and side-effect free; nil and foreign blocks return false.
func (s *Stack) Owns(block []byte) bool {
	start, end := blockRange(block)
	base := s.base()
	return start >= base && end <= bits.AddSat(base, uintptr(len(s.buf)))
}

// Reset discards every outstanding allocation by rewinding the cursor
// to zero. No per-block cleanup runs; callers must not retain blocks
// across a reset.
func (s *Stack) Reset() {
	s.cursor = 0
}

var _ Arena = (*Stack)(nil)
