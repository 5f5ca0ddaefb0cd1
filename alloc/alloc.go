package alloc

import (
	"unsafe"

	"github.com/allockit/allockit/internal/bits"
)

// Allocator is the allocation capability: acquire and release raw byte
// blocks for a given Layout.
//
// Allocate returns a block of exactly l.Size bytes whose first byte
// satisfies l.Align, or an error matching ErrAllocFailed. It must be
// callable with any valid Layout and must not panic.
//
// Deallocate releases a block previously returned by this allocator
// with the same layout and not yet freed. Blocks the allocator never
// produced yield ErrForeignBlock; calls it accepts but cannot act on
// (such as freeing a non-top stack block) return nil.
type Allocator interface {
	Allocate(l Layout) ([]byte, error)
	Deallocate(block []byte, l Layout) error
}

// Arena extends Allocator with the ownership capability. Owns reports
// whether block lies fully inside this allocator's managed region(s).
//
// Owns is pure and total: it has no side effects and never panics, even
// for nil blocks or addresses the allocator never produced. Composites
// such as Fallback rely on it to route frees without a side table.
type Arena interface {
	Allocator
	Owns(block []byte) bool
}

// ownedBy consults a's ownership query if it has one. Allocators
// without the capability own nothing as far as composites care.
func ownedBy(a Allocator, block []byte) bool {
	if ar, ok := a.(Arena); ok {
		return ar.Owns(block)
	}
	return false
}

// blockRange returns the [start, end) address range covered by block.
// The end is saturated so an oversized input can never wrap around and
// report spurious containment.
func blockRange(block []byte) (start, end uintptr) {
	start = uintptr(unsafe.Pointer(unsafe.SliceData(block)))
	end = bits.AddSat(start, uintptr(len(block)))
	return start, end
}
