package alloc

import (
	"math"

	"github.com/allockit/allockit/internal/bits"
)

// heapAlign is the alignment the Go runtime guarantees for byte slices.
const heapAlign = 8

// Heap allocates from the Go runtime heap. It is the usual final
// fallback target of a composite: a general-purpose allocator that is
// effectively never exhausted. Deallocate is a no-op because the
// garbage collector reclaims blocks once unreachable.
//
// Heap carries only the allocation capability. It cannot answer
// ownership queries, which is exactly the role of a Fallback secondary.
type Heap struct{}

// Allocate returns a fresh block of l.Size bytes aligned to l.Align.
// Alignments beyond the runtime's natural guarantee are met by
// over-allocating and slicing forward to the first aligned byte.
func (Heap) Allocate(l Layout) ([]byte, error) {
	if !l.Valid() {
		return nil, ErrBadLayout
	}
	if l.Size == 0 {
		return []byte{}, nil
	}
	if l.Align <= heapAlign {
		if l.Size > math.MaxInt {
			return nil, ErrExhausted
		}
		return make([]byte, l.Size), nil
	}
	n, ok := bits.Add(l.Size, l.Align-1)
	if !ok || n > math.MaxInt {
		return nil, ErrExhausted
	}
	raw := make([]byte, n)
	start, _ := blockRange(raw)
	pad := int(bits.Pad(start, l.Align))
	end := pad + int(l.Size)
	return raw[pad:end:end], nil
}

// Deallocate is an accepted no-op; the garbage collector owns
// reclamation.
func (Heap) Deallocate([]byte, Layout) error {
	return nil
}

var _ Allocator = Heap{}
