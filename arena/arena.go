package arena

import (
	"fmt"
	"iter"
	"math"
	"unsafe"

	"github.com/allockit/allockit/alloc"
	"github.com/allockit/allockit/internal/bits"
)

// DefaultChunkSize is the size of the first chunk an empty arena maps.
const DefaultChunkSize = 64 << 10

// pageSize rounds chunk sizes so mappings stay page-granular.
const pageSize = 4096

// chunk is one mapped region plus the hook that returns it to the OS.
type chunk struct {
	data []byte
	free func() error
}

// Arena is a growable bump allocator. See the package documentation
// for the allocation model.
type Arena struct {
	chunks []chunk
	next   uintptr // bump cursor within the newest chunk
}

// New returns an empty arena. The first chunk is mapped lazily on the
// first allocation.
func New() *Arena {
	return &Arena{}
}

// WithCapacity returns an arena with an initial chunk of at least n
// bytes already mapped.
func WithCapacity(n uintptr) (*Arena, error) {
	a := New()
	if err := a.grow(alloc.Layout{Size: n, Align: 1}); err != nil {
		return nil, err
	}
	return a, nil
}

// Allocate bumps the cursor of the newest chunk, mapping a new chunk
// first when the request does not fit. Zero-sized layouts never fail
// and consume nothing.
func (a *Arena) Allocate(l alloc.Layout) ([]byte, error) {
	if !l.Valid() {
		return nil, alloc.ErrBadLayout
	}
	if l.Size == 0 {
		if len(a.chunks) == 0 {
			return []byte{}, nil
		}
		c := int(a.next)
		return a.active().data[c:c:c], nil
	}
	if block, ok := a.bump(l); ok {
		return block, nil
	}
	if err := a.grow(l); err != nil {
		return nil, err
	}
	block, ok := a.bump(l)
	if !ok {
		// grow sized the chunk for this layout; a miss here means the
		// arithmetic above it is wrong.
		return nil, alloc.ErrExhausted
	}
	return block, nil
}

// Deallocate retracts the cursor when block is exactly the most recent
// allocation in the newest chunk. Anything else is an accepted no-op:
// arena memory comes back in bulk, not per block.
func (a *Arena) Deallocate(block []byte, l alloc.Layout) error {
	if len(a.chunks) == 0 || l.Size == 0 {
		return nil
	}
	start := uintptr(unsafe.Pointer(unsafe.SliceData(block)))
	base := a.activeBase()
	if start >= base && bits.AddSat(start, l.Size) == base+a.next {
		a.next = start - base
	}
	return nil
}

// Chunks yields every mapped chunk as a base/size pair, newest last.
// It implements alloc.ChunkIterator so alloc.NewChunkOwner can derive
// an ownership query from the arena.
func (a *Arena) Chunks() iter.Seq[alloc.Chunk] {
	return func(yield func(alloc.Chunk) bool) {
		for _, c := range a.chunks {
			ck := alloc.Chunk{
				Base: unsafe.Pointer(unsafe.SliceData(c.data)),
				Size: uintptr(len(c.data)),
			}
			if !yield(ck) {
				return
			}
		}
	}
}

// AllocatedBytes returns the total capacity of all mapped chunks.
func (a *Arena) AllocatedBytes() uintptr {
	var n uintptr
	for _, c := range a.chunks {
		n += uintptr(len(c.data))
	}
	return n
}

// NumChunks returns the number of mapped chunks.
func (a *Arena) NumChunks() int {
	return len(a.chunks)
}

// Reset discards every allocation. The largest chunk is kept mapped
// for reuse; the rest go back to the OS. Blocks handed out before the
// reset must not be touched again.
func (a *Arena) Reset() {
	if len(a.chunks) == 0 {
		return
	}
	largest := 0
	for i, c := range a.chunks {
		if len(c.data) > len(a.chunks[largest].data) {
			largest = i
		}
	}
	for i, c := range a.chunks {
		if i != largest {
			_ = c.free()
		}
	}
	a.chunks = []chunk{a.chunks[largest]}
	a.next = 0
}

// Release returns every chunk to the OS. The arena is reusable
// afterwards; the next allocation maps a fresh chunk.
func (a *Arena) Release() error {
	var firstErr error
	for _, c := range a.chunks {
		if err := c.free(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.chunks = nil
	a.next = 0
	return firstErr
}

func (a *Arena) active() *chunk {
	return &a.chunks[len(a.chunks)-1]
}

func (a *Arena) activeBase() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(a.active().data)))
}

// bump tries to serve l from the newest chunk without growing.
func (a *Arena) bump(l alloc.Layout) ([]byte, bool) {
	if len(a.chunks) == 0 {
		return nil, false
	}
	c := a.active()
	pad := bits.Pad(a.activeBase()+a.next, l.Align)
	start, ok := bits.Add(a.next, pad)
	if !ok {
		return nil, false
	}
	end, ok := bits.Add(start, l.Size)
	if !ok || end > uintptr(len(c.data)) {
		return nil, false
	}
	a.next = end
	return c.data[int(start):int(end):int(end)], true
}

// grow maps a new chunk big enough for l, doubling from the previous
// chunk size.
func (a *Arena) grow(l alloc.Layout) error {
	size := uintptr(DefaultChunkSize)
	if n := len(a.chunks); n > 0 {
		size = uintptr(len(a.chunks[n-1].data))
		if doubled, ok := bits.Add(size, size); ok {
			size = doubled
		}
	}
	// Worst case the fresh chunk base needs l.Align-1 bytes of padding
	// before l.Size fits.
	need, ok := bits.Add(l.Size, l.Align-1)
	if !ok {
		return alloc.ErrExhausted
	}
	need, ok = bits.Add(need, bits.Pad(need, pageSize))
	if !ok {
		return alloc.ErrExhausted
	}
	if need > size {
		size = need
	}
	if size > math.MaxInt {
		return alloc.ErrExhausted
	}
	data, free, err := newChunk(size)
	if err != nil {
		return fmt.Errorf("%w: %v", alloc.ErrExhausted, err)
	}
	a.chunks = append(a.chunks, chunk{data: data, free: free})
	a.next = 0
	return nil
}

var _ alloc.Allocator = (*Arena)(nil)
var _ alloc.ChunkIterator = (*Arena)(nil)
