package alloc

import (
	"iter"
	"unsafe"

	"github.com/allockit/allockit/internal/bits"
)

// Chunk is one contiguous region managed by a chunked arena: a base
// address and a length in bytes.
type Chunk struct {
	Base unsafe.Pointer
	Size uintptr
}

// Contains reports whether the [start, end) address range lies fully
// inside the chunk, with saturating arithmetic so oversized ranges can
// never wrap into a false positive.
func (c Chunk) Contains(start, end uintptr) bool {
	base := uintptr(c.Base)
	return start >= base && end <= bits.AddSat(base, c.Size)
}

// ChunkIterator is implemented by arenas that expose their managed
// regions only through iteration over allocated chunks.
type ChunkIterator interface {
	Chunks() iter.Seq[Chunk]
}

// ChunkOwner grants the ownership capability to an allocator whose
// regions are reachable through chunk iteration, such as arena.Arena.
// Allocation and deallocation forward to the wrapped allocator; Owns
// scans the chunk list. It is the one operation in this package whose
// cost grows with the number of chunks rather than O(1).
type ChunkOwner struct {
	Allocator
	chunks ChunkIterator
}

// NewChunkOwner wraps a with the ownership query derived from it. The
// two arguments are usually the same value seen through two
// interfaces:
//
//	ar := arena.New()
//	owner := alloc.NewChunkOwner(ar, ar)
//	composite := alloc.NewFallback(owner, alloc.Heap{})
func NewChunkOwner(a Allocator, it ChunkIterator) *ChunkOwner {
	return &ChunkOwner{Allocator: a, chunks: it}
}

// Owns reports whether any chunk fully contains the block. Empty
// blocks with no backing pointer are owned by nothing.
func (c *ChunkOwner) Owns(block []byte) bool {
	start, end := blockRange(block)
	if start == 0 {
		return false
	}
	for ch := range c.chunks.Chunks() {
		if ch.Contains(start, end) {
			return true
		}
	}
	return false
}

var _ Arena = (*ChunkOwner)(nil)
