// Package arena implements a growable bump-pointer arena.
//
// # Overview
//
// An Arena carves allocations out of a list of chunks. Each chunk is a
// large contiguous region obtained from the operating system (anonymous
// mmap on unix builds, heap slices elsewhere); within the newest chunk
// a single cursor bumps forward per allocation. When a request does not
// fit, the arena grows by mapping a new chunk of twice the previous
// size and the old chunk is retired in place, its allocations still
// live. Individual frees reclaim nothing except the very last
// allocation; memory comes back in bulk through Reset or Release.
//
// The arena carries only the allocation capability. It does expose its
// chunk list through Chunks, so alloc.NewChunkOwner can wrap it into a
// full alloc.Arena whose ownership query scans the chunks:
//
//	ar := arena.New()
//	defer ar.Release()
//
//	a := alloc.NewFallback(alloc.NewChunkOwner(ar, ar), alloc.Heap{})
//
// Arenas are not safe for concurrent use.
package arena
