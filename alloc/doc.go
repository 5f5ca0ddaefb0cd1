// Package alloc provides composable low-level memory allocators.
//
// # Overview
//
// The package is built around two small capabilities. The Allocator
// interface is the allocation capability: acquire and release raw byte
// blocks described by a Layout (size plus power-of-two alignment). The
// Arena interface adds the ownership capability: a pure predicate that
// reports whether a block came out of this allocator's managed region.
//
// Primitives implement the capabilities directly:
//
//   - Stack: bump-pointer allocation over a fixed caller-owned buffer,
//     with LIFO-only reclamation and bulk Reset
//   - Heap: the Go runtime heap, the usual final fallback target
//   - Failing: always fails, a safe terminator for combinator chains
//
// Combinators compose allocators while preserving both capabilities:
//
//   - Cond gates allocation behind a layout predicate
//   - Fallback tries a primary, then a secondary, and routes frees by
//     the primary's ownership query
//   - Inspect invokes an observer on every allocation outcome
//
// ChunkOwner grants ownership to chunked arenas (such as package arena)
// that only expose their regions through chunk iteration.
//
// # Usage Example
//
//	var buf [256]byte
//	stack := alloc.NewStack(buf[:])
//
//	a := alloc.NewFallback(
//		alloc.NewCond(stack, func(l alloc.Layout) bool { return l.Size <= 64 }),
//		alloc.Heap{},
//	)
//
//	block, err := a.Allocate(alloc.Layout{Size: 48, Align: 8})
//	if err != nil {
//		return err
//	}
//	// ... use block ...
//	_ = a.Deallocate(block, alloc.Layout{Size: 48, Align: 8})
//
// Small requests land in the stack buffer; anything larger, or anything
// arriving after the buffer fills, comes from the heap. Deallocate finds
// the right branch on its own because the stack knows which address
// ranges it owns.
//
// # Failure Model
//
// There is a single failure kind, ErrAllocFailed, reported as a normal
// return value. ErrExhausted (capacity or address arithmetic overflow)
// and ErrRejected (predicate gate) wrap it, so errors.Is against
// ErrAllocFailed matches every allocation failure. A failed Allocate
// never mutates allocator state. Deallocate reports ErrForeignBlock for
// blocks an allocator never produced; accepted no-ops return nil.
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent use. A composite that
// must be shared across goroutines has to sit behind a caller-owned
// mutex; the allocators themselves use plain mutable state.
package alloc
