package alloc

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocFailed is the single allocation-failure kind. Every
	// failed Allocate returns an error matching it via errors.Is.
	ErrAllocFailed = errors.New("alloc: allocation failed")

	// ErrExhausted reports that capacity ran out or the address
	// arithmetic for the request would overflow. Wraps ErrAllocFailed.
	ErrExhausted = fmt.Errorf("%w: capacity exhausted", ErrAllocFailed)

	// ErrRejected reports that a Cond predicate refused the layout
	// before any allocator was consulted. Wraps ErrAllocFailed.
	ErrRejected = fmt.Errorf("%w: rejected by predicate", ErrAllocFailed)

	// ErrBadLayout indicates an alignment that is not a non-zero power
	// of two.
	ErrBadLayout = errors.New("alloc: alignment must be a power of two")

	// ErrForeignBlock indicates a Deallocate call with a block this
	// allocator never produced.
	ErrForeignBlock = errors.New("alloc: block not owned by this allocator")
)
