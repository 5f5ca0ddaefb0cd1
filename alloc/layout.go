package alloc

import (
	"unsafe"

	"github.com/allockit/allockit/internal/bits"
)

// Layout describes a requested or existing allocation: a size in bytes
// and a power-of-two alignment. Size may be zero; zero-sized requests
// never fail for capacity reasons.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// NewLayout builds a Layout, rejecting alignments that are not a
// non-zero power of two.
func NewLayout(size, align uintptr) (Layout, error) {
	if !bits.IsPow2(align) {
		return Layout{}, ErrBadLayout
	}
	return Layout{Size: size, Align: align}, nil
}

// MustLayout is NewLayout for statically known arguments; it panics on
// a bad alignment.
func MustLayout(size, align uintptr) Layout {
	l, err := NewLayout(size, align)
	if err != nil {
		panic(err)
	}
	return l
}

// LayoutFor returns the layout of a value of type T.
func LayoutFor[T any]() Layout {
	var v T
	return Layout{Size: unsafe.Sizeof(v), Align: unsafe.Alignof(v)}
}

// Valid reports whether the alignment is a non-zero power of two.
func (l Layout) Valid() bool {
	return bits.IsPow2(l.Align)
}

// Repeat returns the layout of an array of n values laid out back to
// back, each padded to the alignment. Fails with ErrBadLayout if the
// total size overflows the address space.
func (l Layout) Repeat(n uintptr) (Layout, error) {
	if !l.Valid() {
		return Layout{}, ErrBadLayout
	}
	stride, ok := bits.Add(l.Size, bits.Pad(l.Size, l.Align))
	if !ok {
		return Layout{}, ErrBadLayout
	}
	if n != 0 && stride > ^uintptr(0)/n {
		return Layout{}, ErrBadLayout
	}
	return Layout{Size: stride * n, Align: l.Align}, nil
}
