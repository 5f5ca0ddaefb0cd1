package alloc

// Fallback composes a primary and a secondary allocator. Allocation is
// ordered first-success: the primary is tried, then the secondary, and
// the call fails only when both do.
//
// Frees are routed by the primary's ownership query, so callers never
// track which branch served a block. That trade is the point of the
// Arena capability: a geometric containment check instead of a
// per-allocation side table. The primary must therefore be an Arena;
// the secondary only needs to allocate.
type Fallback struct {
	primary   Arena
	secondary Allocator
}

// NewFallback composes primary and secondary.
func NewFallback(primary Arena, secondary Allocator) *Fallback {
	return &Fallback{primary: primary, secondary: secondary}
}

// Primary returns the primary branch.
func (f *Fallback) Primary() Arena { return f.primary }

// Secondary returns the secondary branch.
func (f *Fallback) Secondary() Allocator { return f.secondary }

// Allocate tries the primary and falls back to the secondary on any
// allocation failure.
func (f *Fallback) Allocate(l Layout) ([]byte, error) {
	block, err := f.primary.Allocate(l)
	if err != nil {
		return f.secondary.Allocate(l)
	}
	return block, nil
}

// Deallocate routes to the primary when it owns the block, otherwise
// to the secondary.
func (f *Fallback) Deallocate(block []byte, l Layout) error {
	if f.primary.Owns(block) {
		return f.primary.Deallocate(block, l)
	}
	return f.secondary.Deallocate(block, l)
}

// Owns reports whether either branch owns the block, so Fallback nodes
// nest arbitrarily deep. A secondary without the ownership capability
// contributes nothing.
func (f *Fallback) Owns(block []byte) bool {
	return f.primary.Owns(block) || ownedBy(f.secondary, block)
}

var _ Arena = (*Fallback)(nil)
