package alloc

// Predicate decides whether a layout may be allocated at all.
type Predicate func(Layout) bool

// Cond gates its inner allocator's Allocate behind a layout predicate.
// A rejected layout fails with ErrRejected without consulting the
// inner allocator, even when it has ample capacity: the predicate is a
// hard gate, not a preference.
type Cond struct {
	inner Allocator
	pred  Predicate
}

// NewCond wraps inner behind pred.
func NewCond(inner Allocator, pred Predicate) *Cond {
	return &Cond{inner: inner, pred: pred}
}

// Allocate fails with ErrRejected when the predicate refuses the
// layout; otherwise it returns the inner allocator's result unchanged.
func (c *Cond) Allocate(l Layout) ([]byte, error) {
	if !c.pred(l) {
		return nil, ErrRejected
	}
	return c.inner.Allocate(l)
}

// Deallocate forwards unconditionally. The caller holds a block that
// was accepted at allocation time, so the predicate has no say on the
// way out.
func (c *Cond) Deallocate(block []byte, l Layout) error {
	return c.inner.Deallocate(block, l)
}

// Owns delegates to the inner allocator's ownership query when it has
// one; Cond manages no region of its own.
func (c *Cond) Owns(block []byte) bool {
	return ownedBy(c.inner, block)
}

var _ Arena = (*Cond)(nil)
