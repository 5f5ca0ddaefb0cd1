package alloc

// Observer receives the outcome of one allocation attempt: the layout
// requested and either the served block or the failure.
type Observer func(l Layout, block []byte, err error)

// Inspect wraps an allocator and invokes an observer exactly once per
// allocation attempt, success or failure, then hands the outcome back
// unchanged. Observation never affects control flow.
//
// There is no hook on the free path; Deallocate forwards transparently.
type Inspect struct {
	inner Allocator
	fn    Observer
}

// NewInspect wraps inner with observer fn.
func NewInspect(inner Allocator, fn Observer) *Inspect {
	return &Inspect{inner: inner, fn: fn}
}

// Allocate delegates to the inner allocator, reports the outcome to
// the observer, and returns it unmodified.
func (in *Inspect) Allocate(l Layout) ([]byte, error) {
	block, err := in.inner.Allocate(l)
	in.fn(l, block, err)
	return block, err
}

// Deallocate forwards to the inner allocator.
func (in *Inspect) Deallocate(block []byte, l Layout) error {
	return in.inner.Deallocate(block, l)
}

// Owns delegates to the inner allocator's ownership query when it has
// one.
func (in *Inspect) Owns(block []byte) bool {
	return ownedBy(in.inner, block)
}

var _ Arena = (*Inspect)(nil)
