package alloc

// Failing always fails allocation and owns nothing. It terminates
// combinator chains where a branch must exist to satisfy the types but
// should never actually serve a request.
type Failing struct{}

// Allocate always fails.
func (Failing) Allocate(Layout) ([]byte, error) {
	return nil, ErrAllocFailed
}

// Deallocate is a no-op.
func (Failing) Deallocate([]byte, Layout) error {
	return nil
}

// Owns always reports false.
func (Failing) Owns([]byte) bool {
	return false
}

var _ Arena = Failing{}
