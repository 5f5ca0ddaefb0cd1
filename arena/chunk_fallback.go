//go:build !unix

package arena

// newChunk falls back to heap-backed chunks on platforms without
// anonymous mappings; the garbage collector reclaims them once the
// arena lets go.
func newChunk(size uintptr) ([]byte, func() error, error) {
	return make([]byte, size), func() error { return nil }, nil
}
