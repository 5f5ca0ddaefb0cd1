//go:build unix

package arena

import "golang.org/x/sys/unix"

// newChunk reserves an anonymous private mapping so arena chunks stay
// off the Go heap and can be handed back to the OS eagerly.
func newChunk(size uintptr) ([]byte, func() error, error) {
	data, err := unix.Mmap(-1, 0, int(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}
	free := func() error {
		return unix.Munmap(data)
	}
	return data, free, nil
}
