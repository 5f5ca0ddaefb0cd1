package bits

// Pointer and cursor arithmetic for allocator code. Alignments are
// always powers of two; callers validate before reaching these helpers
// so the hot paths can stay branch-free mask math.

// IsPow2 reports whether n is a non-zero power of two.
func IsPow2(n uintptr) bool {
	return n != 0 && n&(n-1) == 0
}

// Pad returns the number of bytes needed to advance addr to the next
// multiple of align. align must be a power of two.
//
// Example:
//
//	Pad(12, 8) = 4
//	Pad(16, 8) = 0
func Pad(addr, align uintptr) uintptr {
	return -addr & (align - 1)
}

// Add returns a+b and whether the sum did not wrap around.
func Add(a, b uintptr) (uintptr, bool) {
	s := a + b
	return s, s >= a
}

// AddSat returns a+b, saturating at the maximum uintptr value instead
// of wrapping. Used by ownership queries so that oversized ranges can
// never report spurious containment.
func AddSat(a, b uintptr) uintptr {
	if s := a + b; s >= a {
		return s
	}
	return ^uintptr(0)
}
