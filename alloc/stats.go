package alloc

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Stats aggregates allocation outcomes. Register its Observe method
// with Inspect to meter a composite:
//
//	var st alloc.Stats
//	a := alloc.NewInspect(inner, st.Observe)
//
// Stats is not safe for concurrent use, matching the allocators it
// observes.
type Stats struct {
	// Attempts counts every allocation attempt, success or failure.
	Attempts uint64

	// Failures counts attempts that returned an error.
	Failures uint64

	// BytesRequested sums the layout sizes of all attempts.
	BytesRequested uint64

	// BytesServed sums the sizes of successfully returned blocks.
	BytesServed uint64

	// LargestServed is the largest single block served so far.
	LargestServed uintptr
}

// Observe records one allocation outcome. It has the Observer shape.
func (st *Stats) Observe(l Layout, block []byte, err error) {
	st.Attempts++
	st.BytesRequested += uint64(l.Size)
	if err != nil {
		st.Failures++
		return
	}
	st.BytesServed += uint64(len(block))
	if uintptr(len(block)) > st.LargestServed {
		st.LargestServed = uintptr(len(block))
	}
}

// Reset zeroes all counters.
func (st *Stats) Reset() {
	*st = Stats{}
}

// String renders a one-line summary with grouped digits, e.g.
// "attempts=1,024 failures=3 requested=65,536B served=64,512B largest=4,096B".
func (st *Stats) String() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("attempts=%d failures=%d requested=%dB served=%dB largest=%dB",
		st.Attempts, st.Failures, st.BytesRequested, st.BytesServed, uint64(st.LargestServed))
}
