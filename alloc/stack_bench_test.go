package alloc

import "testing"

func BenchmarkStack_Allocate(b *testing.B) {
	s := NewStackSize(1 << 16)
	l := Layout{Size: 64, Align: 8}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Allocate(l); err != nil {
			s.Reset()
		}
	}
}

func BenchmarkStack_AllocateFreePair(b *testing.B) {
	s := NewStackSize(1 << 16)
	l := Layout{Size: 64, Align: 8}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		block, err := s.Allocate(l)
		if err != nil {
			b.Fatal(err)
		}
		if err := s.Deallocate(block, l); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFallback_StackHit(b *testing.B) {
	s := NewStackSize(1 << 16)
	f := NewFallback(s, Heap{})
	l := Layout{Size: 64, Align: 8}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		block, err := f.Allocate(l)
		if err != nil {
			b.Fatal(err)
		}
		if err := f.Deallocate(block, l); err != nil {
			b.Fatal(err)
		}
	}
}
