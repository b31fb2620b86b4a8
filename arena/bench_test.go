package arena_test

import (
	"testing"

	"github.com/katalvlaran/arbor/arena"
)

// BenchmarkNewNodeRemove measures one insert/free round trip through the
// free list.
func BenchmarkNewNodeRemove(b *testing.B) {
	a := arena.NewArena(arena.WithCapacity(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := a.NewNode(1)
		_ = a.Remove(id)
	}
}

// BenchmarkAttachDetach measures edge churn under one parent.
func BenchmarkAttachDetach(b *testing.B) {
	a := arena.NewArena(arena.WithCapacity(2))
	p := a.NewNode(0)
	c := a.NewNode(1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.AttachChild(p, c)
		_ = a.DetachChild(p, c)
	}
}

// BenchmarkResolveParent measures the back-reference lookup on a deep chain.
func BenchmarkResolveParent(b *testing.B) {
	a := arena.NewArena(arena.WithCapacity(1024))
	prev := a.NewNode(0)
	leaf := prev
	for i := int64(1); i < 1024; i++ {
		id := a.NewNode(i)
		_ = a.AttachChild(prev, id)
		prev = id
		leaf = id
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = a.ResolveParent(leaf)
	}
}
