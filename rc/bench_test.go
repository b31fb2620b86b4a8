package rc_test

import (
	"testing"

	"github.com/katalvlaran/arbor/rc"
)

// BenchmarkCloneDrop measures the cost of one Clone/Drop round trip.
func BenchmarkCloneDrop(b *testing.B) {
	r := rc.New(1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := r.Clone()
		c.Drop()
	}
}

// BenchmarkDowngradeUpgrade measures a Downgrade/Upgrade/Drop cycle, the
// cost every back-edge traversal pays.
func BenchmarkDowngradeUpgrade(b *testing.B) {
	r := rc.New(1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := r.Downgrade()
		up, _ := w.Upgrade()
		up.Drop()
		w.Drop()
	}
}
