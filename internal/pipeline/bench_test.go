package pipeline

import (
	"testing"

	"github.com/theirongolddev/salescast/internal/forecast"
)

func BenchmarkBuildDashboard(b *testing.B) {
	e := forecast.Default()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d, err := BuildDashboard(e, 1+i%12)
		if err != nil {
			b.Fatal(err)
		}
		_ = d
	}
}

func BenchmarkSelectMonth(b *testing.B) {
	e := forecast.Default()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := SelectMonth(e, 12); err != nil {
			b.Fatal(err)
		}
	}
}
