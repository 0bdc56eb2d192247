package ranking

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrendingScore(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		views   uint64
		elapsed time.Duration
		want    float64
	}{
		{"half day floors to one", 1000, 12 * time.Hour, 1000},
		{"ten days", 1000, 10 * day, 100},
		{"exactly one day", 500, day, 500},
		{"fractional days", 3000, 36 * time.Hour, 2000},
		{"zero views", 0, 5 * day, 0},
		{"published in the future", 700, -2 * day, 700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrendingScore(tt.views, now.Add(-tt.elapsed), now)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.False(t, math.IsInf(got, 0) || math.IsNaN(got))
		})
	}
}

func TestTrendingScore_Monotonic(t *testing.T) {
	now := time.Now()
	published := now.Add(-4 * day)

	assert.Less(t, TrendingScore(100, published, now), TrendingScore(101, published, now))
	assert.Greater(t, TrendingScore(100, now.Add(-2*day), now), TrendingScore(100, now.Add(-3*day), now))
}
