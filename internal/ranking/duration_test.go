package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		token   string
		seconds int
		display string
	}{
		{"PT4M", 240, "4m"},
		{"PT10M", 600, "10m"},
		{"PT1H2M3S", 3723, "1h 2m 3s"},
		{"PT1H5S", 3605, "1h 5s"},
		{"PT45S", 45, "45s"},
		{"PT2H", 7200, "2h"},
		{"PT0S", 0, "0s"},
		{"PT", 0, ""},
		{"", 0, ""},
		{"P1D", 0, ""},
		{"garbage", 0, ""},
		{"PT1.5S", 0, ""},
		{"PT99999999999999999999999H", 0, ""},
		{"PT9999999999999999H", 0, ""},
		{"PT1H9223372036854775807S", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got := ParseDuration(tt.token)
			assert.Equal(t, tt.seconds, got.Seconds)
			assert.Equal(t, tt.display, got.Display)
		})
	}
}

func TestParseDuration_StableOnSeconds(t *testing.T) {
	for _, token := range []string{"PT4M13S", "PT1H", "PT59S", "PT"} {
		first := ParseDuration(token)
		second := ParseDuration(token)
		assert.Equal(t, first, second, token)
	}
}

func TestIsShort(t *testing.T) {
	assert.True(t, IsShort(0))
	assert.True(t, IsShort(ShortMaxSeconds))
	assert.False(t, IsShort(ShortMaxSeconds+1))
}
