package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMaturityDate(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		years    int
		expected time.Time
	}{
		{"five years", date(2026, 1, 15), 5, date(2031, 1, 15)},
		{"zero years matures immediately", date(2026, 6, 1), 0, date(2026, 6, 1)},
		{"negative years matures immediately", date(2026, 6, 1), -2, date(2026, 6, 1)},
		{"leap day rolls forward", date(2024, 2, 29), 1, date(2025, 3, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaturityDate(tt.start, tt.years))
		})
	}
}
