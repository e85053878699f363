package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRupiah(t *testing.T) {
	tests := []struct {
		name     string
		n        int64
		expected string
	}{
		{"zero", 0, "0"},
		{"under a thousand", 500, "500"},
		{"exactly a thousand", 1_000, "1.000"},
		{"millions", 1_234_567, "1.234.567"},
		{"tens of millions", 45_000_000, "45.000.000"},
		{"negative", -1_234, "-1.234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rupiah(tt.n))
		})
	}
}

func TestRupiahF(t *testing.T) {
	assert.Equal(t, "1.234", rupiahF(1234.4))
	assert.Equal(t, "1.235", rupiahF(1234.5))
	assert.Equal(t, "0", rupiahF(0.2))
}

func TestPct(t *testing.T) {
	assert.Equal(t, "15.0", pct(15.0))
	assert.Equal(t, "12.3", pct(12.34))
	assert.Equal(t, "0.0", pct(0))
	assert.Equal(t, "-20.0", pct(-20))
}
