package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTicker(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"RY", "RY.TO"},
		{"ry", "RY.TO"},
		{" shop ", "SHOP.TO"},
		{"RY.TO", "RY.TO"},
		{"BRK.B", "BRK.B"},
		{"^GSPTSE", "^GSPTSE"},
		{"^gsptse", "^GSPTSE"},
	}
	for _, c := range cases {
		got, err := NormalizeTicker(c.in)
		require.NoError(t, err, "input %q", c.in)
		assert.Equal(t, c.want, got, "input %q", c.in)
	}
}

func TestNormalizeTicker_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "\t"} {
		_, err := NormalizeTicker(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestValidPeriod(t *testing.T) {
	for _, p := range Periods() {
		assert.True(t, ValidPeriod(p), "period %q", p)
	}
	for _, p := range []string{"", "7y", "1w", "MAX", "forever"} {
		assert.False(t, ValidPeriod(p), "period %q", p)
	}
}
