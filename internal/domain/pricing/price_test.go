package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"199.99 MAD", 199.99},
		{"$5.00", 5.0},
		{"1,299 DH", 1299},
		{"free", 0},
		{"", 0},
		{"0", 0},
		{"  49 ", 49},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, ParseAmount(c.in), 0.0001, "input %q", c.in)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "44.98", FormatAmount(44.98))
	assert.Equal(t, "0.00", FormatAmount(0))
}
