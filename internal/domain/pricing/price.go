// internal/domain/pricing/price.go
package pricing

import (
	"strconv"
	"strings"
)

// ParseAmount extracts a numeric amount out of a display price.
// Prices arrive as formatted currency strings ("199.99 MAD", "$5.00",
// "1,299 DH"); everything except digits and the decimal point is
// stripped before parsing. Unparseable input yields 0.
func ParseAmount(display string) float64 {
	var b strings.Builder
	for _, r := range display {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatAmount renders an amount the way the storefront displays totals.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
