package analytics

import (
	"fmt"
	"math"
	"strings"
)

// FormatMagnitude renders a number in the Indian numbering convention
// for display: 10^7 → "Cr", 10^5 → "L", 10^3 → "K", smaller values as
// a comma-grouped integer. Zero and NaN render as "0". Negative values
// keep their sign; thresholds apply to the absolute value. Total
// function — there is no error path.
func FormatMagnitude(n float64) string {
	if n == 0 || math.IsNaN(n) {
		return "0"
	}

	sign := ""
	abs := n
	if abs < 0 {
		sign = "-"
		abs = -abs
	}

	switch {
	case abs >= 10_000_000:
		return fmt.Sprintf("%s%.1fCr", sign, abs/10_000_000)
	case abs >= 100_000:
		return fmt.Sprintf("%s%.1fL", sign, abs/100_000)
	case abs >= 1_000:
		return fmt.Sprintf("%s%.1fK", sign, abs/1_000)
	default:
		return sign + groupThousands(int64(math.Round(abs)))
	}
}

// FormatCount is the int64 convenience for registration totals.
func FormatCount(n int64) string {
	return FormatMagnitude(float64(n))
}

// groupThousands inserts comma separators into a non-negative integer.
func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}
