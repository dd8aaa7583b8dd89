package numfmt

import (
	"math"

	"github.com/dustin/go-humanize"
)

// Count rounds half away from zero and groups thousands with commas:
// 1000.0 -> "1,000", 999.5 -> "1,000". Values beyond the int64 range keep
// every digit.
func Count(v float64) string {
	return whole(math.Round(v))
}

// Truncated drops the fractional part before grouping.
func Truncated(v float64) string {
	return whole(math.Trunc(v))
}

func whole(v float64) string {
	if v == 0 {
		// -0 would render with a sign
		v = 0
	}
	return humanize.Commaf(v)
}
