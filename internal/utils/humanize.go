package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// ParseCounter converts a humanized download counter back to the exact
// integer it represents: "2.5K" parses to 2500, "1,000" to 1000, plain
// digit strings directly. Unparseable input yields 0 so a corrupted counter
// restarts from zero instead of failing the operation.
func ParseCounter(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if k := strings.TrimSuffix(strings.TrimSuffix(s, "K"), "k"); len(k) != len(s) {
		f, err := strconv.ParseFloat(strings.ReplaceAll(k, ",", ""), 64)
		if err != nil {
			return 0
		}
		return int(math.Round(f * 1000))
	}

	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0
	}
	return n
}

// FormatCounter renders an exact download count as its humanized display
// string. Values above 1000 collapse to a one-decimal "K" form; everything
// up to and including 1000 stays a thousands-grouped integer, so the
// sequence 999 -> "1,000" -> "1.0K" round-trips through ParseCounter.
func FormatCounter(n int) string {
	if n > 1000 {
		return strconv.FormatFloat(float64(n)/1000, 'f', 1, 64) + "K"
	}
	return humanize.Comma(int64(n))
}
