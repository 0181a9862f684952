package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	K = 1_000
	M = 1_000 * K
	G = 1_000 * M
)

// FormatCount renders n with a K/M/G suffix, avoiding .00 for whole numbers
func FormatCount(n int64) string {
	val := float64(n)
	var unit string

	switch {
	case n >= G:
		val /= G
		unit = "G"
	case n >= M:
		val /= M
		unit = "M"
	case n >= K:
		val /= K
		unit = "K"
	default:
		return strconv.FormatInt(n, 10)
	}

	// Use %.0f for whole numbers, %.2f for numbers with decimals
	if val == float64(int64(val)) {
		return fmt.Sprintf("%.0f%s", val, unit)
	}
	return fmt.Sprintf("%.2f%s", val, unit)
}

// ParseCount parses a non-negative count with an optional K, M or G
// suffix (case insensitive), e.g. "500", "10K", "1.5M".
func ParseCount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty count")
	}

	mult := int64(1)
	switch s[len(s)-1] {
	case 'k', 'K':
		mult = K
	case 'm', 'M':
		mult = M
	case 'g', 'G':
		mult = G
	}
	if mult > 1 {
		s = s[:len(s)-1]
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid count %q", s)
	}

	scaled := v * float64(mult)
	if scaled >= math.MaxInt64 {
		return 0, fmt.Errorf("count %q overflows int64", s)
	}
	return int64(scaled), nil
}
