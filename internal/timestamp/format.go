package timestamp

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MaxOffset is the largest starting offset ParseOffset accepts (99:59:59).
const MaxOffset = 99*3600 + 59*60 + 59

// Format renders seconds as MM:SS, or HH:MM:SS from one hour up. Fractions
// are truncated, never rounded. Negative, NaN and infinite input render as
// 00:00.
func Format(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		seconds = 0
	}
	// float arithmetic: int64 conversion overflows past ~2.9e11 hours
	total := math.Floor(seconds)
	h := math.Floor(total / 3600)
	m := math.Floor(math.Mod(total, 3600) / 60)
	s := math.Mod(total, 60)

	if h > 0 {
		return fmt.Sprintf("%02.0f:%02.0f:%02.0f", h, m, s)
	}
	return fmt.Sprintf("%02.0f:%02.0f", m, s)
}

var reLeadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseOffset reads a starting offset in seconds from user input. The
// leading number is used and trailing text ignored ("90s" is 90). Input
// with no leading number, or a negative, non-finite or above MaxOffset
// value, yields 0.
func ParseOffset(input string) float64 {
	match := reLeadingNumber.FindString(strings.TrimSpace(input))
	if match == "" {
		return 0
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > MaxOffset {
		return 0
	}
	return v
}
