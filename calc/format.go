package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Values whose magnitude falls outside [minPlain, maxPlain) are written in
// exponent form so the buffer stays short.
const (
	minPlain = 1e-6
	maxPlain = 1e21
)

// formatNumber returns the buffer text for a finite value. Integral values
// have no fractional part and negative zero is written as "0".
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return formatFloat(v)
}

func formatFloat(v float64) string {
	abs := math.Abs(v)
	if abs != 0 && (abs < minPlain || abs >= maxPlain) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatDisplay renders an entry buffer for the screen.
//
// Exact integers keep their sign, so "-0" stays "-0". Other complete numbers
// are shown in canonical form with at least one fractional digit. Anything
// else, like a trailing point while typing, is shown as typed.
func formatDisplay(buf string) string {
	if n, err := strconv.ParseInt(buf, 10, 64); err == nil {
		if n == 0 && strings.HasPrefix(buf, "-") {
			return "-0"
		}
		return strconv.FormatInt(n, 10)
	}
	if strings.HasSuffix(buf, ".") {
		return buf
	}
	f, err := strconv.ParseFloat(buf, 64)
	if err != nil {
		return buf
	}
	s := formatFloat(f)
	if strings.Contains(buf, ".") && !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// parseBuffer reads the numeric value of an entry buffer. Mid-entry text that
// does not parse, such as a lone "-", reads as 0. Digits beyond the float64
// range read as ±Inf so callers that store the value reject it.
func parseBuffer(buf string) float64 {
	f, err := strconv.ParseFloat(buf, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return f
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
