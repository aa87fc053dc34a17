package calc

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders a float result for the display: the shortest text that
// parses back to v, always carrying a fractional part or an exponent.
// Exponent form is used when the decimal exponent is below -4 or at least 16.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	if exp := decimalExponent(v); exp < -4 || exp >= 16 {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func decimalExponent(v float64) int {
	s := strconv.FormatFloat(v, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		return 0
	}
	exp, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return 0
	}
	return exp
}
