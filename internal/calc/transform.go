package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrNotANumber = errors.New("display is not a number")

// Conversion factors are computed in float64 at init so that
// degrees(pi) comes out as exactly 180.
var (
	degToRad = pi / 180
	radToDeg = 180 / pi
)

type transform struct {
	angle bool // input is in degrees
	fn    func(float64) float64
}

var transforms = map[string]transform{
	"sin":   {angle: true, fn: math.Sin},
	"cos":   {angle: true, fn: math.Cos},
	"tan":   {angle: true, fn: math.Tan},
	"sinh":  {angle: true, fn: math.Sinh},
	"cosh":  {angle: true, fn: math.Cosh},
	"tanh":  {angle: true, fn: math.Tanh},
	"log":   {fn: math.Log},
	"exp":   {fn: math.Exp},
	"log10": {fn: math.Log10},
	"log2":  {fn: math.Log2},
	"expm1": {fn: math.Expm1},
	"deg":   {fn: func(x float64) float64 { return x * radToDeg }},
}

// Apply runs the named one-argument function on the number in text and
// returns the formatted result. Angle functions take their input in degrees.
func Apply(symbol, text string) (string, error) {
	t, ok := transforms[symbol]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %q", symbol, ErrNotANumber, text)
	}
	if t.angle {
		x *= degToRad
	}

	y := t.fn(x)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return "", fmt.Errorf("%s(%s): %w", symbol, text, ErrNonFinite)
	}
	return FormatFloat(y), nil
}
