package calc

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// number is an intermediate result: an exact integer, or a float once a
// float literal or a division is involved.
type number struct {
	i     *big.Int
	f     float64
	float bool
}

func intNumber(i *big.Int) number { return number{i: i} }

func floatNumber(f float64) number { return number{f: f, float: true} }

func (n number) isZero() bool {
	if n.float {
		return n.f == 0
	}
	return n.i.Sign() == 0
}

func (n number) String() string {
	if n.float {
		return FormatFloat(n.f)
	}
	return n.i.String()
}

func parseNumber(text string) (number, error) {
	if strings.ContainsRune(text, '.') {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return number{}, fmt.Errorf("%w: literal %q", ErrSyntax, text)
		}
		return floatNumber(f), nil
	}
	i, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return number{}, fmt.Errorf("%w: literal %q", ErrSyntax, text)
	}
	return intNumber(i), nil
}

func (n number) neg() number {
	if n.float {
		return floatNumber(-n.f)
	}
	return intNumber(new(big.Int).Neg(n.i))
}

// toFloat rounds an integer to the nearest float64; integers beyond the
// float64 range become infinite.
func (n number) toFloat() float64 {
	if n.float {
		return n.f
	}
	f, _ := new(big.Float).SetInt(n.i).Float64()
	return f
}

// apply computes a op b. Division always yields a float, and % is floored
// so the remainder takes the sign of the divisor.
func apply(op string, a, b number) (number, error) {
	if (op == "/" || op == "%") && b.isZero() {
		return number{}, fmt.Errorf("%w: %s by zero", ErrNonFinite, op)
	}
	if op != "/" && !a.float && !b.float {
		return applyInt(op, a.i, b.i)
	}

	x, y := a.toFloat(), b.toFloat()
	var r float64
	switch op {
	case "+":
		r = x + y
	case "-":
		r = x - y
	case "*":
		r = x * y
	case "/":
		r = x / y
	case "%":
		r = math.Mod(x, y)
		if r != 0 && (r < 0) != (y < 0) {
			r += y
		}
		if r == 0 {
			r = math.Copysign(0, y)
		}
	default:
		return number{}, fmt.Errorf("%w: %s", ErrUnsupported, op)
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return number{}, ErrNonFinite
	}
	return floatNumber(r), nil
}

func applyInt(op string, x, y *big.Int) (number, error) {
	r := new(big.Int)
	switch op {
	case "+":
		r.Add(x, y)
	case "-":
		r.Sub(x, y)
	case "*":
		r.Mul(x, y)
	case "%":
		r.Rem(x, y)
		if r.Sign() != 0 && r.Sign() != y.Sign() {
			r.Add(r, y)
		}
	default:
		return number{}, fmt.Errorf("%w: %s", ErrUnsupported, op)
	}
	return intNumber(r), nil
}
