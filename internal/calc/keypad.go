package calc

import "math"

// Symbols with dedicated handlers.
const (
	SymbolEquals = "="
	SymbolClear  = "C"
	SymbolMod    = "Mod"
)

// Class groups keypad symbols by how a press is handled.
type Class int

const (
	ClassLiteral Class = iota
	ClassConstant
	ClassAngleTransform
	ClassTransform
	ClassModulo
	ClassEvaluate
	ClassClear
)

func (c Class) String() string {
	switch c {
	case ClassLiteral:
		return "literal"
	case ClassConstant:
		return "constant"
	case ClassAngleTransform:
		return "angle-transform"
	case ClassTransform:
		return "transform"
	case ClassModulo:
		return "modulo"
	case ClassEvaluate:
		return "evaluate"
	case ClassClear:
		return "clear"
	}
	return "unknown"
}

var keypadRows = [...][9]string{
	{"pi", "sin", "cos", "tan", "7", "8", "9", "/", "C"},
	{"2pi", "sinh", "cosh", "tanh", "4", "5", "6", "*", "("},
	{"log", "exp", "Mod", "e", "1", "2", "3", "-", ")"},
	{"log10", "log2", "expm1", "deg", "0", "00", ".", "+", "="},
}

// ModuloOperator is the expression text appended by the Mod key.
const ModuloOperator = "%"

var pi = math.Pi

// constants maps constant keys to the text they append.
var constants = map[string]string{
	"pi":  FormatFloat(pi),
	"2pi": FormatFloat(pi * 2),
	"e":   FormatFloat(math.E),
}

// Layout returns the keypad grid row by row. Each call returns a fresh copy.
func Layout() [][]string {
	out := make([][]string, len(keypadRows))
	for i, row := range keypadRows {
		out[i] = append([]string(nil), row[:]...)
	}
	return out
}

// Symbols returns every keypad symbol in layout order.
func Symbols() []string {
	var out []string
	for _, row := range keypadRows {
		out = append(out, row[:]...)
	}
	return out
}

// Classify reports how a press of symbol is handled. Symbols outside the
// keypad are classified as literals.
func Classify(symbol string) Class {
	switch symbol {
	case SymbolEquals:
		return ClassEvaluate
	case SymbolClear:
		return ClassClear
	case SymbolMod:
		return ClassModulo
	}
	if _, ok := constants[symbol]; ok {
		return ClassConstant
	}
	if t, ok := transforms[symbol]; ok {
		if t.angle {
			return ClassAngleTransform
		}
		return ClassTransform
	}
	return ClassLiteral
}

// ConstantText returns the text appended by a constant key.
func ConstantText(symbol string) (string, bool) {
	s, ok := constants[symbol]
	return s, ok
}
