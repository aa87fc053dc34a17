package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutShape(t *testing.T) {
	layout := Layout()
	require.Len(t, layout, 4)
	for _, row := range layout {
		assert.Len(t, row, 9)
	}
	assert.Equal(t, "pi", layout[0][0])
	assert.Equal(t, "=", layout[3][8])
}

func TestLayoutReturnsCopy(t *testing.T) {
	Layout()[0][0] = "x"
	assert.Equal(t, "pi", Layout()[0][0])
}

func TestSymbolsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range Symbols() {
		assert.False(t, seen[s], "duplicate symbol %q", s)
		seen[s] = true
	}
	assert.Len(t, seen, 36)
}

func TestClassify(t *testing.T) {
	tests := map[string]Class{
		"7":     ClassLiteral,
		"00":    ClassLiteral,
		"(":     ClassLiteral,
		"+":     ClassLiteral,
		"pi":    ClassConstant,
		"2pi":   ClassConstant,
		"e":     ClassConstant,
		"sin":   ClassAngleTransform,
		"tanh":  ClassAngleTransform,
		"log":   ClassTransform,
		"deg":   ClassTransform,
		"expm1": ClassTransform,
		"Mod":   ClassModulo,
		"=":     ClassEvaluate,
		"C":     ClassClear,
	}
	for symbol, want := range tests {
		assert.Equal(t, want, Classify(symbol), "Classify(%q)", symbol)
	}
}
