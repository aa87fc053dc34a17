package calc

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyFloat(t *testing.T, symbol, text string) float64 {
	t.Helper()
	out, err := Apply(symbol, text)
	require.NoError(t, err)
	v, err := strconv.ParseFloat(out, 64)
	require.NoError(t, err)
	return v
}

func TestApplyAngleFunctionsTakeDegrees(t *testing.T) {
	assert.InDelta(t, 0.5, applyFloat(t, "sin", "30"), 1e-12)
	assert.InDelta(t, 0.5, applyFloat(t, "cos", "60"), 1e-12)
	assert.InDelta(t, 1.0, applyFloat(t, "tan", "45"), 1e-12)
	assert.InDelta(t, 0.0, applyFloat(t, "tanh", "0"), 1e-12)
	assert.InDelta(t, 1.0, applyFloat(t, "cosh", "0"), 1e-12)
	// sinh(pi/2 rad) for 90 degrees
	assert.InDelta(t, 2.3012989023072947, applyFloat(t, "sinh", "90"), 1e-12)
}

func TestApplyDirectFunctions(t *testing.T) {
	out, err := Apply("deg", "3.141592653589793")
	require.NoError(t, err)
	assert.Equal(t, "180.0", out)

	out, err = Apply("log2", "8")
	require.NoError(t, err)
	assert.Equal(t, "3.0", out)

	out, err = Apply("log10", "1000")
	require.NoError(t, err)
	assert.Equal(t, "3.0", out)

	out, err = Apply("exp", "0")
	require.NoError(t, err)
	assert.Equal(t, "1.0", out)

	assert.InDelta(t, 1.0, applyFloat(t, "log", "2.718281828459045"), 1e-12)
	assert.InDelta(t, 1e-10, applyFloat(t, "expm1", "1e-10"), 1e-20)
}

func TestApplyFailures(t *testing.T) {
	_, err := Apply("sin", "")
	assert.ErrorIs(t, err, ErrNotANumber)

	_, err = Apply("sin", "2+2")
	assert.ErrorIs(t, err, ErrNotANumber)

	_, err = Apply("log", "0")
	assert.ErrorIs(t, err, ErrNonFinite)

	_, err = Apply("log", "-1")
	assert.ErrorIs(t, err, ErrNonFinite)

	_, err = Apply("exp", "1000")
	assert.ErrorIs(t, err, ErrNonFinite)

	_, err = Apply("sqrt", "4")
	assert.ErrorIs(t, err, ErrUnknownSymbol)
}
