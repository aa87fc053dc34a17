package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scicalc/internal/calc"
)

func newTestWindow(t *testing.T) *CalcWindow {
	t.Helper()
	a := test.NewTempApp(t)
	w := newCalcWindow(a)
	calc.NewController(w, nil)
	t.Cleanup(w.win.Close)
	return w
}

func tapKeys(w *CalcWindow, symbols ...string) {
	for _, s := range symbols {
		test.Tap(w.buttons[s])
	}
}

func TestCalcWindowHasFullKeypad(t *testing.T) {
	w := newTestWindow(t)
	require.Len(t, w.buttons, len(calc.Symbols()))
	for _, s := range calc.Symbols() {
		assert.Contains(t, w.buttons, s)
	}
	assert.True(t, w.win.FixedSize())
}

func TestKeypadTapsEvaluate(t *testing.T) {
	w := newTestWindow(t)
	tapKeys(w, "1", "2", "*", "(", "3", "+", "4", ")")
	assert.Equal(t, "12*(3+4)", w.DisplayText())

	tapKeys(w, "=")
	assert.Equal(t, "84", w.DisplayText())

	tapKeys(w, "C")
	assert.Empty(t, w.DisplayText())
}

func TestKeypadErrorThenDigit(t *testing.T) {
	w := newTestWindow(t)
	tapKeys(w, "1", "/", "0", "=")
	assert.Equal(t, calc.ErrorSentinel, w.DisplayText())

	tapKeys(w, "5")
	assert.Equal(t, "5", w.DisplayText())
}

func TestKeypadTransform(t *testing.T) {
	w := newTestWindow(t)
	tapKeys(w, "pi", "deg")
	assert.Equal(t, "180.0", w.DisplayText())
}

func TestDisplayEnterSubmits(t *testing.T) {
	w := newTestWindow(t)
	tapKeys(w, "9", "-", "4")

	w.display.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	assert.Equal(t, "5", w.DisplayText())

	tapKeys(w, "+", "1")
	w.display.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEnter})
	assert.Equal(t, "6", w.DisplayText())
}

func TestDisplayRejectsTyping(t *testing.T) {
	w := newTestWindow(t)
	tapKeys(w, "7")
	w.display.TypedRune('3')
	w.display.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	assert.Equal(t, "7", w.DisplayText())
}

func TestSetDisplayTextFocusesDisplay(t *testing.T) {
	w := newTestWindow(t)
	w.win.Canvas().Unfocus()
	w.SetDisplayText("42")
	assert.Equal(t, fyne.Focusable(w.display), w.win.Canvas().Focused())
}

func TestDisplayRendering(t *testing.T) {
	w := newTestWindow(t)
	w.SetDisplayText("3.5")

	r, ok := test.WidgetRenderer(w.display).(*displayRenderer)
	require.True(t, ok)
	assert.Equal(t, "3.5", r.text.Text)
	assert.Equal(t, fyne.TextAlignTrailing, r.text.Alignment)
	assert.Equal(t, float32(DisplayTextSize), r.text.TextSize)
	assert.Equal(t, float32(DisplayHeight), w.display.MinSize().Height)
}

func TestKeyButtonSize(t *testing.T) {
	w := newTestWindow(t)
	assert.Equal(t, NewButtonSize(), w.buttons["log10"].MinSize())
	assert.Equal(t, NewButtonSize(), w.buttons["7"].MinSize())
}

func TestKeyButtonPalette(t *testing.T) {
	tests := map[string]keyPalette{
		"7":   digitKeys,
		"00":  digitKeys,
		".":   digitKeys,
		"+":   operatorKeys,
		"(":   operatorKeys,
		"sin": functionKeys,
		"pi":  functionKeys,
		"Mod": functionKeys,
		"=":   equalsKey,
		"C":   clearKey,
	}
	for symbol, want := range tests {
		assert.Equal(t, want, paletteFor(symbol), "paletteFor(%q)", symbol)
	}
}

func TestKeyButtonHover(t *testing.T) {
	test.NewTempApp(t)
	btn := newKeyButton("=")
	test.WidgetRenderer(btn)
	require.NotNil(t, btn.bg)
	assert.Equal(t, equalsKey.fill, btn.bg.FillColor)

	btn.MouseIn(&desktop.MouseEvent{})
	assert.Equal(t, equalsKey.hover, btn.bg.FillColor)

	btn.MouseOut()
	assert.Equal(t, equalsKey.fill, btn.bg.FillColor)
}

func TestKeyButtonTapRunsAction(t *testing.T) {
	test.NewTempApp(t)
	btn := newKeyButton("7")
	test.Tap(btn)

	pressed := 0
	btn.OnPress(func() { pressed++ })
	test.Tap(btn)
	test.Tap(btn)
	assert.Equal(t, 2, pressed)
}
