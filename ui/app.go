package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"scicalc/internal/calc"
)

// CalcWindow is the desktop view: a display above the keypad grid.
// It implements calc.View.
type CalcWindow struct {
	win     fyne.Window
	display *display
	buttons map[string]*keyButton
}

// BuildMainWindow creates the calculator window and wires it to a controller.
func BuildMainWindow(app fyne.App, log *slog.Logger) fyne.Window {
	w := newCalcWindow(app)
	calc.NewController(w, log)
	w.win.Canvas().Focus(w.display)
	return w.win
}

func newCalcWindow(app fyne.App) *CalcWindow {
	w := &CalcWindow{
		win:     app.NewWindow(WindowTitle),
		display: newDisplay(),
		buttons: make(map[string]*keyButton),
	}

	layout := calc.Layout()
	rows := make([]fyne.CanvasObject, 0, len(layout))
	for _, keys := range layout {
		cells := make([]fyne.CanvasObject, 0, len(keys))
		for _, symbol := range keys {
			btn := newKeyButton(symbol)
			w.buttons[symbol] = btn
			cells = append(cells, btn)
		}
		rows = append(rows, container.NewHBox(cells...))
	}

	content := container.NewVBox(
		w.display,
		container.NewCenter(container.NewVBox(rows...)),
	)

	w.win.SetContent(content)
	w.win.Resize(NewWindowSize())
	w.win.SetFixedSize(true)
	return w
}

// SetDisplayText replaces the display text and focuses the display.
func (w *CalcWindow) SetDisplayText(text string) {
	w.display.SetText(text)
	w.win.Canvas().Focus(w.display)
}

// DisplayText returns the display text.
func (w *CalcWindow) DisplayText() string {
	return w.display.Text()
}

// ClearDisplay empties the display.
func (w *CalcWindow) ClearDisplay() {
	w.SetDisplayText("")
}

// Buttons returns the keypad buttons keyed by symbol.
func (w *CalcWindow) Buttons() map[string]calc.Button {
	out := make(map[string]calc.Button, len(w.buttons))
	for symbol, btn := range w.buttons {
		out[symbol] = btn
	}
	return out
}

// OnSubmit sets the action for Enter/Return on the display.
func (w *CalcWindow) OnSubmit(action func()) {
	w.display.onSubmit = action
}
