package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"scicalc/internal/calc"
)

// keyPalette holds the colours of one kind of key.
type keyPalette struct {
	fill  color.Color
	hover color.Color
}

var (
	digitKeys    = keyPalette{fill: color.NRGBA{R: 70, G: 70, B: 74, A: 255}, hover: color.NRGBA{R: 96, G: 96, B: 102, A: 255}}
	operatorKeys = keyPalette{fill: color.NRGBA{R: 90, G: 90, B: 96, A: 255}, hover: color.NRGBA{R: 116, G: 116, B: 124, A: 255}}
	functionKeys = keyPalette{fill: color.NRGBA{R: 44, G: 62, B: 80, A: 255}, hover: color.NRGBA{R: 62, G: 86, B: 110, A: 255}}
	equalsKey    = keyPalette{fill: color.NRGBA{R: 230, G: 126, B: 34, A: 255}, hover: color.NRGBA{R: 243, G: 156, B: 18, A: 255}}
	clearKey     = keyPalette{fill: color.NRGBA{R: 192, G: 57, B: 43, A: 255}, hover: color.NRGBA{R: 231, G: 76, B: 60, A: 255}}

	keyLabelColor = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
)

func paletteFor(symbol string) keyPalette {
	switch calc.Classify(symbol) {
	case calc.ClassEvaluate:
		return equalsKey
	case calc.ClassClear:
		return clearKey
	case calc.ClassAngleTransform, calc.ClassTransform, calc.ClassConstant, calc.ClassModulo:
		return functionKeys
	}
	if len(symbol) == 1 && (symbol[0] < '0' || symbol[0] > '9') && symbol != "." {
		return operatorKeys
	}
	return digitKeys
}

// keyButton is a fixed-size keypad key that lightens under the pointer.
// It satisfies calc.Button.
type keyButton struct {
	widget.BaseWidget

	symbol  string
	palette keyPalette
	action  func()
	hovered bool

	bg *canvas.Rectangle
}

var (
	_ fyne.Tappable     = (*keyButton)(nil)
	_ desktop.Hoverable = (*keyButton)(nil)
)

func newKeyButton(symbol string) *keyButton {
	btn := &keyButton{symbol: symbol, palette: paletteFor(symbol)}
	btn.ExtendBaseWidget(btn)
	return btn
}

// OnPress binds the tap action.
func (b *keyButton) OnPress(action func()) {
	b.action = action
}

func (b *keyButton) Tapped(*fyne.PointEvent) {
	if b.action != nil {
		b.action()
	}
}

func (b *keyButton) MouseIn(*desktop.MouseEvent) {
	b.hovered = true
	b.Refresh()
}

func (b *keyButton) MouseMoved(*desktop.MouseEvent) {}

func (b *keyButton) MouseOut() {
	b.hovered = false
	b.Refresh()
}

func (b *keyButton) MinSize() fyne.Size {
	return NewButtonSize()
}

func (b *keyButton) fill() color.Color {
	if b.hovered {
		return b.palette.hover
	}
	return b.palette.fill
}

func (b *keyButton) Refresh() {
	if b.bg != nil {
		b.bg.FillColor = b.fill()
		b.bg.Refresh()
	}
	b.BaseWidget.Refresh()
}

func (b *keyButton) CreateRenderer() fyne.WidgetRenderer {
	b.bg = canvas.NewRectangle(b.fill())
	b.bg.CornerRadius = theme.InputRadiusSize()

	label := canvas.NewText(b.symbol, keyLabelColor)
	label.TextStyle = fyne.TextStyle{Bold: true}

	return widget.NewSimpleRenderer(container.NewStack(b.bg, container.NewCenter(label)))
}
