package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// display is the single-line, right-aligned calculator readout. It takes
// keyboard focus but rejects typed text; Enter and Return run onSubmit.
type display struct {
	widget.BaseWidget

	text     string
	focused  bool
	onSubmit func()
}

func newDisplay() *display {
	d := &display{}
	d.ExtendBaseWidget(d)
	return d
}

// SetText replaces the shown text.
func (d *display) SetText(text string) {
	d.text = text
	d.Refresh()
}

// Text returns the shown text.
func (d *display) Text() string {
	return d.text
}

// FocusGained highlights the border.
func (d *display) FocusGained() {
	d.focused = true
	d.Refresh()
}

// FocusLost removes the border highlight.
func (d *display) FocusLost() {
	d.focused = false
	d.Refresh()
}

// TypedRune blocks all character input.
func (d *display) TypedRune(_ rune) {}

// TypedKey submits on Enter/Return and ignores every other key.
func (d *display) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyReturn, fyne.KeyEnter:
		if d.onSubmit != nil {
			d.onSubmit()
		}
	}
}

// Tapped moves focus to the display.
func (d *display) Tapped(_ *fyne.PointEvent) {
	if c := fyne.CurrentApp().Driver().CanvasForObject(d); c != nil {
		c.Focus(d)
	}
}

// CreateRenderer returns a custom renderer.
func (d *display) CreateRenderer() fyne.WidgetRenderer {
	d.ExtendBaseWidget(d)

	bg := canvas.NewRectangle(theme.InputBackgroundColor())
	bg.CornerRadius = theme.InputRadiusSize()
	bg.StrokeWidth = 2

	text := canvas.NewText(d.text, theme.ForegroundColor())
	text.Alignment = fyne.TextAlignTrailing
	text.TextSize = DisplayTextSize

	r := &displayRenderer{
		display: d,
		bg:      bg,
		text:    text,
		objects: []fyne.CanvasObject{bg, text},
	}
	r.Refresh()
	return r
}

type displayRenderer struct {
	display *display
	bg      *canvas.Rectangle
	text    *canvas.Text
	objects []fyne.CanvasObject
}

func (r *displayRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)

	pad := theme.InnerPadding()
	textMin := r.text.MinSize()
	r.text.Move(fyne.NewPos(pad, (size.Height-textMin.Height)/2))
	r.text.Resize(fyne.NewSize(size.Width-pad*2, textMin.Height))
}

func (r *displayRenderer) MinSize() fyne.Size {
	return fyne.NewSize(r.text.MinSize().Width+theme.InnerPadding()*2, DisplayHeight)
}

func (r *displayRenderer) Refresh() {
	r.text.Text = r.display.text
	r.text.Color = theme.ForegroundColor()
	r.bg.FillColor = theme.InputBackgroundColor()
	if r.display.focused {
		r.bg.StrokeColor = theme.FocusColor()
	} else {
		r.bg.StrokeColor = theme.InputBorderColor()
	}

	r.bg.Refresh()
	r.text.Refresh()
}

func (r *displayRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *displayRenderer) Destroy()                     {}
