package ui

import "fyne.io/fyne/v2"

// WindowTitle is shown in the title bar.
const WindowTitle = "Calculator"

// Window dimensions
const (
	WindowWidth  = 520
	WindowHeight = 280
)

// Display dimensions
const (
	DisplayHeight   = 55
	DisplayTextSize = 24
)

// ButtonSize is the width and height of every keypad button.
const ButtonSize = 50

// NewWindowSize returns the fixed window size
func NewWindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}

// NewButtonSize returns the size of a keypad button
func NewButtonSize() fyne.Size {
	return fyne.NewSize(ButtonSize, ButtonSize)
}
