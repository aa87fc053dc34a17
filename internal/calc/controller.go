package calc

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

var ErrUnknownSymbol = errors.New("unknown keypad symbol")

// Button is a clickable keypad handle supplied by a view.
type Button interface {
	// OnPress sets the action run when the button is activated.
	OnPress(action func())
}

// View is the display and keypad the controller drives.
type View interface {
	SetDisplayText(text string)
	DisplayText() string
	ClearDisplay()
	Buttons() map[string]Button
	// OnSubmit sets the action run when Enter is pressed on the display.
	OnSubmit(action func())
}

// Controller routes keypad presses to the display. It keeps no state of its
// own: the pending expression is whatever the view is showing. All methods
// must be called from the view's event goroutine.
type Controller struct {
	view     View
	log      *slog.Logger
	handlers map[string]func()
}

// NewController builds the symbol handlers and binds them to the view's
// buttons and submit action.
func NewController(view View, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c := &Controller{view: view, log: log}
	c.handlers = c.buildHandlers()

	for symbol, btn := range view.Buttons() {
		if _, ok := c.handlers[symbol]; !ok {
			c.log.Warn("button has no handler", "symbol", symbol)
			continue
		}
		symbol := symbol
		btn.OnPress(func() {
			_ = c.Press(symbol)
		})
	}
	view.OnSubmit(c.Submit)
	return c
}

// Press handles a keypad symbol as if its button was clicked.
func (c *Controller) Press(symbol string) error {
	h, ok := c.handlers[symbol]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	c.log.Debug("key pressed", "symbol", symbol)
	h()
	return nil
}

// Submit evaluates the display text and replaces it with the result.
func (c *Controller) Submit() {
	expression := c.view.DisplayText()
	result, err := EvaluateErr(expression)
	if err != nil {
		c.log.Debug("evaluation failed", "expression", expression, "error", err)
		result = ErrorSentinel
	}
	c.view.SetDisplayText(result)
}

func (c *Controller) buildHandlers() map[string]func() {
	handlers := make(map[string]func(), len(keypadRows)*len(keypadRows[0]))
	for _, symbol := range Symbols() {
		switch Classify(symbol) {
		case ClassEvaluate:
			handlers[symbol] = c.Submit
		case ClassClear:
			handlers[symbol] = c.view.ClearDisplay
		case ClassModulo:
			handlers[symbol] = c.appender(ModuloOperator)
		case ClassConstant:
			text, _ := ConstantText(symbol)
			handlers[symbol] = c.appender(text)
		case ClassAngleTransform, ClassTransform:
			handlers[symbol] = c.transformer(symbol)
		default:
			handlers[symbol] = c.appender(symbol)
		}
	}
	return handlers
}

func (c *Controller) appender(text string) func() {
	return func() {
		c.clearError()
		c.view.SetDisplayText(c.view.DisplayText() + text)
	}
}

func (c *Controller) transformer(symbol string) func() {
	return func() {
		c.clearError()
		result, err := Apply(symbol, c.view.DisplayText())
		if err != nil {
			c.log.Debug("transform failed", "symbol", symbol, "error", err)
			c.view.ClearDisplay()
			return
		}
		c.view.SetDisplayText(result)
	}
}

func (c *Controller) clearError() {
	if c.view.DisplayText() == ErrorSentinel {
		c.view.ClearDisplay()
	}
}
