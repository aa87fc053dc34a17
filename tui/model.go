// Package tui runs the calculator in a terminal. Model is a bubbletea model
// that doubles as the calc.View for the controller.
package tui

import (
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"scicalc/internal/calc"
)

// key is one keypad cell. It satisfies calc.Button.
type key struct {
	symbol string
	action func()
}

// OnPress binds the action run when the key is pressed.
func (k *key) OnPress(action func()) { k.action = action }

func (k *key) press() {
	if k.action != nil {
		k.action()
	}
}

// typedAliases maps typed characters to keypad symbols whose label differs.
var typedAliases = map[string]string{
	"c": calc.SymbolClear,
	"%": calc.SymbolMod,
}

// Model is the terminal calculator.
type Model struct {
	display  string
	grid     [][]*key
	keys     map[string]*key
	row, col int
	onSubmit func()
	quitting bool
}

// NewModel builds the keypad and wires a controller to it.
func NewModel(log *slog.Logger) *Model {
	m := &Model{keys: make(map[string]*key)}
	for _, symbols := range calc.Layout() {
		row := make([]*key, 0, len(symbols))
		for _, s := range symbols {
			k := &key{symbol: s}
			m.keys[s] = k
			row = append(row, k)
		}
		m.grid = append(m.grid, row)
	}
	calc.NewController(m, log)
	return m
}

// SetDisplayText replaces the display text.
func (m *Model) SetDisplayText(text string) { m.display = text }

// DisplayText returns the display text.
func (m *Model) DisplayText() string { return m.display }

// ClearDisplay empties the display.
func (m *Model) ClearDisplay() { m.display = "" }

// Buttons returns the keypad keys by symbol.
func (m *Model) Buttons() map[string]calc.Button {
	out := make(map[string]calc.Button, len(m.keys))
	for s, k := range m.keys {
		out[s] = k
	}
	return out
}

// OnSubmit sets the action run by Enter.
func (m *Model) OnSubmit(action func()) { m.onSubmit = action }

// Selected returns the symbol under the cursor.
func (m *Model) Selected() string {
	return m.grid[m.row][m.col].symbol
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch s := keyMsg.String(); s {
	case "ctrl+c", "esc", "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		m.move(-1, 0)
	case "down", "j":
		m.move(1, 0)
	case "left", "h":
		m.move(0, -1)
	case "right", "l":
		m.move(0, 1)
	case " ":
		m.grid[m.row][m.col].press()
	case "enter":
		if m.onSubmit != nil {
			m.onSubmit()
		}
	default:
		if len(s) != 1 {
			break
		}
		if alias, ok := typedAliases[s]; ok {
			s = alias
		}
		if k, ok := m.keys[s]; ok {
			k.press()
		}
	}
	return m, nil
}

func (m *Model) move(dRow, dCol int) {
	rows := len(m.grid)
	cols := len(m.grid[0])
	m.row = (m.row + dRow + rows) % rows
	m.col = (m.col + dCol + cols) % cols
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	width := len(m.grid[0]) * keyWidth
	displayStyle := Styles.Display
	if m.display == calc.ErrorSentinel {
		displayStyle = Styles.DisplayError
	}
	// the border adds two columns
	display := displayStyle.Width(width - 2).Render(m.display)

	rows := make([]string, 0, len(m.grid))
	for r, keys := range m.grid {
		cells := make([]string, 0, len(keys))
		for c, k := range keys {
			cells = append(cells, keyStyle(k.symbol, r == m.row && c == m.col).Render(k.symbol))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	hint := Styles.Hint.Render("arrows move · space press · enter = · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, display, strings.Join(rows, "\n"), "", hint) + "\n"
}

func keyStyle(symbol string, selected bool) lipgloss.Style {
	if selected {
		return Styles.Selected
	}
	switch calc.Classify(symbol) {
	case calc.ClassClear:
		return Styles.Clear
	case calc.ClassEvaluate:
		return Styles.Equals
	case calc.ClassLiteral:
		return Styles.Key
	}
	return Styles.Function
}
