package cli

import (
	"errors"
	"fmt"
	"io"
)

// Mode selects the front-end the process runs.
type Mode int

const (
	ModeGUI Mode = iota
	ModeTUI
	ModeHelp
)

var ErrUnknownArgs = errors.New("unknown arguments")

// ParseArgs picks the run mode from command-line arguments (without the
// program name). No arguments means the desktop window.
func ParseArgs(args []string) (Mode, error) {
	if len(args) == 0 {
		return ModeGUI, nil
	}
	if len(args) > 1 {
		return ModeHelp, fmt.Errorf("%w: %q", ErrUnknownArgs, args)
	}

	switch args[0] {
	case "help", "--help", "-h":
		return ModeHelp, nil
	case "tui", "term":
		return ModeTUI, nil
	}
	return ModeHelp, fmt.Errorf("%w: %q", ErrUnknownArgs, args[0])
}

// PrintUsage prints the help message.
func PrintUsage(w io.Writer) {
	fmt.Fprint(w, `Scientific Calculator

Usage: scicalc          open the calculator window
       scicalc tui      run the calculator in the terminal
       scicalc help     show this message

TERMINAL KEYS:
  arrows / h j k l         move over the keypad
  space                    press the selected key
  enter                    evaluate (same as =)
  0-9 . + - * / ( ) = %    press the matching key (% is Mod)
  c                        clear
  q, esc, ctrl+c           quit

ENVIRONMENT:
  SCICALC_CONFIG           config file (default: ~/.config/scicalc/config.toml)
  SCICALC_LOG_LEVEL        debug, info, warn or error (default: info)
  SCICALC_LOG_FILE         also append logs to this file
`)
}
