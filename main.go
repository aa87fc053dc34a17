package main

import (
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2/app"
	tea "github.com/charmbracelet/bubbletea"

	"scicalc/internal/cli"
	"scicalc/internal/config"
	"scicalc/internal/logger"
	"scicalc/tui"
	"scicalc/ui"
)

func main() {
	mode, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		cli.PrintUsage(os.Stderr)
		os.Exit(1)
	}
	if mode == cli.ModeHelp {
		cli.PrintUsage(os.Stdout)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, closer, err := logger.Open(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if mode == cli.ModeTUI {
		if err := runTUI(log); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	log.Info("starting calculator", "app_id", cfg.AppID)
	a := app.NewWithID(cfg.AppID)
	win := ui.BuildMainWindow(a, log)
	win.ShowAndRun()
}

func runTUI(log *slog.Logger) error {
	log.Info("starting terminal calculator")
	p := tea.NewProgram(tui.NewModel(log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
