package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tudu/internal/ui"
)

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

func teaProgram(app *ui.App) programRunner {
	return tea.NewProgram(app, tea.WithAltScreen())
}

func runTUI(cmd *cobra.Command, factory programFactory) error {
	s, err := openSession(cmd.Context(), os.Stdout)
	if err != nil {
		return err
	}
	defer s.Close()

	return runProgram(ui.Config{
		Manager:    s.mgr,
		Palette:    s.palette,
		Stylesheet: s.css,
		Version:    Version,
	}, ui.NewApp, factory)
}

func runProgram(cfg ui.Config, builder func(ui.Config) (*ui.App, error), factory programFactory) error {
	app, err := builder(cfg)
	if err != nil {
		if errors.Is(err, ui.ErrNoManager) {
			return err
		}
		return fmt.Errorf("initialize UI: %w", err)
	}
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}
