package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case toastTickMsg:
		// A newer toast restarted the timer; leave it up.
		if msg.started.Equal(m.toastStart) {
			m.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.themes)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
	case key.Matches(msg, m.keys.End):
		if len(m.themes) > 0 {
			m.cursor = len(m.themes) - 1
		}
	case key.Matches(msg, m.keys.Apply):
		if len(m.themes) == 0 {
			return m, nil
		}
		m.mgr.SetTheme(m.themes[m.cursor].ID)
		m.syncCursor()
		return m, m.showToast(fmt.Sprintf("Theme: %s", m.mgr.Current().Name))
	case key.Matches(msg, m.keys.Toggle):
		before := m.mgr.Current().ID
		m.mgr.ToggleMode()
		m.syncCursor()
		if m.mgr.Current().ID == before {
			return m, m.showToast("No light/dark pair for this palette")
		}
		return m, m.showToast(fmt.Sprintf("Theme: %s", m.mgr.Current().Name))
	case key.Matches(msg, m.keys.Copy):
		if m.css == nil {
			return m, nil
		}
		if err := m.copy(m.css.String()); err != nil {
			return m, m.showToast(fmt.Sprintf("Copy failed: %v", err))
		}
		return m, m.showToast("Stylesheet copied to clipboard")
	}
	return m, nil
}
