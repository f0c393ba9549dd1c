// Package ui implements the tudu terminal front-end: a theme picker beside a
// preview of the to-do list painted in the active theme.
package ui

import (
	"errors"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"tudu/internal/surface"
	"tudu/internal/theme"
	"tudu/internal/todo"
)

const (
	minListWidth  = 22
	toastDuration = 2 * time.Second
)

// ErrNoManager is returned by NewApp when Config.Manager is nil.
var ErrNoManager = errors.New("ui: theme manager is required")

// Config configures the UI application.
type Config struct {
	// Manager must already be initialized.
	Manager    *theme.Manager
	Palette    *surface.Palette
	Stylesheet *surface.Stylesheet
	Version    string
	Now        func() time.Time
	// CopyToClipboard defaults to clipboard.WriteAll.
	CopyToClipboard func(string) error
}

// App implements the Bubble Tea model.
type App struct {
	mgr     *theme.Manager
	palette *surface.Palette
	css     *surface.Stylesheet

	keys     KeyMap
	help     help.Model
	showHelp bool

	themes []theme.Theme
	cursor int

	todos []todo.Todo
	tags  map[int]todo.Tag
	now   func() time.Time

	width  int
	height int

	toast      string
	toastStart time.Time

	copy    func(string) error
	version string
}

// NewApp builds the model. A nil Palette gets a fresh one on the default
// renderer; it only receives variables from later theme changes, so callers
// normally pass the palette the manager already applies to.
func NewApp(cfg Config) (*App, error) {
	if cfg.Manager == nil {
		return nil, ErrNoManager
	}
	palette := cfg.Palette
	if palette == nil {
		palette = surface.NewPalette(nil)
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	copyFn := cfg.CopyToClipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	todos, tags := todo.Sample(now())
	tagIndex := make(map[int]todo.Tag, len(tags))
	for _, tg := range tags {
		tagIndex[tg.ID] = tg
	}

	app := &App{
		mgr:     cfg.Manager,
		palette: palette,
		css:     cfg.Stylesheet,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		themes:  cfg.Manager.Themes(),
		todos:   todos,
		tags:    tagIndex,
		now:     now,
		copy:    copyFn,
		version: cfg.Version,
	}
	app.syncCursor()
	return app, nil
}

// Init implements tea.Model.
func (m *App) Init() tea.Cmd {
	return nil
}

// CurrentTheme exposes the manager's active theme.
func (m *App) CurrentTheme() theme.Theme {
	return m.mgr.Current()
}

// syncCursor moves the cursor onto the active theme.
func (m *App) syncCursor() {
	current := m.mgr.Current().ID
	for i, t := range m.themes {
		if t.ID == current {
			m.cursor = i
			return
		}
	}
}

func (m *App) showToast(msg string) tea.Cmd {
	m.toast = msg
	m.toastStart = m.now()
	started := m.toastStart
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastTickMsg{started: started}
	})
}

type toastTickMsg struct {
	started time.Time
}
