package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tudu/internal/appearance"
	"tudu/internal/config"
	"tudu/internal/debug"
	"tudu/internal/store"
	"tudu/internal/surface"
	"tudu/internal/theme"
)

const openTimeout = 5 * time.Second

// session wires the theme manager to the configured store, preference source
// and surfaces. The manager is initialized before openSession returns.
type session struct {
	kv      store.KV
	mgr     *theme.Manager
	css     *surface.Stylesheet
	palette *surface.Palette
}

func openSession(ctx context.Context, out io.Writer) (*session, error) {
	opts := store.Options{Backend: config.GetString(config.KeyThemeStore)}
	var err error
	if opts.StateFile, err = config.StateFilePath(); err != nil {
		return nil, fmt.Errorf("resolve state file: %w", err)
	}
	if opts.DatabasePath, err = config.DatabasePath(); err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, openTimeout)
	defer cancel()
	kv, err := store.Open(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("open theme store: %w", err)
	}

	prefs, err := appearance.FromMode(config.GetString(config.KeyThemeAppearance))
	if err != nil {
		_ = kv.Close()
		return nil, err
	}

	css := surface.NewStylesheet()
	palette := surface.NewPalette(lipgloss.NewRenderer(out))
	mgr, err := theme.NewManager(theme.Builtin(), kv, prefs, surface.Multi{css, palette},
		theme.WithDefaults(
			config.GetString(config.KeyThemeDefaultLight),
			config.GetString(config.KeyThemeDefaultDark),
		),
		theme.WithLogger(debug.Logger()),
	)
	if err != nil {
		_ = kv.Close()
		return nil, fmt.Errorf("create theme manager: %w", err)
	}
	mgr.Initialize()
	debug.Logf("theme %s applied (backend %s)", mgr.Current().ID, opts.Backend)

	return &session{kv: kv, mgr: mgr, css: css, palette: palette}, nil
}

func (s *session) Close() error {
	return s.kv.Close()
}
