package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tudu/internal/config"
	apperrors "tudu/internal/errors"
	"tudu/internal/ui"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	root.SetArgs(args)

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	return out.String(), err
}

func memoryArgs(appearance string, args ...string) []string {
	return append(args, "--store", "memory", "--appearance", appearance)
}

func TestCurrentUsesPreferenceOnFirstRun(t *testing.T) {
	defer config.ResetForTesting(t)()

	out, err := executeCommand(t, memoryArgs("dark", "current")...)
	require.NoError(t, err)
	assert.Equal(t, "purple-dark\n", out)

	out, err = executeCommand(t, memoryArgs("light", "current")...)
	require.NoError(t, err)
	assert.Equal(t, "purple-light\n", out)
}

func TestSetPersistsAcrossRunsWithFileStore(t *testing.T) {
	defer config.ResetForTesting(t)()
	state := filepath.Join(t.TempDir(), "nested", "state.yaml")

	out, err := executeCommand(t, "set", "green-dark", "--state-file", state, "--appearance", "light")
	require.NoError(t, err)
	assert.Equal(t, "green-dark\n", out)

	data, err := os.ReadFile(state)
	require.NoError(t, err)
	assert.Contains(t, string(data), "green-dark")

	// The stored choice beats the light preference.
	out, err = executeCommand(t, "current", "--state-file", state, "--appearance", "light")
	require.NoError(t, err)
	assert.Equal(t, "green-dark\n", out)
}

func TestSetPersistsAcrossRunsWithSQLiteStore(t *testing.T) {
	defer config.ResetForTesting(t)()
	db := filepath.Join(t.TempDir(), "tudu.db")

	out, err := executeCommand(t, "set", "blue-light", "--store", "sqlite", "--db-path", db, "--appearance", "dark")
	require.NoError(t, err)
	assert.Equal(t, "blue-light\n", out)

	out, err = executeCommand(t, "current", "--store", "sqlite", "--db-path", db, "--appearance", "dark")
	require.NoError(t, err)
	assert.Equal(t, "blue-light\n", out)
}

func TestSetUnknownThemeIsSilent(t *testing.T) {
	defer config.ResetForTesting(t)()

	out, err := executeCommand(t, memoryArgs("light", "set", "neon-light")...)
	require.NoError(t, err)
	assert.Equal(t, "purple-light\n", out)
}

func TestSetRequiresThemeID(t *testing.T) {
	defer config.ResetForTesting(t)()

	_, err := executeCommand(t, memoryArgs("light", "set")...)
	require.Error(t, err)
}

func TestToggle(t *testing.T) {
	defer config.ResetForTesting(t)()
	state := filepath.Join(t.TempDir(), "state.yaml")

	out, err := executeCommand(t, "toggle", "--state-file", state, "--appearance", "light")
	require.NoError(t, err)
	assert.Equal(t, "purple-dark\n", out)

	out, err = executeCommand(t, "toggle", "--state-file", state, "--appearance", "light")
	require.NoError(t, err)
	assert.Equal(t, "purple-light\n", out)
}

func TestThemesPlain(t *testing.T) {
	defer config.ResetForTesting(t)()

	out, err := executeCommand(t, memoryArgs("dark", "themes", "--plain")...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[0], "MODE")

	var marked []string
	for _, line := range lines[1:] {
		if strings.HasPrefix(line, "*") {
			marked = append(marked, line)
		}
	}
	require.Len(t, marked, 1)
	assert.Contains(t, marked[0], "purple-dark")
	assert.Contains(t, marked[0], "Purple Dark")
}

func TestThemesMarkdown(t *testing.T) {
	defer config.ResetForTesting(t)()

	out, err := executeCommand(t, memoryArgs("light", "themes")...)
	require.NoError(t, err)
	assert.Contains(t, out, "blue-dark")
	assert.Contains(t, out, "green-light")
}

func TestCSSToStdout(t *testing.T) {
	defer config.ResetForTesting(t)()

	out, err := executeCommand(t, memoryArgs("light", "css")...)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, ":root {\n"))
	assert.Contains(t, out, "color-scheme: light;")
	assert.Contains(t, out, "--primary: #8774e1;")
	assert.Contains(t, out, "--border-color: rgba(0, 0, 0, 0.1);")
}

func TestCSSToFile(t *testing.T) {
	defer config.ResetForTesting(t)()
	path := filepath.Join(t.TempDir(), "theme.css")

	out, err := executeCommand(t, memoryArgs("dark", "css", "-o", path)...)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "color-scheme: dark;")
	assert.Contains(t, string(data), "--primary: #9b7dff;")
}

func TestUnknownStoreBackend(t *testing.T) {
	defer config.ResetForTesting(t)()

	_, err := executeCommand(t, "current", "--store", "redis")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeConfigurationError), "got %v", err)
}

func TestUnknownAppearance(t *testing.T) {
	defer config.ResetForTesting(t)()

	_, err := executeCommand(t, memoryArgs("sepia", "current")...)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeConfigurationError), "got %v", err)
}

func TestConfigDefaultsApplyWithoutFlags(t *testing.T) {
	defer config.ResetForTesting(t)()
	require.NoError(t, config.Set(config.KeyThemeStore, "memory"))
	require.NoError(t, config.Set(config.KeyThemeAppearance, "dark"))
	require.NoError(t, config.Set(config.KeyThemeDefaultDark, "blue-dark"))

	out, err := executeCommand(t, "current")
	require.NoError(t, err)
	assert.Equal(t, "blue-dark\n", out)
}

type fakeProgram struct {
	app *ui.App
	err error
}

func (p *fakeProgram) Run() (tea.Model, error) {
	return p.app, p.err
}

func TestRunTUI(t *testing.T) {
	defer config.ResetForTesting(t)()
	require.NoError(t, config.Set(config.KeyThemeStore, "memory"))
	require.NoError(t, config.Set(config.KeyThemeAppearance, "dark"))

	cmd := newRootCmd()
	cmd.SetContext(context.Background())

	var got *ui.App
	err := runTUI(cmd, func(app *ui.App) programRunner {
		got = app
		return &fakeProgram{app: app}
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "purple-dark", got.CurrentTheme().ID)
}

func TestRunProgram(t *testing.T) {
	t.Run("builderError", func(t *testing.T) {
		boom := errors.New("boom")
		err := runProgram(ui.Config{}, func(ui.Config) (*ui.App, error) { return nil, boom }, nil)
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "initialize UI")
	})

	t.Run("missingManager", func(t *testing.T) {
		err := runProgram(ui.Config{}, ui.NewApp, nil)
		require.ErrorIs(t, err, ui.ErrNoManager)
	})

	t.Run("nilFactory", func(t *testing.T) {
		err := runProgram(ui.Config{}, func(ui.Config) (*ui.App, error) { return &ui.App{}, nil }, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "factory is nil")
	})

	t.Run("runError", func(t *testing.T) {
		boom := errors.New("tty gone")
		err := runProgram(ui.Config{}, func(ui.Config) (*ui.App, error) { return &ui.App{}, nil },
			func(app *ui.App) programRunner { return &fakeProgram{app: app, err: boom} })
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "run UI")
	})
}
