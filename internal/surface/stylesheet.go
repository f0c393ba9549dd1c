// Package surface holds the rendering targets a theme is applied to: a CSS
// stylesheet for the web front-end and a lipgloss palette for the terminal.
package surface

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DarkModeClass is the body class the web front-end keys its dark styles on.
const DarkModeClass = "dark-mode"

// Stylesheet collects visual variables and renders them as a :root rule.
// Variables keep the order they were first set in; setting one again
// replaces its value.
type Stylesheet struct {
	mu     sync.RWMutex
	names  []string
	values map[string]string
	dark   bool
}

// NewStylesheet returns an empty stylesheet.
func NewStylesheet() *Stylesheet {
	return &Stylesheet{values: make(map[string]string)}
}

func (s *Stylesheet) SetVariable(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[name]; !ok {
		s.names = append(s.names, name)
	}
	s.values[name] = value
}

func (s *Stylesheet) SetDarkFlag(dark bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dark = dark
}

// Variable returns the current value of name.
func (s *Stylesheet) Variable(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[name]
	return v, ok
}

// Variables returns a copy of every variable.
func (s *Stylesheet) Variables() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// DarkMode reports the root dark flag.
func (s *Stylesheet) DarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dark
}

// BodyClass returns DarkModeClass when the dark flag is set, else "".
func (s *Stylesheet) BodyClass() string {
	if s.DarkMode() {
		return DarkModeClass
	}
	return ""
}

// String renders the stylesheet.
func (s *Stylesheet) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	scheme := "light"
	if s.dark {
		scheme = "dark"
	}
	var b strings.Builder
	b.WriteString(":root {\n")
	fmt.Fprintf(&b, "  color-scheme: %s;\n", scheme)
	for _, name := range s.names {
		fmt.Fprintf(&b, "  %s: %s;\n", name, s.values[name])
	}
	b.WriteString("}\n")
	return b.String()
}

// WriteTo writes the rendered stylesheet to w.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// WriteFile writes the rendered stylesheet to path, creating parent
// directories.
func (s *Stylesheet) WriteFile(path string) error {
	//nolint:gosec // G301: output directory chosen by the user
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create stylesheet directory: %w", err)
	}
	//nolint:gosec // G306: stylesheets are public assets
	if err := os.WriteFile(path, []byte(s.String()), 0644); err != nil {
		return fmt.Errorf("write stylesheet: %w", err)
	}
	return nil
}
