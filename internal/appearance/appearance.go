// Package appearance answers "does the user prefer a dark appearance?" for the
// theme manager, from explicit overrides, OS settings, or the terminal.
package appearance

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"

	apperrors "tudu/internal/errors"
)

// Modes accepted by FromMode.
const (
	ModeAuto  = "auto"
	ModeDark  = "dark"
	ModeLight = "light"
)

// EnvVar forces the preference when set to "dark" or "light".
const EnvVar = "TUDU_APPEARANCE"

// Detector reports a preference when it can decide one.
type Detector interface {
	Detect() (dark bool, decided bool)
}

// DetectorFunc adapts a function to Detector.
type DetectorFunc func() (bool, bool)

func (f DetectorFunc) Detect() (bool, bool) { return f() }

// Static always decides the given answer.
type Static bool

func (s Static) Detect() (bool, bool) { return bool(s), true }

// PrefersDark lets Static serve directly as a theme.PreferenceSource.
func (s Static) PrefersDark() bool { return bool(s) }

// Chain asks each detector in order; the first decided answer wins. With no
// decision it reports light.
type Chain []Detector

// PrefersDark implements theme.PreferenceSource.
func (c Chain) PrefersDark() bool {
	for _, d := range c {
		if d == nil {
			continue
		}
		if dark, ok := d.Detect(); ok {
			return dark
		}
	}
	return false
}

// Env reads EnvVar through lookup (os.LookupEnv when nil).
type Env struct {
	Lookup func(string) (string, bool)
}

func (e Env) Detect() (bool, bool) {
	lookup := e.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	v, ok := lookup(EnvVar)
	if !ok {
		return false, false
	}
	return parseMode(v)
}

// Terminal queries the terminal background color through termenv. Output
// that is not a terminal yields no decision.
type Terminal struct {
	Output *termenv.Output
}

func (t Terminal) Detect() (bool, bool) {
	out := t.Output
	if out == nil {
		out = termenv.DefaultOutput()
	}
	if out.Profile == termenv.Ascii {
		return false, false
	}
	return out.HasDarkBackground(), true
}

// FromMode builds the preference source for a configured mode. "auto" chains
// the environment override, the OS setting, then the terminal background.
func FromMode(mode string) (Chain, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeAuto:
		return Chain{Env{}, System{}, Terminal{}}, nil
	case ModeDark:
		return Chain{Static(true)}, nil
	case ModeLight:
		return Chain{Static(false)}, nil
	}
	return nil, apperrors.New(apperrors.CodeConfigurationError,
		fmt.Sprintf("unknown appearance %q (want auto, dark, or light)", mode), nil)
}

func parseMode(v string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case ModeDark:
		return true, true
	case ModeLight:
		return false, true
	}
	return false, false
}
