//go:build !darwin

package appearance

import (
	"os"
	"strconv"
	"strings"
)

// System inspects desktop hints from the environment: GTK_THEME
// ("Adwaita:dark") and COLORFGBG ("15;0", background last). Neither present
// means no decision.
type System struct {
	Getenv func(string) string
}

func (s System) Detect() (bool, bool) {
	getenv := s.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if gtk := strings.ToLower(getenv("GTK_THEME")); gtk != "" {
		return strings.HasSuffix(gtk, ":dark") || strings.HasSuffix(gtk, "-dark"), true
	}
	if fgbg := getenv("COLORFGBG"); fgbg != "" {
		parts := strings.Split(fgbg, ";")
		bg, err := strconv.Atoi(parts[len(parts)-1])
		if err != nil {
			return false, false
		}
		// ANSI 0-6 and 8 are dark backgrounds; 7 and 9-15 are light.
		return bg <= 6 || bg == 8, true
	}
	return false, false
}
