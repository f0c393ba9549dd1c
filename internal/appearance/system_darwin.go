//go:build darwin

package appearance

import (
	"os/exec"
	"strings"
)

// System reads the macOS AppleInterfaceStyle default. The key only exists in
// dark mode, so a failed read means light.
type System struct{}

func (System) Detect() (bool, bool) {
	out, err := exec.Command("defaults", "read", "-g", "AppleInterfaceStyle").Output()
	if err != nil {
		return false, true
	}
	return strings.TrimSpace(string(out)) == "Dark", true
}
