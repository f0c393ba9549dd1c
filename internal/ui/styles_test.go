package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"tudu/internal/todo"
)

func TestStylesFollowActiveTheme(t *testing.T) {
	h := newTestHarness(t, false)

	st := newStyles(h.palette)
	if got := st.header.GetBackground(); got != lipgloss.Color("#8774e1") {
		t.Fatalf("header background = %v, want purple primary", got)
	}

	h.mgr.SetTheme("green-light")
	st = newStyles(h.palette)
	if got := st.header.GetBackground(); got != lipgloss.Color("#2ecc71") {
		t.Fatalf("header background = %v, want green primary", got)
	}
}

func TestStylesTranslucentBorderFallsBack(t *testing.T) {
	h := newTestHarness(t, false)

	// borderColor is rgba in every built-in theme.
	st := newStyles(h.palette)
	if got := st.pane.GetBorderTopForeground(); got != lipgloss.Color("#666666") {
		t.Fatalf("border = %v, want secondary text color", got)
	}
}

func TestStylesPriorityBadges(t *testing.T) {
	h := newTestHarness(t, false)
	st := newStyles(h.palette)

	for _, p := range []todo.Priority{todo.PriorityLow, todo.PriorityMedium, todo.PriorityHigh} {
		if _, ok := st.priority[p]; !ok {
			t.Errorf("missing badge for priority %q", p)
		}
	}
}
