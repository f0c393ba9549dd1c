package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"tudu/internal/theme"
)

// ThemeTableMarkdown lists themes as a markdown table, marking currentID.
func ThemeTableMarkdown(themes []theme.Theme, currentID string) string {
	var b strings.Builder
	b.WriteString("| | Theme | ID | Mode | Primary |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, t := range themes {
		marker := ""
		if t.ID == currentID {
			marker = "●"
		}
		mode := theme.ModeLight
		if t.IsDark {
			mode = theme.ModeDark
		}
		fmt.Fprintf(&b, "| %s | %s | `%s` | %s | `%s` |\n", marker, t.Name, t.ID, mode, t.Colors.Primary)
	}
	return b.String()
}

// RenderThemeTable renders the theme table for a terminal of the given width.
func RenderThemeTable(themes []theme.Theme, currentID string, dark bool, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	style := "light"
	if dark {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := renderer.Render(ThemeTableMarkdown(themes, currentID))
	if err != nil {
		return "", fmt.Errorf("render theme table: %w", err)
	}
	return out, nil
}
