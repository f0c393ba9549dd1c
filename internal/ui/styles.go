package ui

import (
	"github.com/charmbracelet/lipgloss"

	"tudu/internal/surface"
	"tudu/internal/theme"
	"tudu/internal/todo"
)

// styles are rebuilt from the palette on every render so a theme change shows
// up on the next frame.
type styles struct {
	header     lipgloss.Style
	pane       lipgloss.Style
	paneTitle  lipgloss.Style
	item       lipgloss.Style
	selected   lipgloss.Style
	active     lipgloss.Style
	muted      lipgloss.Style
	done       lipgloss.Style
	overdue    lipgloss.Style
	toast      lipgloss.Style
	swatchText lipgloss.Style
	priority   map[todo.Priority]lipgloss.Style
}

func newStyles(p *surface.Palette) styles {
	primary := p.Color(theme.RolePrimary)
	primaryDark := p.Color(theme.RolePrimaryDark)
	text := p.Color(theme.RoleTextPrimary)
	textMuted := p.Color(theme.RoleTextSecondary)
	card := p.Color(theme.RoleCardBackground)
	item := p.Color(theme.RoleItemBackground)
	border := p.Color(theme.RoleBorderColor)

	badge := func(c lipgloss.Color) lipgloss.Style {
		return p.Style().Foreground(item).Background(c).Bold(true).Padding(0, 1)
	}

	return styles{
		header: p.Style().
			Foreground(item).
			Background(primary).
			Bold(true).
			Padding(0, 1),
		pane: p.Style().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Background(card).
			Padding(0, 1),
		paneTitle: p.Style().Foreground(p.Color(theme.RoleSecondary)).Bold(true),
		item:      p.Style().Foreground(text).Background(item),
		selected: p.Style().
			Foreground(item).
			Background(primaryDark).
			Bold(true),
		active:     p.Style().Foreground(primary).Bold(true),
		muted:      p.Style().Foreground(textMuted),
		done:       p.Style().Foreground(textMuted).Strikethrough(true),
		overdue:    p.Style().Foreground(p.Color(theme.RoleDanger)).Bold(true),
		toast:      p.Style().Foreground(p.Color(theme.RoleSuccess)).Bold(true),
		swatchText: p.Style().Foreground(text),
		priority: map[todo.Priority]lipgloss.Style{
			todo.PriorityHigh:   badge(p.Color(theme.RoleDanger)),
			todo.PriorityMedium: badge(p.Color(theme.RoleWarning)),
			todo.PriorityLow:    badge(p.Color(theme.RoleSuccess)),
		},
	}
}
