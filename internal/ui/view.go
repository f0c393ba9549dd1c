package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"tudu/internal/theme"
	"tudu/internal/todo"
)

const defaultWidth = 80

func (m *App) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	st := newStyles(m.palette)
	current := m.mgr.Current()

	title := "tudu"
	if m.version != "" {
		title += " " + m.version
	}
	header := st.header.Width(width).Render(fmt.Sprintf("%s · %s", title, current.Name))

	listWidth := max(minListWidth, width/3)
	previewWidth := max(minListWidth, width-listWidth-4)

	left := st.pane.Width(listWidth).Render(m.renderThemeList(st, current, listWidth-2))
	right := st.pane.Width(previewWidth).Render(m.renderPreview(st, previewWidth-2))
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	var footer strings.Builder
	if m.toast != "" {
		footer.WriteString(st.toast.Render(m.toast))
		footer.WriteString("\n")
	}
	footer.WriteString(wordwrap.String(m.help.View(m.keys), width))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer.String())
}

func (m *App) renderThemeList(st styles, current theme.Theme, width int) string {
	var b strings.Builder
	b.WriteString(st.paneTitle.Render("Themes"))
	for i, t := range m.themes {
		marker := "  "
		if t.ID == current.ID {
			marker = "● "
		}
		mode := theme.ModeLight
		if t.IsDark {
			mode = theme.ModeDark
		}
		line := padRight(marker+t.Name, width-len(mode)-1) + " " + mode
		line = ansi.Truncate(line, width, "…")

		b.WriteString("\n")
		switch {
		case i == m.cursor:
			b.WriteString(st.selected.Render(line))
		case t.ID == current.ID:
			b.WriteString(st.active.Render(line))
		default:
			b.WriteString(st.muted.Render(line))
		}
	}
	return b.String()
}

func (m *App) renderPreview(st styles, width int) string {
	now := m.now()
	var b strings.Builder
	b.WriteString(st.paneTitle.Render("Preview"))
	b.WriteString("\n")
	b.WriteString(m.renderSwatches(st, width))
	for _, td := range m.todos {
		b.WriteString("\n")
		b.WriteString(m.renderTodo(st, td, now, width))
	}
	return b.String()
}

func (m *App) renderSwatches(st styles, width int) string {
	var parts []string
	used := 0
	for _, role := range theme.Roles {
		if used+3 > width {
			break
		}
		parts = append(parts, m.palette.Style().Foreground(m.palette.Color(role)).Render("██"))
		used += 3
	}
	return st.swatchText.Render(strings.Join(parts, " "))
}

func (m *App) renderTodo(st styles, td todo.Todo, now time.Time, width int) string {
	box := "[ ]"
	titleStyle := st.item
	if td.Completed {
		box = "[x]"
		titleStyle = st.done
	}

	var suffix []string
	if badge, ok := st.priority[td.Priority]; ok {
		suffix = append(suffix, badge.Render(string(td.Priority)))
	}
	for _, id := range td.Tags {
		if tg, ok := m.tags[id]; ok {
			suffix = append(suffix, m.palette.Style().Foreground(lipgloss.Color(tg.Color)).Render("#"+tg.Name))
		}
	}
	if label := FormatDue(td.DueDate, now); label != "" && !td.Completed {
		if td.Overdue(now) {
			suffix = append(suffix, st.overdue.Render(label))
		} else {
			suffix = append(suffix, st.muted.Render(label))
		}
	}

	tail := strings.Join(suffix, " ")
	room := width - ansi.StringWidth(box) - ansi.StringWidth(tail) - 2
	title := td.Title
	if room > 0 && ansi.StringWidth(title) > room {
		title = ansi.Truncate(title, room, "…")
	}
	return box + " " + titleStyle.Render(title) + " " + tail
}

func padRight(s string, width int) string {
	gap := width - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
