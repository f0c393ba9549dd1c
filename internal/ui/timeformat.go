package ui

import (
	"fmt"
	"math"
	"time"
)

// FormatDue describes a due date relative to now in calendar days. Results
// stay short enough to sit beside a to-do title.
func FormatDue(due *time.Time, now time.Time) string {
	if due == nil || due.IsZero() {
		return ""
	}

	local := due.In(now.Location())
	days := int(math.Round(startOfDay(local).Sub(startOfDay(now)).Hours() / 24))
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days < 0 && days > -100:
		return fmt.Sprintf("%dd late", -days)
	case days > 0 && days < 7:
		return fmt.Sprintf("in %dd", days)
	default:
		return formatAbsoluteDate(local, now)
	}
}

func formatAbsoluteDate(t, now time.Time) string {
	if t.Year() == now.Year() {
		return t.Format("Jan 2")
	}
	return t.Format("Jan '06")
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
