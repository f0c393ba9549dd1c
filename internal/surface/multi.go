package surface

import "tudu/internal/theme"

// Multi fans every call out to each surface in order.
type Multi []theme.Surface

func (m Multi) SetVariable(name, value string) {
	for _, s := range m {
		s.SetVariable(name, value)
	}
}

func (m Multi) SetDarkFlag(dark bool) {
	for _, s := range m {
		s.SetDarkFlag(dark)
	}
}
