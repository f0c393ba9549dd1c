package surface

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"tudu/internal/theme"
)

// Palette is the terminal rendering surface. It keeps the applied variables
// and forwards the dark flag to its lipgloss renderer.
type Palette struct {
	mu       sync.RWMutex
	vars     map[string]string
	dark     bool
	renderer *lipgloss.Renderer
}

// NewPalette returns a palette bound to r, or to the default renderer when r
// is nil.
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Palette{vars: make(map[string]string), renderer: r}
}

func (p *Palette) SetVariable(name, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.vars[name] = value
}

func (p *Palette) SetDarkFlag(dark bool) {
	p.mu.Lock()
	p.dark = dark
	p.mu.Unlock()
	p.renderer.SetHasDarkBackground(dark)
}

// Dark reports the last applied dark flag.
func (p *Palette) Dark() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.dark
}

// Renderer returns the renderer styles should be built from.
func (p *Palette) Renderer() *lipgloss.Renderer {
	return p.renderer
}

// Value returns the raw value applied for role.
func (p *Palette) Value(role theme.Role) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.vars[theme.VariableName(role)]
}

// Color returns the terminal color for role. Terminals only take hex colors,
// so translucent values (rgba) resolve to the secondary text color instead.
func (p *Palette) Color(role theme.Role) lipgloss.Color {
	v := p.Value(role)
	if strings.HasPrefix(v, "#") {
		return lipgloss.Color(v)
	}
	if fb := p.Value(theme.RoleTextSecondary); strings.HasPrefix(fb, "#") {
		return lipgloss.Color(fb)
	}
	return lipgloss.Color("")
}

// Style returns a new style bound to the palette's renderer.
func (p *Palette) Style() lipgloss.Style {
	return p.renderer.NewStyle()
}
