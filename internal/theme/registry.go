package theme

import (
	"fmt"
	"strings"

	apperrors "tudu/internal/errors"
)

// Registry is a read-only, ordered collection of themes.
type Registry struct {
	themes []Theme
	byID   map[string]int
}

// NewRegistry validates and registers themes in the order given.
// Every theme must have an id and define every role; ids must be unique.
func NewRegistry(themes ...Theme) (*Registry, error) {
	r := &Registry{
		themes: make([]Theme, 0, len(themes)),
		byID:   make(map[string]int, len(themes)),
	}
	for _, t := range themes {
		id := strings.TrimSpace(t.ID)
		if id == "" {
			return nil, apperrors.New(apperrors.CodeIncompleteTheme, "theme id is empty", nil)
		}
		if missing := t.Colors.Missing(); len(missing) > 0 {
			return nil, apperrors.New(apperrors.CodeIncompleteTheme,
				fmt.Sprintf("theme %q is missing colors for %v", id, missing), nil)
		}
		if _, dup := r.byID[id]; dup {
			return nil, apperrors.New(apperrors.CodeDuplicateTheme,
				fmt.Sprintf("theme %q registered twice", id), nil)
		}
		r.byID[id] = len(r.themes)
		r.themes = append(r.themes, t)
	}
	return r, nil
}

// Lookup returns the theme registered under id.
func (r *Registry) Lookup(id string) (Theme, bool) {
	if r == nil {
		return Theme{}, false
	}
	i, ok := r.byID[id]
	if !ok {
		return Theme{}, false
	}
	return r.themes[i], true
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.Lookup(id)
	return ok
}

// All returns every theme in registration order. The slice is a copy.
func (r *Registry) All() []Theme {
	if r == nil {
		return nil
	}
	out := make([]Theme, len(r.themes))
	copy(out, r.themes)
	return out
}

// IDs returns every registered id in registration order.
func (r *Registry) IDs() []string {
	if r == nil {
		return nil
	}
	ids := make([]string, len(r.themes))
	for i, t := range r.themes {
		ids[i] = t.ID
	}
	return ids
}

// Len returns the number of registered themes.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.themes)
}
