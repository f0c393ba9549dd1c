package theme

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	apperrors "tudu/internal/errors"
)

// StorageKey is the key the active theme id is persisted under.
const StorageKey = "todo-app-theme"

// Store is the persistent key-value slot the manager writes its choice to.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// PreferenceSource reports whether the user's system prefers a dark appearance.
type PreferenceSource interface {
	PrefersDark() bool
}

// Surface receives the applied theme: one call per color variable plus the
// root dark flag.
type Surface interface {
	SetVariable(name, value string)
	SetDarkFlag(dark bool)
}

// Option configures a Manager.
type Option func(*Manager)

// WithDefaults overrides the fallback ids used when no valid id is persisted.
func WithDefaults(lightID, darkID string) Option {
	return func(m *Manager) {
		m.defaultLight = lightID
		m.defaultDark = darkID
	}
}

// WithLogger sets the logger used for persistence failures.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Manager) {
		m.log = l
	}
}

// WithStorageKey overrides StorageKey.
func WithStorageKey(key string) Option {
	return func(m *Manager) {
		m.storageKey = key
	}
}

// Manager tracks the active theme and pushes it to a Surface.
//
// Initialize must return before any other method is called; the manager does
// not enforce that ordering.
type Manager struct {
	mu       sync.RWMutex
	activeID string

	registry *Registry
	store    Store
	prefs    PreferenceSource
	surface  Surface
	log      zerolog.Logger

	storageKey   string
	defaultLight string
	defaultDark  string
}

// NewManager builds a manager over reg. Nil collaborators are replaced with
// no-op implementations. The default light id is active until Initialize.
func NewManager(reg *Registry, store Store, prefs PreferenceSource, surface Surface, opts ...Option) (*Manager, error) {
	if reg == nil || reg.Len() == 0 {
		return nil, apperrors.New(apperrors.CodeConfigurationError, "theme registry is empty", nil)
	}
	m := &Manager{
		registry:     reg,
		store:        store,
		prefs:        prefs,
		surface:      surface,
		log:          zerolog.Nop(),
		storageKey:   StorageKey,
		defaultLight: DefaultLightID,
		defaultDark:  DefaultDarkID,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.store == nil {
		m.store = nopStore{}
	}
	if m.prefs == nil {
		m.prefs = staticPreference(false)
	}
	if m.surface == nil {
		m.surface = nopSurface{}
	}
	for _, id := range []string{m.defaultLight, m.defaultDark} {
		if !reg.Has(id) {
			return nil, apperrors.New(apperrors.CodeNotFound,
				fmt.Sprintf("default theme %q is not registered", id), nil)
		}
	}
	m.activeID = m.defaultLight
	return m, nil
}

// Initialize resolves the active theme from the store, falling back to the
// preference source, and applies it. It does not persist anything, so calling
// it again with unchanged inputs yields the same state.
func (m *Manager) Initialize() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.defaultLight
	if saved, ok := m.store.Get(m.storageKey); ok && m.registry.Has(saved) {
		id = saved
	} else if m.prefs.PrefersDark() {
		id = m.defaultDark
	}
	m.activeID = id

	t, _ := m.registry.Lookup(id)
	m.apply(t)
	m.log.Debug().Str("theme", id).Msg("theme initialized")
}

// Current returns the active theme.
func (m *Manager) Current() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, _ := m.registry.Lookup(m.activeID)
	return t
}

// Themes lists every registered theme in registration order.
func (m *Manager) Themes() []Theme {
	return m.registry.All()
}

// SetTheme activates, applies, and persists id. Unknown ids are ignored.
func (m *Manager) SetTheme(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setLocked(id)
}

// ToggleMode switches to the opposite mode of the active palette. When the
// palette has no counterpart the call is ignored.
func (m *Manager) ToggleMode() {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, _ := m.registry.Lookup(m.activeID)
	m.setLocked(current.Counterpart())
}

func (m *Manager) setLocked(id string) {
	t, ok := m.registry.Lookup(id)
	if !ok {
		return
	}
	m.activeID = id
	m.apply(t)
	m.persist(id)
}

func (m *Manager) apply(t Theme) {
	for _, role := range Roles {
		m.surface.SetVariable(VariableName(role), t.Colors.Get(role))
	}
	m.surface.SetDarkFlag(t.IsDark)
}

// persist failures cost durability only; the in-memory choice stands.
func (m *Manager) persist(id string) {
	if err := m.store.Set(m.storageKey, id); err != nil {
		m.log.Warn().Err(err).Str("theme", id).Msg("persist theme failed")
	}
}

type nopStore struct{}

func (nopStore) Get(string) (string, bool) { return "", false }
func (nopStore) Set(string, string) error  { return nil }

type staticPreference bool

func (p staticPreference) PrefersDark() bool { return bool(p) }

type nopSurface struct{}

func (nopSurface) SetVariable(string, string) {}
func (nopSurface) SetDarkFlag(bool)           {}
