// Package store provides the key-value backends the theme manager persists
// its choice to: an in-memory map, a YAML state file, and a SQLite table.
package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	apperrors "tudu/internal/errors"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// KV is the contract every backend satisfies.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Close() error
}

// Options selects and locates a backend.
type Options struct {
	Backend      string
	StateFile    string
	DatabasePath string
}

// Open returns the backend named by opts.Backend. An empty backend means file.
func Open(ctx context.Context, opts Options) (KV, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case "", BackendFile:
		if strings.TrimSpace(opts.StateFile) == "" {
			return nil, apperrors.New(apperrors.CodeConfigurationError, "file store requires a state file path", nil)
		}
		return NewFile(opts.StateFile), nil
	case BackendSQLite:
		if strings.TrimSpace(opts.DatabasePath) == "" {
			return nil, apperrors.New(apperrors.CodeConfigurationError, "sqlite store requires a database path", nil)
		}
		db, err := OpenSQLite(ctx, opts.DatabasePath)
		if err != nil {
			return nil, err
		}
		return db, nil
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, apperrors.New(apperrors.CodeConfigurationError,
			fmt.Sprintf("unknown store backend %q (want file, sqlite, or memory)", opts.Backend), nil)
	}
}

// Memory is a map-backed store. It lives as long as the process.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Close() error { return nil }
