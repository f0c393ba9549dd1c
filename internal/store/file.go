package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	apperrors "tudu/internal/errors"
)

// File keeps values as top-level keys of a YAML file. Each call re-reads the
// file, so edits made by another process are picked up.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile returns a store backed by the YAML file at path. The file and its
// directory are created on the first Set.
func NewFile(path string) *File {
	return &File{path: strings.TrimSpace(path)}
}

// Path returns the backing file path.
func (f *File) Path() string { return f.path }

func (f *File) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, err := f.read()
	if err != nil || !v.IsSet(key) {
		return "", false
	}
	value := v.GetString(key)
	if strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

// Set writes key=value, preserving any other keys already in the file. A file
// that exists but cannot be parsed is left untouched.
func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, err := f.read()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return apperrors.New(apperrors.CodeStoreFailed, fmt.Sprintf("read %s", f.path), err)
	}
	v.Set(key, value)

	//nolint:gosec // G301: User state directory needs standard permissions
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return apperrors.New(apperrors.CodeStoreFailed, "create state directory", err)
	}
	if err := v.WriteConfigAs(f.path); err != nil {
		return apperrors.New(apperrors.CodeStoreFailed, fmt.Sprintf("write %s", f.path), err)
	}
	return nil
}

func (f *File) Close() error { return nil }

// read loads the file into a fresh viper instance. The instance is usable for
// writing even when an error is returned.
func (f *File) read() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(f.path)

	info, err := os.Stat(f.path)
	if err != nil {
		return v, err
	}
	if info.IsDir() {
		return v, fmt.Errorf("state path %s is a directory", f.path)
	}
	if err := v.ReadInConfig(); err != nil {
		return v, fmt.Errorf("parse %s: %w", f.path, err)
	}
	return v, nil
}
