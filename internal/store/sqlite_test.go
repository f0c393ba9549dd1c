package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteUpsert(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tudu.db")

	s, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, ok, err := s.Lookup(ctx, "todo-app-theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put(ctx, "todo-app-theme", "purple-dark"))
	require.NoError(t, s.Set("todo-app-theme", "green-light"))

	got, ok := s.Get("todo-app-theme")
	assert.True(t, ok)
	assert.Equal(t, "green-light", got)

	var rows int
	require.NoError(t, s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM kv`).Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "tudu.db")

	s, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Set("todo-app-theme", "blue-dark"))
	require.NoError(t, s.Close())

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	var value string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, "todo-app-theme").Scan(&value))
	require.NoError(t, db.Close())
	assert.Equal(t, "blue-dark", value)

	reopened, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })
	got, ok := reopened.Get("todo-app-theme")
	assert.True(t, ok)
	assert.Equal(t, "blue-dark", got)
}

func TestSQLiteClosedDatabaseReadsAsAbsent(t *testing.T) {
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "tudu.db"))
	require.NoError(t, err)
	require.NoError(t, s.Set("todo-app-theme", "blue-dark"))
	require.NoError(t, s.Close())

	_, ok := s.Get("todo-app-theme")
	assert.False(t, ok)
	assert.Error(t, s.Set("todo-app-theme", "green-dark"))
}

func TestOpenSQLiteRejectsEmptyPath(t *testing.T) {
	_, err := OpenSQLite(context.Background(), "  ")
	assert.Error(t, err)
}
