package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dstaley/umbra/internal/theme"
)

func TestNewDB_CreatesDirectoryAndFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "state", "umbra.db")

	db, err := NewDB(dbPath)
	require.NoError(t, err, "NewDB should create nested directories")
	defer db.Close()

	_, err = os.Stat(dbPath)
	require.NoError(t, err, "database file should exist after NewDB")
}

func TestNewDB_EnsuresSchema(t *testing.T) {
	db, err := NewDB(filepath.Join(t.TempDir(), "umbra.db"))
	require.NoError(t, err)
	defer db.Close()

	var name string
	err = db.Connection().QueryRow(
		`SELECT name FROM sqlite_master WHERE type='table' AND name='preferences'`,
	).Scan(&name)
	require.NoError(t, err, "preferences table should exist")
}

func TestNewDB_ReopenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "umbra.db")

	db1, err := NewDB(path)
	require.NoError(t, err)
	require.NoError(t, db1.Preferences().Set(context.Background(), "k", "v"))
	require.NoError(t, db1.Close())

	db2, err := NewDB(path)
	require.NoError(t, err)
	defer db2.Close()

	v, ok, err := db2.Preferences().Get(context.Background(), "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v", v)
}

func TestPreferenceStore_GetMissingKey(t *testing.T) {
	db, err := NewMemoryDB()
	require.NoError(t, err)
	defer db.Close()

	_, ok, err := db.Preferences().Get(context.Background(), "never-written")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPreferenceStore_SetOverwrites(t *testing.T) {
	db, err := NewMemoryDB()
	require.NoError(t, err)
	defer db.Close()

	prefs := db.Preferences()
	ctx := context.Background()

	require.NoError(t, prefs.Set(ctx, theme.ModeKey, "dark"))
	require.NoError(t, prefs.Set(ctx, theme.ModeKey, "light"))

	v, ok, err := prefs.Get(ctx, theme.ModeKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "light", v)
}

func TestPreferenceStore_Delete(t *testing.T) {
	db, err := NewMemoryDB()
	require.NoError(t, err)
	defer db.Close()

	prefs := db.Preferences()
	ctx := context.Background()

	require.NoError(t, prefs.Set(ctx, "k", "v"))
	require.NoError(t, prefs.Delete(ctx, "k"))
	require.NoError(t, prefs.Delete(ctx, "k"), "deleting a missing key is not an error")

	_, ok, err := prefs.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPreferenceStore_BacksThemeManager(t *testing.T) {
	db, err := NewMemoryDB()
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, db.Preferences().Set(ctx, theme.ModeKey, "dark"))

	m := theme.NewManager(ctx, db.Preferences(), nil)
	defer m.Close()
	require.Equal(t, theme.ModeDark, m.Mode())
	require.True(t, m.IsDark())
}
