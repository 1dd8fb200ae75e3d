package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dstaley/umbra/internal/theme"
)

// PreferenceStore implements theme.Store over the preferences table.
type PreferenceStore struct {
	db *sql.DB
}

// NewPreferenceStore creates a PreferenceStore over an open connection.
func NewPreferenceStore(db *sql.DB) *PreferenceStore {
	return &PreferenceStore{db: db}
}

// Ensure PreferenceStore implements theme.Store.
var _ theme.Store = (*PreferenceStore)(nil)

// Get returns the stored value for key, with ok=false when absent.
func (s *PreferenceStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE key = ?`, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading preference %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *PreferenceStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("writing preference %q: %w", key, err)
	}
	return nil
}

// Delete removes a preference. Missing keys are not an error.
func (s *PreferenceStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM preferences WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("deleting preference %q: %w", key, err)
	}
	return nil
}
