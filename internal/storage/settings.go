package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// GetSetting reads one settings value. Returns ErrNotFound when the key has
// never been set.
func (db *DB) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := db.conn.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE user_id = $1 AND key = $2`,
		defaultUserID, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("getting setting %q: %w", key, err)
	}
	return value, nil
}

// SetSetting writes one settings value, replacing any previous one.
func (db *DB) SetSetting(ctx context.Context, key, value string) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO settings (user_id, key, value) VALUES ($1,$2,$3)
		 ON CONFLICT (user_id, key) DO UPDATE SET value=excluded.value`,
		defaultUserID, key, value)
	if err != nil {
		return fmt.Errorf("setting %q: %w", key, err)
	}
	return nil
}
