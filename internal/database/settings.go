package database

import (
	"context"
	"database/sql"
	"time"
)

// SettingOpeningHours is the well-known key holding the free-text
// weekly opening-hours string.
const SettingOpeningHours = "opening_hours"

// GetSetting returns the value for a settings key, or "" when the key
// has never been written.
func (db *DB) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx,
		"SELECT value FROM settings WHERE key = ?", key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetSetting writes a settings key, creating it if absent.
func (db *DB) SetSetting(ctx context.Context, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		key, value, time.Now())
	return err
}

// OpeningHours reads the persisted weekly-hours string. Satisfies the
// availability service's OpeningHoursSource.
func (db *DB) OpeningHours(ctx context.Context) (string, error) {
	return db.GetSetting(ctx, SettingOpeningHours)
}
