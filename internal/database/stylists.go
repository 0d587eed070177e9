package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/markdias/hair.studio9381-sub000/internal/models"
)

// ErrStylistNotFound is returned when no active binding exists for a
// stylist name.
var ErrStylistNotFound = errors.New("stylist calendar binding not found")

// GetStylistCalendar returns the calendar id bound to a stylist name.
func (db *DB) GetStylistCalendar(ctx context.Context, stylist string) (string, error) {
	var calendarID string
	err := db.QueryRowContext(ctx, `
		SELECT calendar_id FROM stylist_calendars
		WHERE stylist = ? AND is_active = 1`, stylist,
	).Scan(&calendarID)
	if err == sql.ErrNoRows {
		return "", ErrStylistNotFound
	}
	if err != nil {
		return "", err
	}
	return calendarID, nil
}

// ListStylistCalendars returns all bindings, active first.
func (db *DB) ListStylistCalendars(ctx context.Context) ([]models.StylistCalendar, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT stylist, calendar_id, is_active, created_at, updated_at
		FROM stylist_calendars
		ORDER BY is_active DESC, stylist ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.StylistCalendar
	for rows.Next() {
		var sc models.StylistCalendar
		if err := rows.Scan(&sc.Stylist, &sc.CalendarID, &sc.IsActive, &sc.CreatedAt, &sc.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

// SyncStylistsFromRoster upserts the roster bindings and deactivates
// rows no longer present. Bindings are admin-owned; the engine only
// applies what the roster file says.
func (db *DB) SyncStylistsFromRoster(ctx context.Context, roster []models.StylistCalendar) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	seen := make(map[string]bool, len(roster))

	for _, sc := range roster {
		seen[sc.Stylist] = true
		_, err := tx.ExecContext(ctx, `
			INSERT INTO stylist_calendars (stylist, calendar_id, is_active, created_at, updated_at)
			VALUES (?, ?, 1, ?, ?)
			ON CONFLICT(stylist) DO UPDATE SET
				calendar_id = excluded.calendar_id,
				is_active = 1,
				updated_at = excluded.updated_at`,
			sc.Stylist, sc.CalendarID, now, now)
		if err != nil {
			return err
		}
	}

	rows, err := tx.QueryContext(ctx, "SELECT stylist FROM stylist_calendars WHERE is_active = 1")
	if err != nil {
		return err
	}
	var stale []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return err
		}
		if !seen[name] {
			stale = append(stale, name)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, name := range stale {
		if _, err := tx.ExecContext(ctx,
			"UPDATE stylist_calendars SET is_active = 0, updated_at = ? WHERE stylist = ?",
			now, name); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	db.logger.Info().Int("bindings", len(roster)).Int("deactivated", len(stale)).Msg("stylist roster synced")
	return nil
}
