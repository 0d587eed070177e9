package database

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/markdias/hair.studio9381-sub000/internal/models"
)

// UpsertClient creates or refreshes a client record keyed by email,
// merging name and phone. Empty incoming fields never blank out values
// already on file; the visit counter bumps on every call.
func (db *DB) UpsertClient(ctx context.Context, email, name, phone string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	now := time.Now()

	_, err := db.ExecContext(ctx, `
		INSERT INTO clients (email, name, phone, visits, created_at, updated_at)
		VALUES (?, ?, ?, 1, ?, ?)
		ON CONFLICT(email) DO UPDATE SET
			name = CASE WHEN excluded.name != '' THEN excluded.name ELSE clients.name END,
			phone = CASE WHEN excluded.phone != '' THEN excluded.phone ELSE clients.phone END,
			visits = clients.visits + 1,
			updated_at = excluded.updated_at`,
		email, name, phone, now, now)
	return err
}

// GetClientByEmail returns a client record, or nil when none exists.
func (db *DB) GetClientByEmail(ctx context.Context, email string) (*models.Client, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var c models.Client
	err := db.QueryRowContext(ctx, `
		SELECT id, email, name, phone, visits, created_at, updated_at
		FROM clients WHERE email = ?`, email,
	).Scan(&c.ID, &c.Email, &c.Name, &c.Phone, &c.Visits, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListClients returns all clients ordered by most recent activity.
func (db *DB) ListClients(ctx context.Context) ([]models.Client, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, email, name, phone, visits, created_at, updated_at
		FROM clients ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Client
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.Email, &c.Name, &c.Phone, &c.Visits, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
