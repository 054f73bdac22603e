// internal/adapters/out/db/request_archive_pg.go
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	orderdom "houseit/internal/domain/order"
)

// RequestArchivePG mirrors confirmed booking requests into Postgres for
// reporting. Firestore stays the source of truth; rows here are written
// best-effort after checkout and are idempotent on request id.
//
// Schema:
//
//	CREATE TABLE IF NOT EXISTS booking_requests (
//	  request_id  TEXT PRIMARY KEY,
//	  user_id     TEXT NOT NULL,
//	  checkout_id TEXT,
//	  total       NUMERIC(12,2) NOT NULL,
//	  status      TEXT NOT NULL,
//	  items       JSONB NOT NULL,
//	  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type RequestArchivePG struct {
	DB *sql.DB
}

func NewRequestArchivePG(db *sql.DB) *RequestArchivePG {
	return &RequestArchivePG{DB: db}
}

// Archive upserts the request row. Re-archiving the same request id is
// a no-op, so checkout retries cannot duplicate rows.
func (r *RequestArchivePG) Archive(ctx context.Context, req orderdom.Request) error {
	if r == nil || r.DB == nil {
		return errors.New("request_archive_pg: db is nil")
	}
	rid := strings.TrimSpace(req.ID)
	if rid == "" {
		return errors.New("request_archive_pg: request id is empty")
	}

	itemsJSON, err := json.Marshal(req.Items)
	if err != nil {
		return fmt.Errorf("request_archive_pg: marshal items: %w", err)
	}

	createdAt := req.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	const q = `
INSERT INTO booking_requests (request_id, user_id, checkout_id, total, status, items, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (request_id) DO NOTHING
`
	_, err = r.DB.ExecContext(ctx, q,
		rid,
		strings.TrimSpace(req.UserID),
		strings.TrimSpace(req.CheckoutID),
		req.Total,
		string(req.Status),
		itemsJSON,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("request_archive_pg: insert: %w", err)
	}
	return nil
}

// CountByUser is a reporting helper (console side).
func (r *RequestArchivePG) CountByUser(ctx context.Context, userID string) (int, error) {
	if r == nil || r.DB == nil {
		return 0, errors.New("request_archive_pg: db is nil")
	}
	const q = `SELECT COUNT(*) FROM booking_requests WHERE user_id = $1`
	var total int
	if err := r.DB.QueryRowContext(ctx, q, strings.TrimSpace(userID)).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
