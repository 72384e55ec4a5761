package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AuditLog records authentication events in PostgreSQL. Writes are
// best-effort: the account service logs failures and moves on, so a Postgres
// outage never blocks a login.
type AuditLog struct {
	pool *pgxpool.Pool
}

func NewAuditLog(pool *pgxpool.Pool) *AuditLog {
	return &AuditLog{pool: pool}
}

// Migrate creates the auth_events table if it doesn't exist.
func (l *AuditLog) Migrate(ctx context.Context) error {
	ctx, cancel := opContext(ctx)
	defer cancel()

	_, err := l.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS auth_events (
			id          UUID PRIMARY KEY,
			action      VARCHAR(32)  NOT NULL,
			subject     VARCHAR(64)  NOT NULL,
			email       VARCHAR(255) NOT NULL,
			occurred_at TIMESTAMPTZ  NOT NULL
		)
	`)
	return err
}

// Record appends one event row.
func (l *AuditLog) Record(ctx context.Context, action, subject, email string) error {
	ctx, cancel := opContext(ctx)
	defer cancel()

	_, err := l.pool.Exec(ctx,
		`INSERT INTO auth_events (id, action, subject, email, occurred_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), action, subject, email, time.Now(),
	)
	return err
}
