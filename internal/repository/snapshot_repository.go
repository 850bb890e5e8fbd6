package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SnapshotRepository archives every fetched products index body.
type SnapshotRepository struct {
	DB *pgxpool.Pool
}

type SnapshotRecord struct {
	RunID     string
	FetchedAt time.Time
	Objects   int
	Body      []byte
}

func (r *SnapshotRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.DB.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS dropi_snapshots (
			run_id     UUID PRIMARY KEY,
			fetched_at TIMESTAMPTZ NOT NULL,
			objects    INTEGER NOT NULL,
			body       JSONB NOT NULL
		)
	`)
	return err
}

func (r *SnapshotRepository) Save(ctx context.Context, rec SnapshotRecord) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO dropi_snapshots (run_id, fetched_at, objects, body)
		VALUES ($1, $2, $3, $4)
	`, rec.RunID, rec.FetchedAt, rec.Objects, string(rec.Body))
	return err
}
