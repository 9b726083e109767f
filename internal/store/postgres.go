package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

const documentsDDL = `
	CREATE TABLE IF NOT EXISTS documents (
		name       TEXT PRIMARY KEY,
		body       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

// PGBackend keeps each document as one jsonb row. Updates of a document are
// serialized with a transaction-scoped advisory lock on its name, which also
// covers the first write of a document that has no row yet.
type PGBackend struct{ db *pgxpool.Pool }

func NewPGBackend(db *pgxpool.Pool) *PGBackend { return &PGBackend{db: db} }

func OpenPGBackend(ctx context.Context, dsn string) (*PGBackend, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "create pool")
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}
	if _, err := pool.Exec(ctx, documentsDDL); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "create documents table")
	}
	return NewPGBackend(pool), nil
}

func (b *PGBackend) Read(ctx context.Context, name string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var body string
	err := b.db.QueryRow(ctx, `SELECT body::text FROM documents WHERE name=$1`, name).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return []byte(body), nil
}

func (b *PGBackend) Update(ctx context.Context, name string, fn func(cur []byte) ([]byte, error)) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := b.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, name); err != nil {
		return errors.Wrapf(err, "lock %s", name)
	}

	var cur []byte
	var body string
	err = tx.QueryRow(ctx, `SELECT body::text FROM documents WHERE name=$1`, name).Scan(&body)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
	case err != nil:
		return errors.Wrapf(err, "read %s", name)
	default:
		cur = []byte(body)
	}

	out, err := fn(cur)
	if err != nil || out == nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO documents (name, body, updated_at)
		VALUES ($1, CAST($2::text AS jsonb), NOW())
		ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()
	`, name, string(out)); err != nil {
		return errors.Wrapf(err, "write %s", name)
	}
	return tx.Commit(ctx)
}

func (b *PGBackend) Close() error {
	b.db.Close()
	return nil
}
