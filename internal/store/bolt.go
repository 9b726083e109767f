package store

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

var documentsBucket = []byte("documents")

// BoltBackend keeps documents as values of a single bbolt bucket. Each Update
// runs inside one read-write transaction.
type BoltBackend struct{ db *bolt.DB }

func OpenBoltBackend(path string) (*BoltBackend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrapf(err, "create dir for %s", path)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open bolt %s", path)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(documentsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create documents bucket")
	}
	return &BoltBackend{db: db}, nil
}

func (b *BoltBackend) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		// values are only valid inside the transaction
		if v := tx.Bucket(documentsBucket).Get([]byte(name)); v != nil {
			out = append([]byte{}, v...)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return out, nil
}

func (b *BoltBackend) Update(ctx context.Context, name string, fn func(cur []byte) ([]byte, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		bk := tx.Bucket(documentsBucket)
		var cur []byte
		if v := bk.Get([]byte(name)); v != nil {
			cur = append([]byte{}, v...)
		}
		out, err := fn(cur)
		if err != nil || out == nil {
			return err
		}
		return bk.Put([]byte(name), out)
	})
}

func (b *BoltBackend) Close() error { return b.db.Close() }
