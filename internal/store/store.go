// Package store keeps each collection as one whole JSON document behind a
// pluggable Backend. Every mutation is a full read-modify-write of its document.
package store

import (
	"bytes"
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Document names.
const (
	Catalog  = "catalog"
	Requests = "requests"
	Orders   = "orders"
)

var (
	ErrCorrupt     = errors.New("document is not valid JSON")
	ErrUnavailable = errors.New("storage unavailable")
	ErrNotObject   = errors.New("body must be a JSON object")
)

// codec keeps numbers as json.Number so integers beyond 2^53 survive a
// read-modify-write unchanged.
var codec = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// Backend persists raw document bytes.
//
// Read returns nil, nil for a document that does not exist yet. Update hands fn
// the current bytes (nil when absent) and stores whatever fn returns; a nil
// result leaves the document untouched. Updates of the same document never
// interleave.
type Backend interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Update(ctx context.Context, name string, fn func(cur []byte) ([]byte, error)) error
	Close() error
}

type Store struct {
	backend Backend
	strict  bool
}

type Option func(*Store)

// WithStrictLoad makes reads of unreadable or corrupt documents fail with
// ErrUnavailable/ErrCorrupt instead of yielding an empty document.
func WithStrictLoad(strict bool) Option {
	return func(s *Store) { s.strict = strict }
}

func New(b Backend, opts ...Option) *Store {
	s := &Store{backend: b}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Store) Close() error { return s.backend.Close() }

// Unavailable reports whether err means the stored state could not be read.
func Unavailable(err error) bool {
	return errors.Is(err, ErrCorrupt) || errors.Is(err, ErrUnavailable)
}

// Load decodes the named document. A missing document yields the zero T.
func Load[T any](ctx context.Context, s *Store, name string) (T, error) {
	raw, err := s.backend.Read(ctx, name)
	if err != nil {
		var zero T
		zap.L().Warn("store: read failed", zap.String("document", name), zap.Error(err))
		if s.strict {
			return zero, errors.Wrapf(ErrUnavailable, "read %s: %v", name, err)
		}
		return zero, nil
	}
	return decode[T](s, name, raw)
}

// Save replaces the whole document.
func Save[T any](ctx context.Context, s *Store, name string, doc T) error {
	raw, err := encode(doc)
	if err != nil {
		return errors.Wrapf(err, "encode %s", name)
	}
	return s.backend.Update(ctx, name, func([]byte) ([]byte, error) { return raw, nil })
}

// Update loads the document, applies fn and writes the result back as one
// unit. An error from fn aborts without writing.
func Update[T any](ctx context.Context, s *Store, name string, fn func(doc T) (T, error)) error {
	return s.backend.Update(ctx, name, func(cur []byte) ([]byte, error) {
		doc, err := decode[T](s, name, cur)
		if err != nil {
			return nil, err
		}
		next, err := fn(doc)
		if err != nil {
			return nil, err
		}
		raw, err := encode(next)
		if err != nil {
			return nil, errors.Wrapf(err, "encode %s", name)
		}
		return raw, nil
	})
}

// Init writes doc only when the named document does not exist yet.
func Init[T any](ctx context.Context, s *Store, name string, doc T) (bool, error) {
	created := false
	err := s.backend.Update(ctx, name, func(cur []byte) ([]byte, error) {
		if cur != nil {
			return nil, nil
		}
		raw, err := encode(doc)
		if err != nil {
			return nil, errors.Wrapf(err, "encode %s", name)
		}
		created = true
		return raw, nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

// ParseObject decodes raw as a single JSON object with the document codec.
// Arrays, scalars, null and an empty body yield ErrNotObject.
func ParseObject(raw []byte) (Record, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, errors.Wrap(ErrNotObject, "empty body")
	}
	var r Record
	if err := codec.Unmarshal(raw, &r); err != nil {
		return nil, errors.Wrap(ErrNotObject, err.Error())
	}
	if r == nil {
		return nil, ErrNotObject
	}
	return r, nil
}

func decode[T any](s *Store, name string, raw []byte) (T, error) {
	var doc T
	if len(bytes.TrimSpace(raw)) == 0 {
		return doc, nil
	}
	if err := codec.Unmarshal(raw, &doc); err != nil {
		var zero T
		zap.L().Warn("store: corrupt document", zap.String("document", name), zap.Error(err))
		if s.strict {
			return zero, errors.Wrapf(ErrCorrupt, "%s: %v", name, err)
		}
		return zero, nil
	}
	return doc, nil
}

func encode(v any) ([]byte, error) {
	raw, err := codec.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(raw, '\n'), nil
}
