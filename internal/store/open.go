package store

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	DriverFile     = "file"
	DriverBolt     = "bolt"
	DriverPostgres = "postgres"
)

type Options struct {
	Driver      string
	DataDir     string
	BoltPath    string
	PostgresDSN string
	StrictLoad  bool
}

// Open builds a Store on the backend selected by opts.Driver.
func Open(ctx context.Context, opts Options) (*Store, error) {
	var (
		b   Backend
		err error
	)
	switch opts.Driver {
	case "", DriverFile:
		b, err = OpenFileBackend(opts.DataDir)
	case DriverBolt:
		b, err = OpenBoltBackend(opts.BoltPath)
	case DriverPostgres:
		b, err = OpenPGBackend(ctx, opts.PostgresDSN)
	default:
		return nil, errors.Errorf("unknown store driver %q", opts.Driver)
	}
	if err != nil {
		return nil, err
	}
	zap.L().Info("store opened",
		zap.String("driver", opts.Driver),
		zap.Bool("strict_load", opts.StrictLoad))
	return New(b, WithStrictLoad(opts.StrictLoad)), nil
}
