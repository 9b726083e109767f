// Package request accepts service-booking submissions and lists them.
package request

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/MikeMC777/pipedrill-shop/internal/store"
)

type Repository interface {
	Submit(ctx context.Context, fields store.Record) (int64, error)
	ListServiceRequests(ctx context.Context) ([]store.Record, error)
}

type StoreRepo struct {
	st  *store.Store
	now func() time.Time
}

func NewStoreRepo(st *store.Store) *StoreRepo {
	return &StoreRepo{st: st, now: time.Now}
}

// WithClock replaces the timestamp source.
func (r *StoreRepo) WithClock(now func() time.Time) *StoreRepo {
	r.now = now
	return r
}

// Init creates an empty requests document if there is none.
func (r *StoreRepo) Init(ctx context.Context) (bool, error) {
	return store.Init(ctx, r.st, store.Requests, []store.Record{})
}

// Submit stores fields as a new request with id = count+1. The assigned
// id, timestamp, status and type replace any submitted values for those keys.
func (r *StoreRepo) Submit(ctx context.Context, fields store.Record) (int64, error) {
	var id int64
	err := store.Update(ctx, r.st, store.Requests, func(list []store.Record) ([]store.Record, error) {
		id = int64(len(list)) + 1
		rec := fields.Clone()
		rec["id"] = id
		rec["timestamp"] = store.Timestamp(r.now())
		rec["status"] = StatusPending
		rec["type"] = TypeService
		return append(list, rec), nil
	})
	if err != nil {
		return 0, err
	}
	zap.L().Info("service request submitted", zap.Int64("id", id))
	return id, nil
}

// ListServiceRequests returns the entries tagged "service", in stored order.
func (r *StoreRepo) ListServiceRequests(ctx context.Context) ([]store.Record, error) {
	list, err := store.Load[[]store.Record](ctx, r.st, store.Requests)
	if err != nil {
		return nil, err
	}
	return store.OfType(list, TypeService), nil
}

func DecodeRequests(records []store.Record) ([]ServiceRequest, error) {
	return store.DecodeAll[ServiceRequest](records)
}
