// Package order places product orders from a cart snapshot and lists them.
package order

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/MikeMC777/pipedrill-shop/internal/store"
)

type Repository interface {
	PlaceOrder(ctx context.Context, items, total any) (int64, error)
	ListProductOrders(ctx context.Context) ([]store.Record, error)
}

type StoreRepo struct {
	st  *store.Store
	now func() time.Time
}

func NewStoreRepo(st *store.Store) *StoreRepo {
	return &StoreRepo{st: st, now: time.Now}
}

func (r *StoreRepo) WithClock(now func() time.Time) *StoreRepo {
	r.now = now
	return r
}

func (r *StoreRepo) Init(ctx context.Context) (bool, error) {
	return store.Init(ctx, r.st, store.Orders, []store.Record{})
}

// PlaceOrder appends an order with id = count+1. items and total are stored
// verbatim: the total is never recomputed from the items nor checked against
// catalog prices or stock.
func (r *StoreRepo) PlaceOrder(ctx context.Context, items, total any) (int64, error) {
	var id int64
	err := store.Update(ctx, r.st, store.Orders, func(list []store.Record) ([]store.Record, error) {
		id = int64(len(list)) + 1
		return append(list, store.Record{
			"id":        id,
			"items":     items,
			"total":     total,
			"timestamp": store.Timestamp(r.now()),
			"status":    StatusProcessing,
			"type":      TypeProduct,
		}), nil
	})
	if err != nil {
		return 0, err
	}
	zap.L().Info("order placed", zap.Int64("id", id), zap.Any("total", total))
	return id, nil
}

// ListProductOrders returns the entries tagged "product", in stored order.
func (r *StoreRepo) ListProductOrders(ctx context.Context) ([]store.Record, error) {
	list, err := store.Load[[]store.Record](ctx, r.st, store.Orders)
	if err != nil {
		return nil, err
	}
	return store.OfType(list, TypeProduct), nil
}

func DecodeOrders(records []store.Record) ([]ProductOrder, error) {
	return store.DecodeAll[ProductOrder](records)
}
