// Package catalog lists products and services and handles the admin
// add/delete of products over the catalog document.
package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/MikeMC777/pipedrill-shop/internal/store"
)

type Repository interface {
	ListProducts(ctx context.Context) ([]store.Record, error)
	ListServices(ctx context.Context) ([]store.Record, error)
	AddProduct(ctx context.Context, fields store.Record) (int64, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type StoreRepo struct{ st *store.Store }

func NewStoreRepo(st *store.Store) *StoreRepo { return &StoreRepo{st: st} }

// ListProducts returns products in stored order.
func (r *StoreRepo) ListProducts(ctx context.Context) ([]store.Record, error) {
	doc, err := store.Load[Document](ctx, r.st, store.Catalog)
	if err != nil {
		return nil, err
	}
	return store.OrEmpty(doc.Products), nil
}

func (r *StoreRepo) ListServices(ctx context.Context) ([]store.Record, error) {
	doc, err := store.Load[Document](ctx, r.st, store.Catalog)
	if err != nil {
		return nil, err
	}
	return store.OrEmpty(doc.Services), nil
}

// AddProduct appends fields as a new product with id = max(ids)+1. Fields are
// stored as sent; only "id" is overwritten.
func (r *StoreRepo) AddProduct(ctx context.Context, fields store.Record) (int64, error) {
	var id int64
	err := store.Update(ctx, r.st, store.Catalog, func(doc Document) (Document, error) {
		id = store.NextID(doc.Products)
		p := fields.Clone()
		p["id"] = id
		doc.Products = append(doc.Products, p)
		doc.Services = store.OrEmpty(doc.Services)
		return doc, nil
	})
	if err != nil {
		return 0, err
	}
	zap.L().Info("product added", zap.Int64("id", id))
	return id, nil
}

// DeleteProduct drops every product with the given id. Deleting an id that
// does not exist is not an error.
func (r *StoreRepo) DeleteProduct(ctx context.Context, id int64) error {
	removed := 0
	err := store.Update(ctx, r.st, store.Catalog, func(doc Document) (Document, error) {
		kept := make([]store.Record, 0, len(doc.Products))
		for _, p := range doc.Products {
			if pid, ok := p.ID(); ok && pid == id {
				removed++
				continue
			}
			kept = append(kept, p)
		}
		doc.Products = kept
		doc.Services = store.OrEmpty(doc.Services)
		return doc, nil
	})
	if err != nil {
		return err
	}
	zap.L().Info("product deleted", zap.Int64("id", id), zap.Int("removed", removed))
	return nil
}
