// Package app opens the store selected by the configuration and builds the
// catalog, request and order services on top of it.
package app

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/MikeMC777/pipedrill-shop/internal/catalog"
	"github.com/MikeMC777/pipedrill-shop/internal/config"
	"github.com/MikeMC777/pipedrill-shop/internal/order"
	"github.com/MikeMC777/pipedrill-shop/internal/request"
	"github.com/MikeMC777/pipedrill-shop/internal/store"
)

type Application struct {
	store    *store.Store
	Catalog  *catalog.StoreRepo
	Requests *request.StoreRepo
	Orders   *order.StoreRepo
}

// New opens the store and makes sure all three documents exist. The sample
// catalog is written only on the very first start.
func New(ctx context.Context, cfg config.Config) (*Application, error) {
	st, err := store.Open(ctx, store.Options{
		Driver:      cfg.StoreDriver,
		DataDir:     cfg.DataDir,
		BoltPath:    cfg.BoltPath,
		PostgresDSN: cfg.PostgresDSN,
		StrictLoad:  cfg.StrictLoad,
	})
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}
	a := FromStore(st)
	if err := a.init(ctx, cfg.SeedCatalog); err != nil {
		_ = st.Close()
		return nil, err
	}
	return a, nil
}

// FromStore wires the services over an already opened store.
func FromStore(st *store.Store) *Application {
	return &Application{
		store:    st,
		Catalog:  catalog.NewStoreRepo(st),
		Requests: request.NewStoreRepo(st),
		Orders:   order.NewStoreRepo(st),
	}
}

func (a *Application) init(ctx context.Context, seed bool) error {
	if seed {
		if _, err := a.Catalog.Seed(ctx); err != nil {
			return err
		}
	} else if _, err := store.Init(ctx, a.store, store.Catalog, catalog.Document{
		Products: []store.Record{},
		Services: []store.Record{},
	}); err != nil {
		return errors.Wrap(err, "init catalog")
	}
	if created, err := a.Requests.Init(ctx); err != nil {
		return errors.Wrap(err, "init requests")
	} else if created {
		zap.L().Info("requests document created")
	}
	if created, err := a.Orders.Init(ctx); err != nil {
		return errors.Wrap(err, "init orders")
	} else if created {
		zap.L().Info("orders document created")
	}
	return nil
}

func (a *Application) Close() error { return a.store.Close() }
