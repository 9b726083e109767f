package catalog

import (
	"context"
	_ "embed"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/MikeMC777/pipedrill-shop/internal/store"
)

//go:embed seed.json
var seedJSON []byte

// SampleCatalog returns the catalog written on first start.
func SampleCatalog() (Document, error) {
	var doc Document
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(seedJSON, &doc); err != nil {
		return Document{}, errors.Wrap(err, "decode sample catalog")
	}
	return doc, nil
}

// Seed writes the sample catalog if no catalog document exists yet.
func (r *StoreRepo) Seed(ctx context.Context) (bool, error) {
	doc, err := SampleCatalog()
	if err != nil {
		return false, err
	}
	created, err := store.Init(ctx, r.st, store.Catalog, doc)
	if err != nil {
		return false, errors.Wrap(err, "seed catalog")
	}
	if created {
		zap.L().Info("catalog seeded",
			zap.Int("products", len(doc.Products)),
			zap.Int("services", len(doc.Services)))
	}
	return created, nil
}
