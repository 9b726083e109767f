package main

import (
	"context"

	"github.com/MikeMC777/pipedrill-shop/internal/cart"
	"github.com/MikeMC777/pipedrill-shop/internal/client"
	"github.com/MikeMC777/pipedrill-shop/internal/rpc"
	"github.com/MikeMC777/pipedrill-shop/internal/store"
)

// shopAPI is what the commands need, over either transport.
type shopAPI interface {
	ListProducts(ctx context.Context) ([]store.Record, error)
	ListServices(ctx context.Context) ([]store.Record, error)
	ListServiceRequests(ctx context.Context) ([]store.Record, error)
	ListProductOrders(ctx context.Context) ([]store.Record, error)
	AddProduct(ctx context.Context, fields store.Record) (int64, error)
	DeleteProduct(ctx context.Context, id int64) error
	SubmitServiceRequest(ctx context.Context, fields store.Record) (int64, error)
	PlaceOrder(ctx context.Context, p cart.Payload) (int64, error)
}

type httpAPI struct{ *client.Client }

func (a httpAPI) PlaceOrder(ctx context.Context, p cart.Payload) (int64, error) {
	return a.Client.PlaceOrder(ctx, p)
}

type rpcAPI struct{ *rpc.Client }

func (a rpcAPI) PlaceOrder(ctx context.Context, p cart.Payload) (int64, error) {
	items := make([]any, len(p.Items))
	for i, l := range p.Items {
		items[i] = map[string]any{
			"id":       l.ID,
			"name":     l.Name,
			"price":    l.Price,
			"quantity": l.Quantity,
			"unit":     l.Unit,
			"image":    l.Image,
		}
	}
	return a.Client.PlaceOrder(ctx, items, p.Total)
}
