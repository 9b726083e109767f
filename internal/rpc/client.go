package rpc

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/MikeMC777/pipedrill-shop/internal/store"
)

// Client calls a Storefront server over an existing connection.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client { return &Client{cc: cc} }

func (c *Client) call(ctx context.Context, method string, in proto.Message) (map[string]any, error) {
	out := &structpb.Struct{}
	if err := c.cc.Invoke(ctx, fullMethod(method), in, out); err != nil {
		return nil, err
	}
	return out.AsMap(), nil
}

func (c *Client) list(ctx context.Context, method, key string) ([]store.Record, error) {
	body, err := c.call(ctx, method, &emptypb.Empty{})
	if err != nil {
		return nil, err
	}
	raw, _ := body[key].([]any)
	out := make([]store.Record, 0, len(raw))
	for _, x := range raw {
		m, ok := x.(map[string]any)
		if !ok {
			return nil, errors.Errorf("%s: entry is not an object", method)
		}
		out = append(out, store.Record(m))
	}
	return out, nil
}

func (c *Client) create(ctx context.Context, method, key string, fields map[string]any) (int64, error) {
	in, err := structpb.NewStruct(plain(fields).(map[string]any))
	if err != nil {
		return 0, errors.Wrap(err, "encode request")
	}
	body, err := c.call(ctx, method, in)
	if err != nil {
		return 0, err
	}
	return cast.ToInt64E(body[key])
}

func (c *Client) ListProducts(ctx context.Context) ([]store.Record, error) {
	return c.list(ctx, "ListProducts", "products")
}

func (c *Client) ListServices(ctx context.Context) ([]store.Record, error) {
	return c.list(ctx, "ListServices", "services")
}

func (c *Client) ListServiceRequests(ctx context.Context) ([]store.Record, error) {
	return c.list(ctx, "ListServiceRequests", "requests")
}

func (c *Client) ListProductOrders(ctx context.Context) ([]store.Record, error) {
	return c.list(ctx, "ListProductOrders", "orders")
}

func (c *Client) AddProduct(ctx context.Context, fields store.Record) (int64, error) {
	return c.create(ctx, "AddProduct", "product_id", fields)
}

func (c *Client) SubmitServiceRequest(ctx context.Context, fields store.Record) (int64, error) {
	return c.create(ctx, "SubmitServiceRequest", "request_id", fields)
}

func (c *Client) PlaceOrder(ctx context.Context, items any, total any) (int64, error) {
	return c.create(ctx, "PlaceOrder", "order_id", map[string]any{"items": items, "total": total})
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	_, err := c.call(ctx, "DeleteProduct", &structpb.Struct{Fields: map[string]*structpb.Value{
		"id": structpb.NewNumberValue(float64(id)),
	}})
	return err
}
