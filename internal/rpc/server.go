package rpc

import (
	"context"
	"math"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/MikeMC777/pipedrill-shop/internal/catalog"
	"github.com/MikeMC777/pipedrill-shop/internal/order"
	"github.com/MikeMC777/pipedrill-shop/internal/request"
	"github.com/MikeMC777/pipedrill-shop/internal/store"
)

type Server struct {
	catalog  catalog.Repository
	requests request.Repository
	orders   order.Repository
}

var _ StorefrontServer = (*Server)(nil)

func NewServer(c catalog.Repository, r request.Repository, o order.Repository) *Server {
	return &Server{catalog: c, requests: r, orders: o}
}

func (s *Server) ListProducts(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	list, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, storeStatus(err)
	}
	return reply("products", list)
}

func (s *Server) ListServices(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	list, err := s.catalog.ListServices(ctx)
	if err != nil {
		return nil, storeStatus(err)
	}
	return reply("services", list)
}

func (s *Server) AddProduct(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	id, err := s.catalog.AddProduct(ctx, store.Record(in.AsMap()))
	if err != nil {
		return nil, storeStatus(err)
	}
	return reply("product_id", id)
}

// DeleteProduct takes {"id": n}. n must be a whole number.
func (s *Server) DeleteProduct(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	v := in.GetFields()["id"]
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok || n.NumberValue != math.Trunc(n.NumberValue) {
		return nil, status.Error(codes.InvalidArgument, "id must be an integer")
	}
	if err := s.catalog.DeleteProduct(ctx, int64(n.NumberValue)); err != nil {
		return nil, storeStatus(err)
	}
	return reply("", nil)
}

func (s *Server) SubmitServiceRequest(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	id, err := s.requests.Submit(ctx, store.Record(in.AsMap()))
	if err != nil {
		return nil, storeStatus(err)
	}
	return reply("request_id", id)
}

func (s *Server) ListServiceRequests(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	list, err := s.requests.ListServiceRequests(ctx)
	if err != nil {
		return nil, storeStatus(err)
	}
	return reply("requests", list)
}

func (s *Server) PlaceOrder(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	items, total := order.FromBody(store.Record(in.AsMap()))
	id, err := s.orders.PlaceOrder(ctx, items, total)
	if err != nil {
		return nil, storeStatus(err)
	}
	return reply("order_id", id)
}

func (s *Server) ListProductOrders(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	list, err := s.orders.ListProductOrders(ctx)
	if err != nil {
		return nil, storeStatus(err)
	}
	return reply("orders", list)
}

func storeStatus(err error) error {
	if store.Unavailable(err) {
		return status.Error(codes.Unavailable, err.Error())
	}
	return status.Errorf(codes.Internal, "store: %v", err)
}

// reply builds {success:true, key:v}; an empty key gives {success:true}.
func reply(key string, v any) (*structpb.Struct, error) {
	body := map[string]any{"success": true}
	if key != "" {
		if list, ok := v.([]store.Record); ok {
			v = store.OrEmpty(list)
		}
		body[key] = plain(v)
	}
	out, err := structpb.NewStruct(body)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode reply: %v", err)
	}
	return out, nil
}

// plain rewrites named map and slice types into the shapes structpb accepts.
func plain(v any) any {
	switch t := v.(type) {
	case store.Record:
		return plain(map[string]any(t))
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, x := range t {
			m[k] = plain(x)
		}
		return m
	case []store.Record:
		out := make([]any, len(t))
		for i, r := range t {
			out[i] = plain(r)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, x := range t {
			out[i] = plain(x)
		}
		return out
	case []string:
		out := make([]any, len(t))
		for i, x := range t {
			out[i] = x
		}
		return out
	default:
		return v
	}
}
