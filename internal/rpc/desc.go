// Package rpc exposes the storefront operations over gRPC. Messages are
// google.protobuf.Struct and Empty, so no generated code is involved; bodies
// mirror the HTTP envelopes.
package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "pipedrill.storefront.v1.Storefront"

// StorefrontServer is the server side of ServiceName.
type StorefrontServer interface {
	ListProducts(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	ListServices(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	AddProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SubmitServiceRequest(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListServiceRequests(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	PlaceOrder(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListProductOrders(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

func fullMethod(name string) string { return "/" + ServiceName + "/" + name }

func unary[Req proto.Message](name string, newReq func() Req, call func(StorefrontServer, context.Context, Req) (*structpb.Struct, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := newReq()
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(StorefrontServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(name)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(StorefrontServer), ctx, req.(Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func newEmpty() *emptypb.Empty   { return &emptypb.Empty{} }
func newStruct() *structpb.Struct { return &structpb.Struct{} }

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StorefrontServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("ListProducts", newEmpty, StorefrontServer.ListProducts),
		unary("ListServices", newEmpty, StorefrontServer.ListServices),
		unary("AddProduct", newStruct, StorefrontServer.AddProduct),
		unary("DeleteProduct", newStruct, StorefrontServer.DeleteProduct),
		unary("SubmitServiceRequest", newStruct, StorefrontServer.SubmitServiceRequest),
		unary("ListServiceRequests", newEmpty, StorefrontServer.ListServiceRequests),
		unary("PlaceOrder", newStruct, StorefrontServer.PlaceOrder),
		unary("ListProductOrders", newEmpty, StorefrontServer.ListProductOrders),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pipedrill/storefront/v1/storefront.proto",
}

func RegisterStorefrontServer(s grpc.ServiceRegistrar, srv StorefrontServer) {
	s.RegisterService(&ServiceDesc, srv)
}
