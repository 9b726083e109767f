package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MikeMC777/pipedrill-shop/internal/app"
	"github.com/MikeMC777/pipedrill-shop/internal/config"
	"github.com/MikeMC777/pipedrill-shop/internal/rpc"
)

func main() {
	cfg := config.Load()
	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	cfg.Log()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		logger.Fatal("startup failed", zap.Error(err))
	}
	defer a.Close()

	l, err := net.Listen("tcp", cfg.RPCAddr)
	if err != nil {
		logger.Fatal("listen", zap.String("addr", cfg.RPCAddr), zap.Error(err))
	}

	s := grpc.NewServer(grpc.ChainUnaryInterceptor(rpc.LoggingInterceptor()))
	rpc.RegisterStorefrontServer(s, rpc.NewServer(a.Catalog, a.Requests, a.Orders))
	hs := health.NewServer()
	hs.SetServingStatus(rpc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, hs)

	go func() {
		<-ctx.Done()
		hs.Shutdown()
		s.GracefulStop()
	}()

	logger.Info("shop-rpc listening", zap.String("addr", cfg.RPCAddr))
	if err := s.Serve(l); err != nil {
		logger.Error("serve", zap.Error(err))
	}
	logger.Info("shop-rpc stopped")
}
