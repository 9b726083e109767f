package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/MikeMC777/pipedrill-shop/internal/catalog"
	"github.com/MikeMC777/pipedrill-shop/internal/order"
	"github.com/MikeMC777/pipedrill-shop/internal/request"
)

type services struct {
	catalog  catalog.Repository
	requests request.Repository
	orders   order.Repository
}

func registerRoutes(r *gin.Engine, s services) {
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.GET("/products", listProductsHandler(s.catalog))
	api.GET("/services", listServicesHandler(s.catalog))
	api.POST("/add-product", addProductHandler(s.catalog))
	api.DELETE("/delete-product/:id", deleteProductHandler(s.catalog))
	api.POST("/service-request", submitServiceRequestHandler(s.requests))
	api.GET("/service-requests", listServiceRequestsHandler(s.requests))
	api.POST("/place-order", placeOrderHandler(s.orders))
	api.GET("/product-orders", listProductOrdersHandler(s.orders))
}
