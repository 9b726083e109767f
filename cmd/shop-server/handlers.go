package main

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/pipedrill-shop/internal/catalog"
	"github.com/MikeMC777/pipedrill-shop/internal/httpx"
	"github.com/MikeMC777/pipedrill-shop/internal/order"
	"github.com/MikeMC777/pipedrill-shop/internal/request"
	"github.com/MikeMC777/pipedrill-shop/internal/store"
)

const callTimeout = 5 * time.Second

func reqCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), callTimeout)
}

// @Summary List products
// @Tags Catalog
// @Produce json
// @Success 200 {object} catalog.ProductsResponse
// @Failure 503 {object} httpx.ErrorResponse
// @Router /api/products [get]
func listProductsHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := reqCtx(c)
		defer cancel()
		list, err := repo.ListProducts(ctx)
		if err != nil {
			httpx.StorageError(c, err)
			return
		}
		httpx.OK(c, gin.H{"products": store.OrEmpty(list)})
	}
}

// @Summary List services
// @Tags Catalog
// @Produce json
// @Success 200 {object} catalog.ServicesResponse
// @Failure 503 {object} httpx.ErrorResponse
// @Router /api/services [get]
func listServicesHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := reqCtx(c)
		defer cancel()
		list, err := repo.ListServices(ctx)
		if err != nil {
			httpx.StorageError(c, err)
			return
		}
		httpx.OK(c, gin.H{"services": store.OrEmpty(list)})
	}
}

// @Summary Add a product
// @Description Any JSON object is stored as sent; the server assigns the id.
// @Tags Admin
// @Accept json
// @Produce json
// @Param product body catalog.AddProductRequest true "product fields"
// @Success 200 {object} catalog.AddProductResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/add-product [post]
func addProductHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := httpx.BindObject(c)
		if err != nil {
			httpx.Fail(c, http.StatusBadRequest, httpx.CodeInvalidRequest, err.Error())
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		id, err := repo.AddProduct(ctx, body)
		if err != nil {
			httpx.StorageError(c, err)
			return
		}
		httpx.OK(c, gin.H{"product_id": id})
	}
}

// @Summary Delete a product
// @Description Deleting an unknown id also succeeds.
// @Tags Admin
// @Produce json
// @Param id path int true "product id"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/delete-product/{id} [delete]
func deleteProductHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			httpx.Fail(c, http.StatusBadRequest, httpx.CodeInvalidID, "product id must be an integer")
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		if err := repo.DeleteProduct(ctx, id); err != nil {
			httpx.StorageError(c, err)
			return
		}
		httpx.OK(c, nil)
	}
}

// @Summary Submit a service request
// @Description Fields are stored as sent plus id, timestamp, status "Pending" and type "service".
// @Tags Services
// @Accept json
// @Produce json
// @Param request body request.ServiceRequest true "booking fields"
// @Success 200 {object} request.SubmitResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/service-request [post]
func submitServiceRequestHandler(repo request.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := httpx.BindObject(c)
		if err != nil {
			httpx.Fail(c, http.StatusBadRequest, httpx.CodeInvalidRequest, err.Error())
			return
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		id, err := repo.Submit(ctx, body)
		if err != nil {
			httpx.StorageError(c, err)
			return
		}
		httpx.OK(c, gin.H{"request_id": id})
	}
}

// @Summary List service requests
// @Tags Services
// @Produce json
// @Success 200 {object} request.ListResponse
// @Failure 503 {object} httpx.ErrorResponse
// @Router /api/service-requests [get]
func listServiceRequestsHandler(repo request.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := reqCtx(c)
		defer cancel()
		list, err := repo.ListServiceRequests(ctx)
		if err != nil {
			httpx.StorageError(c, err)
			return
		}
		httpx.OK(c, gin.H{"requests": store.OrEmpty(list)})
	}
}

// @Summary Place an order
// @Description items and total are stored as sent; the total is not recomputed.
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body order.PlaceOrderRequest true "cart snapshot"
// @Success 200 {object} order.PlaceOrderResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/place-order [post]
func placeOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := httpx.BindObject(c)
		if err != nil {
			httpx.Fail(c, http.StatusBadRequest, httpx.CodeInvalidRequest, err.Error())
			return
		}
		items, total := order.FromBody(body)
		ctx, cancel := reqCtx(c)
		defer cancel()
		id, err := repo.PlaceOrder(ctx, items, total)
		if err != nil {
			httpx.StorageError(c, err)
			return
		}
		httpx.OK(c, gin.H{"order_id": id})
	}
}

// @Summary List product orders
// @Tags Orders
// @Produce json
// @Success 200 {object} order.ListResponse
// @Failure 503 {object} httpx.ErrorResponse
// @Router /api/product-orders [get]
func listProductOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := reqCtx(c)
		defer cancel()
		list, err := repo.ListProductOrders(ctx)
		if err != nil {
			httpx.StorageError(c, err)
			return
		}
		httpx.OK(c, gin.H{"orders": store.OrEmpty(list)})
	}
}
