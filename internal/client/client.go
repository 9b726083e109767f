// Package client talks to the storefront HTTP API.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/MikeMC777/pipedrill-shop/internal/catalog"
	"github.com/MikeMC777/pipedrill-shop/internal/store"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// APIError is a {success:false} answer from the server.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
}

type Client struct {
	HTTP    *http.Client
	BaseURL string
}

func New(baseURL string) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 5 * time.Second},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

type envelope map[string]any

func (c *Client) do(ctx context.Context, method, path string, in any) (envelope, error) {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return nil, errors.Wrap(err, "encode body")
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var out envelope
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, &APIError{Status: res.StatusCode, Message: "invalid response: " + err.Error()}
	}
	if ok, _ := out["success"].(bool); !ok || res.StatusCode != http.StatusOK {
		e := &APIError{Status: res.StatusCode}
		e.Code, _ = out["code"].(string)
		e.Message, _ = out["error"].(string)
		return nil, e
	}
	return out, nil
}

func (c *Client) list(ctx context.Context, path, key string) ([]store.Record, error) {
	out, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	raw, _ := out[key].([]any)
	list := make([]store.Record, 0, len(raw))
	for _, x := range raw {
		m, ok := x.(map[string]any)
		if !ok {
			return nil, errors.Errorf("%s: entry is not an object", path)
		}
		list = append(list, store.Record(m))
	}
	return list, nil
}

func (c *Client) create(ctx context.Context, path, key string, in any) (int64, error) {
	out, err := c.do(ctx, http.MethodPost, path, in)
	if err != nil {
		return 0, err
	}
	return cast.ToInt64E(out[key])
}

func (c *Client) ListProducts(ctx context.Context) ([]store.Record, error) {
	return c.list(ctx, "/api/products", "products")
}

// Products returns the catalog as typed values.
func (c *Client) Products(ctx context.Context) ([]catalog.Product, error) {
	list, err := c.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.DecodeProducts(list)
}

func (c *Client) ListServices(ctx context.Context) ([]store.Record, error) {
	return c.list(ctx, "/api/services", "services")
}

func (c *Client) Services(ctx context.Context) ([]catalog.Service, error) {
	list, err := c.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.DecodeServices(list)
}

func (c *Client) AddProduct(ctx context.Context, fields store.Record) (int64, error) {
	return c.create(ctx, "/api/add-product", "product_id", fields)
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/delete-product/%d", id), nil)
	return err
}

func (c *Client) SubmitServiceRequest(ctx context.Context, fields store.Record) (int64, error) {
	return c.create(ctx, "/api/service-request", "request_id", fields)
}

func (c *Client) ListServiceRequests(ctx context.Context) ([]store.Record, error) {
	return c.list(ctx, "/api/service-requests", "requests")
}

// PlaceOrder sends a checkout payload such as cart.Checkout's result.
func (c *Client) PlaceOrder(ctx context.Context, payload any) (int64, error) {
	return c.create(ctx, "/api/place-order", "order_id", payload)
}

func (c *Client) ListProductOrders(ctx context.Context) ([]store.Record, error) {
	return c.list(ctx, "/api/product-orders", "orders")
}
