package order

import "github.com/MikeMC777/pipedrill-shop/internal/store"

// PlaceOrderRequest is the checkout payload. The total is taken as sent.
// swagger:model PlaceOrderRequest
type PlaceOrderRequest struct {
	Items []Item  `json:"items"`
	Total float64 `json:"total" example:"27"`
}

type PlaceOrderResponse struct {
	Success bool  `json:"success"`
	OrderID int64 `json:"order_id" example:"1"`
}

type ListResponse struct {
	Success bool           `json:"success"`
	Orders  []ProductOrder `json:"orders"`
}

// FromBody pulls items and total out of a raw checkout body. Absent keys
// default to an empty list and 0; anything else in the body is dropped.
func FromBody(body store.Record) (items, total any) {
	items, ok := body["items"]
	if !ok {
		items = []any{}
	}
	total, ok = body["total"]
	if !ok {
		total = 0
	}
	return items, total
}
