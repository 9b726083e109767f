package catalog

import "github.com/MikeMC777/pipedrill-shop/internal/store"

// Document is the on-disk shape of the catalog.
type Document struct {
	Products []store.Record `json:"products"`
	Services []store.Record `json:"services"`
}

// Product is a typed view of a stored product record.
// swagger:model Product
type Product struct {
	ID          int64             `json:"id"          example:"1"`
	Name        string            `json:"name"        example:"Stainless Steel Pipe 2-inch"`
	Category    string            `json:"category"    example:"pipes"`
	Description string            `json:"description" example:"304 Stainless steel pipe, 2-inch diameter, schedule 40"`
	Price       float64           `json:"price"       example:"12.5"`
	Unit        string            `json:"unit"        example:"foot"`
	Stock       int               `json:"stock"       example:"150"`
	Image       string            `json:"image"`
	Specs       map[string]string `json:"specs"`
	Features    []string          `json:"features"`
}

// Service is a typed view of a stored service record. Services are read-only.
// swagger:model Service
type Service struct {
	ID          int64    `json:"id"          example:"1"`
	Name        string   `json:"name"        example:"Precision Pipe Drilling"`
	Category    string   `json:"category"    example:"drilling"`
	Description string   `json:"description"`
	HourlyRate  float64  `json:"hourly_rate" example:"85"`
	MinHours    int      `json:"min_hours"   example:"2"`
	Image       string   `json:"image"`
	Features    []string `json:"features"`
	Materials   []string `json:"materials"`
}

// AddProductRequest documents the admin add payload. Any JSON object is
// accepted and stored as sent.
// swagger:model AddProductRequest
type AddProductRequest struct {
	Name        string            `json:"name"        example:"Pipe A"`
	Category    string            `json:"category"    example:"pipes"`
	Description string            `json:"description" example:"d"`
	Price       float64           `json:"price"       example:"10"`
	Unit        string            `json:"unit"        example:"foot"`
	Stock       int               `json:"stock"       example:"5"`
	Image       string            `json:"image"`
	Specs       map[string]string `json:"specs"`
	Features    []string          `json:"features"`
}

// ProductsResponse is the body of GET /api/products.
type ProductsResponse struct {
	Success  bool      `json:"success"`
	Products []Product `json:"products"`
}

// ServicesResponse is the body of GET /api/services.
type ServicesResponse struct {
	Success  bool      `json:"success"`
	Services []Service `json:"services"`
}

type AddProductResponse struct {
	Success   bool  `json:"success"`
	ProductID int64 `json:"product_id" example:"7"`
}

func DecodeProducts(records []store.Record) ([]Product, error) {
	return store.DecodeAll[Product](records)
}

func DecodeServices(records []store.Record) ([]Service, error) {
	return store.DecodeAll[Service](records)
}
