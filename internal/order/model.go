package order

const (
	StatusProcessing = "Processing"
	TypeProduct      = "product"
)

// ProductOrder is a typed view of a stored order. Items are a snapshot of
// the cart at checkout; they do not reference live catalog rows.
// swagger:model ProductOrder
type ProductOrder struct {
	ID        int64   `json:"id"        example:"1"`
	Items     []Item  `json:"items"`
	Total     float64 `json:"total"     example:"27"`
	Timestamp string  `json:"timestamp" example:"2024-03-09T14:05:06.123456"`
	Status    string  `json:"status"    example:"Processing"`
	Type      string  `json:"type"      example:"product"`
}

// Item is one cart line frozen at order time.
type Item struct {
	ID       int64   `json:"id"       example:"1"`
	Name     string  `json:"name"     example:"Stainless Steel Pipe 2-inch"`
	Price    float64 `json:"price"    example:"12.5"`
	Quantity int     `json:"quantity" example:"2"`
	Unit     string  `json:"unit"     example:"foot"`
	Image    string  `json:"image"`
}
