// Package cart is the client-side shopping cart. It never talks to the
// server; Checkout produces the body for the place-order call.
package cart

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/pipedrill-shop/internal/catalog"
)

var (
	ErrOutOfStock = errors.New("product out of stock")
	ErrStockLimit = errors.New("maximum stock reached for this item")
	ErrNotInCart  = errors.New("item not in cart")
	ErrEmpty      = errors.New("cart is empty")
)

var taxRate = decimal.RequireFromString("0.08")

// Line is one product in the cart. Price is frozen when the line is added.
type Line struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Unit     string  `json:"unit"`
	Image    string  `json:"image"`

	stock int
}

func (l Line) Amount() decimal.Decimal {
	return decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Payload is the place-order body. The server keeps items and total only.
type Payload struct {
	Items    []Line  `json:"items"`
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

type Cart struct {
	lines []Line
}

func New() *Cart { return &Cart{} }

func (c *Cart) find(id int64) int {
	for i := range c.lines {
		if c.lines[i].ID == id {
			return i
		}
	}
	return -1
}

// Add puts one unit of p in the cart.
func (c *Cart) Add(p catalog.Product) error {
	if p.Stock <= 0 {
		return ErrOutOfStock
	}
	if i := c.find(p.ID); i >= 0 {
		if c.lines[i].Quantity >= p.Stock {
			return ErrStockLimit
		}
		c.lines[i].Quantity++
		c.lines[i].stock = p.Stock
		return nil
	}
	c.lines = append(c.lines, Line{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: 1,
		Unit:     p.Unit,
		Image:    p.Image,
		stock:    p.Stock,
	})
	return nil
}

// UpdateQuantity changes a line by delta. A result of zero or less drops the
// line; a result above the known stock is refused and nothing changes.
func (c *Cart) UpdateQuantity(id int64, delta int) error {
	i := c.find(id)
	if i < 0 {
		return ErrNotInCart
	}
	q := c.lines[i].Quantity + delta
	if q <= 0 {
		c.Remove(id)
		return nil
	}
	if q > c.lines[i].stock {
		return errors.Wrapf(ErrStockLimit, "only %d available", c.lines[i].stock)
	}
	c.lines[i].Quantity = q
	return nil
}

func (c *Cart) Remove(id int64) {
	kept := c.lines[:0]
	for _, l := range c.lines {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	c.lines = kept
}

func (c *Cart) Lines() []Line {
	return append([]Line(nil), c.lines...)
}

// Count is the number of units across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.Amount())
	}
	return sum
}

func (c *Cart) Tax() decimal.Decimal { return c.Subtotal().Mul(taxRate) }

func (c *Cart) Total() decimal.Decimal { return c.Subtotal().Add(c.Tax()) }

// Checkout snapshots the cart with money rounded to cents. The cart itself
// is left as is; call Clear once the order went through.
func (c *Cart) Checkout() (Payload, error) {
	if len(c.lines) == 0 {
		return Payload{}, ErrEmpty
	}
	return Payload{
		Items:    c.Lines(),
		Subtotal: c.Subtotal().Round(2).InexactFloat64(),
		Tax:      c.Tax().Round(2).InexactFloat64(),
		Total:    c.Total().Round(2).InexactFloat64(),
	}, nil
}

func (c *Cart) Clear() { c.lines = nil }
