package cart

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/MikeMC777/pipedrill-shop/internal/catalog"
)

var pipe = catalog.Product{ID: 1, Name: "Stainless Steel Pipe 2-inch", Price: 12.5, Unit: "foot", Stock: 3}

func TestCheckout_Totals(t *testing.T) {
	c := New()
	_ = c.Add(pipe)
	_ = c.Add(pipe)

	p, err := c.Checkout()
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if p.Subtotal != 25 || p.Tax != 2 || p.Total != 27 {
		t.Fatalf("subtotal=%v tax=%v total=%v", p.Subtotal, p.Tax, p.Total)
	}
	if len(p.Items) != 1 || p.Items[0].Quantity != 2 || p.Items[0].Price != 12.5 {
		t.Fatalf("items=%+v", p.Items)
	}
}

func TestCheckout_RoundsToCents(t *testing.T) {
	c := New()
	_ = c.Add(catalog.Product{ID: 2, Price: 0.1, Stock: 10})
	_ = c.Add(catalog.Product{ID: 3, Price: 0.2, Stock: 10})
	if !c.Subtotal().Equal(c.Subtotal().Round(2)) || c.Subtotal().String() != "0.3" {
		t.Fatalf("subtotal=%s", c.Subtotal())
	}
	p, _ := c.Checkout()
	if p.Tax != 0.02 || p.Total != 0.32 {
		t.Fatalf("tax=%v total=%v", p.Tax, p.Total)
	}
}

func TestAdd_StockRules(t *testing.T) {
	c := New()
	if err := c.Add(catalog.Product{ID: 9, Stock: 0}); !errors.Is(err, ErrOutOfStock) {
		t.Fatalf("err=%v, want ErrOutOfStock", err)
	}
	for i := 0; i < 3; i++ {
		if err := c.Add(pipe); err != nil {
			t.Fatalf("add #%d: %v", i, err)
		}
	}
	if err := c.Add(pipe); !errors.Is(err, ErrStockLimit) {
		t.Fatalf("err=%v, want ErrStockLimit", err)
	}
	if c.Count() != 3 {
		t.Fatalf("count=%d", c.Count())
	}
}

func TestUpdateQuantity(t *testing.T) {
	c := New()
	_ = c.Add(pipe)

	if err := c.UpdateQuantity(1, 5); !errors.Is(err, ErrStockLimit) {
		t.Fatalf("err=%v, want ErrStockLimit", err)
	}
	if err := c.UpdateQuantity(1, 2); err != nil || c.Count() != 3 {
		t.Fatalf("err=%v count=%d", err, c.Count())
	}
	if err := c.UpdateQuantity(1, -3); err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(c.Lines()) != 0 {
		t.Fatalf("line kept at zero: %+v", c.Lines())
	}
	if err := c.UpdateQuantity(1, 1); !errors.Is(err, ErrNotInCart) {
		t.Fatalf("err=%v, want ErrNotInCart", err)
	}
}

func TestRemoveKeepsOrder(t *testing.T) {
	c := New()
	for id := int64(1); id <= 3; id++ {
		_ = c.Add(catalog.Product{ID: id, Stock: 1})
	}
	c.Remove(2)
	lines := c.Lines()
	if len(lines) != 2 || lines[0].ID != 1 || lines[1].ID != 3 {
		t.Fatalf("lines=%+v", lines)
	}
}

func TestCheckout_Empty(t *testing.T) {
	c := New()
	if _, err := c.Checkout(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("err=%v, want ErrEmpty", err)
	}
	_ = c.Add(pipe)
	c.Clear()
	if _, err := c.Checkout(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("after clear: err=%v", err)
	}
}
