package order

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/MikeMC777/pipedrill-shop/internal/store"
)

func newRepo(t *testing.T) (*StoreRepo, *store.Store) {
	t.Helper()
	b, err := store.OpenFileBackend(t.TempDir())
	if err != nil {
		t.Fatalf("open backend: %v", err)
	}
	st := store.New(b)
	clock := func() time.Time { return time.Date(2024, 3, 9, 14, 5, 6, 500000000, time.Local) }
	return NewStoreRepo(st).WithClock(clock), st
}

func TestPlaceOrder_TotalTakenVerbatim(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	items := []any{map[string]any{"id": 1, "price": 12.5, "quantity": 2}}
	id, err := repo.PlaceOrder(ctx, items, 27.0)
	if err != nil || id != 1 {
		t.Fatalf("place: id=%d err=%v", id, err)
	}
	list, _ := repo.ListProductOrders(ctx)
	if len(list) != 1 {
		t.Fatalf("len=%d, want 1", len(list))
	}
	o := list[0]
	if o["total"] != json.Number("27") || o["status"] != StatusProcessing || o["type"] != TypeProduct {
		t.Fatalf("unexpected order: %+v", o)
	}
	if o["timestamp"] != "2024-03-09T14:05:06.500000" {
		t.Fatalf("timestamp=%v", o["timestamp"])
	}
}

func TestPlaceOrder_NoServerSideRecomputation(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	// 12.5*2 = 25, total claims 1.0
	items := []any{map[string]any{"id": 1, "price": 12.5, "quantity": 2}}
	_, _ = repo.PlaceOrder(ctx, items, 1.0)
	list, _ := repo.ListProductOrders(ctx)
	if list[0]["total"] != json.Number("1") {
		t.Fatalf("total was recomputed: %v", list[0]["total"])
	}

	typed, err := DecodeOrders(list)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if typed[0].Items[0].Price != 12.5 || typed[0].Items[0].Quantity != 2 {
		t.Fatalf("items not kept: %+v", typed[0].Items)
	}
}

func TestPlaceOrder_IDsAndTypeFilter(t *testing.T) {
	ctx := context.Background()
	repo, st := newRepo(t)
	_ = store.Save(ctx, st, store.Orders, []store.Record{{"id": 1, "type": "service"}})

	id, _ := repo.PlaceOrder(ctx, []any{}, 0)
	if id != 2 {
		t.Fatalf("id=%d, want 2", id)
	}
	list, _ := repo.ListProductOrders(ctx)
	if len(list) != 1 {
		t.Fatalf("len=%d, want 1 product order", len(list))
	}
}

func TestFromBody_Defaults(t *testing.T) {
	items, total := FromBody(store.Record{"subtotal": 25.0, "tax": 2.0})
	if l, ok := items.([]any); !ok || len(l) != 0 {
		t.Fatalf("items=%#v, want empty list", items)
	}
	if total != 0 {
		t.Fatalf("total=%v, want 0", total)
	}

	items, total = FromBody(store.Record{"items": nil, "total": "27.00"})
	if items != nil || total != "27.00" {
		t.Fatalf("explicit values not kept: items=%#v total=%#v", items, total)
	}
}
