package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"strings"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MikeMC777/pipedrill-shop/internal/app"
	"github.com/MikeMC777/pipedrill-shop/internal/rpc"
	"github.com/MikeMC777/pipedrill-shop/internal/store"
)

// rpcBackedAPI serves a fresh file store through the gRPC API on an
// in-memory listener.
func rpcBackedAPI(t *testing.T) (shopAPI, *app.Application) {
	t.Helper()
	b, err := store.OpenFileBackend(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	a := app.FromStore(store.New(b))

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	rpc.RegisterStorefrontServer(s, rpc.NewServer(a.Catalog, a.Requests, a.Orders))
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return rpcAPI{rpc.NewClient(conn)}, a
}

func run(t *testing.T, api shopAPI, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(api)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAddListDeleteProduct(t *testing.T) {
	api, a := rpcBackedAPI(t)

	out, err := run(t, api, "add-product", "--name", "Pipe A", "--price", "10", "--stock", "5",
		"--unit", "foot", "--spec", "material=steel", "--feature", "threaded")
	if err != nil || !strings.Contains(out, "product 1 added") {
		t.Fatalf("add: out=%q err=%v", out, err)
	}
	list, _ := a.Catalog.ListProducts(context.Background())
	if len(list) != 1 || list[0]["unit"] != "foot" {
		t.Fatalf("stored=%v", list)
	}
	if specs, _ := list[0]["specs"].(map[string]any); specs["material"] != "steel" {
		t.Fatalf("specs=%v", list[0]["specs"])
	}

	out, err = run(t, api, "products")
	if err != nil || !strings.Contains(out, "Pipe A") || !strings.Contains(out, "$10.00/foot") {
		t.Fatalf("products: out=%q err=%v", out, err)
	}

	if _, err := run(t, api, "delete-product", "x1"); err == nil {
		t.Fatal("want error for a non-numeric id")
	}
	out, err = run(t, api, "delete-product", "1")
	if err != nil || !strings.Contains(out, "product 1 deleted") {
		t.Fatalf("delete: out=%q err=%v", out, err)
	}
}

func TestOrder_BuildsCartAndPlaces(t *testing.T) {
	api, a := rpcBackedAPI(t)
	ctx := context.Background()
	_, _ = a.Catalog.AddProduct(ctx, store.Record{"name": "Pipe", "price": 12.5, "stock": 3, "unit": "foot"})

	out, err := run(t, api, "order", "--item", "1:2")
	if err != nil {
		t.Fatalf("order: out=%q err=%v", out, err)
	}
	if !strings.Contains(out, "total    $27.00") || !strings.Contains(out, "order 1 placed") {
		t.Fatalf("out=%q", out)
	}
	orders, _ := a.Orders.ListProductOrders(ctx)
	if len(orders) != 1 || orders[0]["total"] != json.Number("27") {
		t.Fatalf("orders=%v", orders)
	}
	items, _ := orders[0]["items"].([]any)
	if len(items) != 1 || items[0].(map[string]any)["quantity"] != json.Number("2") {
		t.Fatalf("items=%v", items)
	}

	if _, err := run(t, api, "order", "--item", "1:4"); err == nil {
		t.Fatal("want stock error")
	}
	if _, err := run(t, api, "order", "--item", "7:1"); err == nil {
		t.Fatal("want unknown product error")
	}
}

func TestRequest_FieldsAndNumbers(t *testing.T) {
	api, a := rpcBackedAPI(t)
	out, err := run(t, api, "request", "--field", "contact_name=A", "--field", "contact_phone=0551234",
		"--number", "estimated_hours=3")
	if err != nil || !strings.Contains(out, "service request 1 submitted") {
		t.Fatalf("out=%q err=%v", out, err)
	}
	list, _ := a.Requests.ListServiceRequests(context.Background())
	r := list[0]
	if r["contact_phone"] != "0551234" || r["estimated_hours"] != json.Number("3") || r["status"] != "Pending" {
		t.Fatalf("stored=%v", r)
	}

	if _, err := run(t, api, "request", "--number", "estimated_hours=lots"); err == nil {
		t.Fatal("want error for a non-numeric --number")
	}

	out, err = run(t, api, "requests")
	if err != nil || !strings.Contains(out, `"contact_name": "A"`) {
		t.Fatalf("requests: out=%q err=%v", out, err)
	}
}

func TestParseItem(t *testing.T) {
	for in, want := range map[string][2]int64{"3:2": {3, 2}, "5": {5, 1}} {
		id, qty, err := parseItem(in)
		if err != nil || id != want[0] || int64(qty) != want[1] {
			t.Fatalf("%q: id=%d qty=%d err=%v", in, id, qty, err)
		}
	}
	for _, bad := range []string{"a:1", "1:0", "1:-2", "0:1"} {
		if _, _, err := parseItem(bad); err == nil {
			t.Fatalf("%q: want error", bad)
		}
	}
}
