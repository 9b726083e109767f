package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/MikeMC777/pipedrill-shop/internal/cart"
	"github.com/MikeMC777/pipedrill-shop/internal/catalog"
	"github.com/MikeMC777/pipedrill-shop/internal/client"
	"github.com/MikeMC777/pipedrill-shop/internal/config"
	"github.com/MikeMC777/pipedrill-shop/internal/rpc"
	"github.com/MikeMC777/pipedrill-shop/internal/store"
)

type options struct {
	apiURL  string
	rpcAddr string
	timeout time.Duration
}

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. A non-nil api replaces the transport
// chosen by the flags.
func newRootCmd(api shopAPI) *cobra.Command {
	cfg := config.Load()
	opts := &options{}
	root := &cobra.Command{
		Use:          "shopctl",
		Short:        "Browse the pipe drilling shop, book services and place orders",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.apiURL, "api", cfg.ShopAPIURL, "storefront HTTP API base URL")
	root.PersistentFlags().StringVar(&opts.rpcAddr, "rpc", "", "use the gRPC API at this address instead of HTTP")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "per command timeout")

	connect := func(cmd *cobra.Command) (shopAPI, context.Context, func(), error) {
		ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
		if api != nil {
			return api, ctx, cancel, nil
		}
		if opts.rpcAddr == "" {
			return httpAPI{client.New(opts.apiURL)}, ctx, cancel, nil
		}
		conn, err := grpc.NewClient(opts.rpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			cancel()
			return nil, nil, nil, errors.Wrap(err, "dial rpc")
		}
		return rpcAPI{rpc.NewClient(conn)}, ctx, func() { cancel(); _ = conn.Close() }, nil
	}

	root.AddCommand(
		productsCmd(connect),
		servicesCmd(connect),
		listCmd(connect, "requests", "List service requests", shopAPI.ListServiceRequests),
		listCmd(connect, "orders", "List product orders", shopAPI.ListProductOrders),
		addProductCmd(connect),
		deleteProductCmd(connect),
		requestCmd(connect),
		orderCmd(connect),
	)
	return root
}

type connectFunc func(cmd *cobra.Command) (shopAPI, context.Context, func(), error)

func productsCmd(connect connectFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, ctx, done, err := connect(cmd)
			if err != nil {
				return err
			}
			defer done()
			list, err := api.ListProducts(ctx)
			if err != nil {
				return err
			}
			products, err := catalog.DecodeProducts(list)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK")
			for _, p := range products {
				fmt.Fprintf(w, "%d\t%s\t%s\t$%.2f/%s\t%d\n", p.ID, p.Name, p.Category, p.Price, p.Unit, p.Stock)
			}
			return w.Flush()
		},
	}
}

func servicesCmd(connect connectFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "services",
		Short: "List drilling and threading services",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, ctx, done, err := connect(cmd)
			if err != nil {
				return err
			}
			defer done()
			list, err := api.ListServices(ctx)
			if err != nil {
				return err
			}
			services, err := catalog.DecodeServices(list)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tRATE\tMIN HOURS")
			for _, s := range services {
				fmt.Fprintf(w, "%d\t%s\t%s\t$%.2f/hour\t%d\n", s.ID, s.Name, s.Category, s.HourlyRate, s.MinHours)
			}
			return w.Flush()
		},
	}
}

func listCmd(connect connectFunc, use, short string, fetch func(shopAPI, context.Context) ([]store.Record, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, ctx, done, err := connect(cmd)
			if err != nil {
				return err
			}
			defer done()
			list, err := fetch(api, ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), list)
		},
	}
}

func addProductCmd(connect connectFunc) *cobra.Command {
	var (
		p        catalog.AddProductRequest
		specs    []string
		features []string
	)
	cmd := &cobra.Command{
		Use:   "add-product",
		Short: "Add a product to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fields := store.Record{
				"name":        p.Name,
				"category":    p.Category,
				"description": p.Description,
				"price":       p.Price,
				"unit":        p.Unit,
				"stock":       p.Stock,
				"image":       p.Image,
				"features":    toAny(features),
			}
			if len(specs) > 0 {
				m, err := keyValues(specs)
				if err != nil {
					return err
				}
				fields["specs"] = m
			}
			api, ctx, done, err := connect(cmd)
			if err != nil {
				return err
			}
			defer done()
			id, err := api.AddProduct(ctx, fields)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "product %d added\n", id)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&p.Name, "name", "", "product name")
	f.StringVar(&p.Category, "category", "", "category (pipes, fittings, valves, tools)")
	f.StringVar(&p.Description, "description", "", "description")
	f.Float64Var(&p.Price, "price", 0, "unit price")
	f.StringVar(&p.Unit, "unit", "piece", "sales unit")
	f.IntVar(&p.Stock, "stock", 0, "units in stock")
	f.StringVar(&p.Image, "image", "", "image URL")
	f.StringArrayVar(&specs, "spec", nil, "product spec key=value, repeatable")
	f.StringArrayVar(&features, "feature", nil, "feature line, repeatable")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}

func deleteProductCmd(connect connectFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-product ID",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.Errorf("invalid product id %q", args[0])
			}
			api, ctx, done, err := connect(cmd)
			if err != nil {
				return err
			}
			defer done()
			if err := api.DeleteProduct(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "product %d deleted\n", id)
			return nil
		},
	}
}

func requestCmd(connect connectFunc) *cobra.Command {
	var text, numbers []string
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Book a service",
		Example: `  shopctl request --field service_type=precision-pipe-drilling \
    --field contact_name=A --number pipe_diameter=2 --number estimated_hours=3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fields, err := keyValues(text)
			if err != nil {
				return err
			}
			nums, err := keyValues(numbers)
			if err != nil {
				return err
			}
			for k, v := range nums {
				n, err := cast.ToFloat64E(v)
				if err != nil {
					return errors.Errorf("--number %s: %q is not a number", k, v)
				}
				fields[k] = n
			}
			api, ctx, done, err := connect(cmd)
			if err != nil {
				return err
			}
			defer done()
			id, err := api.SubmitServiceRequest(ctx, fields)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "service request %d submitted\n", id)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&text, "field", nil, "text field key=value, repeatable")
	cmd.Flags().StringArrayVar(&numbers, "number", nil, "numeric field key=value, repeatable")
	return cmd
}

func orderCmd(connect connectFunc) *cobra.Command {
	var items []string
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Fill a cart from the live catalog and place the order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, ctx, done, err := connect(cmd)
			if err != nil {
				return err
			}
			defer done()
			list, err := api.ListProducts(ctx)
			if err != nil {
				return err
			}
			products, err := catalog.DecodeProducts(list)
			if err != nil {
				return err
			}
			byID := make(map[int64]catalog.Product, len(products))
			for _, p := range products {
				byID[p.ID] = p
			}

			c := cart.New()
			for _, it := range items {
				id, qty, err := parseItem(it)
				if err != nil {
					return err
				}
				p, ok := byID[id]
				if !ok {
					return errors.Errorf("product %d not found", id)
				}
				for i := 0; i < qty; i++ {
					if err := c.Add(p); err != nil {
						return errors.Wrapf(err, "product %d", id)
					}
				}
			}
			payload, err := c.Checkout()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "subtotal $%.2f\ntax      $%.2f\ntotal    $%.2f\n", payload.Subtotal, payload.Tax, payload.Total)
			id, err := api.PlaceOrder(ctx, payload)
			if err != nil {
				return err
			}
			c.Clear()
			fmt.Fprintf(out, "order %d placed\n", id)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&items, "item", nil, "product ID:QTY, repeatable")
	_ = cmd.MarkFlagRequired("item")
	return cmd
}

func parseItem(s string) (int64, int, error) {
	id, qty, found := strings.Cut(s, ":")
	if !found {
		qty = "1"
	}
	pid, err := strconv.ParseInt(id, 10, 64)
	if err != nil || pid <= 0 {
		return 0, 0, errors.Errorf("invalid item %q", s)
	}
	n, err := strconv.Atoi(qty)
	if err != nil || n <= 0 {
		return 0, 0, errors.Errorf("invalid quantity in %q", s)
	}
	return pid, n, nil
}

func keyValues(pairs []string) (store.Record, error) {
	out := store.Record{}
	for _, kv := range pairs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, errors.Errorf("expected key=value, got %q", kv)
		}
		out[k] = v
	}
	return out, nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func printJSON(w io.Writer, v any) error {
	raw, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(raw))
	return err
}
