// cmd/report/main.go
//
// Offline reporting tool: runs the forecasting engine over the deterministic
// demo dataset and prints the requested view as JSON. Useful for eyeballing
// metric changes without standing up the HTTP server.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/stokpintar/backend-go/internal/inventory"
	"github.com/stokpintar/backend-go/internal/report"
	"github.com/stokpintar/backend-go/internal/seed"
)

func newSeedFlag() *cli.Int64Flag {
	return &cli.Int64Flag{
		Name:    "seed",
		Usage:   "RNG seed for the demo dataset",
		Value:   1,
		EnvVars: []string{"APP_DEMO_SEED"},
	}
}

func demoStore(c *cli.Context) *inventory.Store {
	store := inventory.NewStore()
	products, sales := seed.Demo(c.Int64("seed"))
	store.Restore(products, sales)
	return store
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func main() {
	app := &cli.App{
		Name:  "report",
		Usage: "Inventory forecasting reports over the demo dataset",
		Commands: []*cli.Command{
			{
				Name:  "dashboard",
				Usage: "Print fleet-wide dashboard stats",
				Flags: []cli.Flag{newSeedFlag()},
				Action: func(c *cli.Context) error {
					return printJSON(demoStore(c).DashboardStats())
				},
			},
			{
				Name:  "metrics",
				Usage: "Print per-product forecasting metrics",
				Flags: []cli.Flag{newSeedFlag()},
				Action: func(c *cli.Context) error {
					return printJSON(demoStore(c).AllProductsWithMetrics())
				},
			},
			{
				Name:  "sales",
				Usage: "Print the sales revenue and valuation report",
				Flags: []cli.Flag{newSeedFlag()},
				Action: func(c *cli.Context) error {
					store := demoStore(c)
					return printJSON(report.Build(store.Products(), store.Sales()))
				},
			},
			{
				Name:  "alerts",
				Usage: "Print current stock alerts",
				Flags: []cli.Flag{newSeedFlag()},
				Action: func(c *cli.Context) error {
					return printJSON(demoStore(c).StockAlerts())
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
