// skillbill - consolidated billing for skill-sharing product bundles.
//
// Usage:
//   skillbill bill --products products.yaml
//   skillbill overlap --products products.yaml
//   skillbill recommend --current current.yaml --available catalog.yaml
//   skillbill usage --products products.yaml --platform-intelligence
//   skillbill serve --port 8080
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"skill-billing/api"
	"skill-billing/internal/billing"
	"skill-billing/internal/catalog"
	"skill-billing/internal/overlap"
	"skill-billing/internal/recommend"
	"skill-billing/internal/usage"
	"skill-billing/pkg/platform"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	app := &cli.App{
		Name:    "skillbill",
		Usage:   "Consolidated billing engine for products that share reusable skills",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"SKILLBILL_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "catalog",
				Usage:   "Path to a skill catalog override file (YAML or JSON)",
				EnvVars: []string{"SKILLBILL_CATALOG"},
			},
		},

		Commands: []*cli.Command{
			billCommand(),
			overlapCommand(),
			recommendCommand(),
			usageCommand(),
			serveCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadCatalog resolves the catalog for a command: the override file
// when given, the built-in table otherwise.
func loadCatalog(c *cli.Context) (*catalog.Catalog, error) {
	if path := c.String("catalog"); path != "" {
		return catalog.LoadFile(path)
	}
	return catalog.Default(), nil
}

func billCommand() *cli.Command {
	return &cli.Command{
		Name:  "bill",
		Usage: "Compute the unified monthly bill for a product selection",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "products",
				Aliases:  []string{"p"},
				Usage:    "Path to the product selection file (YAML or JSON)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "Output format (table, json, markdown)",
			},
		},
		Action: func(c *cli.Context) error {
			cat, err := loadCatalog(c)
			if err != nil {
				return err
			}
			products, err := loadProducts(c.String("products"))
			if err != nil {
				return err
			}

			result := billing.NewCalculator(cat).CalculateUnifiedBilling(products)

			switch c.String("format") {
			case "json":
				return outputJSON(result)
			case "markdown":
				return outputBillingMarkdown(result)
			default:
				return outputBillingTable(result)
			}
		},
	}
}

func overlapCommand() *cli.Command {
	return &cli.Command{
		Name:  "overlap",
		Usage: "Show pairwise skill overlap between products",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "products",
				Aliases:  []string{"p"},
				Usage:    "Path to the product selection file (YAML or JSON)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "Output format (table, json)",
			},
		},
		Action: func(c *cli.Context) error {
			products, err := loadProducts(c.String("products"))
			if err != nil {
				return err
			}

			result := overlap.SkillOverlap(products)

			if c.String("format") == "json" {
				return outputJSON(result)
			}
			return outputOverlapTable(result)
		},
	}
}

func recommendCommand() *cli.Command {
	return &cli.Command{
		Name:  "recommend",
		Usage: "Rank available products by reuse of already-purchased skills",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "current",
				Usage:    "Path to the current product selection file",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "available",
				Usage:    "Path to the candidate product pool file",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "Output format (table, json)",
			},
		},
		Action: func(c *cli.Context) error {
			cat, err := loadCatalog(c)
			if err != nil {
				return err
			}
			current, err := loadProducts(c.String("current"))
			if err != nil {
				return err
			}
			available, err := loadProducts(c.String("available"))
			if err != nil {
				return err
			}

			recs := recommend.NewEngine(cat).Complementary(current, available)

			if c.String("format") == "json" {
				return outputJSON(recs)
			}
			return outputRecommendationsTable(recs)
		},
	}
}

func usageCommand() *cli.Command {
	return &cli.Command{
		Name:  "usage",
		Usage: "Compute included token and API-call allowances",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "products",
				Aliases:  []string{"p"},
				Usage:    "Path to the product selection file (YAML or JSON)",
				Required: true,
			},
			&cli.BoolFlag{
				Name:    "platform-intelligence",
				Usage:   "Apply the 1.5x platform intelligence multiplier",
				EnvVars: []string{"SKILLBILL_PLATFORM_INTELLIGENCE"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "Output format (table, json)",
			},
		},
		Action: func(c *cli.Context) error {
			products, err := loadProducts(c.String("products"))
			if err != nil {
				return err
			}

			result := usage.NewAllocator().UsageBasedPricing(products, c.Bool("platform-intelligence"))

			if c.String("format") == "json" {
				return outputJSON(result)
			}
			return outputUsageTable(result)
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the skillbill API server",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Value:   8080,
				Usage:   "API server port",
				EnvVars: []string{"SKILLBILL_PORT"},
			},
			&cli.StringFlag{
				Name:    "cors-origins",
				Value:   "*",
				Usage:   "Comma-separated list of allowed CORS origins",
				EnvVars: []string{"SKILLBILL_CORS_ORIGINS"},
			},
		},
		Action: func(c *cli.Context) error {
			logger := platform.InitLogger(c.String("log-level"))

			cat, err := loadCatalog(c)
			if err != nil {
				return err
			}

			config := api.DefaultConfig()
			config.Port = c.Int("port")
			config.CORSOrigins = splitOrigins(c.String("cors-origins"))

			server := api.NewServer(cat, logger, config)
			return server.StartWithGracefulShutdown()
		},
	}
}
