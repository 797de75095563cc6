// Package cmd provides the CLI commands for price-checker.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/VWIP/price-checker/adapters/catalogsource"
	"github.com/VWIP/price-checker/core/catalog"
	"github.com/VWIP/price-checker/internal/config"
	"github.com/VWIP/price-checker/internal/logging"
)

var (
	cfgFile     string
	verbose     bool
	catalogPath string
	catalogURL  string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "price-checker",
	Short: "Order-entry calculator over a priced item catalog",
	Long: `price-checker looks up item prices by category, color and length,
builds an order from them and computes discounted, taxed totals.

The catalog comes from a local file (csv, json or hcl) or a published
sheet URL serving CSV.

Examples:
  price-checker catalog categories --catalog ./catalog.csv
  price-checker catalog price --catalog ./catalog.csv Roll Red 6
  price-checker quote ./order.json --catalog ./catalog.csv --discount 10 --discount-mode percentage --tax 5`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.price-checker.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog file (csv, json or hcl)")
	rootCmd.PersistentFlags().StringVar(&catalogURL, "catalog-url", "", "catalog URL serving CSV")

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// loadCatalog builds the catalog from flags or config. A load failure is
// fatal to the invocation; no command runs against a partial catalog.
func loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	cfg := config.Get()

	var loader catalogsource.Loader
	switch {
	case catalogURL != "":
		loader = catalogsource.NewHTTPLoader(catalogURL, time.Duration(cfg.Catalog.FetchTimeoutSeconds)*time.Second)
	case catalogPath != "":
		l, err := catalogsource.ForFile(catalogPath, catalogsource.Format(cfg.Catalog.Format))
		if err != nil {
			return nil, err
		}
		loader = l
	case cfg.Catalog.URL != "":
		loader = catalogsource.NewHTTPLoader(cfg.Catalog.URL, time.Duration(cfg.Catalog.FetchTimeoutSeconds)*time.Second)
	default:
		l, err := catalogsource.ForFile(cfg.Catalog.Path, catalogsource.Format(cfg.Catalog.Format))
		if err != nil {
			return nil, err
		}
		loader = l
	}

	return catalogsource.Build(ctx, loader)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("price-checker version 0.1.0")
	},
}
