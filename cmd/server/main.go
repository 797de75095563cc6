// Package main is the standalone API server entry point.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/VWIP/price-checker/adapters/catalogsource"
	"github.com/VWIP/price-checker/api"
	"github.com/VWIP/price-checker/core/types"
	"github.com/VWIP/price-checker/internal/config"
	"github.com/VWIP/price-checker/internal/logging"
)

func main() {
	cfgPath := flag.String("config", "", "config file path")
	flag.Parse()

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			logging.Fatal("config load failed", zap.Error(err))
		}
		config.Set(cfg)
	}
	cfg := config.Get()
	if err := logging.Initialize(cfg.Logging); err != nil {
		os.Exit(1)
	}
	defer logging.Sync()

	ctx := context.Background()

	var loader catalogsource.Loader
	if cfg.Catalog.URL != "" {
		loader = catalogsource.NewHTTPLoader(cfg.Catalog.URL, time.Duration(cfg.Catalog.FetchTimeoutSeconds)*time.Second)
	} else {
		l, err := catalogsource.ForFile(cfg.Catalog.Path, catalogsource.Format(cfg.Catalog.Format))
		if err != nil {
			logging.Fatal("catalog source misconfigured", zap.Error(err))
		}
		loader = l
	}

	// The catalog must load fully before anything is served.
	cat, err := catalogsource.Build(ctx, loader)
	if err != nil {
		logging.Fatal("catalog load failed", zap.Error(err))
	}

	sessions := api.NewSessionStore(
		time.Duration(cfg.Server.SessionTTLSeconds)*time.Second,
		types.TaxPolicy{RatePercent: decimal.NewFromFloat(cfg.Order.DefaultTaxPercent)},
	)
	sessions.StartSweeper(ctx)

	server := api.NewServer(cat, sessions, types.Currency(cfg.Order.Currency), cfg.Order.DiscountPresets)
	if err := server.Listen(cfg.Server.Addr); err != nil {
		logging.Fatal("server stopped", zap.Error(err))
	}
}
