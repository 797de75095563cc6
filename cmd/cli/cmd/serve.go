// Package cmd - serve command
package cmd

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/VWIP/price-checker/api"
	"github.com/VWIP/price-checker/core/types"
	"github.com/VWIP/price-checker/internal/config"
	"github.com/VWIP/price-checker/internal/logging"
)

var serveAddr string

// serveCmd runs the order-entry API server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the order-entry API server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	// No catalog means no valid operation is possible; fail before
	// serving anything.
	cat, err := loadCatalog(cmd.Context())
	if err != nil {
		logging.Error("catalog load failed", zap.Error(err))
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sessions := api.NewSessionStore(
		time.Duration(cfg.Server.SessionTTLSeconds)*time.Second,
		types.TaxPolicy{RatePercent: decimal.NewFromFloat(cfg.Order.DefaultTaxPercent)},
	)
	sessions.StartSweeper(ctx)

	server := api.NewServer(cat, sessions, types.Currency(cfg.Order.Currency), cfg.Order.DiscountPresets)
	return server.Listen(addr)
}
