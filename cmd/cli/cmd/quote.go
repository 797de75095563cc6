// Package cmd - quote command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/VWIP/price-checker/core/order"
	"github.com/VWIP/price-checker/core/output"
	"github.com/VWIP/price-checker/core/types"
	"github.com/VWIP/price-checker/internal/config"
	"github.com/VWIP/price-checker/internal/logging"
)

var (
	quoteFormat       string
	quoteDiscountMode string
	quoteDiscount     float64
	quoteTax          float64
	quoteNoColor      bool
)

// orderLine is one entry of the order file
type orderLine struct {
	Category string  `json:"category"`
	Color    string  `json:"color"`
	Length   float64 `json:"length"`
	Quantity int64   `json:"quantity"`
}

// quoteCmd prices an order file against the catalog
var quoteCmd = &cobra.Command{
	Use:   "quote [order-file]",
	Short: "Compute totals for an order file",
	Long: `Price every line of a JSON order file against the catalog and print
the totals breakdown.

The order file is a JSON array of lines:
  [{"category": "Roll", "color": "Red", "length": 6, "quantity": 2}]

Examples:
  price-checker quote order.json --catalog catalog.csv
  price-checker quote order.json --discount-mode percentage --discount 10 --tax 5
  price-checker quote order.json --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&quoteFormat, "format", "f", "", "output format (cli, json)")
	quoteCmd.Flags().StringVar(&quoteDiscountMode, "discount-mode", string(types.DiscountFixedAmount), "discount mode (fixed_amount, percentage)")
	quoteCmd.Flags().Float64Var(&quoteDiscount, "discount", 0, "discount value")
	quoteCmd.Flags().Float64Var(&quoteTax, "tax", -1, "tax rate percent (default from config)")
	quoteCmd.Flags().BoolVar(&quoteNoColor, "no-color", false, "disable colored output")
}

func runQuote(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read order file: %w", err)
	}
	var lines []orderLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return fmt.Errorf("cannot parse order file: %w", err)
	}

	cat, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	ledger := order.NewLedger()
	for i, line := range lines {
		price, ok := cat.FindPrice(line.Category, line.Color, line.Length)
		if !ok {
			return fmt.Errorf("order line %d: no such combination: %s/%s/%v",
				i+1, line.Category, line.Color, line.Length)
		}
		quantity := line.Quantity
		if quantity == 0 {
			quantity = 1
		}
		if err := ledger.Add(line.Category, line.Color, line.Length, quantity, price); err != nil {
			return fmt.Errorf("order line %d: %w", i+1, err)
		}
	}

	taxPercent := quoteTax
	if taxPercent < 0 {
		taxPercent = cfg.Order.DefaultTaxPercent
	}
	discount := types.DiscountPolicy{
		Mode:  types.DiscountMode(quoteDiscountMode),
		Value: decimal.NewFromFloat(quoteDiscount),
	}
	tax := types.TaxPolicy{RatePercent: decimal.NewFromFloat(taxPercent)}

	summary, err := output.BuildSummary(ledger.Items(), discount, tax, types.Currency(cfg.Order.Currency))
	if err != nil {
		return err
	}

	format := output.Format(quoteFormat)
	if quoteFormat == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}
	formatter := output.ForFormat(format, quoteNoColor || cfg.Output.NoColor)

	logging.Debug("quote computed",
		zap.Int("lines", ledger.Len()),
		zap.String("format", string(formatter.Format())))
	return formatter.Render(os.Stdout, summary)
}
