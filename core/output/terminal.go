// Package output - Terminal formatter
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Colors for terminal output
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

// TerminalFormatter renders an order summary as an ANSI table
type TerminalFormatter struct {
	noColor bool
}

// NewTerminalFormatter creates a terminal formatter
func NewTerminalFormatter(noColor bool) *TerminalFormatter {
	return &TerminalFormatter{noColor: noColor}
}

// Format returns the format type
func (f *TerminalFormatter) Format() Format {
	return FormatCLI
}

func (f *TerminalFormatter) color(c, text string) string {
	if f.noColor {
		return text
	}
	return c + text + reset
}

// Render writes the line-item table and the totals block. Monetary values
// are rounded to two decimals here and nowhere else.
func (f *TerminalFormatter) Render(w io.Writer, summary *OrderSummary) error {
	fmt.Fprintln(w, f.color(bold+cyan, "━━━ Order ━━━"))

	if len(summary.Items) == 0 {
		fmt.Fprintln(w, f.color(dim, "(no line items)"))
	} else {
		table := newTable("#", "Category", "Color", "Length", "Qty", "Unit Price", "Line Total")
		for i, item := range summary.Items {
			table.addRow(
				strconv.Itoa(i+1),
				item.Category,
				item.Color,
				strconv.FormatFloat(item.Length, 'f', -1, 64),
				strconv.FormatInt(item.Quantity, 10),
				item.UnitPrice.StringFixed(2),
				item.LineTotal().StringFixed(2),
			)
		}
		table.render(w, f)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s %s\n", f.color(bold, "Subtotal:"), summary.Totals.Subtotal.StringFixed(2), summary.Currency)
	fmt.Fprintf(w, "%s -%s (%s)\n", f.color(yellow, "Discount:"), summary.Totals.DiscountAmount.StringFixed(2), summary.Discount.Mode)
	fmt.Fprintf(w, "%s %s%% → +%s\n", "Tax:", summary.Tax.RatePercent.String(), summary.Totals.TaxAmount.StringFixed(2))
	fmt.Fprintf(w, "%s %s %s\n", f.color(bold+green, "Total:"), summary.Totals.Total.StringFixed(2), summary.Currency)
	return nil
}

// table is a minimal fixed-width table
type table struct {
	headers []string
	rows    [][]string
	widths  []int
}

func newTable(headers ...string) *table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &table{headers: headers, widths: widths}
}

func (t *table) addRow(cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if len(row[i]) > t.widths[i] {
			t.widths[i] = len(row[i])
		}
	}
	t.rows = append(t.rows, row)
}

func (t *table) render(w io.Writer, f *TerminalFormatter) {
	format := ""
	for i, width := range t.widths {
		if i > 0 {
			format += " │ "
		}
		format += fmt.Sprintf("%%-%ds", width)
	}
	format += "\n"

	headerArgs := make([]interface{}, len(t.headers))
	for i, h := range t.headers {
		headerArgs[i] = h
	}
	fmt.Fprint(w, f.color(bold, fmt.Sprintf(format, headerArgs...)))

	sep := ""
	for i, width := range t.widths {
		if i > 0 {
			sep += "─┼─"
		}
		sep += strings.Repeat("─", width)
	}
	fmt.Fprintln(w, sep)

	for _, row := range t.rows {
		args := make([]interface{}, len(row))
		for i, cell := range row {
			args[i] = cell
		}
		fmt.Fprintf(w, format, args...)
	}
}
