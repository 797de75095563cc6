// Package cmd - catalog inspection commands
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// catalogCmd groups the pick-list queries the order UI is built from
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the price catalog",
}

var catalogCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List catalog categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}
		for _, category := range cat.Categories() {
			fmt.Println(category)
		}
		return nil
	},
}

var catalogColorsCmd = &cobra.Command{
	Use:   "colors [category]",
	Short: "List colors available for a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}
		for _, color := range cat.Colors(args[0]) {
			fmt.Println(color)
		}
		return nil
	},
}

var catalogLengthsCmd = &cobra.Command{
	Use:   "lengths [category] [color]",
	Short: "List lengths available for a category and color",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}
		for _, length := range cat.Lengths(args[0], args[1]) {
			fmt.Println(strconv.FormatFloat(length, 'f', -1, 64))
		}
		return nil
	},
}

var catalogPriceCmd = &cobra.Command{
	Use:   "price [category] [color] [length]",
	Short: "Look up the unit price of a combination",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		length, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("length must be numeric: %w", err)
		}

		cat, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}

		price, ok := cat.FindPrice(args[0], args[1], length)
		if !ok {
			return fmt.Errorf("no such combination: %s/%s/%s", args[0], args[1], args[2])
		}
		fmt.Println(price.StringFixed(2))
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogCategoriesCmd)
	catalogCmd.AddCommand(catalogColorsCmd)
	catalogCmd.AddCommand(catalogLengthsCmd)
	catalogCmd.AddCommand(catalogPriceCmd)
}
