// Package main is the entry point for the price-checker CLI.
package main

import (
	"os"

	"github.com/VWIP/price-checker/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
