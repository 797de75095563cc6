// Package cmd - config commands
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/VWIP/price-checker/internal/config"
	"github.com/VWIP/price-checker/internal/errors"
)

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitPath string

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().StringVar(&configInitPath, "path", defaultConfigPath(), "destination file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func defaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".price-checker.json")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := json.MarshalIndent(config.Get(), "", "  ")
	if err != nil {
		return errors.Config("cannot render config", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if err := config.Default().Save(configInitPath); err != nil {
		return errors.Config("cannot write config file", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configInitPath)
	return nil
}
