// Package cmd implements the smartsearch CLI commands.
package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

// Sentinel errors the main package maps onto exit codes, mirroring the
// contract interactive shell pickers follow: 0 = committed, 1 = cancelled,
// 2 = fall back to a non-interactive path.
var (
	ErrCancelled = errors.New("cancelled")
	ErrFallback  = errors.New("fallback")
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "smartsearch",
	Short:         "Interactive product search for the TiendaMayor storefront",
	Long:          "smartsearch ranks the product catalog as you type and prints the\nnavigation path for the committed selection.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path")
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}
