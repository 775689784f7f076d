package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tiendamayor/smartsearch/internal/catalog"
)

var (
	catalogGenOut   string
	catalogGenCount int
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Catalog data utilities",
}

var catalogGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Write a demo product catalog",
	Long: `Write a demo product catalog as a JSON array.

The generated products cycle through a fixed set of templates with fresh
IDs and unique slugs, so the search box can be exercised without the
storefront's real data dump.`,
	RunE: runCatalogGen,
}

func init() {
	catalogGenCmd.Flags().StringVarP(&catalogGenOut, "out", "o", "catalog.json", "Output file")
	catalogGenCmd.Flags().IntVarP(&catalogGenCount, "count", "n", 48, "Number of products")
	catalogCmd.AddCommand(catalogGenCmd)
}

func runCatalogGen(cmd *cobra.Command, args []string) error {
	if catalogGenCount <= 0 {
		return fmt.Errorf("catalog gen: count must be positive, got %d", catalogGenCount)
	}

	snap := catalog.Generate(catalogGenCount)
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("catalog gen: encode: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(catalogGenOut, data, 0644); err != nil {
		return fmt.Errorf("catalog gen: write %s: %w", catalogGenOut, err)
	}
	fmt.Printf("Wrote %d products to %s\n", len(snap), catalogGenOut)
	return nil
}
