package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tiendamayor/smartsearch/internal/config"
	"github.com/tiendamayor/smartsearch/internal/history"
	"github.com/tiendamayor/smartsearch/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent committed searches",
	Long: `Show the persisted recent-search log, most recent first.

Entries are recorded when a search commits: the product title for a
selected product, the raw text for a free-text search.`,
	RunE: runHistoryCmd,
}

func runHistoryCmd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	kv, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Println("No search history available.")
		return nil
	}
	defer kv.Close()

	log := history.NewStore(kv).Load(context.Background())
	if len(log) == 0 {
		fmt.Println("No search history available.")
		return nil
	}
	for i, entry := range log {
		fmt.Printf("%d. %s\n", i+1, entry)
	}
	return nil
}
