package cmd

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/tiendamayor/smartsearch/internal/catalog"
	"github.com/tiendamayor/smartsearch/internal/config"
	"github.com/tiendamayor/smartsearch/internal/history"
	"github.com/tiendamayor/smartsearch/internal/search"
	"github.com/tiendamayor/smartsearch/internal/storage"
	"github.com/tiendamayor/smartsearch/internal/tui"
)

// minTermWidth is the narrowest terminal the suggestion panel renders
// usefully in.
const minTermWidth = 20

// demoCatalogSize is the snapshot size used when no catalog file is
// configured.
const demoCatalogSize = 48

var (
	searchQuery     string
	searchCatalog   string
	searchNoPersist bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Open the interactive search box",
	Long: `Open the interactive search box over the product catalog.

Typing re-ranks the catalog after a short debounce. Arrow keys move the
selection, Enter commits it (or the raw text when nothing is selected),
Esc cancels. On commit the navigation path is printed to stdout:
/product/<slug> for a selected product, /search?q=<text> for free text.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "Pre-fill the search box")
	searchCmd.Flags().StringVar(&searchCatalog, "catalog", "", "Product catalog JSON file")
	searchCmd.Flags().BoolVar(&searchNoPersist, "no-persist", false, "Do not persist search history")
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := checkTTY(); err != nil {
		fmt.Fprintf(os.Stderr, "smartsearch: %v\n", err)
		return ErrFallback
	}
	if err := checkTERM(); err != nil {
		fmt.Fprintf(os.Stderr, "smartsearch: %v\n", err)
		return ErrFallback
	}
	if w := termWidth(); w > 0 && w < minTermWidth {
		fmt.Fprintf(os.Stderr, "smartsearch: terminal too narrow (%d cols)\n", w)
		return ErrFallback
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.UI.NoColor {
		// SetColorProfile modifies the default renderer in-place, so every
		// style in the TUI degrades to plain text.
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	snap, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	store, closeStore, err := openHistory(cfg)
	if err != nil {
		// History is a convenience; never refuse to search over it.
		fmt.Fprintf(os.Stderr, "smartsearch: history disabled: %v\n", err)
		store = history.NewStore(storage.NewMemory())
	}
	if closeStore != nil {
		defer closeStore()
	}

	machine := search.Machine{
		Catalog:       snap,
		Debounce:      time.Duration(cfg.Search.DebounceMs) * time.Millisecond,
		MinQueryRunes: cfg.Search.MinQueryLen,
		MaxResults:    cfg.Search.MaxResults,
		HistorySize:   cfg.Search.HistorySize,
	}

	model := tui.New(machine, store, searchQuery)
	// All-motion tracking: hover preview needs motion events with no
	// button held, which cell-motion mode never reports.
	prog := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithMouseAllMotion())
	final, err := prog.Run()
	if err != nil {
		return fmt.Errorf("search ui: %w", err)
	}

	m := final.(tui.Model)
	target, ok := m.Target()
	if !ok {
		return ErrCancelled
	}
	fmt.Println(target.Path)
	return nil
}

// loadCatalog reads the configured snapshot, preferring the --catalog flag
// over the config file, and falls back to generated demo data.
func loadCatalog(cfg *config.Config) (catalog.Snapshot, error) {
	path := cfg.Catalog.Path
	if searchCatalog != "" {
		path = searchCatalog
	}
	if path == "" {
		return catalog.Generate(demoCatalogSize), nil
	}
	return catalog.Load(path)
}

// openHistory opens the persistent history store, or an in-memory one for
// --no-persist runs. The returned func closes the backing database.
func openHistory(cfg *config.Config) (*history.Store, func(), error) {
	if searchNoPersist {
		return history.NewStore(storage.NewMemory()), nil, nil
	}
	kv, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return nil, nil, err
	}
	return history.NewStore(kv), func() { kv.Close() }, nil
}
