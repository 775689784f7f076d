// Package main is the entry point for the smartsearch CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tiendamayor/smartsearch/internal/cmd"
)

func main() {
	err := cmd.Execute()
	switch {
	case err == nil:
		os.Exit(0)
	case errors.Is(err, cmd.ErrCancelled):
		os.Exit(1)
	case errors.Is(err, cmd.ErrFallback):
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "smartsearch: %v\n", err)
		os.Exit(1)
	}
}
