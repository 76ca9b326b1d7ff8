package main

import (
	"fmt"
	"os"

	"github.com/example/go-tts-frontend/internal/symbols"
	"github.com/spf13/cobra"
)

func newSymbolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symbols",
		Short: "Dump the symbol vocabulary with IDs",
		RunE: func(_ *cobra.Command, _ []string) error {
			for id, sym := range symbols.All() {
				if _, err := fmt.Fprintf(os.Stdout, "%d\t%q\n", id, sym); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
