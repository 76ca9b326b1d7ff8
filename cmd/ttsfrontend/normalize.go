package main

import (
	"fmt"
	"os"

	"github.com/example/go-tts-frontend/internal/text"
	"github.com/spf13/cobra"
)

func newNormalizeCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Print the normalized form of text without encoding it",
		RunE: func(_ *cobra.Command, _ []string) error {
			raw, err := readInputText(input, os.Stdin)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(os.Stdout, text.Normalize(raw))
			return err
		},
	}

	cmd.Flags().StringVar(&input, "text", "", "Text to normalize ('-' or empty reads stdin)")

	return cmd
}
