package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	var text string
	var asJSON bool
	var noMix bool
	var seed uint64

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode text to a symbol ID sequence",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Mix.Seed = seed
			}

			input, err := readInputText(text, os.Stdin)
			if err != nil {
				return err
			}

			proc, err := buildProcessor(cfg, noMix)
			if err != nil {
				return err
			}

			ids := proc.TextToSequence(input)

			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(ids)
			}

			out := make([]string, len(ids))
			for i, id := range ids {
				out[i] = strconv.Itoa(id)
			}
			_, err = fmt.Fprintln(os.Stdout, strings.Join(out, " "))
			return err
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to encode ('-' or empty reads stdin)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the sequence as a JSON array")
	cmd.Flags().BoolVar(&noMix, "no-mix", false, "Disable phonetic substitution for deterministic output")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed for this invocation (overrides --mix-seed, 0 = unseeded)")

	return cmd
}

// readInputText resolves the --text flag: a literal value, or stdin when the
// flag is empty or "-".
func readInputText(flagValue string, stdin io.Reader) (string, error) {
	if flagValue != "" && flagValue != "-" {
		return flagValue, nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	input := strings.TrimSpace(string(data))
	if input == "" {
		return "", fmt.Errorf("no input text: pass --text or pipe text on stdin")
	}
	return input, nil
}
