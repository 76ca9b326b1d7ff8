package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/example/go-tts-frontend/internal/cmudict"
	"github.com/example/go-tts-frontend/internal/config"
	"github.com/example/go-tts-frontend/internal/frontend"
	"github.com/example/go-tts-frontend/internal/server"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	activeCfg config.Config
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "ttsfrontend",
		Short: "English TTS text frontend command line",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded
			setupLogger(loaded.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newEncodeCmd())
	cmd.AddCommand(newNormalizeCmd())
	cmd.AddCommand(newSymbolsCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newHealthCmd())

	return cmd
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(levelStr string) {
	lvl, err := server.ParseLogLevel(levelStr)
	if err != nil {
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

func requireConfig() (config.Config, error) {
	if activeCfg.Dictionary.Path == "" {
		return config.Config{}, fmt.Errorf("configuration not loaded")
	}
	return activeCfg, nil
}

// buildProcessor loads the pronunciation dictionary and wires the frontend
// processor per config. noMix forces the never-substitute random source.
func buildProcessor(cfg config.Config, noMix bool) (*frontend.Processor, error) {
	dict, err := cmudict.LoadFile(cfg.Dictionary.Path, cmudict.Window{
		Start: cfg.Dictionary.StartLine,
		Stop:  cfg.Dictionary.StopLine,
	})
	if err != nil {
		return nil, err
	}

	var rng frontend.Rand
	switch {
	case noMix:
		rng = frontend.NeverMix{}
	case cfg.Mix.Seed != 0:
		rng = rand.New(rand.NewPCG(cfg.Mix.Seed, 0))
	}

	return frontend.NewProcessor(dict, rng,
		frontend.WithMixProbability(cfg.Mix.Probability)), nil
}
