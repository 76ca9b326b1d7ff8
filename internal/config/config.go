package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Mix        MixConfig        `mapstructure:"mix"`
	Server     ServerConfig     `mapstructure:"server"`
	LogLevel   string           `mapstructure:"log_level"`
}

type DictionaryConfig struct {
	Path      string `mapstructure:"path"`
	StartLine int    `mapstructure:"start_line"`
	StopLine  int    `mapstructure:"stop_line"`
}

type MixConfig struct {
	Probability float64 `mapstructure:"probability"`
	Seed        uint64  `mapstructure:"seed"`
}

type ServerConfig struct {
	ListenAddr      string `mapstructure:"listen_addr"`
	MaxTextBytes    int    `mapstructure:"max_text_bytes"`
	Workers         int    `mapstructure:"workers"`
	RequestTimeout  int    `mapstructure:"request_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Dictionary: DictionaryConfig{
			Path:      "data/cmudict-0.7b.txt",
			StartLine: 126,
			StopLine:  133905,
		},
		Mix: MixConfig{
			Probability: 0.5,
			Seed:        0,
		},
		Server: ServerConfig{
			ListenAddr:      ":8080",
			MaxTextBytes:    4096,
			Workers:         2,
			RequestTimeout:  10,
			ShutdownTimeout: 30,
		},
		LogLevel: "info",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("dictionary-path", defaults.Dictionary.Path, "Path to the pronunciation dictionary")
	fs.Int("dictionary-start-line", defaults.Dictionary.StartLine, "First data line of the dictionary (0-indexed)")
	fs.Int("dictionary-stop-line", defaults.Dictionary.StopLine, "Line the dictionary data ends before (0-indexed)")
	fs.Float64("mix-probability", defaults.Mix.Probability, "Per-word phonetic substitution probability")
	fs.Uint64("mix-seed", defaults.Mix.Seed, "Random seed for pronunciation mixing (0 = unseeded)")
	fs.String("server-listen-addr", defaults.Server.ListenAddr, "HTTP listen address")
	fs.Int("server-max-text-bytes", defaults.Server.MaxTextBytes, "Maximum accepted text length in bytes")
	fs.Int("server-workers", defaults.Server.Workers, "Max concurrent encode requests (0 = unlimited)")
	fs.Int("server-request-timeout", defaults.Server.RequestTimeout, "Per-request encode deadline in seconds")
	fs.Int("server-shutdown-timeout", defaults.Server.ShutdownTimeout, "Graceful shutdown drain period in seconds")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("TTSFRONTEND")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("ttsfrontend")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("dictionary.path", c.Dictionary.Path)
	v.SetDefault("dictionary.start_line", c.Dictionary.StartLine)
	v.SetDefault("dictionary.stop_line", c.Dictionary.StopLine)
	v.SetDefault("mix.probability", c.Mix.Probability)
	v.SetDefault("mix.seed", c.Mix.Seed)
	v.SetDefault("server.listen_addr", c.Server.ListenAddr)
	v.SetDefault("server.max_text_bytes", c.Server.MaxTextBytes)
	v.SetDefault("server.workers", c.Server.Workers)
	v.SetDefault("server.request_timeout", c.Server.RequestTimeout)
	v.SetDefault("server.shutdown_timeout", c.Server.ShutdownTimeout)
	v.SetDefault("log_level", c.LogLevel)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("dictionary.path", "dictionary-path")
	v.RegisterAlias("dictionary.start_line", "dictionary-start-line")
	v.RegisterAlias("dictionary.stop_line", "dictionary-stop-line")
	v.RegisterAlias("mix.probability", "mix-probability")
	v.RegisterAlias("mix.seed", "mix-seed")
	v.RegisterAlias("server.listen_addr", "server-listen-addr")
	v.RegisterAlias("server.max_text_bytes", "server-max-text-bytes")
	v.RegisterAlias("server.workers", "server-workers")
	v.RegisterAlias("server.request_timeout", "server-request-timeout")
	v.RegisterAlias("server.shutdown_timeout", "server-shutdown-timeout")
	v.RegisterAlias("log_level", "log-level")
}
