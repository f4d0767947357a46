package config

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// DataDir holds the per-workspace document files.
	DataDir string `env:"BOARDKEEPER_DATA_DIR"`
	// IndexFile is the master registry index.
	IndexFile string `env:"BOARDKEEPER_REGISTRY"`

	Verbose bool `env:"BOARDKEEPER_VERBOSE"`
	Version bool `env:"-"` // show version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags only override values the environment did not set
	flag.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory holding workspace documents")
	flag.StringVar(&cfg.IndexFile, "registry", cfg.IndexFile, "path to the workspace registry index")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "show version and exit")

	flag.Parse()

	// Defaults live under the user config dir.
	if cfg.DataDir == "" || cfg.IndexFile == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = "."
		}
		base = filepath.Join(base, "BoardKeeper")
		if cfg.DataDir == "" {
			cfg.DataDir = filepath.Join(base, "workspaces")
		}
		if cfg.IndexFile == "" {
			cfg.IndexFile = filepath.Join(base, "workspaces.json")
		}
	}

	return cfg
}
