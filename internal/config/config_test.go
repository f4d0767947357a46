package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

// resetFlagSet swaps in a fresh FlagSet before each NewConfig call so the
// same flags are not registered twice across tests.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(os.Stderr)
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("BOARDKEEPER_DATA_DIR", "")
	t.Setenv("BOARDKEEPER_REGISTRY", "")
	t.Setenv("BOARDKEEPER_VERBOSE", "")

	resetFlagSet(t)
	os.Args = os.Args[:1]
	cfg := NewConfig()

	if cfg.DataDir == "" || cfg.IndexFile == "" {
		t.Fatalf("defaults must be non-empty: DataDir=%q, IndexFile=%q", cfg.DataDir, cfg.IndexFile)
	}
	if filepath.Base(cfg.DataDir) != "workspaces" {
		t.Fatalf("DataDir default expected to end in 'workspaces', got %q", cfg.DataDir)
	}
	if filepath.Base(cfg.IndexFile) != "workspaces.json" {
		t.Fatalf("IndexFile default expected 'workspaces.json', got %q", cfg.IndexFile)
	}
	if cfg.Verbose {
		t.Fatalf("Verbose must default to false")
	}
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BOARDKEEPER_DATA_DIR", filepath.Join(dir, "docs"))
	t.Setenv("BOARDKEEPER_REGISTRY", filepath.Join(dir, "index.json"))
	t.Setenv("BOARDKEEPER_VERBOSE", "true")

	resetFlagSet(t)
	os.Args = os.Args[:1]
	cfg := NewConfig()

	if cfg.DataDir != filepath.Join(dir, "docs") {
		t.Fatalf("DataDir: expected env value, got %q", cfg.DataDir)
	}
	if cfg.IndexFile != filepath.Join(dir, "index.json") {
		t.Fatalf("IndexFile: expected env value, got %q", cfg.IndexFile)
	}
	if !cfg.Verbose {
		t.Fatalf("Verbose: expected env value true")
	}
}
