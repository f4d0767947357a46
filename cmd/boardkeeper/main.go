package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"BoardKeeper/internal/commands"
	"BoardKeeper/internal/config"
	"BoardKeeper/internal/registry"
	"BoardKeeper/internal/store"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// Load unified config (env + flags)
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion()
		return
	}

	log := newLogger(cfg.Verbose)
	defer func() { _ = log.Sync() }()

	st := store.New(log)
	reg, err := registry.Open(cfg.IndexFile, cfg.DataDir, st, log)
	if err != nil {
		log.Errorw("cannot open workspace registry", "path", cfg.IndexFile, "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	env := &commands.Env{Cfg: cfg, Registry: reg, Store: st, Log: log}
	exitCode := commands.Dispatch(ctx, env, flag.Args())
	if exitCode == 0 {
		return
	}
	os.Exit(exitCode)
}

// newLogger keeps stderr quiet for normal CLI use; -v opens it up.
func newLogger(verbose bool) *zap.SugaredLogger {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger.Sugar()
}

func printVersion() {
	fmt.Printf("BoardKeeper CLI\nVersion: %s\nBuild date: %s\n", version, buildDate)
}
