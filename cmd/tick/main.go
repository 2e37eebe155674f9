package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tick/internal/config"
	"github.com/idilsaglam/tick/internal/store/memstore"
	"github.com/idilsaglam/tick/internal/ui"
)

func main() {
	// Root flags (flags beat the config file)
	configPath := flag.String("config", "", "path to config.toml (default ~/.tick/config.toml)")
	theme := flag.String("theme", "", "theme: classic, neon or mono")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if *theme != "" {
		cfg.Theme = *theme
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "log:", err)
		os.Exit(1)
	}
	defer closeLog()

	st := memstore.New()
	st.Subscribe(func(ev memstore.Event) {
		logger.Debug("list changed", "op", ev.Op, "id", ev.ID)
	})

	logger.Info("starting", "theme", cfg.Theme)
	if err := ui.Run(st, cfg); err != nil {
		logger.Error("tui failed", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Info("done", "items", st.Len())
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		p, err := config.Path()
		if err != nil {
			// no resolvable home dir; run on defaults
			return config.Default(), nil
		}
		path = p
	}
	return config.Load(path)
}

// newLogger writes to the configured file; stdout belongs to the TUI.
func newLogger(cfg config.Config) (*log.Logger, func(), error) {
	if cfg.LogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	lvl, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           lvl,
	})
	return logger, func() { f.Close() }, nil
}
