// Package main is the entry point for Hunt the Wumpus.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/samdwyer/wumpus/internal/game"
	"github.com/samdwyer/wumpus/internal/gamedata"
	"github.com/samdwyer/wumpus/internal/storage"
	"github.com/samdwyer/wumpus/internal/telemetry"
	"github.com/samdwyer/wumpus/internal/term"
	"github.com/samdwyer/wumpus/internal/ui"
)

func main() {
	// Load .env file for local development
	envErr := godotenv.Load()

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "wumpus: %v\n", err)
		os.Exit(2)
	}
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 picks one from the clock")
	flag.BoolVar(&cfg.Cheat, "cheat", cfg.Cheat, "enable the dump and best commands")
	flag.StringVar(&cfg.SavePath, "save", cfg.SavePath, "file the cave is kept in, empty to keep it in memory")
	flag.DurationVar(&cfg.Pace, "pace", cfg.Pace, "pause between rooms while an arrow flies")
	flag.BoolVar(&cfg.Screen, "screen", cfg.Screen, "play full-screen")
	flag.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "print without colour")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write the log to this file instead of stderr")
	flag.BoolVar(&cfg.Telemetry, "telemetry", cfg.Telemetry, "export traces over OTLP")
	flag.Parse()

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wumpus: %v\n", err)
		os.Exit(2)
	}
	defer closeLog()
	if envErr != nil {
		// Not fatal - env vars might be set directly
		logger.Debug(".env file not loaded", "err", envErr)
	}

	ctx := context.Background()

	if cfg.Telemetry || telemetry.Enabled() {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Warn("telemetry setup failed, playing without traces", "err", err)
			cfg.Telemetry = false
		} else {
			cfg.Telemetry = true
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Warn("telemetry shutdown failed", "err", err)
				}
			}()
		}
	}

	rules, err := gamedata.LoadRules()
	if err != nil {
		logger.Fatal("failed to load rules", "err", err)
	}
	if err := rules.Validate(); err != nil {
		logger.Fatal("bad rules", "err", err)
	}

	var slot storage.Slot
	if cfg.SavePath != "" {
		slot = storage.NewFileSlot(cfg.SavePath)
	}

	console, closeConsole, err := newConsole(cfg, rules)
	if err != nil {
		logger.Fatal("failed to open console", "err", err)
	}

	session, err := game.New(cfg, rules, console, slot, logger)
	if err != nil {
		closeConsole()
		logger.Fatal("failed to initialize game", "err", err)
	}
	err = session.Run(ctx)
	closeConsole()
	if err != nil {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}

// newLogger builds the session logger. The full-screen console owns the
// terminal, so without a log file it logs nowhere.
func newLogger(cfg game.Config) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		out = f
		closeFn = func() { f.Close() }
	case cfg.Screen:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          "wumpus",
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}

// newConsole opens the console the configuration asks for.
func newConsole(cfg game.Config, rules gamedata.Rules) (game.Console, func(), error) {
	if cfg.Screen {
		palette, err := gamedata.NewPalette(rules.Palette)
		if err != nil {
			return nil, nil, err
		}
		screen, err := ui.NewScreen()
		if err != nil {
			return nil, nil, err
		}
		return ui.NewConsole(screen, palette), screen.Close, nil
	}

	c, err := term.New(os.Stdin, os.Stdout, rules.Palette, term.Styled(os.Stdout, cfg.NoColor))
	if err != nil {
		return nil, nil, err
	}
	return c, func() {}, nil
}

// setupOTelEnv points the exporter at Honeycomb when an API key is set and
// no endpoint was configured.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_WUMPUS_API_KEY")
	if apiKey == "" || os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_WUMPUS_DATASET")
	if dataset == "" {
		dataset = "wumpus"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
