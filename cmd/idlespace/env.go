package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/idle-space/internal/config"
	"github.com/vovakirdan/idle-space/internal/storage"
)

// loadConfig loads the game config and applies a difficulty preset.
func loadConfig(preset config.DifficultyPreset) config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	config.ApplyPreset(&cfg, preset)
	return cfg
}

// parseDifficulty validates the --difficulty flag. An empty value is allowed.
func parseDifficulty(s string) (config.DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	preset := config.ParsePreset(s)
	if preset == "" {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
	return preset, nil
}

// playerName resolves the --player flag.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}

// openStore opens the database, or returns nil for --db "".
func openStore() (*storage.Store, error) {
	if flagDBPath == "" {
		return nil, nil
	}
	return storage.Open(flagDBPath)
}

// openLogFile creates a logger writing to ~/.idlespace/idlespace.log. The
// terminal belongs to the game, so play sessions never log to stderr.
// The returned func closes the file.
func openLogFile() (*log.Logger, func()) {
	discard := func() {}
	path := config.UserPath("idlespace.log")
	if path == "" {
		return log.New(io.Discard), discard
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard), discard
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return log.New(io.Discard), discard
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           logLevel(),
		Prefix:          "idlespace",
	})
	return logger, func() { f.Close() }
}

func logLevel() log.Level {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// stderrLogger creates a logger for commands that do not own the terminal.
func stderrLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           logLevel(),
		Prefix:          prefix,
	})
}
