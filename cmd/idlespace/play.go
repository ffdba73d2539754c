package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/idle-space/internal/config"
	"github.com/vovakirdan/idle-space/internal/core"
	"github.com/vovakirdan/idle-space/internal/platform/tui"
	"github.com/vovakirdan/idle-space/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start flying",
	Long: `Start the game. Your idle points are settled first; if you have been
away, the welcome-back summary waits for you to collect them.

Controls:
  Left/Right, H/L   - Steer
  Space or click +1 - One extra point
  Enter/Esc         - Collect idle points
  R                 - Fly again (after a crash)
  Ctrl+S            - Screenshot
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Start slow, speeds up to max over the flight
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - Rocks fall at a constant speed

Examples:
  idlespace play
  idlespace play --difficulty hard
  idlespace play --db ""               # nothing is saved
  idlespace play --config ./my.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	preset, err := parseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := loadConfig(preset)

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if flagDifficulty == "" && interactive {
		preset, err = tui.PickDifficulty(config.PresetFor(cfg.Difficulty))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		config.ApplyPreset(&cfg, preset)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, closeLog := openLogFile()
	defer closeLog()

	store, err := openStore()
	if err != nil {
		// Play on without persistence.
		logger.Warn("could not open database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: %v (nothing will be saved)\n", err)
	}

	opts := tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Player: playerName(),
		Logger: logger,
	}
	if store != nil {
		defer store.Close()
		opts.Store = store
		opts.Runs = store
	} else {
		opts.Store = storage.NewMemoryStore()
	}

	logger.Info("starting flight",
		"player", opts.Player,
		"difficulty", difficultyName(preset),
		"db", flagDBPath,
	)

	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func difficultyName(p config.DifficultyPreset) string {
	if p == "" {
		return "config"
	}
	return string(p)
}
