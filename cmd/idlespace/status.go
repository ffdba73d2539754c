package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/idle-space/internal/config"
	"github.com/vovakirdan/idle-space/internal/elapsed"
	"github.com/vovakirdan/idle-space/internal/idle"
	"github.com/vovakirdan/idle-space/internal/storage"
)

var flagStatusAll bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show your score and pending idle points",
	Long: `Print the stored score and the idle points waiting for you, without
starting the game. Nothing is written: the points are collected the next
time you play.

With --all, every pilot that has played over SSH is listed as well.

Examples:
  idlespace status
  idlespace status --all
  idlespace status --db ./other.db`,
	Args: cobra.NoArgs,
	Run:  runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&flagStatusAll, "all", false, "Also list every SSH pilot in the database")
}

func runStatus(_ *cobra.Command, _ []string) {
	if flagDBPath == "" {
		fmt.Fprintln(os.Stderr, "Error: status needs a database (--db)")
		os.Exit(1)
	}

	cfg := loadConfig("")
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	logger := stderrLogger("idlespace")
	session := previewSession(storage.ReadOnly(store), cfg.Idle, logger)
	printStatus(session)

	if best, err := store.BestRun(playerName()); err == nil && best > 0 {
		fmt.Printf("Longest flight: %s\n", humanize.Comma(best))
	}

	if !flagStatusAll {
		return
	}

	scoreKey, _ := cfg.Idle.StorageKeys()
	keys, err := store.Keys("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing pilots: %v\n", err)
		os.Exit(1)
	}
	for _, pilot := range pilotNames(keys, scoreKey) {
		fmt.Printf("\n[%s]\n", pilot)
		view := storage.Prefixed(storage.ReadOnly(store), pilot)
		printStatus(previewSession(view, cfg.Idle, logger.WithPrefix(pilot)))
	}
}

// previewSession restores a session whose writes are dropped by kv.
func previewSession(kv storage.KV, cfg config.IdleConfig, logger *log.Logger) *idle.Session {
	scoreKey, lastUpdateKey := cfg.StorageKeys()
	return idle.Restore(idle.SessionConfig{
		Store:      kv,
		Keys:       idle.Keys{Score: scoreKey, LastUpdate: lastUpdateKey},
		MsPerPoint: cfg.MsPerPoint,
		Logger:     logger,
	})
}

func printStatus(session *idle.Session) {
	fmt.Printf("Score: %s\n", humanize.Comma(session.Score()))

	sum, _ := session.Summary()
	away := elapsed.Split(sum.ElapsedMs)
	if sum.Points == 0 && away.IsZero() {
		fmt.Println("No idle points pending.")
		return
	}
	fmt.Printf("Away for %s: %s points waiting to be collected.\n", away, humanize.Comma(sum.Points))
}

// pilotNames extracts SSH pilot names from stored keys of the form
// "<pilot>:<scoreKey>". The local, unprefixed score key is skipped.
func pilotNames(keys []string, scoreKey string) []string {
	suffix := ":" + scoreKey
	var pilots []string
	for _, k := range keys {
		if pilot, ok := strings.CutSuffix(k, suffix); ok && pilot != "" {
			pilots = append(pilots, pilot)
		}
	}
	return pilots
}
