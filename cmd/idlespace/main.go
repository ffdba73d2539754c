// idlespace is an idle space game for the terminal: your score grows while
// you are away, and you dodge falling rocks while you are here.
//
// Usage:
//
//	idlespace play           - Fly (the default command)
//	idlespace status         - Show your score and pending idle points
//	idlespace scores         - Show the longest flights
//	idlespace serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set frame rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible flights
//	--db <path>        - Set database path (default: ~/.idlespace/idlespace.db, "" = in memory)
//	--config <path>    - Use a custom config YAML
//	--player <name>    - Name recorded with each flight (default: $USER)
//	--log-level <lvl>  - debug, info, warn or error
//	--difficulty <p>   - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagPlayer     string
	flagLogLevel   string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "idlespace",
	Short: "Idle Space - an idle game with a spaceship in your terminal",
	Long: `Idle Space earns you one point for every second that passes, whether
the game is running or not. When you come back, a welcome-back summary
shows how long you were away and what you earned.

While you are here, steer your craft around falling rocks and press the
+1 button for extra points.

Available commands:
  play     - Start flying (default)
  status   - Print your score and pending idle points
  scores   - View the longest flights
  serve    - Start SSH server for remote play

Examples:
  idlespace
  idlespace play --difficulty hard
  idlespace status
  idlespace scores --all
  idlespace serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.idlespace/idlespace.db", "Path to the database (empty = keep nothing)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name recorded with each flight (default: $USER)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed (asks when omitted)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
