package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/idle-space/internal/platform/tui"
	"github.com/vovakirdan/idle-space/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresPlain bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the longest flights",
	Long: `Display the longest recorded flights with a bar chart.

In a terminal this opens an interactive scoreboard; Tab switches between
your flights and every pilot's. Use --plain for printable output.

Examples:
  idlespace scores
  idlespace scores --all --plain
  idlespace scores --clear            # forget your own flights`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every pilot's flights in plain mode")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print instead of opening the scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete your recorded flights")
}

func runScores(_ *cobra.Command, _ []string) {
	if flagDBPath == "" {
		fmt.Fprintln(os.Stderr, "Error: scores needs a database (--db)")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	player := playerName()

	if flagScoresClear {
		if err := store.ClearRuns(player); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing flights: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Flights cleared for %s.\n", player)
		return
	}

	width, height := 80, 24
	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	if interactive && !flagScoresPlain {
		if err := tui.RunScoreboard(store, player, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	filter, title := player, fmt.Sprintf("Longest flights - %s", player)
	if flagScoresAll {
		filter, title = "", "Longest flights - all pilots"
	}

	runs, err := store.TopRuns(filter, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving flights: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No flights recorded yet.")
		fmt.Println()
		fmt.Println("Run 'idlespace play' and dodge some rocks!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-10s  %s\n", "Rank", "Pilot", "Distance", "Date")
	fmt.Printf("  %-4s  %-12s  %-10s  %s\n", "----", "-----", "--------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-10s  %s\n",
			i+1, r.Player, humanize.Comma(r.Distance), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println(tui.RenderRunsChart(runs, min(width-4, 60), 10))
}
