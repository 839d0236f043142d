package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bug-crossing/internal/crossing"
	"github.com/vovakirdan/bug-crossing/internal/platform/tui"
	"github.com/vovakirdan/bug-crossing/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresClear  bool
	flagScoresBrowse bool
	flagScoresPlayer string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs with the level each one reached.

Examples:
  crossing scores
  crossing scores --limit 25
  crossing scores --player alice
  crossing scores --browse
  crossing scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
	scoresCmd.Flags().BoolVar(&flagScoresBrowse, "browse", false, "Open the interactive scoreboard")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show one player's best run")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		n, err := store.ClearScores(crossing.GameID)
		if err != nil {
			fail("%v", err)
		}
		fmt.Printf("Cleared %d runs.\n", n)

	case flagScoresBrowse:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, crossing.GameID, crossing.New().Title(), width, height); err != nil {
			fail("%v", err)
		}

	case flagScoresPlayer != "":
		best, err := store.PlayerBest(crossing.GameID, flagScoresPlayer)
		if err != nil {
			fail("%v", err)
		}
		if best == nil {
			fmt.Printf("No runs recorded for %s.\n", flagScoresPlayer)
			return
		}
		fmt.Printf("Best run for %s: %d points, level %d (%s)\n",
			flagScoresPlayer, best.Score, best.Level, best.CreatedAt.Format("2006-01-02 15:04"))

	default:
		printScores(store)
	}
}

func printScores(store *storage.Store) {
	scores, err := store.TopScores(crossing.GameID, flagScoresLimit)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Println("High Scores - Bug Crossing")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'crossing play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-5s  %s\n", "Rank", "Player", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-5s  %s\n", "----", "------", "-----", "-----", "----")

	for i, entry := range scores {
		name := entry.Player
		if name == "" {
			name = "local"
		}
		fmt.Printf("  %-4d  %-12s  %-6d  %-5d  %s\n",
			i+1, name, entry.Score, entry.Level, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(crossing.GameID); err == nil {
		fmt.Printf("Best: %d   Best level: %d   Runs: %d\n", stats.HighScore, stats.BestLevel, stats.GamesCount)
	}
}
