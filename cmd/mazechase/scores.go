package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/registry"
	"github.com/vovakirdan/mazechase/internal/storage"
)

var (
	flagAllScores   bool
	flagClearScores bool
)

// topScoreCount is how many runs scores shows without --all.
const topScoreCount = 10

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top 10 runs for the specified game, with the level
reached and the difficulty played. Without a game, print a summary of
every game that has recorded runs.

Examples:
  mazechase scores
  mazechase scores chase
  mazechase scores chase --all
  mazechase scores chase --clear
  mazechase scores chase --db ./scores.db`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "List every recorded run instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every recorded run of the game")
}

func runScores(_ *cobra.Command, args []string) {
	var gameID string
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'mazechase list' to see available games.")
			os.Exit(1)
		}
	} else if flagAllScores || flagClearScores {
		fmt.Fprintln(os.Stderr, "Error: --all and --clear need a game")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case gameID == "":
		err = printSummary(os.Stdout, store)
	case flagClearScores:
		if err = store.ClearScores(gameID); err == nil {
			fmt.Printf("Cleared all %s scores.\n", gameID)
		}
	default:
		err = printScores(os.Stdout, store, gameID, flagAllScores)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the game's runs, best first, followed by its stats.
func printScores(w io.Writer, store *storage.Store, gameID string, all bool) error {
	title := gameID
	if game, err := registry.Create(gameID); err == nil {
		title = game.Title()
	}

	var (
		scores []storage.ScoreEntry
		err    error
	)
	if all {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, topScoreCount)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'mazechase play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-10s  %s\n", "Rank", "Score", "Level", "Difficulty", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-10s  %s\n", "----", "-----", "-----", "----------", "----")
	for i, e := range scores {
		difficulty := e.Difficulty
		if difficulty == "" {
			difficulty = "-"
		}
		fmt.Fprintf(w, "  %-4d  %-8d  %-5d  %-10s  %s\n", i+1, e.Score, e.Level, difficulty, e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d  Runs: %d  Average: %.0f  Furthest level: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestLevel)
	}
	return nil
}

// printSummary writes one line of stats per game with recorded runs.
func printSummary(w io.Writer, store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if len(stats) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	fmt.Fprintf(w, "  %-10s  %-5s  %-8s  %-8s  %-5s  %s\n", "Game", "Runs", "Best", "Average", "Level", "Last played")
	fmt.Fprintf(w, "  %-10s  %-5s  %-8s  %-8s  %-5s  %s\n", "----", "----", "----", "-------", "-----", "-----------")
	for _, id := range ids {
		s := stats[id]
		fmt.Fprintf(w, "  %-10s  %-5d  %-8d  %-8.0f  %-5d  %s\n",
			id, s.GamesCount, s.HighScore, s.AvgScore, s.BestLevel, s.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
