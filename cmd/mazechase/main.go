// mazechase is a terminal maze-chase game: clear every pellet while four
// pursuers hunt you, and turn the tables with power pellets.
//
// Usage:
//
//	mazechase list              - List available games
//	mazechase play chase        - Play directly
//	mazechase menu              - Start menu to pick games interactively
//	mazechase scores [game]     - Show high scores, or a summary of every game
//	mazechase simulate          - Run a seeded headless game and print its final state
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.mazechase/scores.db)
//	--log <path>     - Write session events to a log file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/mazechase/internal/games/chase"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazechase",
	Short: "Maze Chase - clear the maze before the pursuers catch you",
	Long: `Maze Chase is a terminal maze-chase game.

Eat every pellet to clear a level. Power pellets frighten the four
pursuers for a few seconds; catch them then for bonus points.

Available commands:
  list      - Show all available games
  play      - Play a specific game directly
  menu      - Interactive game picker menu
  scores    - View high scores
  simulate  - Run a seeded game headlessly

Examples:
  mazechase play chase
  mazechase play chase --difficulty hard
  mazechase menu
  mazechase scores chase
  mazechase simulate --seed 42 --frames 5000`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mazechase/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write game events to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}
