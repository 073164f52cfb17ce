package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avoronov/mazeterm/internal/config"
	"github.com/avoronov/mazeterm/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and best runs",
	Long: `Display the top 10 campaign scores and the best recorded run
for each level.

Examples:
  mazeterm scores
  mazeterm scores --db ./scores.db
  mazeterm scores --clear`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if clearErr := store.ClearScores("maze"); clearErr != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", clearErr)
			os.Exit(1)
		}
		fmt.Println("All scores cleared.")
		return
	}

	// Get top scores
	scores, err := store.TopScores("maze", 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Println("High Scores - Maze")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'mazeterm play' to set the first high score!")
	} else {
		// Print header
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

		// Print scores
		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
		}

		fmt.Println()
		if stats, statsErr := store.GetGameStats("maze"); statsErr == nil {
			fmt.Printf("Best: %d  Campaigns: %d  Average: %.0f\n",
				stats.HighScore, stats.GamesCount, stats.AvgScore)
		}
	}

	// Best run per campaign level
	maxLevel := config.DefaultMazeConfig().Gameplay.MaxLevel
	printedHeader := false
	for level := 1; level <= maxLevel; level++ {
		run, runErr := store.BestRun(level)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", runErr)
			os.Exit(1)
		}
		if run == nil {
			continue
		}
		if !printedHeader {
			fmt.Println()
			fmt.Println("Best Runs")
			fmt.Println()
			fmt.Printf("  %-5s  %-6s  %-6s  %-7s  %s\n", "Level", "Moves", "Best", "Size", "Seed")
			fmt.Printf("  %-5s  %-6s  %-6s  %-7s  %s\n", "-----", "-----", "----", "----", "----")
			printedHeader = true
		}
		fmt.Printf("  %-5d  %-6d  %-6d  %-7s  %05d\n",
			run.Level, run.Moves, run.OptimalMoves,
			fmt.Sprintf("%dx%d", run.Width, run.Height), run.Seed)
	}
}
