// mazeterm is a terminal maze game with procedurally generated levels.
//
// Usage:
//
//	mazeterm play              - Play the maze campaign
//	mazeterm menu              - Start the interactive menu
//	mazeterm gen               - Generate a maze and print it to stdout
//	mazeterm serve             - Start SSH server for remote play
//	mazeterm scores            - Show high scores and best runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible mazes
//	--db <path>     - Set database path (default: ~/.mazeterm/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/avoronov/mazeterm/internal/games/maze"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazeterm",
	Short: "Mazeterm - Play procedurally generated mazes in your terminal",
	Long: `Mazeterm is a terminal maze game. Every level is carved from a
16-bit seed, so the same seed always produces the same maze.

Available commands:
  play     - Play the maze campaign directly
  menu     - Interactive menu with difficulty picker
  gen      - Generate a maze and print it to stdout
  serve    - Start SSH server for remote play
  scores   - View high scores and best runs

Examples:
  mazeterm play
  mazeterm play --difficulty hard
  mazeterm gen --width 31 --height 21 --solve
  mazeterm serve --ssh :2222
  mazeterm scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Base seed (0 = picked on the title screen)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mazeterm/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
