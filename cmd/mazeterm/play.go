package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avoronov/mazeterm/internal/config"
	"github.com/avoronov/mazeterm/internal/core"
	"github.com/avoronov/mazeterm/internal/games/maze"
	"github.com/avoronov/mazeterm/internal/platform/tui"
	"github.com/avoronov/mazeterm/internal/registry"
	"github.com/avoronov/mazeterm/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWidth      int
	flagHeight     int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the maze campaign",
	Long: `Start the maze campaign. Each level is a perfect maze carved from
the current seed; reach the exit to advance.

Controls:
  WASD/Arrows/hjkl - Move
  ?                - Toggle hint path
  P/Esc            - Pause
  R                - Restart level
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 15x13 mazes
  normal - 19x17 mazes
  hard   - 25x21 mazes

Examples:
  mazeterm play
  mazeterm play --difficulty hard
  mazeterm play --width 31 --height 23
  mazeterm play --seed 1234
  mazeterm play --config ./my-maze.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Maze width in cells (odd, >= 5; overrides difficulty)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Maze height in cells (odd, >= 5; overrides difficulty)")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !registry.Exists("maze") {
		fmt.Fprintln(os.Stderr, "Error: maze game is not registered")
		os.Exit(1)
	}

	// Get terminal size early for the difficulty selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	maze.SetConfigPath(flagConfig)
	maze.SetDifficultyPreset(flagDifficulty)

	// Explicit grid dimensions win over difficulty presets
	if flagWidth > 0 || flagHeight > 0 {
		// Reject bad dimensions here rather than mid-game
		mc := config.DefaultMazeConfig()
		if flagWidth > 0 {
			mc.Grid.Width = flagWidth
		}
		if flagHeight > 0 {
			mc.Grid.Height = flagHeight
		}
		if err := mc.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		maze.SetGridOverride(flagWidth, flagHeight)
	} else if flagDifficulty == "" {
		// No difficulty given; show the selector
		selection, selErr := tui.RunMazeSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}

		// User pressed back or quit
		if selection == nil {
			return
		}
		maze.SetDifficultyPreset(string(selection.Preset))
	}

	// Create game instance
	game, err := registry.Create("maze")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
