package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/letterfall/internal/config"
	"github.com/vovakirdan/letterfall/internal/core"
	"github.com/vovakirdan/letterfall/internal/games/letterfall"
	"github.com/vovakirdan/letterfall/internal/platform/tui"
	"github.com/vovakirdan/letterfall/internal/registry"
	"github.com/vovakirdan/letterfall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play letterfall",
	Long: `Start a game in the current terminal.

Controls:
  A-Z        - Destroy the matching falling letter
  Enter      - Start / restart
  Esc        - Pause
  Ctrl+C     - Quit

Difficulty options:
  easy   - Slower letters, longer spawn gaps
  normal - Default pacing
  hard   - Faster letters, shorter spawn gaps, starts at level 3
  fixed  - Level never changes regardless of config

Examples:
  letterfall play
  letterfall play --difficulty hard
  letterfall play --config ./my-letterfall.yaml
  letterfall play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// A custom config must load and validate before the game starts.
	if flagConfig != "" {
		if _, err := config.LoadLetterfall(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Config path and difficulty apply at the next game reset.
	letterfall.SetConfigPath(flagConfig)
	letterfall.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create("letterfall")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
