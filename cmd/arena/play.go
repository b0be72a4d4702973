package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arena/internal/platform/tui"
	"github.com/vovakirdan/arena/internal/registry"
	"github.com/vovakirdan/arena/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run directly.

Controls:
  WASD/Arrows  - Move
  Space        - Fire
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More health, faster fire rate, softer contact damage
  normal - Default balance
  hard   - Less health, slower fire rate, faster spawns, fewer drops

Examples:
  arena play
  arena play --difficulty easy
  arena play --seed 42
  arena play --config ./my-arena.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := screenLogger("arena")
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create("arena")
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// The game still works without storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	_, err = tui.Run(game, store, runtimeConfig(), tui.Options{
		Player:     currentUser(),
		Difficulty: difficultyName(),
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
