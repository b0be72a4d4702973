package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arena/internal/platform/tui"
	"github.com/vovakirdan/arena/internal/registry"
	"github.com/vovakirdan/arena/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arena with the menu",
	Long: `Start the arena in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a run ends, press B to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  arena menu
  arena menu --fps 30
  arena menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := screenLogger("arena")
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	opts := tui.Options{
		Player:     currentUser(),
		Difficulty: difficultyName(),
		Logger:     logger,
		InMenu:     true,
	}

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			game, err := registry.Create(result.GameID)
			if err != nil {
				return fmt.Errorf("creating game: %w", err)
			}

			goBack, err := tui.Run(game, store, cfg, opts)
			if err != nil {
				return fmt.Errorf("running game: %w", err)
			}
			if !goBack {
				return nil
			}
		}
	}
}
