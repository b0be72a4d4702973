// arena is a wave-based top-down shooter played in the terminal.
//
// Usage:
//
//	arena play              - Play a run
//	arena menu              - Start the menu (play, high scores)
//	arena serve             - Start SSH server for remote play
//	arena scores            - Show the best runs
//	arena config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.arena/scores.db)
//	--config <path>       - Load a custom arena.yaml
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file while a game is on screen
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arena/internal/config"
	"github.com/vovakirdan/arena/internal/core"
	"github.com/vovakirdan/arena/internal/games/arena"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Arena - survive waves of enemies in your terminal",
	Long: `Arena is a top-down wave shooter for the terminal.

Move with WASD or the arrow keys, hold Space to fire and collect the
power-ups dropped by fallen enemies. Every cleared wave brings a larger
and tougher one.

Available commands:
  play     - Play a run directly
  menu     - Interactive menu with the scoreboard
  serve    - Start SSH server for remote play
  scores   - View the best runs
  config   - Print the effective configuration

Examples:
  arena play
  arena play --difficulty hard
  arena serve --ssh :2222
  arena scores --limit 20`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return applyGameFlags()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arena/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom arena config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file used while a game is on screen")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// applyGameFlags validates the shared flags and hands them to the game.
func applyGameFlags() error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}
	if _, err := log.ParseLevel(flagLogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	arena.SetConfigPath(flagConfig)
	arena.SetDifficultyPreset(flagDifficulty)
	return nil
}

// difficultyName returns the preset name recorded with saved runs.
func difficultyName() string {
	preset, _ := config.ParsePreset(flagDifficulty)
	return string(preset)
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// screenLogger returns the logger used while the alternate screen is active.
// Without --log-file nothing is logged, since stderr shares the terminal.
// The returned func closes the log file.
func screenLogger(prefix string) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	return newLogger(f, prefix), func() { f.Close() }, nil
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// currentUser labels locally played runs.
func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
