package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arena/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a run would use, as YAML.

The file is looked up in this order:
  1. --config path
  2. ~/.arena/configs/arena.yaml
  3. ./configs/arena.yaml
  4. built-in defaults

The --difficulty preset is applied on top.

Examples:
  arena config > ~/.arena/configs/arena.yaml
  arena config --difficulty hard
  arena config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.GetDefaultYAML())
		return err
	}

	cfg, err := config.LoadArena(flagConfig)
	if err != nil {
		return err
	}
	preset, _ := config.ParsePreset(flagDifficulty)
	config.ApplyArenaPreset(&cfg, preset)

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = out.Write(data)
	return err
}
