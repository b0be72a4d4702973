package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config search directories.
const ConfigFile = "arena.yaml"

// LoadArena loads the arena configuration.
// Search order: customPath -> ~/.arena/configs/arena.yaml -> ./configs/arena.yaml -> embedded default
//
// Every file is decoded on top of the defaults, so partial files only need
// the keys they override. A custom path that cannot be read, parsed or
// validated is an error; files found in the search directories are skipped
// when broken.
func LoadArena(customPath string) (ArenaConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ArenaConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return ArenaConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	var cfg ArenaConfig
	if err := yaml.Unmarshal(defaultArenaYAML, &cfg); err != nil {
		return DefaultArenaConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document over the default configuration and
// validates the result.
func Parse(data []byte) (ArenaConfig, error) {
	cfg := DefaultArenaConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ArenaConfig{}, fmt.Errorf("parse: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return ArenaConfig{}, err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg ArenaConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// Validate reports every value that would make the simulation misbehave.
func Validate(cfg ArenaConfig) error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("player.radius", cfg.Player.Radius)
	positive("player.max_health", cfg.Player.MaxHealth)
	positive("player.speed", cfg.Player.Speed)
	positive("player.fire_rate", cfg.Player.FireRate)
	positive("player.bullet_speed", cfg.Player.BulletSpeed)

	archetypes := map[string]ArchetypeConfig{
		"basic":   cfg.Enemies.Basic,
		"fast":    cfg.Enemies.Fast,
		"tank":    cfg.Enemies.Tank,
		"shooter": cfg.Enemies.Shooter,
	}
	for _, name := range []string{"basic", "fast", "tank", "shooter"} {
		a := archetypes[name]
		positive("enemies."+name+".health", a.Health)
		positive("enemies."+name+".radius", a.Radius)
		if a.Speed < 0 || a.HealthPerWave < 0 || a.SpeedPerWave < 0 {
			errs = append(errs, fmt.Errorf("enemies.%s: growth and speed must not be negative", name))
		}
	}
	positive("enemies.shooter.fire_interval", cfg.Enemies.Shooter.FireInterval)

	if cfg.Waves.BaseCount < 0 || cfg.Waves.CountPerWave < 0 {
		errs = append(errs, errors.New("waves: counts must not be negative"))
	}
	if cfg.Waves.BaseCount+cfg.Waves.CountPerWave <= 0 {
		errs = append(errs, errors.New("waves: first wave must contain at least one enemy"))
	}
	positive("waves.spawn_interval", cfg.Waves.SpawnInterval)
	positive("combat.score_health_divisor", cfg.Combat.ScoreHealthDivisor)

	if cfg.PowerUps.DropChance < 0 || cfg.PowerUps.DropChance > 1 {
		errs = append(errs, fmt.Errorf("powerups.drop_chance must be within [0, 1], got %v", cfg.PowerUps.DropChance))
	}
	positive("powerups.min_fire_rate", cfg.PowerUps.MinFireRate)
	positive("powerups.max_speed", cfg.PowerUps.MaxSpeed)

	if cfg.Particles.MaxSpeed < cfg.Particles.MinSpeed {
		errs = append(errs, errors.New("particles: max_speed must not be below min_speed"))
	}
	positive("particles.decay_per_ms", cfg.Particles.DecayPerMs)

	positive("playfield.units_per_col", cfg.Playfield.UnitsPerCol)
	positive("playfield.units_per_row", cfg.Playfield.UnitsPerRow)
	if cfg.Playfield.HUDRows < 0 {
		errs = append(errs, errors.New("playfield.hud_rows must not be negative"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arena", "configs", filename)
}
