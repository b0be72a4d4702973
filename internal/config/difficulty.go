package config

// ApplyArenaPreset modifies the config based on a difficulty preset.
// Normal leaves the configuration untouched.
func ApplyArenaPreset(cfg *ArenaConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHealth = 150
		cfg.Player.Damage += 5
		cfg.Player.FireRate = 150
		cfg.Combat.ContactDamage = 5
		cfg.Waves.SpawnInterval = 750
	case DifficultyHard:
		cfg.Player.MaxHealth = 75
		cfg.Player.FireRate = 250
		cfg.Combat.ContactDamage = 15
		cfg.Combat.ContactDamagePerWave = 3
		cfg.Waves.SpawnInterval = 350
		cfg.PowerUps.DropChance = 0.2
	}
}
