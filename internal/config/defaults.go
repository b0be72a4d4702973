package config

import (
	_ "embed"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultArenaConfig returns the built-in arena configuration.
// It mirrors defaults/arena.yaml and is used if the embedded file fails to parse.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Player: PlayerConfig{
			Radius:       20,
			MaxHealth:    100,
			Speed:        5,
			FireRate:     200,
			Damage:       10,
			BulletSpeed:  10,
			BulletRadius: 5,
		},
		Enemies: EnemiesConfig{
			EngageRange:  100,
			LateralScale: 0.3,
			HoverDamping: 0.95,
			HoverSpeed:   0.5,
			Basic: ArchetypeConfig{
				Health: 15, HealthPerWave: 5,
				Speed: 1.5, SpeedPerWave: 0.1,
				Radius: 15,
			},
			Fast: ArchetypeConfig{
				Health: 10, HealthPerWave: 3,
				Speed: 3, SpeedPerWave: 0.15,
				Radius: 12,
			},
			Tank: ArchetypeConfig{
				Health: 50, HealthPerWave: 15,
				Speed: 0.8, SpeedPerWave: 0.05,
				Radius: 25,
			},
			Shooter: ArchetypeConfig{
				Health: 25, HealthPerWave: 5,
				Speed: 1, SpeedPerWave: 0.1,
				Radius:        18,
				FireInterval:  2000,
				BulletSpeed:   4,
				BulletRadius:  4,
				BulletDamage:  5,
				DamagePerWave: 1,
			},
		},
		Waves: WavesConfig{
			BaseCount:     5,
			CountPerWave:  2,
			SpawnInterval: 500,
		},
		Combat: CombatConfig{
			ContactDamage:        10,
			ContactDamagePerWave: 2,
			BulletInvulnerable:   500,
			ContactInvulnerable:  1000,
			ScorePerKill:         10,
			ScoreHealthDivisor:   20,
		},
		PowerUps: PowerUpsConfig{
			DropChance:   0.3,
			Radius:       10,
			FallSpeed:    1,
			HealthAmount: 20,
			DamageAmount: 2,
			FireRateStep: 15,
			MinFireRate:  50,
			SpeedAmount:  0.3,
			MaxSpeed:     8,
		},
		Particles: ParticlesConfig{
			MinSpeed:   1,
			MaxSpeed:   3,
			Radius:     2,
			Drag:       0.98,
			DecayPerMs: 0.002,
		},
		Playfield: PlayfieldConfig{
			UnitsPerCol: 10,
			UnitsPerRow: 20,
			HUDRows:     2,
		},
	}
}

// GetDefaultYAML returns the embedded default configuration document.
func GetDefaultYAML() []byte {
	return defaultArenaYAML
}
