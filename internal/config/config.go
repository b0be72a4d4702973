// Package config provides YAML-based configuration loading and difficulty
// presets for the arena simulation.
package config

// ArenaConfig contains every tunable of the arena simulation.
type ArenaConfig struct {
	Player    PlayerConfig    `yaml:"player"`
	Enemies   EnemiesConfig   `yaml:"enemies"`
	Waves     WavesConfig     `yaml:"waves"`
	Combat    CombatConfig    `yaml:"combat"`
	PowerUps  PowerUpsConfig  `yaml:"powerups"`
	Particles ParticlesConfig `yaml:"particles"`
	Playfield PlayfieldConfig `yaml:"playfield"`
}

// PlayerConfig defines the player's starting stats and weapon.
type PlayerConfig struct {
	Radius       float64 `yaml:"radius"`
	MaxHealth    float64 `yaml:"max_health"`
	Speed        float64 `yaml:"speed"`         // units per frame
	FireRate     float64 `yaml:"fire_rate"`     // ms between shots
	Damage       float64 `yaml:"damage"`        // per bullet
	BulletSpeed  float64 `yaml:"bullet_speed"`  // units per frame, travels up
	BulletRadius float64 `yaml:"bullet_radius"` // collision radius
}

// EnemiesConfig holds steering constants and the per-archetype stat table.
type EnemiesConfig struct {
	EngageRange  float64 `yaml:"engage_range"`  // beyond this distance enemies pursue
	LateralScale float64 `yaml:"lateral_scale"` // X component multiplier while pursuing
	HoverDamping float64 `yaml:"hover_damping"` // X velocity decay inside engage range
	HoverSpeed   float64 `yaml:"hover_speed"`   // fraction of speed drifted downward inside range

	Basic   ArchetypeConfig `yaml:"basic"`
	Fast    ArchetypeConfig `yaml:"fast"`
	Tank    ArchetypeConfig `yaml:"tank"`
	Shooter ArchetypeConfig `yaml:"shooter"`
}

// ArchetypeConfig describes one enemy kind. Health and speed grow linearly
// with the wave number: value = base + per_wave * wave.
type ArchetypeConfig struct {
	Health        float64 `yaml:"health"`
	HealthPerWave float64 `yaml:"health_per_wave"`
	Speed         float64 `yaml:"speed"`
	SpeedPerWave  float64 `yaml:"speed_per_wave"`
	Radius        float64 `yaml:"radius"`

	// Ranged attack, only used when FireInterval > 0.
	FireInterval  float64 `yaml:"fire_interval,omitempty"` // ms between shots
	BulletSpeed   float64 `yaml:"bullet_speed,omitempty"`
	BulletRadius  float64 `yaml:"bullet_radius,omitempty"`
	BulletDamage  float64 `yaml:"bullet_damage,omitempty"`
	DamagePerWave float64 `yaml:"damage_per_wave,omitempty"`
}

// WavesConfig controls wave sizing and spawn pacing.
type WavesConfig struct {
	BaseCount     int     `yaml:"base_count"`     // enemies in wave 0
	CountPerWave  int     `yaml:"count_per_wave"` // extra enemies per wave
	SpawnInterval float64 `yaml:"spawn_interval"` // ms between queued spawns
}

// CombatConfig defines damage and invulnerability rules.
type CombatConfig struct {
	ContactDamage        float64 `yaml:"contact_damage"`          // body collision base damage
	ContactDamagePerWave float64 `yaml:"contact_damage_per_wave"` // extra per wave
	BulletInvulnerable   float64 `yaml:"bullet_invulnerable"`     // ms after a bullet hit
	ContactInvulnerable  float64 `yaml:"contact_invulnerable"`    // ms after a body hit
	ScorePerKill         float64 `yaml:"score_per_kill"`          // multiplied by wave
	ScoreHealthDivisor   float64 `yaml:"score_health_divisor"`    // max health normalizer
}

// PowerUpsConfig defines drop chance and pickup effects.
type PowerUpsConfig struct {
	DropChance   float64 `yaml:"drop_chance"`
	Radius       float64 `yaml:"radius"`
	FallSpeed    float64 `yaml:"fall_speed"`
	HealthAmount float64 `yaml:"health_amount"`
	DamageAmount float64 `yaml:"damage_amount"`
	FireRateStep float64 `yaml:"fire_rate_step"`
	MinFireRate  float64 `yaml:"min_fire_rate"`
	SpeedAmount  float64 `yaml:"speed_amount"`
	MaxSpeed     float64 `yaml:"max_speed"`
}

// ParticlesConfig defines cosmetic particle behavior.
type ParticlesConfig struct {
	MinSpeed     float64 `yaml:"min_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	Radius       float64 `yaml:"radius"`
	Drag         float64 `yaml:"drag"`          // velocity multiplier per frame
	DecayPerMs   float64 `yaml:"decay_per_ms"`  // life lost per elapsed ms
	MaxParticles int     `yaml:"max_particles"` // 0 = unlimited
}

// PlayfieldConfig maps terminal cells to world units.
type PlayfieldConfig struct {
	UnitsPerCol float64 `yaml:"units_per_col"`
	UnitsPerRow float64 `yaml:"units_per_row"`
	HUDRows     int     `yaml:"hud_rows"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string maps to normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return "", false
	}
}
