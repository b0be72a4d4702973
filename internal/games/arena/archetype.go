package arena

import (
	"github.com/vovakirdan/arena/internal/config"
	"github.com/vovakirdan/arena/internal/core"
)

// Archetype is a named enemy variant.
type Archetype int

const (
	ArchetypeBasic Archetype = iota
	ArchetypeFast
	ArchetypeTank
	ArchetypeShooter
)

// String returns the name of the archetype.
func (a Archetype) String() string {
	switch a {
	case ArchetypeBasic:
		return "basic"
	case ArchetypeFast:
		return "fast"
	case ArchetypeTank:
		return "tank"
	case ArchetypeShooter:
		return "shooter"
	default:
		return "unknown"
	}
}

// Glyph returns the display character for an archetype.
func (a Archetype) Glyph() rune {
	switch a {
	case ArchetypeFast:
		return 'v'
	case ArchetypeTank:
		return 'O'
	case ArchetypeShooter:
		return 'W'
	default:
		return 'o'
	}
}

// Color returns the fixed tag color of an archetype.
func (a Archetype) Color() core.Color {
	switch a {
	case ArchetypeFast:
		return core.ColorYellow
	case ArchetypeTank:
		return core.ColorMagenta
	case ArchetypeShooter:
		return core.ColorGreen
	default:
		return core.ColorRed
	}
}

// stats looks up the configured stat row for an archetype.
func (a Archetype) stats(cfg config.EnemiesConfig) config.ArchetypeConfig {
	switch a {
	case ArchetypeFast:
		return cfg.Fast
	case ArchetypeTank:
		return cfg.Tank
	case ArchetypeShooter:
		return cfg.Shooter
	default:
		return cfg.Basic
	}
}

// newEnemy builds an enemy of the given archetype with stats scaled for wave.
// Enemies enter just above the top edge at horizontal position x.
func newEnemy(cfg config.EnemiesConfig, a Archetype, wave int, x, now float64) *Enemy {
	st := a.stats(cfg)
	n := float64(wave)
	health := st.Health + st.HealthPerWave*n

	return &Enemy{
		Body: Body{
			Pos:    core.V(x, -st.Radius),
			Radius: st.Radius,
		},
		Archetype:   a,
		Health:      health,
		MaxHealth:   health,
		Speed:       st.Speed + st.SpeedPerWave*n,
		LastFiredAt: now,
		Color:       a.Color(),
	}
}

type weightedArchetype struct {
	archetype Archetype
	weight    float64
}

// spawnTiers lists archetype odds per wave tier, highest tier first.
// Entries are consumed in order against a single roll in [0, 1).
var spawnTiers = []struct {
	fromWave int
	entries  []weightedArchetype
}{
	{4, []weightedArchetype{{ArchetypeShooter, 0.3}, {ArchetypeFast, 0.2}, {ArchetypeTank, 0.1}, {ArchetypeBasic, 0.4}}},
	{3, []weightedArchetype{{ArchetypeShooter, 0.3}, {ArchetypeFast, 0.2}, {ArchetypeBasic, 0.5}}},
	{2, []weightedArchetype{{ArchetypeFast, 0.5}, {ArchetypeBasic, 0.5}}},
	{1, []weightedArchetype{{ArchetypeBasic, 1}}},
}

// pickArchetype maps a uniform roll in [0, 1) to an archetype for the wave.
func pickArchetype(wave int, roll float64) Archetype {
	for _, tier := range spawnTiers {
		if wave < tier.fromWave {
			continue
		}
		acc := 0.0
		for _, e := range tier.entries {
			acc += e.weight
			if roll < acc {
				return e.archetype
			}
		}
		break
	}
	return ArchetypeBasic
}
