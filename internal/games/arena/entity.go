package arena

import "github.com/vovakirdan/arena/internal/core"

// Body is the shape shared by every entity: position, velocity and
// collision radius, all in world units.
type Body struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
}

// Circle returns the collision shape of the body.
func (b Body) Circle() core.Circle {
	return core.Circle{Center: b.Pos, Radius: b.Radius}
}

// Player is the single player-controlled avatar.
type Player struct {
	Body
	Health       float64
	MaxHealth    float64
	FireRate     float64 // ms between shots
	Damage       float64 // per bullet
	Speed        float64 // units per frame
	LastFiredAt  float64 // simulation clock, ms
	Invulnerable float64 // remaining ms, > 0 blocks incoming damage
}

// IsInvulnerable reports whether incoming damage is currently ignored.
func (p *Player) IsInvulnerable() bool {
	return p.Invulnerable > 0
}

// Hurt subtracts damage, clamping health at zero. Returns true when the
// player has no health left.
func (p *Player) Hurt(damage float64) bool {
	p.Health = core.ClampF(p.Health-damage, 0, p.MaxHealth)
	return p.Health <= 0
}

// Enemy is a hostile unit spawned by the wave director.
type Enemy struct {
	Body
	Archetype   Archetype
	Health      float64
	MaxHealth   float64
	Speed       float64
	LastFiredAt float64 // simulation clock, ms; only meaningful for ranged archetypes
	Color       core.Color

	dead bool
}

// Alive reports whether the enemy still takes part in the simulation.
func (e *Enemy) Alive() bool {
	return !e.dead && e.Health > 0
}

// Bullet is a single-use projectile.
type Bullet struct {
	Body
	Damage     float64
	FromPlayer bool

	spent bool
}

// Particle is cosmetic feedback. It never collides.
type Particle struct {
	Body
	Life    float64
	MaxLife float64
	Color   core.Color
}

// Fade returns the remaining life as a fraction of MaxLife.
func (p *Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(p.Life/p.MaxLife, 0, 1)
}

// PowerUpKind identifies the stat a power-up improves.
type PowerUpKind int

const (
	PowerUpHealth PowerUpKind = iota
	PowerUpDamage
	PowerUpFireRate
	PowerUpSpeed
	powerUpKindCount
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpHealth:
		return "health"
	case PowerUpDamage:
		return "damage"
	case PowerUpFireRate:
		return "firerate"
	case PowerUpSpeed:
		return "speed"
	default:
		return "unknown"
	}
}

// Glyph returns the display character for a power-up kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpHealth:
		return '+'
	case PowerUpDamage:
		return 'D'
	case PowerUpFireRate:
		return 'F'
	case PowerUpSpeed:
		return 'S'
	default:
		return '?'
	}
}

// Color returns the tag color of a power-up kind.
func (k PowerUpKind) Color() core.Color {
	switch k {
	case PowerUpHealth:
		return core.ColorGreen
	case PowerUpDamage:
		return core.ColorRed
	case PowerUpFireRate:
		return core.ColorYellow
	case PowerUpSpeed:
		return core.ColorCyan
	default:
		return core.ColorDefault
	}
}

// PowerUp is a dropped pickup drifting toward the bottom of the playfield.
type PowerUp struct {
	Body
	Kind  PowerUpKind
	Color core.Color

	taken bool
}

// compact removes the entries matching drop, preserving order, and
// returns the shortened slice. The backing array is reused.
func compact[T any](items []*T, drop func(*T) bool) []*T {
	kept := items[:0]
	for _, it := range items {
		if !drop(it) {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}

func enemyGone(e *Enemy) bool { return !e.Alive() }

func bulletSpent(b *Bullet) bool { return b.spent }

func powerUpTaken(p *PowerUp) bool { return p.taken }

func particleDead(p *Particle) bool { return p.Life <= 0 }
