package arena

import (
	"github.com/vovakirdan/arena/internal/config"
	"github.com/vovakirdan/arena/internal/core"
)

// ApplyPowerUp permanently improves one player stat. Health is capped at
// MaxHealth, fire rate never drops below the configured floor and speed
// never exceeds the configured ceiling.
func ApplyPowerUp(p *Player, kind PowerUpKind, cfg config.PowerUpsConfig) {
	switch kind {
	case PowerUpHealth:
		p.Health = min(p.Health+cfg.HealthAmount, p.MaxHealth)
	case PowerUpDamage:
		p.Damage += cfg.DamageAmount
	case PowerUpFireRate:
		p.FireRate = max(p.FireRate-cfg.FireRateStep, cfg.MinFireRate)
	case PowerUpSpeed:
		p.Speed = min(p.Speed+cfg.SpeedAmount, cfg.MaxSpeed)
	}
}

// rollDrop gives a destroyed enemy its chance to leave a power-up.
func (g *Game) rollDrop(at core.Vec2) {
	pc := g.cfg.PowerUps
	if g.rng.Float64() >= pc.DropChance {
		return
	}
	kind := PowerUpKind(g.rng.Intn(int(powerUpKindCount)))
	g.powerups = append(g.powerups, &PowerUp{
		Body: Body{
			Pos:    at,
			Vel:    core.V(0, pc.FallSpeed),
			Radius: pc.Radius,
		},
		Kind:  kind,
		Color: kind.Color(),
	})
}
