package arena

import (
	"github.com/vovakirdan/arena/internal/config"
	"github.com/vovakirdan/arena/internal/core"
)

// updatePlayer applies directional intents, clamps the player inside the
// playfield, counts down invulnerability and fires when allowed.
func (g *Game) updatePlayer(in core.InputFrame, ms float64) {
	p := g.player

	p.Invulnerable = max(p.Invulnerable-ms, 0)

	// Direct positional control: each held direction contributes full speed.
	var vx, vy float64
	if in.Has(core.ActionLeft) {
		vx -= p.Speed
	}
	if in.Has(core.ActionRight) {
		vx += p.Speed
	}
	if in.Has(core.ActionUp) {
		vy -= p.Speed
	}
	if in.Has(core.ActionDown) {
		vy += p.Speed
	}
	p.Vel = core.V(vx, vy)
	p.Pos = p.Pos.Add(p.Vel)
	g.clampPlayer()

	if in.Has(core.ActionFire) && g.clock-p.LastFiredAt >= p.FireRate {
		g.firePlayer()
	}
}

// clampPlayer keeps the player inside [radius, bound-radius] on both axes.
func (g *Game) clampPlayer() {
	p := g.player
	p.Pos.X = core.ClampF(p.Pos.X, p.Radius, g.width-p.Radius)
	p.Pos.Y = core.ClampF(p.Pos.Y, p.Radius, g.height-p.Radius)
}

// firePlayer launches a bullet straight up from the player.
func (g *Game) firePlayer() {
	p := g.player
	pc := g.cfg.Player
	g.bullets = append(g.bullets, &Bullet{
		Body: Body{
			Pos:    p.Pos,
			Vel:    core.V(0, -pc.BulletSpeed),
			Radius: pc.BulletRadius,
		},
		Damage:     p.Damage,
		FromPlayer: true,
	})
	p.LastFiredAt = g.clock
}

// updateEnemies steers every enemy, lets ranged archetypes shoot and
// removes enemies that left the playfield through the bottom edge.
func (g *Game) updateEnemies() {
	target := g.player.Pos
	for _, e := range g.enemies {
		steer(e, target, g.cfg.Enemies)

		if e.Pos.Y-e.Radius > g.height {
			e.dead = true
			continue
		}
		g.enemyFire(e)
	}
	g.enemies = compact(g.enemies, enemyGone)
}

// steer moves an enemy one frame. Far from the target it rushes toward
// it with damped lateral motion; within engage range it hovers, drifting
// down at a fraction of its speed while horizontal motion decays.
func steer(e *Enemy, target core.Vec2, cfg config.EnemiesConfig) {
	if core.Dist(e.Pos, target) > cfg.EngageRange {
		dir := core.Direction(e.Pos, target)
		e.Vel = core.V(dir.X*e.Speed*cfg.LateralScale, dir.Y*e.Speed)
	} else {
		e.Vel.X *= cfg.HoverDamping
		e.Vel.Y = e.Speed * cfg.HoverSpeed
	}
	e.Pos = e.Pos.Add(e.Vel)
}

// enemyFire shoots an aimed bullet from ranged archetypes whose cooldown
// has elapsed. Enemies still above the top edge hold fire.
func (g *Game) enemyFire(e *Enemy) {
	st := e.Archetype.stats(g.cfg.Enemies)
	if st.FireInterval <= 0 || e.Pos.Y <= 0 {
		return
	}
	if g.clock-e.LastFiredAt < st.FireInterval {
		return
	}

	wave := float64(g.director.State().Number)
	g.bullets = append(g.bullets, &Bullet{
		Body: Body{
			Pos:    e.Pos,
			Vel:    core.Direction(e.Pos, g.player.Pos).Scale(st.BulletSpeed),
			Radius: st.BulletRadius,
		},
		Damage: st.BulletDamage + st.DamagePerWave*wave,
	})
	e.LastFiredAt = g.clock
}

// updateBullets integrates bullets and drops those outside the playfield.
func (g *Game) updateBullets() {
	for _, b := range g.bullets {
		b.Pos = b.Pos.Add(b.Vel)
		if g.outOfBounds(b.Body) {
			b.spent = true
		}
	}
	g.bullets = compact(g.bullets, bulletSpent)
}

// updatePowerUps integrates drops and removes those past the bottom edge.
func (g *Game) updatePowerUps() {
	for _, pu := range g.powerups {
		pu.Pos = pu.Pos.Add(pu.Vel)
		if pu.Pos.Y-pu.Radius > g.height {
			pu.taken = true
		}
	}
	g.powerups = compact(g.powerups, powerUpTaken)
}

// updateParticles integrates particles with drag and burns their life.
func (g *Game) updateParticles(ms float64) {
	pc := g.cfg.Particles
	for _, pt := range g.particles {
		pt.Pos = pt.Pos.Add(pt.Vel)
		pt.Vel = pt.Vel.Scale(pc.Drag)
		pt.Life -= ms * pc.DecayPerMs
	}
	g.particles = compact(g.particles, particleDead)
}

// outOfBounds reports whether a body is entirely outside the playfield.
func (g *Game) outOfBounds(b Body) bool {
	return b.Pos.X < -b.Radius || b.Pos.X > g.width+b.Radius ||
		b.Pos.Y < -b.Radius || b.Pos.Y > g.height+b.Radius
}
