package arena

import (
	"math"

	"github.com/vovakirdan/arena/internal/core"
)

// Burst sizes for combat feedback.
const (
	hitBurst     = 5
	killBurst    = 15
	damageBurst  = 8
	contactBurst = 10
	deathBurst   = 30
	pickupBurst  = 8
)

// resolveCombat runs the collision passes in their fixed order. Each pass
// is skipped once the run is over, so a player killed by a bullet cannot
// also take contact damage in the same frame.
func (g *Game) resolveCombat() {
	g.resolvePlayerBullets()
	g.resolveEnemyBullets()
	g.resolveContact()
	g.resolvePickups()
}

// resolvePlayerBullets applies each player bullet to the first enemy it
// overlaps.
func (g *Game) resolvePlayerBullets() {
	if g.gameOver {
		return
	}

	for _, b := range g.bullets {
		if !b.FromPlayer || b.spent {
			continue
		}
		for _, e := range g.enemies {
			if !e.Alive() || !b.Circle().Overlaps(e.Circle()) {
				continue
			}
			b.spent = true
			e.Health = core.ClampF(e.Health-b.Damage, 0, e.MaxHealth)
			g.burst(b.Pos, hitBurst, e.Color)
			if e.Health <= 0 {
				g.killEnemy(e)
			}
			break
		}
	}

	g.bullets = compact(g.bullets, bulletSpent)
	g.enemies = compact(g.enemies, enemyGone)
}

// killEnemy awards score and rolls a drop for a destroyed enemy.
func (g *Game) killEnemy(e *Enemy) {
	e.dead = true
	g.score += g.killScore(e)
	g.kills++
	g.burst(e.Pos, killBurst, e.Color)
	g.rollDrop(e.Pos)
}

// killScore is floor(perKill * wave * maxHealth / divisor).
func (g *Game) killScore(e *Enemy) int {
	cc := g.cfg.Combat
	wave := float64(g.director.State().Number)
	return int(math.Floor(cc.ScorePerKill * wave * e.MaxHealth / cc.ScoreHealthDivisor))
}

// resolveEnemyBullets damages the player with enemy bullets while the
// player is vulnerable. Bullets that arrive during invulnerability pass
// through untouched.
func (g *Game) resolveEnemyBullets() {
	if g.gameOver {
		return
	}

	p := g.player
	for _, b := range g.bullets {
		if b.FromPlayer || b.spent {
			continue
		}
		if p.IsInvulnerable() || !b.Circle().Overlaps(p.Circle()) {
			continue
		}
		b.spent = true
		p.Invulnerable = g.cfg.Combat.BulletInvulnerable
		g.burst(p.Pos, damageBurst, core.ColorBlue)
		if p.Hurt(b.Damage) {
			g.playerDied()
			break
		}
	}

	g.bullets = compact(g.bullets, bulletSpent)
}

// resolveContact handles the player ramming an enemy. The enemy is
// destroyed without reward.
func (g *Game) resolveContact() {
	if g.gameOver {
		return
	}

	p := g.player
	cc := g.cfg.Combat
	for _, e := range g.enemies {
		if !e.Alive() || p.IsInvulnerable() || !p.Circle().Overlaps(e.Circle()) {
			continue
		}
		e.dead = true
		p.Invulnerable = cc.ContactInvulnerable
		g.burst(e.Pos, contactBurst, e.Color)

		wave := float64(g.director.State().Number)
		if p.Hurt(cc.ContactDamage + cc.ContactDamagePerWave*wave) {
			g.playerDied()
			break
		}
	}

	g.enemies = compact(g.enemies, enemyGone)
}

// resolvePickups applies every power-up the player touches.
func (g *Game) resolvePickups() {
	if g.gameOver {
		return
	}

	p := g.player
	for _, pu := range g.powerups {
		if pu.taken || !p.Circle().Overlaps(pu.Circle()) {
			continue
		}
		pu.taken = true
		ApplyPowerUp(p, pu.Kind, g.cfg.PowerUps)
		g.burst(pu.Pos, pickupBurst, pu.Color)
	}

	g.powerups = compact(g.powerups, powerUpTaken)
}

// playerDied ends the run with a large burst at the player.
func (g *Game) playerDied() {
	if g.gameOver {
		return
	}
	g.burst(g.player.Pos, deathBurst, core.ColorCyan)
	g.endRun()
}
