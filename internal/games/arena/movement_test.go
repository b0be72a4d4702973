package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arena/internal/config"
	"github.com/vovakirdan/arena/internal/core"
)

func TestPlayerStaysInBounds(t *testing.T) {
	intents := []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown}

	// Every combination of held directions
	for mask := range 1 << len(intents) {
		g := newTestGame(t)
		in := core.NewInputFrame()
		for i, a := range intents {
			if mask&(1<<i) != 0 {
				in.Set(a)
			}
		}

		for range 300 {
			g.updatePlayer(in, 16)
			p := g.player
			require.GreaterOrEqual(t, p.Pos.X, p.Radius, "mask %04b", mask)
			require.LessOrEqual(t, p.Pos.X, g.width-p.Radius, "mask %04b", mask)
			require.GreaterOrEqual(t, p.Pos.Y, p.Radius, "mask %04b", mask)
			require.LessOrEqual(t, p.Pos.Y, g.height-p.Radius, "mask %04b", mask)
		}
	}
}

func TestPlayerDirectControl(t *testing.T) {
	g := newTestGame(t)
	start := g.player.Pos

	g.updatePlayer(core.NewInputFrame(core.ActionLeft, core.ActionUp), 16)
	assert.Equal(t, core.V(-5, -5), g.player.Vel)
	assert.Equal(t, start.Add(core.V(-5, -5)), g.player.Pos)

	// Opposite directions cancel, no input stops immediately
	g.updatePlayer(core.NewInputFrame(core.ActionLeft, core.ActionRight), 16)
	assert.Equal(t, core.V(0, 0), g.player.Vel)
	g.updatePlayer(noInput(), 16)
	assert.Equal(t, core.V(0, 0), g.player.Vel)
}

func TestInvulnerabilityCountsDown(t *testing.T) {
	g := newTestGame(t)
	g.player.Invulnerable = 500

	g.updatePlayer(noInput(), 300)
	assert.Equal(t, 200.0, g.player.Invulnerable)
	g.updatePlayer(noInput(), 300)
	assert.Zero(t, g.player.Invulnerable)
}

func TestSteer(t *testing.T) {
	cfg := config.DefaultArenaConfig().Enemies

	t.Run("pursue", func(t *testing.T) {
		e := &Enemy{Body: Body{Pos: core.V(0, 0)}, Speed: 2}
		steer(e, core.V(300, 400), cfg)

		// Direction (0.6, 0.8), lateral component damped by 0.3
		assert.InDelta(t, 0.36, e.Vel.X, 1e-9)
		assert.InDelta(t, 1.6, e.Vel.Y, 1e-9)
		assert.InDelta(t, 0.36, e.Pos.X, 1e-9)
		assert.InDelta(t, 1.6, e.Pos.Y, 1e-9)
	})

	t.Run("hover", func(t *testing.T) {
		e := &Enemy{Body: Body{Pos: core.V(0, 0), Vel: core.V(1, 5)}, Speed: 2}
		steer(e, core.V(0, 50), cfg)

		assert.InDelta(t, 0.95, e.Vel.X, 1e-9)
		assert.InDelta(t, 1.0, e.Vel.Y, 1e-9)
	})

	t.Run("exactly at range hovers", func(t *testing.T) {
		e := &Enemy{Body: Body{Pos: core.V(0, 0)}, Speed: 2}
		steer(e, core.V(0, 100), cfg)
		assert.InDelta(t, 1.0, e.Vel.Y, 1e-9)
	})
}

func TestEnemyLeavingBottomIsRemoved(t *testing.T) {
	g := newTestGame(t)
	// Right below the player, so both hover and drift down at half speed
	placeEnemy(g, core.V(400, g.height+14), 20)
	placeEnemy(g, core.V(400, g.height+16.5), 20)

	g.updateEnemies()

	// The first is still partly visible after moving 0.75
	require.Len(t, g.enemies, 1)
	assert.InDelta(t, g.height+14.75, g.enemies[0].Pos.Y, 1e-9)
}

func TestShooterFiresOnCooldown(t *testing.T) {
	g := newTestGame(t)
	shooter := newEnemy(g.cfg.Enemies, ArchetypeShooter, 1, 400, 0)
	shooter.Pos = core.V(400, 100)
	g.enemies = append(g.enemies, shooter)

	g.clock = 1999
	g.enemyFire(shooter)
	assert.Empty(t, g.bullets)

	g.clock = 2000
	g.enemyFire(shooter)
	require.Len(t, g.bullets, 1)

	b := g.bullets[0]
	assert.False(t, b.FromPlayer)
	assert.Equal(t, 6.0, b.Damage, "5 + wave")
	assert.InDelta(t, 4.0, b.Vel.Len(), 1e-9)
	assert.Greater(t, b.Vel.Y, 0.0, "aimed down at the player")
	assert.Equal(t, 2000.0, shooter.LastFiredAt)

	// Above the top edge it holds fire
	shooter.Pos.Y = -5
	g.clock = 10_000
	g.enemyFire(shooter)
	assert.Len(t, g.bullets, 1)
}

func TestNonShootersNeverFire(t *testing.T) {
	g := newTestGame(t)
	e := placeEnemy(g, core.V(400, 100), 20)

	g.clock = 100_000
	g.enemyFire(e)
	assert.Empty(t, g.bullets)
}

func TestBulletsCulledOutOfBounds(t *testing.T) {
	g := newTestGame(t)
	g.bullets = append(g.bullets,
		&Bullet{Body: Body{Pos: core.V(100, 2), Vel: core.V(0, -10), Radius: 5}, FromPlayer: true},
		&Bullet{Body: Body{Pos: core.V(100, 200), Vel: core.V(0, -10), Radius: 5}, FromPlayer: true},
		&Bullet{Body: Body{Pos: core.V(g.width, 200), Vel: core.V(10, 0), Radius: 4}},
	)

	g.updateBullets()

	require.Len(t, g.bullets, 1)
	assert.Equal(t, core.V(100, 190), g.bullets[0].Pos)
}

func TestPowerUpsFallAndLeave(t *testing.T) {
	g := newTestGame(t)
	g.powerups = append(g.powerups,
		&PowerUp{Body: Body{Pos: core.V(50, 50), Vel: core.V(0, 1), Radius: 10}},
		&PowerUp{Body: Body{Pos: core.V(50, g.height+10), Vel: core.V(0, 1), Radius: 10}},
	)

	g.updatePowerUps()

	require.Len(t, g.powerups, 1)
	assert.Equal(t, core.V(50, 51), g.powerups[0].Pos)
}
