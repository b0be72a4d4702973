package arena

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/arena/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar       = '@'
	PlayerBulletChar = '|'
	EnemyBulletChar  = '*'
	ParticleChar     = '·'
	FadedParticle    = '.'
	HUDSeparator     = '─'
)

// healthBarWidth is the number of cells in the HUD health bar.
const healthBarWidth = 10

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
		return
	}
	if g.player == nil {
		return
	}

	g.renderHUD(dst)

	// Back to front: feedback first so units stay readable
	g.renderParticles(dst)
	g.renderPowerUps(dst)
	g.renderBullets(dst)
	g.renderEnemies(dst)
	g.renderPlayer(dst)

	g.renderOverlay(dst)
}

// toCell maps a world position to a screen cell below the HUD.
func (g *Game) toCell(pos core.Vec2) (int, int, bool) {
	pf := g.cfg.Playfield
	if pos.X < 0 || pos.Y < 0 {
		return 0, 0, false
	}
	x := int(pos.X / pf.UnitsPerCol)
	y := pf.HUDRows + int(pos.Y/pf.UnitsPerRow)
	return x, y, true
}

// plot draws a glyph for a world position, clipping anything off-field.
func (g *Game) plot(dst *core.Screen, pos core.Vec2, r rune, c core.Color) {
	hud := g.cfg.Playfield.HUDRows
	field := core.NewRect(0, hud, dst.Width(), dst.Height()-hud)
	if x, y, ok := g.toCell(pos); ok && field.Contains(x, y) {
		dst.SetColored(x, y, r, c)
	}
}

// renderHUD draws score, wave and health on the first row and the
// player's stats on the second.
func (g *Game) renderHUD(dst *core.Screen) {
	wave := g.director.State()
	p := g.player

	scoreText := fmt.Sprintf("Score: %d", g.score)
	dst.DrawTextColored(1, 0, scoreText, core.ColorBrightYellow)

	waveText := fmt.Sprintf("Wave %d  %d/%d  Kills: %d", wave.Number, wave.Spawned, wave.Target, g.kills)
	dst.DrawTextCentered(0, waveText, core.ColorBrightWhite)

	hpText := fmt.Sprintf("HP %s %3.0f", healthBar(p.Health, p.MaxHealth), p.Health)
	dst.DrawTextColored(dst.Width()-len([]rune(hpText))-1, 0, hpText, healthColor(p.Health, p.MaxHealth))

	if g.cfg.Playfield.HUDRows < 2 {
		return
	}
	dst.DrawHLine(0, 1, dst.Width(), HUDSeparator, core.ColorGray)
	stats := fmt.Sprintf(" DMG %.0f  RATE %.0fms  SPD %.1f ", p.Damage, p.FireRate, p.Speed)
	dst.DrawTextColored(1, 1, stats, core.ColorGray)
}

// healthBar renders health as a fixed-width bar.
func healthBar(health, maxHealth float64) string {
	filled := 0
	if maxHealth > 0 {
		filled = core.Clamp(int(health/maxHealth*healthBarWidth+0.5), 0, healthBarWidth)
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", healthBarWidth-filled) + "]"
}

// healthColor picks a bar color from the remaining health fraction.
func healthColor(health, maxHealth float64) core.Color {
	switch frac := health / max(maxHealth, 1); {
	case frac > 0.6:
		return core.ColorBrightGreen
	case frac > 0.3:
		return core.ColorYellow
	default:
		return core.ColorBrightRed
	}
}

func (g *Game) renderParticles(dst *core.Screen) {
	for _, pt := range g.particles {
		glyph := rune(ParticleChar)
		if pt.Fade() < 0.4 {
			glyph = FadedParticle
		}
		g.plot(dst, pt.Pos, glyph, pt.Color)
	}
}

func (g *Game) renderPowerUps(dst *core.Screen) {
	for _, pu := range g.powerups {
		g.plot(dst, pu.Pos, pu.Kind.Glyph(), pu.Color)
	}
}

func (g *Game) renderBullets(dst *core.Screen) {
	for _, b := range g.bullets {
		if b.FromPlayer {
			g.plot(dst, b.Pos, PlayerBulletChar, core.ColorBrightCyan)
		} else {
			g.plot(dst, b.Pos, EnemyBulletChar, core.ColorBrightRed)
		}
	}
}

// renderEnemies draws each enemy glyph. Tanks are wide enough to span
// three columns.
func (g *Game) renderEnemies(dst *core.Screen) {
	upc := g.cfg.Playfield.UnitsPerCol
	for _, e := range g.enemies {
		g.plot(dst, e.Pos, e.Archetype.Glyph(), e.Color)
		if e.Radius >= 2*upc {
			g.plot(dst, e.Pos.Sub(core.V(upc, 0)), '(', e.Color)
			g.plot(dst, e.Pos.Add(core.V(upc, 0)), ')', e.Color)
		}
	}
}

// renderPlayer draws the avatar, flashing while invulnerable.
func (g *Game) renderPlayer(dst *core.Screen) {
	color := core.ColorBrightCyan
	if g.player.IsInvulnerable() && g.frames%4 < 2 {
		color = core.ColorBrightWhite
	}
	g.plot(dst, g.player.Pos, PlayerChar, color)
}

// renderOverlay draws pause and game-over boxes.
func (g *Game) renderOverlay(dst *core.Screen) {
	var lines []string
	var color core.Color

	switch {
	case g.gameOver:
		color = core.ColorBrightRed
		lines = []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d", g.score),
			fmt.Sprintf("Wave: %d  Kills: %d", g.director.State().Number, g.kills),
			"",
			"R to restart, Q to quit",
		}
	case g.paused:
		color = core.ColorBrightYellow
		lines = []string{
			"PAUSED",
			"",
			"P to resume",
		}
	default:
		return
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.NewRect((dst.Width()-width-4)/2, (dst.Height()-len(lines)-2)/2, width+4, len(lines)+2)

	// Blank the box interior so the field does not show through.
	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	dst.DrawBox(box, color)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l, color)
	}
}
