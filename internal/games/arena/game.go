// Package arena implements a top-down wave shooter: the player fights
// waves of enemies, collects stat-boosting drops and scores until defeated.
//
// The simulation runs on a variable time step. Each call to Advance covers
// whatever wall-clock time passed since the previous frame; positions move
// per frame while timers (fire rate, invulnerability, spawn pacing, particle
// life) are measured in elapsed milliseconds.
package arena

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arena/internal/config"
	"github.com/vovakirdan/arena/internal/core"
	"github.com/vovakirdan/arena/internal/registry"
)

// Minimum terminal size for a playable field.
const (
	MinScreenW = 30
	MinScreenH = 12
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset = config.DifficultyNormal

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names select normal.
func SetDifficultyPreset(name string) {
	preset, ok := config.ParsePreset(name)
	if !ok {
		preset = config.DifficultyNormal
	}
	difficultyPreset = preset
}

// Game implements the arena simulation.
type Game struct {
	// Entities
	player    *Player
	enemies   []*Enemy
	bullets   []*Bullet
	particles []*Particle
	powerups  []*PowerUp

	director *WaveDirector

	// Run state
	score    int
	kills    int
	clock    float64 // simulated ms since the run started
	frames   int
	paused   bool
	gameOver bool

	// Playfield in world units
	width   float64
	height  float64
	pending *core.Vec2 // bounds applied at the start of the next frame

	// Configuration
	runtime  core.RuntimeConfig
	cfg      config.ArenaConfig
	fixedCfg bool // cfg was supplied by the caller and must not be reloaded

	rng    *rand.Rand
	logger *log.Logger
}

var _ registry.Game = (*Game)(nil)

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{logger: log.New(io.Discard)}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.ArenaConfig) *Game {
	return &Game{
		cfg:      cfg,
		fixedCfg: true,
		logger:   log.New(io.Discard),
	}
}

// SetLogger routes simulation events to l. A nil logger silences them.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "arena"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Arena"
}

// Reset initializes the game for a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, err := config.LoadArena(configPath)
		if err != nil {
			g.logger.Warn("falling back to default config", "err", err)
			cfg = config.DefaultArenaConfig()
		}
		config.ApplyArenaPreset(&cfg, difficultyPreset)
		g.cfg = cfg
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.width, g.height = g.boundsFor(runtime)
	g.pending = nil
	g.restart()
}

// restart begins a new run on the current bounds and configuration.
func (g *Game) restart() {
	pc := g.cfg.Player
	g.player = &Player{
		Body: Body{
			Pos:    core.V(g.width/2, g.height-pc.Radius),
			Radius: pc.Radius,
		},
		Health:      pc.MaxHealth,
		MaxHealth:   pc.MaxHealth,
		FireRate:    pc.FireRate,
		Damage:      pc.Damage,
		Speed:       pc.Speed,
		LastFiredAt: -pc.FireRate,
	}

	g.enemies = g.enemies[:0]
	g.bullets = g.bullets[:0]
	g.particles = g.particles[:0]
	g.powerups = g.powerups[:0]

	g.score = 0
	g.kills = 0
	g.clock = 0
	g.frames = 0
	g.paused = false
	g.gameOver = false

	g.director = NewWaveDirector(g.cfg.Waves)
	g.director.Start(1)
	g.logger.Debug("wave started", "wave", 1, "target", g.director.State().Target)
}

// boundsFor converts a terminal size to playfield bounds in world units.
func (g *Game) boundsFor(runtime core.RuntimeConfig) (float64, float64) {
	pf := g.cfg.Playfield
	rows := max(runtime.ScreenH-pf.HUDRows, 1)
	return float64(max(runtime.ScreenW, 1)) * pf.UnitsPerCol, float64(rows) * pf.UnitsPerRow
}

// Resize adapts the playfield to a new terminal size on the next frame.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime.ScreenW = runtime.ScreenW
	g.runtime.ScreenH = runtime.ScreenH
	g.SetBounds(g.boundsFor(runtime))
}

// SetBounds sets the playfield size in world units. The change takes
// effect at the start of the next frame.
func (g *Game) SetBounds(w, h float64) {
	g.pending = &core.Vec2{X: w, Y: h}
}

// Bounds returns the playfield size currently in effect.
func (g *Game) Bounds() (float64, float64) {
	return g.width, g.height
}

// Advance runs one frame covering elapsed wall-clock time.
func (g *Game) Advance(elapsed time.Duration, in core.InputFrame) core.StepResult {
	ms := float64(max(elapsed, 0)) / float64(time.Millisecond)

	if g.pending != nil {
		g.width, g.height = g.pending.X, g.pending.Y
		g.pending = nil
		// Frozen frames skip updatePlayer, so clamp here as well.
		if g.player != nil {
			g.clampPlayer()
		}
	}

	// Edge-triggered commands
	if in.Has(core.ActionRestart) && g.gameOver {
		g.restart()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.clock += ms
	g.frames++

	g.updatePlayer(in, ms)
	g.updateEnemies()
	g.updateBullets()
	g.updatePowerUps()
	g.updateParticles(ms)

	g.resolveCombat()
	g.updateWave(ms)

	return core.StepResult{State: g.State()}
}

// updateWave issues due spawns and advances the wave once it is cleared.
func (g *Game) updateWave(ms float64) {
	due := g.director.Tick(ms)
	if g.gameOver {
		// Late spawns after the run ended are discarded.
		return
	}

	for i := 0; i < due; i++ {
		g.spawnEnemy()
		g.director.RecordSpawn()
	}

	if g.director.Cleared(len(g.enemies)) {
		done := g.director.State()
		g.logger.Debug("wave cleared", "wave", done.Number, "score", g.score, "kills", g.kills)
		g.director.NextWave()
		g.logger.Debug("wave started", "wave", g.director.State().Number, "target", g.director.State().Target)
	}
}

// spawnEnemy issues one enemy for the current wave at a random column.
func (g *Game) spawnEnemy() {
	wave := g.director.State().Number
	kind := pickArchetype(wave, g.rng.Float64())
	r := kind.stats(g.cfg.Enemies).Radius

	lo, hi := r, g.width-r
	x := g.width / 2
	if hi > lo {
		x = lo + g.rng.Float64()*(hi-lo)
	}

	g.enemies = append(g.enemies, newEnemy(g.cfg.Enemies, kind, wave, x, g.clock))
}

// endRun marks the run as lost. Safe to call more than once.
func (g *Game) endRun() {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.logger.Debug("game over",
		"score", g.score,
		"wave", g.director.State().Number,
		"kills", g.kills,
		"elapsed", g.Elapsed(),
	)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	wave := 0
	if g.director != nil {
		wave = g.director.State().Number
	}
	return core.GameState{
		Score:    g.score,
		Wave:     wave,
		Kills:    g.kills,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Elapsed returns simulated time since the run started.
func (g *Game) Elapsed() time.Duration {
	return time.Duration(g.clock * float64(time.Millisecond))
}

func init() {
	registry.Register("arena", func() registry.Game {
		return New()
	})
}
