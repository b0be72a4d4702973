package arena

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Snapshot is a read-only copy of everything a renderer or test needs.
// It shares no memory with the running game.
type Snapshot struct {
	Clock     float64
	Width     float64
	Height    float64
	Player    Player
	Enemies   []Enemy
	Bullets   []Bullet
	Powerups  []PowerUp
	Particles []Particle

	Score    int
	Kills    int
	Wave     WaveState
	Pending  int // queued spawns not yet issued
	GameOver bool
	Paused   bool
}

// Snapshot returns a deep copy of the current simulation state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Clock:    g.clock,
		Width:    g.width,
		Height:   g.height,
		Score:    g.score,
		Kills:    g.kills,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
	if g.player != nil {
		s.Player = *g.player
	}
	if g.director != nil {
		s.Wave = g.director.State()
		s.Pending = g.director.Pending()
	}

	s.Enemies = copyValues(g.enemies)
	s.Bullets = copyValues(g.bullets)
	s.Powerups = copyValues(g.powerups)
	s.Particles = copyValues(g.particles)
	return s
}

func copyValues[T any](items []*T) []T {
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = *it
	}
	return out
}

// Hash returns a digest of the gameplay-relevant state. Two runs fed the
// same seed, frame times and inputs produce the same hash.
func (s Snapshot) Hash() uint64 {
	h := hasher{d: xxhash.New()}

	h.f64(s.Clock)
	h.f64(s.Width)
	h.f64(s.Height)
	h.i64(s.Score)
	h.i64(s.Kills)
	h.i64(s.Wave.Number)
	h.i64(s.Wave.Target)
	h.i64(s.Wave.Spawned)
	h.i64(s.Pending)
	h.flag(s.GameOver)
	h.flag(s.Paused)

	p := s.Player
	h.body(p.Body)
	h.f64(p.Health)
	h.f64(p.MaxHealth)
	h.f64(p.FireRate)
	h.f64(p.Damage)
	h.f64(p.Speed)
	h.f64(p.LastFiredAt)
	h.f64(p.Invulnerable)

	h.i64(len(s.Enemies))
	for _, e := range s.Enemies {
		h.body(e.Body)
		h.i64(int(e.Archetype))
		h.f64(e.Health)
		h.f64(e.MaxHealth)
		h.f64(e.Speed)
		h.f64(e.LastFiredAt)
	}

	h.i64(len(s.Bullets))
	for _, b := range s.Bullets {
		h.body(b.Body)
		h.f64(b.Damage)
		h.flag(b.FromPlayer)
	}

	h.i64(len(s.Powerups))
	for _, pu := range s.Powerups {
		h.body(pu.Body)
		h.i64(int(pu.Kind))
	}

	h.i64(len(s.Particles))
	for _, pt := range s.Particles {
		h.body(pt.Body)
		h.f64(pt.Life)
	}

	return h.d.Sum64()
}

type hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

func (h *hasher) f64(v float64) {
	binary.LittleEndian.PutUint64(h.buf[:], math.Float64bits(v))
	_, _ = h.d.Write(h.buf[:])
}

func (h *hasher) i64(v int) {
	binary.LittleEndian.PutUint64(h.buf[:], uint64(v)) //nolint:gosec // bit pattern only
	_, _ = h.d.Write(h.buf[:])
}

func (h *hasher) flag(v bool) {
	b := byte(0)
	if v {
		b = 1
	}
	_, _ = h.d.Write([]byte{b})
}

func (h *hasher) body(b Body) {
	h.f64(b.Pos.X)
	h.f64(b.Pos.Y)
	h.f64(b.Vel.X)
	h.f64(b.Vel.Y)
	h.f64(b.Radius)
}
