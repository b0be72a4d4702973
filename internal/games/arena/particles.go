package arena

import (
	"math"

	"github.com/vovakirdan/arena/internal/core"
)

// burst emits n particles evenly spaced on a circle around at, each
// moving outward at a random speed.
func (g *Game) burst(at core.Vec2, n int, color core.Color) {
	pc := g.cfg.Particles
	for i := 0; i < n; i++ {
		if pc.MaxParticles > 0 && len(g.particles) >= pc.MaxParticles {
			return
		}
		angle := 2 * math.Pi * float64(i) / float64(n)
		speed := pc.MinSpeed + g.rng.Float64()*(pc.MaxSpeed-pc.MinSpeed)
		g.particles = append(g.particles, &Particle{
			Body: Body{
				Pos:    at,
				Vel:    core.Polar(angle, speed),
				Radius: pc.Radius,
			},
			Life:    1,
			MaxLife: 1,
			Color:   color,
		})
	}
}
