package arena

import "github.com/vovakirdan/arena/internal/config"

// WaveState is the progress of the current wave.
type WaveState struct {
	Number  int // starts at 1, only increases
	Target  int // enemies this wave will issue
	Spawned int // enemies issued so far
}

// Spawning reports whether the wave still has enemies to issue.
func (w WaveState) Spawning() bool {
	return w.Spawned < w.Target
}

// WaveDirector paces enemy issuance. Spawns are queued as due times on the
// director's own clock, which only moves when Tick is called, so a paused
// simulation also pauses spawning.
type WaveDirector struct {
	cfg   config.WavesConfig
	state WaveState
	clock float64   // ms of simulated time seen by the director
	queue []float64 // due times, ascending
}

// NewWaveDirector creates a director that has not started any wave yet.
func NewWaveDirector(cfg config.WavesConfig) *WaveDirector {
	return &WaveDirector{cfg: cfg}
}

// TargetFor returns how many enemies wave n issues.
func (d *WaveDirector) TargetFor(n int) int {
	return d.cfg.BaseCount + d.cfg.CountPerWave*n
}

// Start begins wave n. The first spawn is due immediately, the rest
// follow one spawn interval apart.
func (d *WaveDirector) Start(n int) {
	d.state = WaveState{Number: n, Target: d.TargetFor(n)}
	d.queue = d.queue[:0]
	for i := 0; i < d.state.Target; i++ {
		d.queue = append(d.queue, d.clock+float64(i)*d.cfg.SpawnInterval)
	}
}

// Tick advances the director clock by elapsed ms and pops every queued
// spawn that has come due. It returns how many spawns are due now.
// Callers that cannot honor them (game over) simply drop them.
func (d *WaveDirector) Tick(elapsed float64) int {
	if elapsed > 0 {
		d.clock += elapsed
	}
	due := 0
	for due < len(d.queue) && d.queue[due] <= d.clock {
		due++
	}
	d.queue = d.queue[due:]
	return due
}

// RecordSpawn counts an issued enemy toward the wave target.
func (d *WaveDirector) RecordSpawn() {
	if d.state.Spawned < d.state.Target {
		d.state.Spawned++
	}
}

// Cleared reports whether the wave is done: every spawn issued and no
// enemy left alive.
func (d *WaveDirector) Cleared(alive int) bool {
	return !d.state.Spawning() && alive == 0
}

// NextWave starts the wave after the current one.
func (d *WaveDirector) NextWave() {
	d.Start(d.state.Number + 1)
}

// State returns the current wave progress.
func (d *WaveDirector) State() WaveState {
	return d.state
}

// Pending returns how many spawns are still queued.
func (d *WaveDirector) Pending() int {
	return len(d.queue)
}
