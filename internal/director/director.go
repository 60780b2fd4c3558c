package director

import (
	"log/slog"
	"math/rand"
	"time"
)

// MaxPlacementAttempts bounds the search for a free spawn point in one tick.
const MaxPlacementAttempts = 200

// Config is the tuning of a Director.
type Config struct {
	Ramp

	MinEdgeDistance float64   // inset from the surface border
	SurfaceOffset   float64   // extra hover height above the hit point
	MinSpacing      float64   // minimum free radius around a candidate
	HalfHeight      float64   // half height of the spawned ghost
	OverlapMask     LayerMask // layers the free-space check considers
}

// DefaultConfig mirrors the tuning the game shipped with.
func DefaultConfig() Config {
	return Config{
		Ramp: Ramp{
			BaseMaxAlive:      4,
			IncreasePerMinute: 2,
			IntervalAtStart:   2500 * time.Millisecond,
			IntervalAtMax:     700 * time.Millisecond,
			RampMinutes:       5,
		},
		MinEdgeDistance: 0.3,
		SurfaceOffset:   0.2,
		MinSpacing:      0.3,
		HalfHeight:      0.1,
		OverlapMask:     AllLayers,
	}
}

// CheckRadius is the free-space radius a candidate must have.
func (c Config) CheckRadius() float64 {
	return max(c.MinSpacing, c.HalfHeight*0.9)
}

// Deps are the world collaborators. Any of them may be nil.
type Deps struct {
	Surface  Surface
	Overlap  OverlapQuery
	Factory  Factory
	Player   PlayerLocator
	GameOver GameOverFlag
}

// Director decides when, how many and where ghosts appear.
// It is not safe for concurrent use; the owner ticks it from a single goroutine.
type Director struct {
	cfg  Config
	deps Deps
	rng  *rand.Rand

	enabled         bool
	elapsed         time.Duration
	timer           time.Duration
	levelMultiplier int
	alive           []Handle
}

// New creates a disabled director. A nil rng uses a time-seeded source.
func New(cfg Config, deps Deps, rng *rand.Rand) *Director {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Director{
		cfg:             cfg,
		deps:            deps,
		rng:             rng,
		levelMultiplier: 1,
	}
}

// Enable turns spawning on. Elapsed ramp time is kept.
func (d *Director) Enable() {
	if d.enabled {
		return
	}
	d.enabled = true
	slog.Debug("spawning enabled", "elapsed", d.elapsed)
}

// Disable stops spawning from the next tick on.
func (d *Director) Disable() {
	d.enabled = false
}

func (d *Director) Enabled() bool {
	return d.enabled
}

// SetLevelMultiplier divides the spawn interval. Last write wins.
func (d *Director) SetLevelMultiplier(n int) {
	d.levelMultiplier = n
}

func (d *Director) LevelMultiplier() int {
	return d.levelMultiplier
}

func (d *Director) Elapsed() time.Duration {
	return d.elapsed
}

// Progress is the current ramp progress in [0,1].
func (d *Director) Progress() float64 {
	return d.cfg.Progress(d.elapsed)
}

// MaxAlive is the current concurrent ghost limit.
func (d *Director) MaxAlive() int {
	return d.cfg.MaxAlive(d.Progress())
}

// Interval is the current time between spawn attempts.
func (d *Director) Interval() time.Duration {
	return d.cfg.Interval(d.Progress(), d.levelMultiplier)
}

// AliveCount is the number of tracked handles as of the last prune.
func (d *Director) AliveCount() int {
	return len(d.alive)
}

// Tick advances the director by dt and attempts at most one spawn.
func (d *Director) Tick(dt time.Duration) {
	if !d.enabled {
		return
	}
	if d.deps.Surface == nil || d.deps.Factory == nil {
		return
	}
	if d.deps.GameOver != nil && d.deps.GameOver.IsGameOver() {
		return
	}

	d.elapsed += dt
	t := d.cfg.Progress(d.elapsed)
	maxAlive := d.cfg.MaxAlive(t)
	interval := d.cfg.Interval(t, d.levelMultiplier)

	d.prune()

	d.timer += dt
	if len(d.alive) < maxAlive && d.timer >= interval {
		if h, ok := d.TrySpawn(); ok {
			d.alive = append(d.alive, h)
		}
		d.timer = 0
	}
}

// Reset clears ramp time, the spawn timer and tracked handles, and disables spawning.
func (d *Director) Reset() {
	d.enabled = false
	d.elapsed = 0
	d.timer = 0
	d.levelMultiplier = 1
	d.alive = d.alive[:0]
}

func (d *Director) prune() {
	n := 0
	for _, h := range d.alive {
		if h != nil && h.Alive() {
			d.alive[n] = h
			n++
		}
	}
	clear(d.alive[n:])
	d.alive = d.alive[:n]
}
