package game

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/ghosthunt/ghosthunt-server/internal/geom"
)

// GhostConfig tunes ghost movement and durability.
type GhostConfig struct {
	MoveSpeed      float64       `yaml:"moveSpeed"`      // m/s
	TurnSpeed      float64       `yaml:"turnSpeed"`      // fraction of the remaining turn per second
	StopDistance   float64       `yaml:"stopDistance"`   // horizontal distance where it stops walking
	KillDistance   float64       `yaml:"killDistance"`   // horizontal distance where the player dies
	HoverHeight    float64       `yaml:"hoverHeight"`    // above ground
	HoverAmplitude float64       `yaml:"hoverAmplitude"` // bobbing
	HoverFrequency float64       `yaml:"hoverFrequency"` // rad/s
	Health         int           `yaml:"health"`
	MaxLifetime    time.Duration `yaml:"maxLifetime"`
	DeathDelay     time.Duration `yaml:"deathDelay"` // sparkle effect before removal
}

// DefaultGhostConfig is the stock ghost. KillDistance is 1m, just past StopDistance,
// rather than the 7m the headset build used: distances here are measured to the
// tracked head on an 8m arena, where 7m would end a hunt as soon as a ghost spawns.
func DefaultGhostConfig() GhostConfig {
	return GhostConfig{
		MoveSpeed:      1.2,
		TurnSpeed:      6,
		StopDistance:   0.8,
		KillDistance:   1.0,
		HoverHeight:    0.3,
		HoverAmplitude: 0.05,
		HoverFrequency: 2,
		Health:         1,
		MaxLifetime:    60 * time.Second,
		DeathDelay:     500 * time.Millisecond,
	}
}

type GhostState int

const (
	GhostHunting GhostState = iota
	GhostDying
	GhostGone
)

func (s GhostState) String() string {
	switch s {
	case GhostHunting:
		return "hunting"
	case GhostDying:
		return "dying"
	case GhostGone:
		return "gone"
	default:
		return "unknown"
	}
}

// Ground reports the floor height under a point.
type Ground interface {
	GroundHeight(p geom.Vec3) (float64, bool)
}

// Ghost is a spawned ghost chasing the player.
type Ghost struct {
	ID       string
	Position geom.Vec3
	Rotation geom.Quat
	Health   int
	State    GhostState

	cfg        GhostConfig
	life       time.Duration
	deathTimer time.Duration
	bottom     float64 // pivot to model bottom
}

// NewGhost creates a hunting ghost. halfHeight is the distance from its pivot to its bottom.
func NewGhost(cfg GhostConfig, pos geom.Vec3, rot geom.Quat, halfHeight float64) *Ghost {
	return &Ghost{
		ID:       uuid.New().String(),
		Position: pos,
		Rotation: rot,
		Health:   cfg.Health,
		State:    GhostHunting,
		cfg:      cfg,
		bottom:   max(0, halfHeight),
	}
}

// Alive reports whether the ghost still exists in the world.
func (g *Ghost) Alive() bool {
	return g.State != GhostGone
}

// Hunting reports whether the ghost can still hurt or be hurt.
func (g *Ghost) Hunting() bool {
	return g.State == GhostHunting
}

// Settle places the ghost at hover height over the ground.
func (g *Ghost) Settle(ground Ground) {
	if ground == nil {
		return
	}
	if gy, ok := ground.GroundHeight(g.Position); ok {
		g.Position.Y = gy + g.bottom + g.cfg.HoverHeight
	}
}

// Update moves the ghost toward target. now is the hunt clock used for hover phase.
// It returns true when the ghost is within kill distance of the target.
func (g *Ghost) Update(dt, now time.Duration, target *geom.Vec3, ground Ground) bool {
	switch g.State {
	case GhostGone:
		return false
	case GhostDying:
		g.deathTimer -= dt
		if g.deathTimer <= 0 {
			g.State = GhostGone
		}
		return false
	}

	g.life += dt
	if g.life > g.cfg.MaxLifetime {
		g.State = GhostGone
		return false
	}

	if target == nil {
		return false
	}

	secs := dt.Seconds()
	flat := target.Sub(g.Position).Horizontal()
	dist := flat.Len()

	if flat.LenSq() > 0.001 {
		want := math.Atan2(flat.X, flat.Z)
		yaw := g.Rotation.Yaw()
		step := geom.Clamp01(g.cfg.TurnSpeed * secs)
		g.Rotation = geom.YawRotation(yaw + angleDiff(yaw, want)*step)
	}

	if dist > g.cfg.StopDistance {
		fwd := g.Rotation.Forward().Horizontal().Normalize()
		g.Position = g.Position.Add(fwd.Scale(g.cfg.MoveSpeed * secs))
	}

	if ground != nil {
		if gy, ok := ground.GroundHeight(g.Position); ok {
			hover := math.Sin(now.Seconds()*g.cfg.HoverFrequency) * g.cfg.HoverAmplitude
			g.Position.Y = gy + g.bottom + g.cfg.HoverHeight + hover
		}
	}

	return dist <= g.cfg.KillDistance
}

// Hit takes one point of health. It returns true when this hit killed the ghost.
func (g *Ghost) Hit() bool {
	if g.State != GhostHunting {
		return false
	}
	g.Health--
	if g.Health > 0 {
		return false
	}
	g.State = GhostDying
	g.deathTimer = g.cfg.DeathDelay
	return true
}

// Vanish removes the ghost immediately.
func (g *Ghost) Vanish() {
	g.State = GhostGone
}

// angleDiff is the signed shortest rotation from a to b.
func angleDiff(a, b float64) float64 {
	d := math.Mod(b-a+math.Pi, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d - math.Pi
}
