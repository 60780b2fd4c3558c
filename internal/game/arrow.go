package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghosthunt/ghosthunt-server/internal/geom"
)

// ArrowConfig tunes arrow flight and impact.
type ArrowConfig struct {
	LaunchImpulse    float64       `yaml:"launchImpulse"` // N*s at full draw
	Mass             float64       `yaml:"mass"`          // kg
	Drag             float64       `yaml:"drag"`          // linear drag per second
	Damage           float64       `yaml:"damage"`        // at full draw
	Lifetime         time.Duration `yaml:"lifetime"`
	MinStickVelocity float64       `yaml:"minStickVelocity"` // m/s
	StickDuration    time.Duration `yaml:"stickDuration"`
	MinDepth         float64       `yaml:"minDepth"` // embed depth range
	MaxDepth         float64       `yaml:"maxDepth"`
}

func DefaultArrowConfig() ArrowConfig {
	return ArrowConfig{
		LaunchImpulse:    10,
		Mass:             0.2,
		Drag:             0.01,
		Damage:           10,
		Lifetime:         10 * time.Second,
		MinStickVelocity: 2,
		StickDuration:    3 * time.Second,
		MinDepth:         0.05,
		MaxDepth:         0.15,
	}
}

type ArrowState int

const (
	ArrowFlying ArrowState = iota
	ArrowStuck
	ArrowSpent
)

func (s ArrowState) String() string {
	switch s {
	case ArrowFlying:
		return "flying"
	case ArrowStuck:
		return "stuck"
	case ArrowSpent:
		return "spent"
	default:
		return "unknown"
	}
}

// Arrow is a launched projectile.
type Arrow struct {
	ID       string
	Position geom.Vec3
	Velocity geom.Vec3
	Rotation geom.Quat
	Strength float64 // pull level at release
	State    ArrowState
	StuckTo  string // ghost ID, empty for the surface

	cfg        ArrowConfig
	age        time.Duration
	stuckTimer time.Duration
	offset     geom.Vec3 // from the ghost it is stuck to
}

// LaunchArrow fires an arrow from pos along forward with the given pull strength.
func LaunchArrow(cfg ArrowConfig, pos, forward geom.Vec3, strength float64) *Arrow {
	dir := forward.Normalize()
	if dir == geom.Zero {
		dir = geom.Forward
	}
	speed := 0.0
	if cfg.Mass > 0 {
		speed = strength * cfg.LaunchImpulse / cfg.Mass
	}
	return &Arrow{
		ID:       uuid.New().String(),
		Position: pos,
		Velocity: dir.Scale(speed),
		Rotation: geom.LookRotation(dir, geom.Up),
		Strength: strength,
		State:    ArrowFlying,
		cfg:      cfg,
	}
}

// Damage is the arrow damage scaled by the pull strength at launch.
func (a *Arrow) Damage() float64 {
	return a.cfg.Damage * a.Strength
}

// FlightTime is how long the arrow has existed.
func (a *Arrow) FlightTime() time.Duration {
	return a.age
}

func (a *Arrow) Flying() bool {
	return a.State == ArrowFlying
}

// Step integrates one tick of flight and returns the segment travelled.
// Stuck arrows count down to removal instead.
func (a *Arrow) Step(dt time.Duration) (from, to geom.Vec3) {
	from = a.Position
	switch a.State {
	case ArrowSpent:
		return from, from
	case ArrowStuck:
		a.stuckTimer -= dt
		if a.stuckTimer <= 0 {
			a.State = ArrowSpent
		}
		return from, from
	}

	a.age += dt
	if a.age > a.cfg.Lifetime {
		a.State = ArrowSpent
		return from, from
	}

	secs := dt.Seconds()
	a.Velocity.Y -= Gravity * secs
	a.Velocity = a.Velocity.Scale(max(0, 1-a.cfg.Drag*secs))
	a.Position = a.Position.Add(a.Velocity.Scale(secs))
	if a.Velocity.LenSq() > 0.01 {
		a.Rotation = geom.LookRotation(a.Velocity, geom.Up)
	}
	return from, a.Position
}

// Stick stops the arrow at contact, pushed depth meters along its flight direction.
// ghostID is empty when the arrow hit the surface. An impact slower than
// MinStickVelocity does not stick and Stick reports false.
func (a *Arrow) Stick(contact geom.Vec3, depth float64, ghostID string, ghostPos geom.Vec3) bool {
	if a.State != ArrowFlying || a.Velocity.Len() < a.cfg.MinStickVelocity {
		return false
	}
	dir := a.Velocity.Normalize()
	a.Position = contact.Add(dir.Scale(depth))
	a.Velocity = geom.Zero
	a.State = ArrowStuck
	a.stuckTimer = a.cfg.StickDuration
	a.StuckTo = ghostID
	if ghostID != "" {
		a.offset = a.Position.Sub(ghostPos)
	}
	return true
}

const (
	arrowRestitution = 0.3
	deflectClearance = 0.01
)

// Deflect bounces a flying arrow off contact. The arrow keeps flying with its
// velocity mirrored about normal and damped.
func (a *Arrow) Deflect(contact, normal geom.Vec3) {
	if a.State != ArrowFlying {
		return
	}
	n := normal.Normalize()
	if n == geom.Zero {
		n = a.Velocity.Normalize().Scale(-1)
	}
	v := a.Velocity
	if d := v.Dot(n); d < 0 {
		v = v.Sub(n.Scale(2 * d))
	}
	a.Velocity = v.Scale(arrowRestitution)
	a.Position = contact.Add(n.Scale(deflectClearance))
}

// Follow keeps a stuck arrow attached to the ghost it hit.
func (a *Arrow) Follow(ghostPos geom.Vec3) {
	if a.State == ArrowStuck && a.StuckTo != "" {
		a.Position = ghostPos.Add(a.offset)
	}
}

// Remove drops the arrow from the world.
func (a *Arrow) Remove() {
	a.State = ArrowSpent
}
