package game

import "time"

// Game timing
const (
	TickRate     = 30 // ticks per second
	TickInterval = time.Second / TickRate
	IntroDelay   = 5 * time.Second
)

// Scoring
const (
	ScorePerGhost  = 1
	PointsPerLevel = 10
)

// Play area (meters). The surface is a flat floor centered on the origin.
const (
	SurfaceHalfWidth = 4.0
	SurfaceHalfDepth = 4.0
	PlayerHeadHeight = 1.7
)

// Collision sizes (meters)
const (
	GhostRadius   = 0.25
	HitboxRadius  = 0.3
	ArrowTipReach = 0.05
)

// Physics
const (
	Gravity = 9.81 // m/s^2
)
