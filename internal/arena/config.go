package arena

import (
	"time"

	"github.com/ghosthunt/ghosthunt-server/internal/bow"
	"github.com/ghosthunt/ghosthunt-server/internal/director"
	"github.com/ghosthunt/ghosthunt-server/internal/game"
	"github.com/ghosthunt/ghosthunt-server/internal/geom"
)

// Config is the full tuning of one hunt.
type Config struct {
	Director   director.Config
	Anchors    bow.Anchors
	NotchDelay time.Duration
	Ghost      game.GhostConfig
	Arrow      game.ArrowConfig

	HalfWidth  float64 // surface extent along X
	HalfDepth  float64 // surface extent along Z
	SurfaceY   float64
	IntroDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		Director: director.DefaultConfig(),
		Anchors: bow.Anchors{
			Start: geom.V(0, 0, 0),
			End:   geom.V(0, 0, -0.6),
		},
		NotchDelay: bow.DefaultNotchDelay,
		Ghost:      game.DefaultGhostConfig(),
		Arrow:      game.DefaultArrowConfig(),
		HalfWidth:  game.SurfaceHalfWidth,
		HalfDepth:  game.SurfaceHalfDepth,
		SurfaceY:   0,
		IntroDelay: game.IntroDelay,
	}
}
