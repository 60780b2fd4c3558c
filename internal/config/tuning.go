package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ghosthunt/ghosthunt-server/internal/arena"
	"github.com/ghosthunt/ghosthunt-server/internal/director"
	"github.com/ghosthunt/ghosthunt-server/internal/game"
	"github.com/ghosthunt/ghosthunt-server/internal/geom"
)

// Tuning is the gameplay tuning file. Fields left out keep their defaults.
type Tuning struct {
	Director DirectorTuning   `yaml:"director"`
	Bow      BowTuning        `yaml:"bow"`
	Ghost    game.GhostConfig `yaml:"ghost"`
	Arrow    game.ArrowConfig `yaml:"arrow"`
	Arena    ArenaTuning      `yaml:"arena"`
}

type DirectorTuning struct {
	BaseMaxAlive      int           `yaml:"baseMaxAlive"`
	IncreasePerMinute int           `yaml:"increasePerMinute"`
	IntervalAtStart   time.Duration `yaml:"intervalAtStart"`
	IntervalAtMax     time.Duration `yaml:"intervalAtMax"`
	RampMinutes       float64       `yaml:"rampMinutes"`
	MinEdgeDistance   float64       `yaml:"minEdgeDistance"`
	SurfaceOffset     float64       `yaml:"surfaceOffset"`
	MinSpacing        float64       `yaml:"minSpacing"`
	HalfHeight        float64       `yaml:"halfHeight"`
}

type BowTuning struct {
	Start      geom.Vec3     `yaml:"start"`
	End        geom.Vec3     `yaml:"end"`
	NotchDelay time.Duration `yaml:"notchDelay"`
}

type ArenaTuning struct {
	HalfWidth  float64       `yaml:"halfWidth"`
	HalfDepth  float64       `yaml:"halfDepth"`
	SurfaceY   float64       `yaml:"surfaceY"`
	IntroDelay time.Duration `yaml:"introDelay"`
}

// DefaultTuning returns the shipped gameplay values.
func DefaultTuning() *Tuning {
	c := arena.DefaultConfig()
	d := c.Director
	return &Tuning{
		Director: DirectorTuning{
			BaseMaxAlive:      d.BaseMaxAlive,
			IncreasePerMinute: d.IncreasePerMinute,
			IntervalAtStart:   d.IntervalAtStart,
			IntervalAtMax:     d.IntervalAtMax,
			RampMinutes:       d.RampMinutes,
			MinEdgeDistance:   d.MinEdgeDistance,
			SurfaceOffset:     d.SurfaceOffset,
			MinSpacing:        d.MinSpacing,
			HalfHeight:        d.HalfHeight,
		},
		Bow: BowTuning{
			Start:      c.Anchors.Start,
			End:        c.Anchors.End,
			NotchDelay: c.NotchDelay,
		},
		Ghost: c.Ghost,
		Arrow: c.Arrow,
		Arena: ArenaTuning{
			HalfWidth:  c.HalfWidth,
			HalfDepth:  c.HalfDepth,
			SurfaceY:   c.SurfaceY,
			IntroDelay: c.IntroDelay,
		},
	}
}

// LoadTuning reads a YAML tuning file over the defaults. An empty path returns the defaults.
func LoadTuning(path string) (*Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse tuning file: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning file %s: %w", path, err)
	}
	return t, nil
}

// Validate rejects values the simulation cannot run with.
func (t *Tuning) Validate() error {
	var errs []error
	d := t.Director
	if d.BaseMaxAlive < 0 || d.IncreasePerMinute < 0 {
		errs = append(errs, errors.New("director: alive counts must not be negative"))
	}
	if d.IntervalAtStart <= 0 || d.IntervalAtMax <= 0 {
		errs = append(errs, errors.New("director: intervals must be positive"))
	}
	if d.RampMinutes < 0 {
		errs = append(errs, errors.New("director: rampMinutes must not be negative"))
	}
	if d.HalfHeight < 0 || d.MinSpacing < 0 || d.MinEdgeDistance < 0 {
		errs = append(errs, errors.New("director: distances must not be negative"))
	}
	if t.Arena.HalfWidth <= d.MinEdgeDistance || t.Arena.HalfDepth <= d.MinEdgeDistance {
		errs = append(errs, errors.New("arena: surface is smaller than the edge inset"))
	}
	if t.Arrow.Mass <= 0 {
		errs = append(errs, errors.New("arrow: mass must be positive"))
	}
	if t.Arrow.MaxDepth < t.Arrow.MinDepth {
		errs = append(errs, errors.New("arrow: maxDepth is below minDepth"))
	}
	if t.Ghost.Health < 1 {
		errs = append(errs, errors.New("ghost: health must be at least 1"))
	}
	if t.Ghost.StopDistance > t.Ghost.KillDistance {
		errs = append(errs, errors.New("ghost: stopDistance beyond killDistance, ghosts could never reach the player"))
	}
	return errors.Join(errs...)
}

// ArenaConfig converts the tuning into an arena configuration.
func (t *Tuning) ArenaConfig() arena.Config {
	c := arena.DefaultConfig()
	d := t.Director
	c.Director = director.Config{
		Ramp: director.Ramp{
			BaseMaxAlive:      d.BaseMaxAlive,
			IncreasePerMinute: d.IncreasePerMinute,
			IntervalAtStart:   d.IntervalAtStart,
			IntervalAtMax:     d.IntervalAtMax,
			RampMinutes:       d.RampMinutes,
		},
		MinEdgeDistance: d.MinEdgeDistance,
		SurfaceOffset:   d.SurfaceOffset,
		MinSpacing:      d.MinSpacing,
		HalfHeight:      d.HalfHeight,
		OverlapMask:     director.AllLayers,
	}
	c.Anchors.Start = t.Bow.Start
	c.Anchors.End = t.Bow.End
	c.NotchDelay = t.Bow.NotchDelay
	c.Ghost = t.Ghost
	c.Arrow = t.Arrow
	c.HalfWidth = t.Arena.HalfWidth
	c.HalfDepth = t.Arena.HalfDepth
	c.SurfaceY = t.Arena.SurfaceY
	c.IntroDelay = t.Arena.IntroDelay
	return c
}
