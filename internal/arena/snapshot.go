package arena

import (
	"github.com/ghosthunt/ghosthunt-server/internal/game"
	"github.com/ghosthunt/ghosthunt-server/internal/geom"
)

// GhostView is the client-facing state of a ghost.
type GhostView struct {
	ID       string    `json:"id"`
	Position geom.Vec3 `json:"position"`
	Yaw      float64   `json:"yaw"`
	State    string    `json:"state"`
}

// ArrowView is the client-facing state of an arrow.
type ArrowView struct {
	ID       string    `json:"id"`
	Position geom.Vec3 `json:"position"`
	Velocity geom.Vec3 `json:"velocity"`
	Rotation geom.Quat `json:"rotation"`
	Strength float64   `json:"strength"`
	Damage   float64   `json:"damage"`
	State    string    `json:"state"`
	StuckTo  string    `json:"stuck_to,omitempty"`
}

// Snapshot is the full arena state broadcast every tick.
type Snapshot struct {
	Phase     string      `json:"phase"`
	Score     int         `json:"score"`
	Level     int         `json:"level"`
	Highscore int         `json:"highscore"`
	Elapsed   float64     `json:"elapsed"`
	MaxAlive  int         `json:"max_alive"`
	Interval  float64     `json:"interval"`
	Pull      float64     `json:"pull"`
	Notched   bool        `json:"notched"`
	Ghosts    []GhostView `json:"ghosts"`
	Arrows    []ArrowView `json:"arrows"`
}

func arrowView(ar *game.Arrow) ArrowView {
	return ArrowView{
		ID:       ar.ID,
		Position: ar.Position,
		Velocity: ar.Velocity,
		Rotation: ar.Rotation,
		Strength: ar.Strength,
		Damage:   ar.Damage(),
		State:    ar.State.String(),
		StuckTo:  ar.StuckTo,
	}
}

// Snapshot captures the current state.
func (a *Arena) Snapshot() Snapshot {
	s := Snapshot{
		Phase:     a.phase.String(),
		Score:     a.state.Score(),
		Level:     a.state.Level(),
		Highscore: a.state.Highscore(),
		Elapsed:   a.director.Elapsed().Seconds(),
		MaxAlive:  a.director.MaxAlive(),
		Interval:  a.director.Interval().Seconds(),
		Pull:      a.pull.Level(),
		Notched:   a.quiver.Notched(),
		Ghosts:    make([]GhostView, 0, len(a.ghosts)),
		Arrows:    make([]ArrowView, 0, len(a.arrows)),
	}
	for _, g := range a.ghosts {
		s.Ghosts = append(s.Ghosts, GhostView{
			ID:       g.ID,
			Position: g.Position,
			Yaw:      g.Rotation.Yaw(),
			State:    g.State.String(),
		})
	}
	for _, ar := range a.arrows {
		s.Arrows = append(s.Arrows, arrowView(ar))
	}
	return s
}
