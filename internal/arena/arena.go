package arena

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/ghosthunt/ghosthunt-server/internal/bow"
	"github.com/ghosthunt/ghosthunt-server/internal/director"
	"github.com/ghosthunt/ghosthunt-server/internal/game"
	"github.com/ghosthunt/ghosthunt-server/internal/geom"
)

// Hooks receive gameplay notifications. They run on the goroutine that ticks
// or feeds input to the arena. Any of them may be nil.
type Hooks struct {
	PullChanged   func(level float64)
	ArrowNotched  func()
	ArrowReleased func(arrow ArrowView)
	GhostKilled   func(ghostID string, score int)
	LevelUp       func(level int)
	GameOver      func(score, highscore int)
}

// Arena hosts one hunt: the play surface, the player, ghosts, arrows and the bow.
// It is not safe for concurrent use.
type Arena struct {
	cfg   Config
	rng   *rand.Rand
	hooks Hooks

	state    *game.State
	director *director.Director
	pull     *bow.Pull
	quiver   *bow.Quiver
	hitbox   *game.Hitbox

	phase game.Phase
	clock time.Duration
	intro time.Duration

	head    geom.Vec3
	hasHead bool
	bowPos  geom.Vec3
	aim     geom.Vec3
	hand    bow.Hand

	ghosts []*game.Ghost
	arrows []*game.Arrow
}

// New creates an arena in its intro phase. A nil rng uses a time-seeded source.
func New(cfg Config, rng *rand.Rand, highscore int, hooks Hooks) *Arena {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	a := &Arena{
		cfg:    cfg,
		rng:    rng,
		hooks:  hooks,
		state:  game.NewState(highscore),
		pull:   bow.NewPull(cfg.Anchors, 0),
		quiver: bow.NewQuiver(cfg.NotchDelay),
		aim:    geom.Forward,
	}
	a.hitbox = game.NewHitbox(a.state)
	a.director = director.New(cfg.Director, director.Deps{
		Surface:  a,
		Overlap:  a,
		Factory:  a,
		Player:   a,
		GameOver: a.state,
	}, rng)

	a.pull.Subscribe(a.onBowEvent)
	a.state.OnLevelChange(a.onLevelChange)
	a.state.OnGameOver(a.onGameOver)
	return a
}

func (a *Arena) State() *game.State {
	return a.state
}

func (a *Arena) Director() *director.Director {
	return a.director
}

func (a *Arena) Pull() *bow.Pull {
	return a.pull
}

func (a *Arena) Quiver() *bow.Quiver {
	return a.quiver
}

func (a *Arena) Phase() game.Phase {
	return a.phase
}

// Ghosts returns the ghosts currently in the world.
func (a *Arena) Ghosts() []*game.Ghost {
	return a.ghosts
}

// Arrows returns the arrows currently in the world.
func (a *Arena) Arrows() []*game.Arrow {
	return a.arrows
}

// Tick advances the hunt by dt.
func (a *Arena) Tick(dt time.Duration) {
	a.clock += dt

	if a.phase == game.PhaseIntro {
		a.intro += dt
		if a.intro >= a.cfg.IntroDelay {
			a.phase = game.PhaseHunting
			a.director.Enable()
			slog.Debug("hunt started", "intro", a.intro)
		}
	}

	if a.quiver.Tick(dt) && a.hooks.ArrowNotched != nil {
		a.hooks.ArrowNotched()
	}

	a.director.Tick(dt)
	a.updateGhosts(dt)
	a.updateArrows(dt)
	a.prune()
}

func (a *Arena) updateGhosts(dt time.Duration) {
	if a.state.IsGameOver() {
		return
	}

	var target *geom.Vec3
	if a.hasHead {
		head := a.head
		target = &head
	}

	for _, g := range a.ghosts {
		if g.Update(dt, a.clock, target, a) {
			a.hitbox.OnCollision(game.CollisionEvent{Other: game.KindGhost, OtherID: g.ID})
		}
		if a.state.IsGameOver() {
			return
		}
	}

	if !a.hasHead {
		return
	}
	for _, g := range game.FindGhostsTouching(a.ghosts, a.head, game.HitboxRadius) {
		if a.hitbox.OnCollision(game.CollisionEvent{Other: game.KindGhost, OtherID: g.ID}) {
			return
		}
	}
}

func (a *Arena) updateArrows(dt time.Duration) {
	segments := make(map[string][2]geom.Vec3, len(a.arrows))
	for _, ar := range a.arrows {
		wasFlying := ar.Flying()
		from, to := ar.Step(dt)
		if wasFlying && ar.Flying() {
			segments[ar.ID] = [2]geom.Vec3{from, to}
		}
	}

	for _, hit := range game.FindArrowHits(a.arrows, a.ghosts, segments) {
		if !hit.Arrow.Stick(hit.Contact, a.embedDepth(), hit.Ghost.ID, hit.Ghost.Position) {
			hit.Arrow.Deflect(hit.Contact, hit.Contact.Sub(hit.Ghost.Position))
		}
		if hit.Ghost.Hit() {
			a.state.AddScore(game.ScorePerGhost)
			slog.Debug("ghost killed", "ghost", hit.Ghost.ID, "score", a.state.Score())
			if a.hooks.GhostKilled != nil {
				a.hooks.GhostKilled(hit.Ghost.ID, a.state.Score())
			}
		}
	}

	for _, ar := range a.arrows {
		if !ar.Flying() {
			continue
		}
		seg, ok := segments[ar.ID]
		if !ok {
			continue
		}
		if p, hit := game.SegmentPlaneY(seg[0], seg[1], a.cfg.SurfaceY); hit && a.onSurface(p) {
			if !ar.Stick(p, a.embedDepth(), "", geom.Zero) {
				ar.Deflect(p, geom.Up)
			}
		}
	}

	for _, ar := range a.arrows {
		if ar.State != game.ArrowStuck || ar.StuckTo == "" {
			continue
		}
		if g := a.ghost(ar.StuckTo); g != nil && g.Alive() {
			ar.Follow(g.Position)
		} else {
			ar.Remove()
		}
	}
}

func (a *Arena) embedDepth() float64 {
	lo, hi := a.cfg.Arrow.MinDepth, a.cfg.Arrow.MaxDepth
	if hi <= lo {
		return lo
	}
	return lo + a.rng.Float64()*(hi-lo)
}

func (a *Arena) ghost(id string) *game.Ghost {
	for _, g := range a.ghosts {
		if g.ID == id {
			return g
		}
	}
	return nil
}

func (a *Arena) prune() {
	ghosts := a.ghosts[:0]
	for _, g := range a.ghosts {
		if g.Alive() {
			ghosts = append(ghosts, g)
		}
	}
	clear(a.ghosts[len(ghosts):])
	a.ghosts = ghosts

	arrows := a.arrows[:0]
	for _, ar := range a.arrows {
		if ar.State != game.ArrowSpent {
			arrows = append(arrows, ar)
		}
	}
	clear(a.arrows[len(arrows):])
	a.arrows = arrows
}

func (a *Arena) onLevelChange(level int) {
	a.director.SetLevelMultiplier(level)
	if level > 1 && a.hooks.LevelUp != nil {
		a.hooks.LevelUp(level)
	}
}

func (a *Arena) onGameOver() {
	a.clearGhosts()
	a.phase = game.PhaseOver
	slog.Debug("player died", "score", a.state.Score(), "highscore", a.state.Highscore())
	if a.hooks.GameOver != nil {
		a.hooks.GameOver(a.state.Score(), a.state.Highscore())
	}
}

// Restart begins a new round. The highscore and the bow grip are kept.
func (a *Arena) Restart() {
	a.state.Restart()
	a.director.Reset()
	a.clearGhosts()
	clear(a.arrows)
	a.arrows = a.arrows[:0]
	a.phase = game.PhaseIntro
	a.clock = 0
	a.intro = 0
}

func (a *Arena) clearGhosts() {
	for _, g := range a.ghosts {
		g.Vanish()
	}
	clear(a.ghosts)
	a.ghosts = a.ghosts[:0]
}
