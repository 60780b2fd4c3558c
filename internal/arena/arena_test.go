package arena

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ghosthunt/ghosthunt-server/internal/bow/mocks"
	"github.com/ghosthunt/ghosthunt-server/internal/director"
	"github.com/ghosthunt/ghosthunt-server/internal/game"
	"github.com/ghosthunt/ghosthunt-server/internal/geom"
)

type recorder struct {
	pulls    []float64
	notched  int
	released []ArrowView
	killed   []string
	levels   []int
	overs    [][2]int
}

func (r *recorder) hooks() Hooks {
	return Hooks{
		PullChanged:   func(level float64) { r.pulls = append(r.pulls, level) },
		ArrowNotched:  func() { r.notched++ },
		ArrowReleased: func(a ArrowView) { r.released = append(r.released, a) },
		GhostKilled:   func(id string, _ int) { r.killed = append(r.killed, id) },
		LevelUp:       func(level int) { r.levels = append(r.levels, level) },
		GameOver:      func(score, high int) { r.overs = append(r.overs, [2]int{score, high}) },
	}
}

// newTestArena returns an arena that stays in its intro so only explicit spawns happen.
func newTestArena(t *testing.T) (*Arena, *recorder) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.IntroDelay = time.Hour
	rec := &recorder{}
	return New(cfg, rand.New(rand.NewSource(1)), 0, rec.hooks()), rec
}

// drawAndRelease notches an arrow and fires it at full draw from pos along dir.
func drawAndRelease(a *Arena, pos, dir geom.Vec3) {
	a.GrabBow()
	a.Tick(a.cfg.NotchDelay)
	a.AimBow(pos, dir)
	a.GrabString(NewHand("right", nil))
	a.MoveHand(a.cfg.Anchors.End)
	a.ReleaseString()
}

func TestIntroEnablesDirector(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IntroDelay = 100 * time.Millisecond
	a := New(cfg, rand.New(rand.NewSource(1)), 0, Hooks{})

	a.Tick(50 * time.Millisecond)
	assert.Equal(t, game.PhaseIntro, a.Phase())
	assert.False(t, a.Director().Enabled())

	a.Tick(50 * time.Millisecond)
	assert.Equal(t, game.PhaseHunting, a.Phase())
	assert.True(t, a.Director().Enabled())
}

func TestRaycast(t *testing.T) {
	a, _ := newTestArena(t)
	down := geom.Ray{Origin: geom.V(1, 2, 1), Direction: geom.Down}

	hit, ok := a.Raycast(down, 4)
	require.True(t, ok)
	assert.Equal(t, geom.V(1, 0, 1), hit.Point)
	assert.Equal(t, geom.Up, hit.Normal)
	assert.InDelta(t, 2.0, hit.Distance, 1e-9)

	_, ok = a.Raycast(down, 1)
	assert.False(t, ok, "too short")

	_, ok = a.Raycast(geom.Ray{Origin: geom.V(10, 2, 0), Direction: geom.Down}, 4)
	assert.False(t, ok, "off the surface")

	_, ok = a.Raycast(geom.Ray{Origin: geom.V(0, 2, 0), Direction: geom.Up}, 4)
	assert.False(t, ok, "upward")
}

func TestDirectorSpawnsOnSurface(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IntroDelay = 0
	a := New(cfg, rand.New(rand.NewSource(7)), 0, Hooks{})

	for range 24 {
		a.Tick(100 * time.Millisecond)
	}
	assert.Empty(t, a.Ghosts())

	a.Tick(100 * time.Millisecond)
	require.Len(t, a.Ghosts(), 1)

	g := a.Ghosts()[0]
	inset := cfg.Director.MinEdgeDistance
	assert.LessOrEqual(t, g.Position.X, cfg.HalfWidth-inset)
	assert.GreaterOrEqual(t, g.Position.X, -cfg.HalfWidth+inset)
	assert.LessOrEqual(t, g.Position.Z, cfg.HalfDepth-inset)
	assert.GreaterOrEqual(t, g.Position.Z, -cfg.HalfDepth+inset)
	assert.InDelta(t, cfg.Director.HalfHeight+cfg.Ghost.HoverHeight, g.Position.Y, 1e-9)
	assert.Equal(t, 1, a.Director().AliveCount())
}

func TestCheckSphere(t *testing.T) {
	a, _ := newTestArena(t)
	a.Spawn(geom.V(1, 0.4, 1), geom.Identity)
	a.MoveHead(geom.V(0, 1.7, 0))

	assert.True(t, a.CheckSphere(geom.V(1, 0.4, 1.4), 0.3, director.AllLayers))
	assert.False(t, a.CheckSphere(geom.V(1, 0.4, 1.4), 0.3, director.LayerMask(1<<game.KindPlayer.Layer())))
	assert.True(t, a.CheckSphere(geom.V(0, 1.7, 0.2), 0.1, director.LayerMask(1<<game.KindPlayer.Layer())))
	assert.False(t, a.CheckSphere(geom.V(-3, 0.4, -3), 0.3, director.AllLayers))
}

func TestArrowKillsGhost(t *testing.T) {
	a, rec := newTestArena(t)
	ghost := a.Spawn(geom.V(0, 0.4, 3), geom.Identity).(*game.Ghost)

	drawAndRelease(a, geom.V(0, 0.4, 0), geom.Forward)
	require.Len(t, rec.released, 1)
	assert.InDelta(t, 1.0, rec.released[0].Strength, 1e-9)
	assert.Equal(t, 1, rec.notched)

	for range 5 {
		a.Tick(30 * time.Millisecond)
	}

	assert.Equal(t, 1, a.State().Score())
	assert.Equal(t, []string{ghost.ID}, rec.killed)
	assert.Equal(t, game.GhostDying, ghost.State)

	require.Len(t, a.Arrows(), 1)
	assert.Equal(t, game.ArrowStuck, a.Arrows()[0].State)
	assert.Equal(t, ghost.ID, a.Arrows()[0].StuckTo)
}

func TestArrowSticksInSurface(t *testing.T) {
	a, _ := newTestArena(t)

	drawAndRelease(a, geom.V(0, 1, 0), geom.V(0, -1, 1))
	a.Tick(30 * time.Millisecond)

	require.Len(t, a.Arrows(), 1)
	ar := a.Arrows()[0]
	assert.Equal(t, game.ArrowStuck, ar.State)
	assert.Empty(t, ar.StuckTo)
	assert.Less(t, ar.Position.Y, 0.0)
}

func TestSlowArrowBouncesOffSurface(t *testing.T) {
	a, _ := newTestArena(t)

	a.GrabBow()
	a.Tick(a.cfg.NotchDelay)
	a.AimBow(geom.V(0, 0.01, 0), geom.Down)
	a.GrabString(NewHand("right", nil))
	a.MoveHand(geom.LerpVec(a.cfg.Anchors.Start, a.cfg.Anchors.End, 0.01))
	a.ReleaseString()

	require.Len(t, a.Arrows(), 1)
	ar := a.Arrows()[0]
	require.Less(t, ar.Velocity.Len(), a.cfg.Arrow.MinStickVelocity)

	a.Tick(30 * time.Millisecond)

	assert.Equal(t, game.ArrowFlying, ar.State)
	assert.Greater(t, ar.Velocity.Y, 0.0)
	assert.GreaterOrEqual(t, ar.Position.Y, a.cfg.SurfaceY)
}

func TestReleaseWithoutNotchFiresNothing(t *testing.T) {
	a, rec := newTestArena(t)
	a.GrabBow()
	require.NoError(t, a.GrabString(NewHand("right", nil)))
	a.MoveHand(a.cfg.Anchors.End)
	a.ReleaseString()

	assert.Empty(t, a.Arrows())
	assert.Empty(t, rec.released)
	assert.Equal(t, []float64{1}, rec.pulls)
}

func TestGrabStringRequiresBow(t *testing.T) {
	a, _ := newTestArena(t)
	assert.ErrorIs(t, a.GrabString(NewHand("right", nil)), ErrBowNotHeld)
	assert.ErrorIs(t, a.GrabString(nil), ErrNoHand)

	a.GrabBow()
	assert.NoError(t, a.GrabString(NewHand("right", nil)))
	assert.NoError(t, a.GrabString(NewHand("right", nil)), "same hand again")
	assert.ErrorIs(t, a.GrabString(NewHand("left", nil)), ErrStringHeld)
	assert.Equal(t, "right", a.Pull().Hand().ID())
}

func TestDropBowDiscardsArrow(t *testing.T) {
	a, rec := newTestArena(t)
	a.GrabBow()
	a.Tick(time.Second)
	require.True(t, a.Quiver().Notched())

	a.GrabString(NewHand("right", nil))
	a.MoveHand(a.cfg.Anchors.End)
	a.DropBow()

	assert.Empty(t, rec.released)
	assert.False(t, a.Quiver().Notched())
	assert.Zero(t, a.Pull().Level())
}

func TestHapticsReachTheHand(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockHapticSink(ctrl)
	gomock.InOrder(
		sink.EXPECT().SendHapticImpulse(0.3, 50*time.Millisecond),
		sink.EXPECT().SendHapticImpulse(1.0, 100*time.Millisecond),
		sink.EXPECT().SendHapticImpulse(1.0, 100*time.Millisecond),
		sink.EXPECT().SendHapticImpulse(0.0, time.Duration(0)),
	)

	a, _ := newTestArena(t)
	a.GrabBow()
	a.Tick(time.Second)
	a.GrabString(NewHand("left", sink))
	a.MoveHand(a.cfg.Anchors.End)
	a.ReleaseString()
}

func TestGhostReachingPlayerEndsHunt(t *testing.T) {
	a, rec := newTestArena(t)
	a.MoveHead(geom.V(0, 1.7, 0))
	ghost := a.Spawn(geom.V(0, 0.4, 0.5), geom.Identity).(*game.Ghost)

	a.Tick(30 * time.Millisecond)

	assert.True(t, a.State().IsGameOver())
	assert.Equal(t, game.PhaseOver, a.Phase())
	assert.Empty(t, a.Ghosts())
	assert.False(t, ghost.Alive())
	assert.Equal(t, [][2]int{{0, 0}}, rec.overs)
}

func TestLevelUpRaisesMultiplier(t *testing.T) {
	a, rec := newTestArena(t)

	a.State().AddScore(game.PointsPerLevel)

	assert.Equal(t, 2, a.Director().LevelMultiplier())
	assert.Equal(t, []int{2}, rec.levels)
}

func TestRestart(t *testing.T) {
	a, _ := newTestArena(t)
	a.MoveHead(geom.V(0, 1.7, 0))
	a.State().AddScore(3)
	a.Spawn(geom.V(0, 0.4, 0.5), geom.Identity)
	a.Tick(30 * time.Millisecond)
	require.True(t, a.State().IsGameOver())

	a.Restart()

	assert.Equal(t, game.PhaseIntro, a.Phase())
	assert.False(t, a.State().IsGameOver())
	assert.Zero(t, a.State().Score())
	assert.Equal(t, 3, a.State().Highscore())
	assert.False(t, a.Director().Enabled())
	assert.Zero(t, a.Director().Elapsed())
}

func TestSnapshot(t *testing.T) {
	a, _ := newTestArena(t)
	a.Spawn(geom.V(1, 0.4, 1), geom.Identity)
	a.GrabBow()
	a.Tick(time.Second)

	s := a.Snapshot()
	assert.Equal(t, "intro", s.Phase)
	assert.Equal(t, 1, s.Level)
	assert.True(t, s.Notched)
	require.Len(t, s.Ghosts, 1)
	assert.Equal(t, "hunting", s.Ghosts[0].State)
	assert.NotNil(t, s.Arrows)
	assert.Equal(t, 4, s.MaxAlive)
}
