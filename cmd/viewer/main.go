// Command viewer runs a hunt locally in a top-down debug window.
//
// B grabs or drops the bow. Press the left mouse button to take the string,
// drag away from the press point to draw and release to shoot toward the press
// point. R restarts after the player died.
package main

import (
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ghosthunt/ghosthunt-server/internal/arena"
	"github.com/ghosthunt/ghosthunt-server/internal/config"
	"github.com/ghosthunt/ghosthunt-server/internal/game"
	"github.com/ghosthunt/ghosthunt-server/internal/geom"
)

const (
	screenWidth  = 720
	screenHeight = 720
	pixelsPerM   = 80
	tps          = 60
	bowHeight    = 1.2
)

var (
	surfaceColor = color.RGBA{0x2b, 0x33, 0x3d, 0xff}
	borderColor  = color.RGBA{0x6b, 0x7b, 0x8c, 0xff}
	ghostColor   = color.RGBA{0xd8, 0xe8, 0xff, 0xff}
	dyingColor   = color.RGBA{0xff, 0xd7, 0x5e, 0xff}
	arrowColor   = color.RGBA{0xc9, 0x8b, 0x4a, 0xff}
	playerColor  = color.RGBA{0x5e, 0xd1, 0x7a, 0xff}
	aimColor     = color.RGBA{0xff, 0x5e, 0x5e, 0xff}
)

type AppGame struct {
	arena *arena.Arena
	cfg   arena.Config

	pressX, pressY int
	drawing        bool
	lastHaptic     float64
}

func newAppGame(cfg arena.Config) *AppGame {
	a := &AppGame{cfg: cfg}
	a.arena = arena.New(cfg, nil, 0, arena.Hooks{
		LevelUp: func(level int) { slog.Info("level up", "level", level) },
		GameOver: func(score, highscore int) {
			slog.Info("hunt over", "score", score, "highscore", highscore)
		},
	})
	a.arena.MoveHead(geom.V(0, game.PlayerHeadHeight, 0))
	return a
}

// toWorld maps a screen pixel onto the surface plane.
func toWorld(x, y int) geom.Vec3 {
	return geom.V(
		float64(x-screenWidth/2)/pixelsPerM,
		0,
		float64(screenHeight/2-y)/pixelsPerM,
	)
}

func toScreen(p geom.Vec3) (float32, float32) {
	return float32(screenWidth/2 + p.X*pixelsPerM), float32(screenHeight/2 - p.Z*pixelsPerM)
}

func (a *AppGame) hand() geom.Vec3 {
	x, y := ebiten.CursorPosition()
	dx := float64(x-a.pressX) / pixelsPerM
	dy := float64(y-a.pressY) / pixelsPerM
	anchors := a.cfg.Anchors
	axis := anchors.End.Sub(anchors.Start).Normalize()
	return anchors.Start.Add(axis.Scale(geom.V(dx, 0, dy).Len()))
}

func (a *AppGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		if a.arena.Quiver().Held() {
			a.arena.DropBow()
			a.drawing = false
		} else {
			a.arena.GrabBow()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && a.arena.State().IsGameOver() {
		a.arena.Restart()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.pressX, a.pressY = ebiten.CursorPosition()
		hand := arena.NewHand("mouse", arena.HapticFunc(func(intensity float64, _ time.Duration) {
			a.lastHaptic = intensity
		}))
		a.drawing = a.arena.GrabString(hand) == nil
	}
	if a.drawing {
		bowPos := geom.V(0, bowHeight, 0)
		target := toWorld(a.pressX, a.pressY)
		target.Y = a.cfg.Director.HalfHeight + a.cfg.Ghost.HoverHeight
		a.arena.AimBow(bowPos, target.Sub(bowPos))
		a.arena.MoveHand(a.hand())
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && a.drawing {
		a.arena.ReleaseString()
		a.drawing = false
	}

	a.arena.Tick(time.Second / tps)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	b := a.arena.Bounds()
	x0, y0 := toScreen(geom.V(b.Min.X, 0, b.Max.Z))
	x1, y1 := toScreen(geom.V(b.Max.X, 0, b.Min.Z))
	vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, surfaceColor, false)
	vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 2, borderColor, false)

	for _, g := range a.arena.Ghosts() {
		gx, gy := toScreen(g.Position)
		c := ghostColor
		if !g.Hunting() {
			c = dyingColor
		}
		vector.DrawFilledCircle(screen, gx, gy, game.GhostRadius*pixelsPerM, c, true)
		tip := g.Position.Add(g.Rotation.Forward().Horizontal().Normalize().Scale(game.GhostRadius * 1.6))
		tx, ty := toScreen(tip)
		vector.StrokeLine(screen, gx, gy, tx, ty, 2, c, true)
	}

	for _, ar := range a.arena.Arrows() {
		tail := ar.Position.Sub(ar.Rotation.Forward().Scale(0.4))
		hx, hy := toScreen(ar.Position)
		tx, ty := toScreen(tail)
		vector.StrokeLine(screen, tx, ty, hx, hy, 3, arrowColor, true)
	}

	px, py := toScreen(geom.Zero)
	vector.DrawFilledCircle(screen, px, py, game.HitboxRadius*pixelsPerM, playerColor, true)

	if a.drawing {
		vector.StrokeLine(screen, px, py, float32(a.pressX), float32(a.pressY), 1, aimColor, true)
	}

	snap := a.arena.Snapshot()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"phase: %s  score: %d  level: %d  best: %d\nelapsed: %.1fs  max alive: %d  interval: %.2fs\nbow held: %t  notched: %t  pull: %.2f  haptic: %.2f\n[B] bow  [mouse] draw  [R] restart",
		snap.Phase, snap.Score, snap.Level, snap.Highscore,
		snap.Elapsed, snap.MaxAlive, snap.Interval,
		a.arena.Quiver().Held(), snap.Notched, snap.Pull, a.lastHaptic,
	))
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	cfg := config.Load()
	tuning, err := config.LoadTuning(cfg.TuningFile)
	if err != nil {
		slog.Error("failed to load tuning", "error", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("ghosthunt viewer")
	ebiten.SetTPS(tps)
	if err := ebiten.RunGame(newAppGame(tuning.ArenaConfig())); err != nil {
		log.Fatal(err)
	}
}
