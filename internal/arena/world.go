package arena

import (
	"log/slog"

	"github.com/ghosthunt/ghosthunt-server/internal/director"
	"github.com/ghosthunt/ghosthunt-server/internal/game"
	"github.com/ghosthunt/ghosthunt-server/internal/geom"
)

// The arena is the director's world: a flat rectangle at SurfaceY.
var (
	_ director.Surface       = (*Arena)(nil)
	_ director.OverlapQuery  = (*Arena)(nil)
	_ director.Factory       = (*Arena)(nil)
	_ director.PlayerLocator = (*Arena)(nil)
	_ game.Ground            = (*Arena)(nil)
)

func (a *Arena) Bounds() geom.Bounds {
	return geom.Bounds{
		Min: geom.V(-a.cfg.HalfWidth, a.cfg.SurfaceY, -a.cfg.HalfDepth),
		Max: geom.V(a.cfg.HalfWidth, a.cfg.SurfaceY, a.cfg.HalfDepth),
	}
}

func (a *Arena) onSurface(p geom.Vec3) bool {
	return p.X >= -a.cfg.HalfWidth && p.X <= a.cfg.HalfWidth &&
		p.Z >= -a.cfg.HalfDepth && p.Z <= a.cfg.HalfDepth
}

// Raycast intersects ray with the top face of the surface.
func (a *Arena) Raycast(ray geom.Ray, maxDistance float64) (geom.Hit, bool) {
	if ray.Direction.Y >= 0 {
		return geom.Hit{}, false
	}
	d := (ray.Origin.Y - a.cfg.SurfaceY) / -ray.Direction.Y
	if d < 0 || d > maxDistance {
		return geom.Hit{}, false
	}
	p := ray.At(d)
	if !a.onSurface(p) {
		return geom.Hit{}, false
	}
	p.Y = a.cfg.SurfaceY
	return geom.Hit{Point: p, Normal: geom.Up, Distance: d}, true
}

// CheckSphere reports whether a live ghost or the player's head intersects the sphere.
func (a *Arena) CheckSphere(center geom.Vec3, radius float64, mask director.LayerMask) bool {
	if mask.Has(game.KindGhost.Layer()) {
		for _, g := range a.ghosts {
			if g.Alive() && game.SpheresOverlap(g.Position, game.GhostRadius, center, radius) {
				return true
			}
		}
	}
	if mask.Has(game.KindPlayer.Layer()) && a.hasHead {
		if game.SpheresOverlap(a.head, game.HitboxRadius, center, radius) {
			return true
		}
	}
	return false
}

// Spawn creates a ghost at pos hovering over the surface.
func (a *Arena) Spawn(pos geom.Vec3, rot geom.Quat) director.Handle {
	g := game.NewGhost(a.cfg.Ghost, pos, rot, a.cfg.Director.HalfHeight)
	g.Settle(a)
	a.ghosts = append(a.ghosts, g)
	slog.Debug("ghost spawned", "ghost", g.ID, "x", g.Position.X, "z", g.Position.Z)
	return g
}

func (a *Arena) PlayerPosition() (geom.Vec3, bool) {
	return a.head, a.hasHead
}

func (a *Arena) GroundHeight(p geom.Vec3) (float64, bool) {
	if !a.onSurface(p) {
		return 0, false
	}
	return a.cfg.SurfaceY, true
}
