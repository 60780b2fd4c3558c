package director

import (
	"log/slog"

	"github.com/ghosthunt/ghosthunt-server/internal/geom"
)

const (
	rayStartAbove   = 2.0
	rayExtraLength  = 4.0
	degenerateSqLen = 1e-3
)

// TrySpawn searches for a free spot on the surface and spawns one ghost there.
// It gives up silently after MaxPlacementAttempts.
func (d *Director) TrySpawn() (Handle, bool) {
	if d.deps.Surface == nil || d.deps.Factory == nil {
		return nil, false
	}

	radius := d.cfg.CheckRadius()
	for range MaxPlacementAttempts {
		hit, ok := d.sampleSurface()
		if !ok {
			continue
		}

		pos := hit.Point.Add(hit.Normal.Scale(d.cfg.HalfHeight + d.cfg.SurfaceOffset))
		if d.deps.Overlap != nil && d.deps.Overlap.CheckSphere(pos, radius, d.cfg.OverlapMask) {
			continue
		}

		rot := geom.LookRotation(d.facing(pos, hit.Normal), hit.Normal)
		h := d.deps.Factory.Spawn(pos, rot)
		if h == nil {
			return nil, false
		}
		return h, true
	}

	slog.Debug("no free spawn point", "attempts", MaxPlacementAttempts)
	return nil, false
}

// sampleSurface casts a ray straight down at a random point of the inset bounds.
func (d *Director) sampleSurface() (geom.Hit, bool) {
	b := d.deps.Surface.Bounds()
	x := d.uniform(b.Min.X+d.cfg.MinEdgeDistance, b.Max.X-d.cfg.MinEdgeDistance)
	z := d.uniform(b.Min.Z+d.cfg.MinEdgeDistance, b.Max.Z-d.cfg.MinEdgeDistance)

	ray := geom.Ray{
		Origin:    geom.V(x, b.Max.Y+rayStartAbove, z),
		Direction: geom.Down,
	}
	return d.deps.Surface.Raycast(ray, b.Size().Y+rayExtraLength)
}

// facing points from pos toward the player, flattened onto the surface plane.
func (d *Director) facing(pos, normal geom.Vec3) geom.Vec3 {
	fwd := geom.Forward
	if d.deps.Player != nil {
		if p, ok := d.deps.Player.PlayerPosition(); ok {
			fwd = p.Sub(pos)
		}
	}
	fwd = fwd.ProjectOnPlane(normal).Normalize()
	if fwd.LenSq() < degenerateSqLen {
		return geom.Forward
	}
	return fwd
}

// uniform returns a value in [lo,hi). An inverted range collapses to its midpoint.
func (d *Director) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return (lo + hi) / 2
	}
	return lo + d.rng.Float64()*(hi-lo)
}
