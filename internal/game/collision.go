package game

import (
	"math"

	"github.com/ghosthunt/ghosthunt-server/internal/geom"
)

// SpheresOverlap reports whether two spheres intersect, touching included.
func SpheresOverlap(a geom.Vec3, ra float64, b geom.Vec3, rb float64) bool {
	r := ra + rb
	return a.Sub(b).LenSq() <= r*r
}

// SegmentSphere returns the first point where the segment from→to enters the sphere.
func SegmentSphere(from, to, center geom.Vec3, radius float64) (geom.Vec3, bool) {
	d := to.Sub(from)
	f := from.Sub(center)

	c := f.LenSq() - radius*radius
	if c <= 0 {
		return from, true
	}

	a := d.LenSq()
	if a < 1e-12 {
		return geom.Vec3{}, false
	}
	b := 2 * f.Dot(d)
	disc := b*b - 4*a*c
	if disc < 0 {
		return geom.Vec3{}, false
	}

	t := (-b - math.Sqrt(disc)) / (2 * a)
	if t < 0 || t > 1 {
		return geom.Vec3{}, false
	}
	return from.Add(d.Scale(t)), true
}

// SegmentPlaneY returns where the segment crosses the horizontal plane at height y,
// moving downward.
func SegmentPlaneY(from, to geom.Vec3, y float64) (geom.Vec3, bool) {
	if from.Y < y || to.Y > y || from.Y == to.Y {
		return geom.Vec3{}, false
	}
	t := (from.Y - y) / (from.Y - to.Y)
	return geom.LerpVec(from, to, t), true
}

// ArrowHit pairs an arrow with the ghost it struck this tick.
type ArrowHit struct {
	Arrow   *Arrow
	Ghost   *Ghost
	Contact geom.Vec3
}

// FindArrowHits returns, for every flying arrow, the nearest hunting ghost its
// segment crossed this tick. segments maps arrow ID to the travelled segment.
func FindArrowHits(arrows []*Arrow, ghosts []*Ghost, segments map[string][2]geom.Vec3) []ArrowHit {
	var hits []ArrowHit
	for _, a := range arrows {
		if !a.Flying() {
			continue
		}
		seg, ok := segments[a.ID]
		if !ok {
			continue
		}

		var best *Ghost
		var bestPoint geom.Vec3
		bestDist := 0.0
		for _, g := range ghosts {
			if !g.Hunting() {
				continue
			}
			p, hit := SegmentSphere(seg[0], seg[1], g.Position, GhostRadius+ArrowTipReach)
			if !hit {
				continue
			}
			d := p.Sub(seg[0]).LenSq()
			if best == nil || d < bestDist {
				best, bestPoint, bestDist = g, p, d
			}
		}
		if best != nil {
			hits = append(hits, ArrowHit{Arrow: a, Ghost: best, Contact: bestPoint})
		}
	}
	return hits
}

// FindGhostsTouching returns hunting ghosts whose bodies overlap the sphere.
func FindGhostsTouching(ghosts []*Ghost, center geom.Vec3, radius float64) []*Ghost {
	var out []*Ghost
	for _, g := range ghosts {
		if g.Hunting() && SpheresOverlap(g.Position, GhostRadius, center, radius) {
			out = append(out, g)
		}
	}
	return out
}
