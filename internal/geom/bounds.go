package geom

// Bounds is an axis-aligned box.
type Bounds struct {
	Min Vec3 `json:"min"`
	Max Vec3 `json:"max"`
}

func (b Bounds) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

func (b Bounds) Center() Vec3 {
	return LerpVec(b.Min, b.Max, 0.5)
}

// Contains reports whether p lies inside the box, borders included.
func (b Bounds) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Ray is a half line from Origin along the unit Direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

func (r Ray) At(d float64) Vec3 {
	return r.Origin.Add(r.Direction.Scale(d))
}

// Hit is the result of a successful raycast.
type Hit struct {
	Point    Vec3
	Normal   Vec3
	Distance float64
}
