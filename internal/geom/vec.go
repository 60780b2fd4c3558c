package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a point or direction in world space. Y is up.
// The math is done in mgl64; Vec3 keeps named fields for the wire format.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Common directions.
var (
	Zero    = Vec3{}
	Up      = Vec3{Y: 1}
	Down    = Vec3{Y: -1}
	Forward = Vec3{Z: 1}
	Right   = Vec3{X: 1}
)

func V(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// FromVec converts an mgl64 vector.
func FromVec(m mgl64.Vec3) Vec3 {
	return Vec3{X: m[0], Y: m[1], Z: m[2]}
}

// Vec converts v to an mgl64 vector.
func (v Vec3) Vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return FromVec(v.Vec().Add(o.Vec()))
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return FromVec(v.Vec().Sub(o.Vec()))
}

func (v Vec3) Scale(s float64) Vec3 {
	return FromVec(v.Vec().Mul(s))
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.Vec().Dot(o.Vec())
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return FromVec(v.Vec().Cross(o.Vec()))
}

func (v Vec3) LenSq() float64 {
	return v.Vec().LenSqr()
}

func (v Vec3) Len() float64 {
	return v.Vec().Len()
}

// Normalize returns the unit vector of v, or Zero when v is too short to have a direction.
func (v Vec3) Normalize() Vec3 {
	if v.Len() < 1e-9 {
		return Zero
	}
	return FromVec(v.Vec().Normalize())
}

// Horizontal drops the vertical component.
func (v Vec3) Horizontal() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

// ProjectOnPlane removes the component of v along the plane normal n.
func (v Vec3) ProjectOnPlane(n Vec3) Vec3 {
	sq := n.LenSq()
	if sq < 1e-12 {
		return v
	}
	return v.Sub(n.Scale(v.Dot(n) / sq))
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec3) float64 {
	return a.Vec().Sub(b.Vec()).Len()
}

// LerpVec interpolates between a and b without clamping t.
func LerpVec(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

// Lerp interpolates between a and b, clamping t to [0,1].
func Lerp(a, b, t float64) float64 {
	t = Clamp01(t)
	return a + (b-a)*t
}

// Clamp01 clamps x to [0,1]. NaN clamps to 0.
func Clamp01(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return mgl64.Clamp(x, 0, 1)
}
