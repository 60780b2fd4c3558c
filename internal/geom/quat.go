package geom

import (
	"encoding/json"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Quat is a unit rotation quaternion.
type Quat mgl64.Quat

// Identity is the rotation that leaves vectors unchanged.
var Identity = Quat(mgl64.QuatIdent())

// LookRotation builds the rotation whose local +Z points along forward and whose
// local +Y is as close to up as possible. A zero forward yields Identity.
func LookRotation(forward, up Vec3) Quat {
	f := forward.Normalize()
	if f == Zero {
		return Identity
	}
	r := up.Cross(f).Normalize()
	if r == Zero {
		// forward is parallel to up; any perpendicular axis will do
		r = Right.ProjectOnPlane(f).Normalize()
		if r == Zero {
			r = Forward.ProjectOnPlane(f).Normalize()
		}
	}
	u := f.Cross(r)

	basis := mgl64.Mat3FromCols(r.Vec(), u.Vec(), f.Vec())
	return Quat(mgl64.Mat4ToQuat(basis.Mat4()).Normalize())
}

// YawRotation is the rotation of angle radians around +Y.
func YawRotation(angle float64) Quat {
	return Quat(mgl64.QuatRotate(angle, Up.Vec()))
}

// Rotate applies q to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	return FromVec(mgl64.Quat(q).Rotate(v.Vec()))
}

// Forward is the rotated local +Z axis.
func (q Quat) Forward() Vec3 {
	return q.Rotate(Forward)
}

// Yaw returns the heading angle around +Y in radians, 0 facing +Z.
func (q Quat) Yaw() float64 {
	f := q.Forward()
	return math.Atan2(f.X, f.Z)
}

type quatJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// MarshalJSON writes the quaternion as {x,y,z,w}.
func (q Quat) MarshalJSON() ([]byte, error) {
	return json.Marshal(quatJSON{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W})
}

// UnmarshalJSON reads the {x,y,z,w} form.
func (q *Quat) UnmarshalJSON(data []byte) error {
	var j quatJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*q = Quat{W: j.W, V: mgl64.Vec3{j.X, j.Y, j.Z}}
	return nil
}
