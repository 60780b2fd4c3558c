package geom

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp01(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{"below", -3, 0},
		{"zero", 0, 0},
		{"inside", 0.25, 0.25},
		{"one", 1, 1},
		{"above", 7, 1},
		{"nan", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clamp01(tt.in))
		})
	}
}

func TestLerp_ClampsT(t *testing.T) {
	assert.Equal(t, 2.5, Lerp(2.5, 0.7, -1))
	assert.Equal(t, 0.7, Lerp(2.5, 0.7, 2))
	assert.InDelta(t, 1.6, Lerp(2.5, 0.7, 0.5), 1e-9)
}

func TestNormalize_Degenerate(t *testing.T) {
	assert.Equal(t, Zero, Vec3{}.Normalize())
	assert.InDelta(t, 1.0, V(3, 4, 0).Normalize().Len(), 1e-9)
}

func TestProjectOnPlane(t *testing.T) {
	p := V(1, 5, 2).ProjectOnPlane(Up)
	assert.Equal(t, V(1, 0, 2), p)

	// zero normal leaves the vector untouched
	assert.Equal(t, V(1, 5, 2), V(1, 5, 2).ProjectOnPlane(Zero))
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(V(0, 0, 0), V(3, 0, 4)), 1e-9)
}

func TestLookRotation(t *testing.T) {
	tests := []struct {
		name    string
		forward Vec3
	}{
		{"forward", Forward},
		{"right", Right},
		{"back", V(0, 0, -1)},
		{"diagonal", V(1, 0, 1)},
		{"tilted", V(1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := LookRotation(tt.forward, Up)
			got := q.Forward()
			want := tt.forward.Normalize()
			assert.InDelta(t, want.X, got.X, 1e-9)
			assert.InDelta(t, want.Y, got.Y, 1e-9)
			assert.InDelta(t, want.Z, got.Z, 1e-9)
		})
	}
}

func TestLookRotation_Degenerate(t *testing.T) {
	assert.Equal(t, Identity, LookRotation(Zero, Up))

	q := LookRotation(Up, Up)
	got := q.Forward()
	assert.InDelta(t, 1.0, got.Y, 1e-9)
}

func TestYawRotation(t *testing.T) {
	q := YawRotation(math.Pi / 2)
	f := q.Forward()
	assert.InDelta(t, 1.0, f.X, 1e-9)
	assert.InDelta(t, 0.0, f.Z, 1e-9)
	assert.InDelta(t, math.Pi/2, q.Yaw(), 1e-9)
}

func TestBounds(t *testing.T) {
	b := Bounds{Min: V(-1, 0, -2), Max: V(1, 1, 2)}
	assert.Equal(t, V(2, 1, 4), b.Size())
	assert.Equal(t, V(0, 0.5, 0), b.Center())
	assert.True(t, b.Contains(V(1, 1, 2)))
	assert.False(t, b.Contains(V(1.1, 0, 0)))
}

func TestQuat_JSON(t *testing.T) {
	data, err := json.Marshal(YawRotation(math.Pi))
	require.NoError(t, err)

	var got Quat
	require.NoError(t, json.Unmarshal(data, &got))
	assert.InDelta(t, 1.0, got.V[1], 1e-9)
	assert.InDelta(t, 0.0, got.W, 1e-9)

	assert.JSONEq(t, `{"x":0,"y":0,"z":0,"w":1}`, mustJSON(t, Identity))
}

func TestVec_MatchesMgl(t *testing.T) {
	a, b := V(1, 2, 3), V(-2, 0.5, 4)
	assert.Equal(t, a.Vec().Cross(b.Vec()), a.Cross(b).Vec())
	assert.Equal(t, FromVec(a.Vec()), a)
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}
