package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Operations(t *testing.T) {
	t.Run("magnitude and normalize", func(t *testing.T) {
		v := Vec3{X: 3, Y: 4, Z: 0}
		assert.InDelta(t, 5.0, v.Magnitude(), 1e-9)

		n := v.Normalize()
		assert.InDelta(t, 1.0, n.Magnitude(), 1e-9)
		assert.InDelta(t, 0.6, n.X, 1e-9)
		assert.InDelta(t, 0.8, n.Y, 1e-9)
	})

	t.Run("zero vector normalizes to zero", func(t *testing.T) {
		assert.Equal(t, Vec3{}, Vec3{}.Normalize())
	})

	t.Run("add, sub, scale", func(t *testing.T) {
		a := Vec3{X: 1, Y: 2, Z: 3}
		b := Vec3{X: 4, Y: 5, Z: 6}
		assert.Equal(t, Vec3{X: 5, Y: 7, Z: 9}, a.Add(b))
		assert.Equal(t, Vec3{X: -3, Y: -3, Z: -3}, a.Sub(b))
		assert.Equal(t, Vec3{X: 2, Y: 4, Z: 6}, a.Scale(2))
	})

	t.Run("dot and cross", func(t *testing.T) {
		x := Vec3{X: 1}
		y := Vec3{Y: 1}
		assert.InDelta(t, 0.0, x.Dot(y), 1e-9)
		assert.Equal(t, Vec3{Z: 1}, x.Cross(y))
	})

	t.Run("IsFinite rejects NaN and Inf", func(t *testing.T) {
		assert.True(t, Vec3{X: 1, Y: 2, Z: 3}.IsFinite())
		assert.False(t, Vec3{X: math.NaN()}.IsFinite())
		assert.False(t, Vec3{X: math.Inf(1)}.IsFinite())
	})
}

// TestCoordinateRoundTrip verifies the mandatory lint-like check from the
// spec's coordinate-system contract: field -> trajectory -> field is the
// identity on all Vec3, for both positions and velocities.
func TestCoordinateRoundTrip(t *testing.T) {
	samples := []Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 2, Z: 3},
		{X: -50.5, Y: 120.25, Z: 9.8},
		{X: 30, Y: -30, Z: 0},
	}
	for _, fieldV := range samples {
		trajV := FieldToTraj(fieldV)
		roundTripped := TrajToField(trajV)
		assert.InDelta(t, fieldV.X, roundTripped.X, 1e-9)
		assert.InDelta(t, fieldV.Y, roundTripped.Y, 1e-9)
		assert.InDelta(t, fieldV.Z, roundTripped.Z, 1e-9)
	}
}

// TestTrajToFieldRotation checks the documented 90-degree rotation
// explicitly, since a missed velocity conversion historically produced
// 90-degree-rotated ball motion.
func TestTrajToFieldRotation(t *testing.T) {
	traj := Vec3{X: 10, Y: 5, Z: 2}
	field := TrajToField(traj)
	assert.Equal(t, Vec3{X: -5, Y: 10, Z: 2}, field)
}
