package field

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"diamondsim/vecmath"
)

func straightCenterFieldWall() Wall {
	return Wall{Points: []WallPoint{
		{Position: vecmath.Vec3{X: -50, Y: 120}, Height: 3},
		{Position: vecmath.Vec3{X: 50, Y: 120}, Height: 3},
	}}
}

func TestWallIntersectHitsWhenBelowWallHeight(t *testing.T) {
	w := straightCenterFieldWall()
	prev := vecmath.Vec3{X: 0, Y: 110, Z: 2}
	curr := vecmath.Vec3{X: 0, Y: 130, Z: 2.5}

	contact, hit := w.Intersect(prev, curr)
	assert.True(t, hit)
	assert.InDelta(t, 120, contact.Y, 1e-6)
}

func TestWallIntersectClearsWhenAboveWallHeight(t *testing.T) {
	w := straightCenterFieldWall()
	prev := vecmath.Vec3{X: 0, Y: 110, Z: 10}
	curr := vecmath.Vec3{X: 0, Y: 130, Z: 9}

	_, hit := w.Intersect(prev, curr)
	assert.False(t, hit)
}

func TestWallIntersectNoCrossingOutsideSegment(t *testing.T) {
	w := straightCenterFieldWall()
	prev := vecmath.Vec3{X: 0, Y: 50, Z: 2}
	curr := vecmath.Vec3{X: 0, Y: 80, Z: 2}

	_, hit := w.Intersect(prev, curr)
	assert.False(t, hit)
}
