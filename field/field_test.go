package field

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"diamondsim/vecmath"
)

func TestBasePositionsFormRegulationDiamond(t *testing.T) {
	assert.InDelta(t, BaselineLength, DistanceBetweenBases(Home, First), 1e-6)
	assert.InDelta(t, BaselineLength, DistanceBetweenBases(First, Second), 1e-6)
	assert.InDelta(t, BaselineLength, DistanceBetweenBases(Second, Third), 1e-6)
	assert.InDelta(t, BaselineLength, DistanceBetweenBases(Third, Home), 1e-6)
}

func TestBaseStringer(t *testing.T) {
	assert.Equal(t, "1B", First.String())
	assert.Equal(t, "2B", Second.String())
	assert.Equal(t, "3B", Third.String())
	assert.Equal(t, "home", Home.String())
}

func TestDefaultPositionsAreDistinctAndInField(t *testing.T) {
	roles := []Role{Pitcher, Catcher, FirstBase, SecondBase, ThirdBase, ShortStop, LeftField, CenterField, RightField}
	seen := map[vecmath.Vec3]bool{}
	for _, r := range roles {
		pos := DefaultPosition(r)
		assert.False(t, seen[pos], "two roles share a default position")
		seen[pos] = true
		assert.GreaterOrEqual(t, pos.Y, -2.0, "no fielder should start behind home plate")
	}
}
