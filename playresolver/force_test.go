package playresolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"diamondsim/field"
)

func TestForceMapEmptyBases(t *testing.T) {
	forced := ForceMap(map[field.Base]*BaseRunner{})
	assert.True(t, forced[field.First])
	assert.False(t, forced[field.Second])
	assert.False(t, forced[field.Third])
}

func TestForceMapRunnerOnFirstOnly(t *testing.T) {
	forced := ForceMap(map[field.Base]*BaseRunner{field.First: {ID: "r1"}})
	assert.True(t, forced[field.First])
	assert.True(t, forced[field.Second])
	assert.False(t, forced[field.Third])
}

func TestForceMapBasesLoaded(t *testing.T) {
	forced := ForceMap(map[field.Base]*BaseRunner{
		field.First:  {ID: "r1"},
		field.Second: {ID: "r2"},
		field.Third:  {ID: "r3"},
	})
	assert.True(t, forced[field.First])
	assert.True(t, forced[field.Second])
	assert.True(t, forced[field.Third])
}

func TestForceMapFirstEmptySecondNotForced(t *testing.T) {
	// Runner placed on second with first empty is not a realistic game
	// state (can't reach second without passing first) but the force
	// rule should still be computed purely from occupancy, not assumed
	// history.
	forced := ForceMap(map[field.Base]*BaseRunner{field.Second: {ID: "r2"}})
	assert.False(t, forced[field.Second])
}
