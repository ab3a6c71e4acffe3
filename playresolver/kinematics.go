package playresolver

import (
	"diamondsim/field"
	"diamondsim/fielding"
)

// TimeToBase returns how long runner takes to go from base `from` to base
// `to`, using the same accelerate-then-cruise kinematic as fielders
// chasing a ball. A forced runner's reaction time is treated as zero,
// since a forced runner is already moving at the crack of the bat; a
// runner who must decide whether to go gets the full reaction time.
func TimeToBase(runner *BaseRunner, from, to field.Base, forced bool) float64 {
	distance := field.DistanceBetweenBases(from, to)
	travel := fielding.TimeToCover(distance, runner.TopSprintSpeed, runner.Acceleration, 1.0)
	if forced {
		return travel
	}
	return runner.ReactionTime + travel
}
