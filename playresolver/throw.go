package playresolver

import (
	"math/rand"

	"diamondsim/field"
	"diamondsim/fielding"
	"diamondsim/vecmath"
)

const arcFactor = 0.07

// ThrowResult is SimulateThrow's output: the wall-clock time (seconds
// since the fielder gained control) the throw arrives, and whether it
// arrived on target.
type ThrowResult struct {
	ArrivalTime float64
	OnTarget    bool
}

// SimulateThrow models a fielder's throw from fromPosition (field frame)
// to a base: transfer time, flight time scaled by arc_factor over the
// fielder's arm strength, and a Bernoulli on-target check. An off-target
// throw costs an extra uniform(0.5s, 1.0s) recovery.
func SimulateThrow(fromPosition vecmath.Vec3, toBase field.Base, f *fielding.Fielder, rng *rand.Rand) ThrowResult {
	distance := fromPosition.Distance(field.BasePosition(toBase))
	flightTime := (distance / f.ArmStrength) * (1 + arcFactor)
	arrival := f.TransferTime + flightTime

	onTarget := rng.Float64() < f.ArmAccuracy
	if !onTarget {
		arrival += 0.5 + rng.Float64()*0.5
	}

	return ThrowResult{ArrivalTime: arrival, OnTarget: onTarget}
}
