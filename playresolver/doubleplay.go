package playresolver

import (
	"math/rand"

	"diamondsim/field"
	"diamondsim/fielding"
	"diamondsim/vecmath"
)

// DoublePlayEligible reports whether a double play can be attempted:
// ground ball, a runner on first, and fewer than 2 outs.
func DoublePlayEligible(conditions PlayConditions) bool {
	return conditions.BallType == fielding.BallGround &&
		conditions.Runners[field.First] != nil &&
		conditions.Outs < 2
}

// PivotRole selects the fielder who takes the throw at second: shortstop
// for balls hit left of second base, second baseman for balls hit right
// of it, by the ball's field-frame X coordinate.
func PivotRole(fieldContactX float64) field.Role {
	if fieldContactX < 0 {
		return field.ShortStop
	}
	return field.SecondBase
}

// DoublePlayResult reports the attempt's outcome: whether the lead runner
// was forced out at second, whether the relay to first completed the
// double play, and how many outs the attempt recorded.
type DoublePlayResult struct {
	LeadRunnerOut bool
	Completed     bool
	Outs          int
}

// AttemptDoublePlay runs the spec's two-throw procedure: first to the
// pivot base, then (if the lead runner is out) pivot to first. The pivot
// throw uses a 0.1s margin requirement rather than a bare comparison,
// since relay ties favor the runner more strongly than a single throw.
func AttemptDoublePlay(
	fieldingResult fielding.FieldingResult,
	runnerOnFirst *BaseRunner,
	batterRunner *BaseRunner,
	fielders map[field.Role]*fielding.Fielder,
	rng *rand.Rand,
) DoublePlayResult {
	controlFieldPos := vecmath.TrajToField(fieldingResult.Position)
	pivotRole := PivotRole(controlFieldPos.X)
	pivotFielder := fielders[pivotRole]

	throwToPivot := SimulateThrow(controlFieldPos, field.Second, fieldingResult.Fielder, rng)
	runnerToPivot := TimeToBase(runnerOnFirst, field.First, field.Second, true)

	leadOut := ResolveForcePlay(throwToPivot.ArrivalTime, runnerToPivot)
	if !leadOut {
		return DoublePlayResult{LeadRunnerOut: false, Completed: false, Outs: 0}
	}

	throwToFirst := SimulateThrow(field.BasePosition(field.Second), field.First, pivotFielder, rng)
	batterToFirst := TimeToBase(batterRunner, field.Home, field.First, true)

	completed := throwToFirst.ArrivalTime+0.1 < batterToFirst
	if completed {
		return DoublePlayResult{LeadRunnerOut: true, Completed: true, Outs: 2}
	}
	return DoublePlayResult{LeadRunnerOut: true, Completed: false, Outs: 1}
}
