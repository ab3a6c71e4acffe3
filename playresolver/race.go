package playresolver

import "math/rand"

// ResolveForcePlay implements the spec's force-play race: the
// fielding_time term cancels out of both sides of the inequality, so only
// throwArrival (measured from the moment the fielder controlled the ball)
// versus runnerTime (measured from the same zero point) matters. Ties go
// to the runner.
func ResolveForcePlay(throwArrival, runnerTime float64) (out bool) {
	return throwArrival < runnerTime
}

// TagPlayMargin is the spec's ±0.3s bang-bang band around a clean
// safe/out call.
const TagPlayMargin = 0.3

// ResolveTagPlay implements the spec's tag-play race: diff is how long
// after the fielder applies the tag the runner's slide completes
// (negative means the runner beat the tag). Outside ±0.3s the call is
// clean; inside the band, P(safe) is linear in diff, clipped to
// [0.05, 0.95], drawn from the play's own RNG stream.
func ResolveTagPlay(runnerSlideComplete, fielderTagApplied float64, rng *rand.Rand) (safe bool) {
	diff := runnerSlideComplete - fielderTagApplied

	switch {
	case diff < -TagPlayMargin:
		return true
	case diff > TagPlayMargin:
		return false
	}

	p := 0.55 + diff*0.5
	if p < 0.05 {
		p = 0.05
	}
	if p > 0.95 {
		p = 0.95
	}
	return rng.Float64() < p
}

// TagApplicationJitter draws the fielder's tag_application_time addition,
// Uniform(0.2s, 0.4s), from the play's RNG stream.
func TagApplicationJitter(rng *rand.Rand) float64 {
	return 0.2 + rng.Float64()*0.2
}
