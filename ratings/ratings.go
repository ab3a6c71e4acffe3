// Package ratings holds the compatibility contract between the 0-100000
// attribute rating scale used by roster construction (an external
// collaborator, out of scope for this core) and the SI-unit physical
// attributes the core's Fielder and BaseRunner types require. The mapping
// is exposed as named functions, not hidden inside constructors, per the
// spec's "exposed, not hidden" requirement.
package ratings

const (
	RatingMin = 0.0
	RatingMax = 100000.0

	topSprintSpeedMin = 7.5  // m/s
	topSprintSpeedMax = 9.5  // m/s
	accelerationMin   = 4.0  // m/s^2
	accelerationMax   = 7.0  // m/s^2
	reactionTimeMin   = 0.35 // s (worse reaction -> higher rating maps to lower time)
	reactionTimeMax   = 0.15 // s
	routeEfficiencyMin = 0.85
	routeEfficiencyMax = 0.99
	armStrengthMin    = 31.0 // m/s (~70 mph)
	armStrengthMax    = 42.0 // m/s (~95 mph)
	armAccuracyMin    = 0.85
	armAccuracyMax    = 0.98
	transferTimeMin   = 0.8 // s (worse transfer -> higher rating maps to lower time)
	transferTimeMax   = 0.4 // s
	slideTimeMin      = 0.6 // s
	slideTimeMax      = 0.3 // s
)

// normalize clamps rating to [RatingMin, RatingMax] and returns it scaled
// to [0, 1].
func normalize(rating float64) float64 {
	if rating < RatingMin {
		rating = RatingMin
	}
	if rating > RatingMax {
		rating = RatingMax
	}
	return (rating - RatingMin) / (RatingMax - RatingMin)
}

func lerp(lo, hi, frac float64) float64 {
	return lo + (hi-lo)*frac
}

// TopSprintSpeed maps a 0-100000 speed rating linearly onto the documented
// 7.5-9.5 m/s range.
func TopSprintSpeed(rating float64) float64 {
	return lerp(topSprintSpeedMin, topSprintSpeedMax, normalize(rating))
}

// Acceleration maps a 0-100000 acceleration rating linearly onto 4-7 m/s^2.
func Acceleration(rating float64) float64 {
	return lerp(accelerationMin, accelerationMax, normalize(rating))
}

// ReactionTime maps a 0-100000 reaction rating linearly onto 0.15-0.35 s;
// higher ratings produce faster (lower) reaction times.
func ReactionTime(rating float64) float64 {
	return lerp(reactionTimeMin, reactionTimeMax, normalize(rating))
}

// RouteEfficiency maps a 0-100000 fielding-instincts rating linearly onto
// 0.85-0.99.
func RouteEfficiency(rating float64) float64 {
	return lerp(routeEfficiencyMin, routeEfficiencyMax, normalize(rating))
}

// ArmStrength maps a 0-100000 arm-strength rating linearly onto 31-42 m/s.
func ArmStrength(rating float64) float64 {
	return lerp(armStrengthMin, armStrengthMax, normalize(rating))
}

// ArmAccuracy maps a 0-100000 arm-accuracy rating linearly onto 0.85-0.98.
func ArmAccuracy(rating float64) float64 {
	return lerp(armAccuracyMin, armAccuracyMax, normalize(rating))
}

// TransferTime maps a 0-100000 hands/transfer rating linearly onto 0.4-0.8 s;
// higher ratings produce faster (lower) transfer times.
func TransferTime(rating float64) float64 {
	return lerp(transferTimeMin, transferTimeMax, normalize(rating))
}

// SlideTime maps a 0-100000 baserunning-slide rating linearly onto 0.3-0.6 s;
// higher ratings produce faster (lower) slide completion times.
func SlideTime(rating float64) float64 {
	return lerp(slideTimeMin, slideTimeMax, normalize(rating))
}

// PitcherCommandError is intentionally unimplemented. The source material
// left the rating -> physical mapping for pitcher command error as a TODO;
// rather than guess intent, this is marked explicitly as not yet derived
// from rating, per the design note in the spec's Open Questions. Calling
// it panics so a caller cannot silently depend on a guessed mapping.
func PitcherCommandError(rating float64) float64 {
	panic("ratings: pitcher command error is not yet derived from rating (unresolved open question)")
}
