// Package fielding chooses the best interception of a batted ball: for
// fly balls and line drives, it races every fielder against the airborne
// trajectory; for ground balls (and any air ball nobody catches) it races
// fielders against the post-landing roll computed by RollOut. The core
// algorithm and its tie-break rules are the spec's, given concrete Go
// types and a named kinematic helper (timeToCover) rather than inlined
// per-call arithmetic.
package fielding

import (
	"math/rand"

	"diamondsim/field"
	"diamondsim/simerrors"
	"diamondsim/trajectory"
	"diamondsim/vecmath"
)

// BallType classifies how a batted ball left the bat, since it changes
// both the interception search (air phase applies only to fly/line) and,
// downstream, the Play Resolver's double-play eligibility and advancement
// rules.
type BallType int

const (
	BallGround BallType = iota
	BallLine
	BallFly
)

// Fielder is a defender: identity, home (starting) position in the field
// frame, and the kinematic/throwing attributes the spec names. Attributes
// are carried in SI units; package ratings is the only place a 0-100000
// rating is turned into one of these fields.
type Fielder struct {
	ID              string
	Role            field.Role
	Home            vecmath.Vec3
	ReactionTime    float64
	TopSprintSpeed  float64
	Acceleration    float64
	RouteEfficiency float64
	ArmStrength     float64
	ArmAccuracy     float64
	TransferTime    float64
}

// ControlKind distinguishes how the ball came under control, since a
// clean air catch and a ball run down after a carom off the wall mean
// different things to the Play Resolver.
type ControlKind int

const (
	ControlAirCatch ControlKind = iota
	ControlGroundFielded
	ControlWallCarom
	ControlUncontrolled
)

// FieldingResult is best_interception's output: who controlled the ball,
// where, when (seconds since contact), how, and how cleanly. Cleanness is
// read by playresolver's ERROR rule; BestInterception always sets it to 1
// for a controlled ball and 0 for an uncontrolled one.
type FieldingResult struct {
	Fielder    *Fielder
	Position   vecmath.Vec3
	Time       float64
	Kind       ControlKind
	Cleanness  float64
	Controlled bool
	Warning    simerrors.Warning
}

// reachHeight is the maximum ball height, in the trajectory frame, a role
// can plausibly catch at — infielders play closer to the ground and
// rarely leap above head height for a clean catch candidate, outfielders
// are assumed to track higher balls on the run.
func reachHeight(role field.Role) float64 {
	switch role {
	case field.LeftField, field.CenterField, field.RightField:
		return 3.2
	default:
		return 2.4
	}
}

// rolePriority ranks a role for the infield tie-break: middle infielders
// take ground balls over a charging outfielder on an equal-distance tie.
func rolePriority(role field.Role) int {
	switch role {
	case field.ShortStop, field.SecondBase:
		return 0
	case field.FirstBase, field.ThirdBase, field.Pitcher, field.Catcher:
		return 1
	default:
		return 2
	}
}

// arrival computes whether fielder f can be at samplePos (trajectory
// frame) by sampleT, and if so, how much margin (sampleT - arrival) they
// have. Negative margin means the fielder cannot make it. Fielder.Home is
// carried in the field frame, so the sample position must cross the
// named conversion boundary before the distance is meaningful.
func arrival(f *Fielder, samplePos vecmath.Vec3, sampleT float64) (margin float64) {
	fieldPos := vecmath.TrajToField(samplePos)
	distance := f.Home.Distance(fieldPos.Horizontal())
	travel := timeToCover(distance, f.TopSprintSpeed, f.Acceleration, f.RouteEfficiency)
	arrivalTime := f.ReactionTime + travel
	return sampleT - arrivalTime
}

// BestInterception races every candidate fielder against the trajectory's
// air phase first (for fly balls and line drives), falling back to the
// ground-roll phase computed from the trajectory's landing sample. rng
// drives the dive-territory catch probability and must be a stream owned
// by the calling play, never the package-global source.
func BestInterception(traj trajectory.Trajectory, fielders []*Fielder, ballType BallType, rng *rand.Rand) FieldingResult {
	if len(fielders) == 0 {
		panic(simerrors.NewContractError("fielding.BestInterception", "empty fielder roster"))
	}

	if ballType != BallGround {
		if result, ok := airPhase(traj, fielders, rng); ok {
			return result
		}
	}

	return groundPhase(traj, fielders)
}

type airCandidate struct {
	fielder *Fielder
	sample  trajectory.Sample
	margin  float64
}

// airPhase searches the trajectory samples for the earliest catchable
// point, per fielder, then picks the fielder with the smallest such time,
// matching the spec's "choose the earliest such t_k per fielder; choose
// the fielder with the smallest such t_k."
func airPhase(traj trajectory.Trajectory, fielders []*Fielder, rng *rand.Rand) (FieldingResult, bool) {
	var best *airCandidate

	for _, f := range fielders {
		maxHeight := reachHeight(f.Role)
		for _, s := range traj.Samples {
			if s.Position.Z > maxHeight {
				continue
			}
			margin := arrival(f, s.Position, s.T)
			if margin < -0.3 {
				continue // nowhere close; cheaper than scanning every sample in detail
			}
			if margin >= 0 || diveCatchSucceeds(margin, rng) {
				if best == nil || s.T < best.sample.T {
					best = &airCandidate{fielder: f, sample: s, margin: margin}
				}
				break // earliest catchable sample for this fielder found
			}
		}
	}

	if best == nil {
		return FieldingResult{}, false
	}

	return FieldingResult{
		Fielder:    best.fielder,
		Position:   best.sample.Position,
		Time:       best.sample.T,
		Kind:       ControlAirCatch,
		Cleanness:  1,
		Controlled: true,
	}, true
}

// diveCatchSucceeds resolves the margin dive-territory catch probability:
// arrival strictly before the ball (margin >= 0) is handled by the
// caller; this only runs for slightly-late arrivals where an
// attribute-weighted dive attempt might still make the play. The
// probability is linear in how close the miss was, saturating at a low
// floor so a wildly late arrival is never credited with a catch.
func diveCatchSucceeds(margin float64, rng *rand.Rand) bool {
	if margin < -0.3 {
		return false
	}
	p := 0.45 + margin*1.0
	if p < 0.02 {
		p = 0.02
	}
	if p > 0.5 {
		p = 0.5
	}
	return rng.Float64() < p
}

// groundPhase rolls the ball out from its landing point per RollOut and
// races every fielder against the roll samples, applying the spec's
// tie-break order: earlier time, then shorter remaining distance, then
// role priority.
func groundPhase(traj trajectory.Trajectory, fielders []*Fielder) FieldingResult {
	landing := GroundSample{T: traj.Terminal.T, Position: traj.Terminal.Position, Velocity: traj.Terminal.Velocity}
	roll := RollOut(landing, 0.02)

	var best *groundCandidate

	for _, f := range fielders {
		for _, s := range roll {
			fieldPos := vecmath.TrajToField(s.Position)
			distance := f.Home.Distance(fieldPos.Horizontal())
			travel := timeToCover(distance, f.TopSprintSpeed, f.Acceleration, f.RouteEfficiency)
			arrivalTime := f.ReactionTime + travel
			if arrivalTime > s.T {
				continue
			}
			c := &groundCandidate{fielder: f, sample: s, distance: distance}
			if best == nil || better(c, best) {
				best = c
			}
			break
		}
	}

	if best == nil {
		last := roll[len(roll)-1]
		return FieldingResult{
			Position:   last.Position,
			Time:       last.T,
			Kind:       ControlUncontrolled,
			Controlled: false,
			Warning:    simerrors.WarningNoFielderReached,
		}
	}

	return FieldingResult{
		Fielder:    best.fielder,
		Position:   best.sample.Position,
		Time:       best.sample.T,
		Kind:       ControlGroundFielded,
		Cleanness:  1,
		Controlled: true,
	}
}

type groundCandidate struct {
	fielder  *Fielder
	sample   GroundSample
	distance float64
}

func better(a, b *groundCandidate) bool {
	if a.sample.T != b.sample.T {
		return a.sample.T < b.sample.T
	}
	if a.distance != b.distance {
		return a.distance < b.distance
	}
	return rolePriority(a.fielder.Role) < rolePriority(b.fielder.Role)
}
