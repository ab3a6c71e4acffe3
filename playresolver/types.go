// Package playresolver is the combinatorial center of the core: given a
// batted ball's FieldingResult and the game state at contact, it detects
// forces, simulates throws, races runners against the defense, attempts
// double plays, decides non-forced advances, and commits a final
// PlayOutcome. Every stochastic decision takes an explicit *rand.Rand; the
// package never reads the global math/rand source, so a play replayed with
// the same seed and inputs reproduces bit-identical results.
package playresolver

import (
	"diamondsim/field"
	"diamondsim/fielding"
)

// BaseRunner is a runner on base (or, transiently during resolution, the
// batter-runner running to first). CurrentBase is meaningless for the
// batter-runner, who is tracked separately by the resolver.
type BaseRunner struct {
	ID              string
	CurrentBase     field.Base
	TopSprintSpeed  float64
	Acceleration    float64
	ReactionTime    float64
	SlideTime       float64
	BaserunningIQ   float64
}

// HitType classifies how many bases a ball in play is worth before
// defense and baserunning interact with it, used by the advancement
// policy's "2 outs, aggressive advance" and "raw hit type" rules. Not
// named as a type in spec.md, which treats it as an input already decided
// by the time the advancement policy runs; this core derives it from
// fielding depth the way the advancement policy's own depth thresholds
// already do, since spec.md is silent on the derivation.
type HitType int

const (
	HitNone HitType = iota
	HitSingle
	HitDouble
	HitTriple
	HitHomeRun
)

// PlayConditions is the minimal external game-state input spec.md §6
// names: outs, base occupancy, and the ball's batted-ball classification.
type PlayConditions struct {
	Outs      int
	Runners   map[field.Base]*BaseRunner // keys: First, Second, Third
	BallType  fielding.BallType
}

// Label is PlayOutcome's categorical result, the exact set spec.md §3
// names.
type Label int

const (
	LabelOut Label = iota
	LabelSingle
	LabelDouble
	LabelTriple
	LabelHomeRun
	LabelFlyOut
	LabelGroundOut
	LabelDoublePlay
	LabelError
	LabelForceOut
	LabelTagOut
)

func (l Label) String() string {
	switch l {
	case LabelOut:
		return "OUT"
	case LabelSingle:
		return "SINGLE"
	case LabelDouble:
		return "DOUBLE"
	case LabelTriple:
		return "TRIPLE"
	case LabelHomeRun:
		return "HOME_RUN"
	case LabelFlyOut:
		return "FLY_OUT"
	case LabelGroundOut:
		return "GROUND_OUT"
	case LabelDoublePlay:
		return "DOUBLE_PLAY"
	case LabelError:
		return "ERROR"
	case LabelForceOut:
		return "FORCE_OUT"
	case LabelTagOut:
		return "TAG_OUT"
	default:
		return "UNKNOWN"
	}
}

// PlayOutcome is the Play Resolver's final commit: outs recorded this
// play, runs scored, the resulting base occupancy, the categorical
// label, and an informational (non-gating) infield-fly-rule candidate
// flag spec.md does not name but a caller implementing that rule needs.
type PlayOutcome struct {
	OutsRecorded        int
	RunsScored          int
	FinalRunners        map[field.Base]*BaseRunner
	Label               Label
	InfieldFlyCandidate bool
}
