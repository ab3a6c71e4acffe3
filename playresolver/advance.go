package playresolver

import (
	"math/rand"

	"diamondsim/field"
)

// Depth thresholds from the spec's advancement policy, converted from
// feet to meters (the core's SI-internal unit) at this boundary rather
// than carrying feet through the decision rules.
const (
	ftToM = 0.3048

	depthScoreFromThird  = 180 * ftToM
	depthAttemptFromThird = 120 * ftToM
	depthRiskyToThird    = 150 * ftToM
	depthTakeSecond      = 180 * ftToM
	deepFlyTagUp         = 220 * ftToM
)

// AdvanceDecision is the advancement policy's output for one non-forced
// runner: the base they attempt (equal to CurrentBase if they hold), and
// whether the attempt is aggressive enough to need a race resolved.
type AdvanceDecision struct {
	TargetBase field.Base
	Attempts   bool
}

// DecideAdvance implements the spec's 0/1-out, hit-in-play decision
// rules by runner base, hit type, and ball depth d (field-frame Y,
// meters). Fly-out tag-ups are handled separately by DecideTagUp.
func DecideAdvance(runner *BaseRunner, hit HitType, depth float64, outs int, rng *rand.Rand) AdvanceDecision {
	if hit == HitHomeRun {
		// Every runner, and the batter, scores unconditionally on a ball
		// that leaves play; there is no defense left to race against.
		return AdvanceDecision{TargetBase: field.Home, Attempts: true}
	}

	switch runner.CurrentBase {
	case field.Third:
		if hit == HitSingle {
			switch {
			case depth > depthScoreFromThird:
				return attemptWithProb(field.Home, field.Third, 0.95, rng)
			case depth > depthAttemptFromThird:
				return attemptWithProb(field.Home, field.Third, 0.80, rng)
			default:
				return AdvanceDecision{TargetBase: field.Third, Attempts: false}
			}
		}
		if hit == HitDouble || hit == HitTriple {
			return AdvanceDecision{TargetBase: field.Home, Attempts: true}
		}
	case field.Second:
		if hit == HitSingle {
			p := 0.60
			if depth > depthRiskyToThird {
				p = 0.90
			}
			return attemptWithProb(field.Third, field.Second, p, rng)
		}
		if hit == HitDouble || hit == HitTriple {
			return AdvanceDecision{TargetBase: field.Home, Attempts: true}
		}
	case field.First:
		if hit == HitSingle {
			if depth > depthTakeSecond {
				return attemptWithProb(field.Second, field.First, 0.85, rng)
			}
			return AdvanceDecision{TargetBase: field.First, Attempts: false}
		}
		if hit == HitDouble {
			// Two bases from first is third, not home.
			return AdvanceDecision{TargetBase: field.Third, Attempts: true}
		}
		if hit == HitTriple {
			return AdvanceDecision{TargetBase: field.Home, Attempts: true}
		}
	}
	return AdvanceDecision{TargetBase: runner.CurrentBase, Attempts: false}
}

func attemptWithProb(target, hold field.Base, prob float64, rng *rand.Rand) AdvanceDecision {
	if rng.Float64() < prob {
		return AdvanceDecision{TargetBase: target, Attempts: true}
	}
	return AdvanceDecision{TargetBase: hold, Attempts: false}
}

// DecideTagUp implements the fly-out tag-up rule: only the runner on
// third, with fewer than 2 outs, on a sufficiently deep fly ball, and
// only if the runner's physical time to score beats the throw-home time
// plus a safety margin.
func DecideTagUp(runner *BaseRunner, outs int, depth float64, runnerTime, throwTime, margin float64) bool {
	if runner.CurrentBase != field.Third || outs >= 2 {
		return false
	}
	if depth <= deepFlyTagUp {
		return false
	}
	return runnerTime < throwTime+margin
}

// AggressiveAdvance implements the 2-outs rule: any runner with the ball
// in play targets the base reached by the hit type's base count, with no
// probabilistic attempt decision. It only computes the target;
// applyAggressiveAdvances still races the runner against the throw to it.
func AggressiveAdvance(runner *BaseRunner, hit HitType) field.Base {
	bases := 0
	switch hit {
	case HitSingle:
		bases = 1
	case HitDouble:
		bases = 2
	case HitTriple:
		bases = 3
	case HitHomeRun:
		return field.Home
	}
	target := int(runner.CurrentBase) + bases
	if target > int(field.Third) {
		return field.Home
	}
	return field.Base(target)
}
