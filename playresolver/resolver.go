package playresolver

import (
	"math/rand"

	"diamondsim/field"
	"diamondsim/fielding"
	"diamondsim/vecmath"
)

// ErrorCleanlinessThreshold is the FieldingResult.Cleanness floor below
// which an otherwise-clean out is instead scored ERROR and the batter
// reaches safely. A Cleanness of exactly 0 is treated as unset and never
// scores an error. spec.md §3 declares Cleanness "future-used"; this is
// the one place it is actually read.
const ErrorCleanlinessThreshold = 0.5

func classifyHit(result fielding.FieldingResult) HitType {
	if !result.Controlled {
		return HitHomeRun
	}
	fieldPos := vecmath.TrajToField(result.Position)
	depth := fieldPos.Horizontal().Magnitude()
	switch {
	case depth > 100:
		return HitTriple
	case depth > 70:
		return HitDouble
	default:
		return HitSingle
	}
}

func isInfieldRole(role field.Role) bool {
	switch role {
	case field.Pitcher, field.Catcher, field.FirstBase, field.SecondBase, field.ThirdBase, field.ShortStop:
		return true
	default:
		return false
	}
}

func infieldFlyCandidate(conditions PlayConditions, result fielding.FieldingResult) bool {
	if conditions.Outs >= 2 || conditions.BallType != fielding.BallFly {
		return false
	}
	loadedOrForceDouble := conditions.Runners[field.First] != nil && conditions.Runners[field.Second] != nil
	if !loadedOrForceDouble {
		return false
	}
	return result.Fielder != nil && isInfieldRole(result.Fielder.Role)
}

// ResolvePlay is the Play Resolver's entry point: given a FieldingResult,
// the fielder roster (by role, for throws beyond the one who fielded the
// ball), the game state at contact, and the play's RNG stream, it
// produces the final PlayOutcome.
func ResolvePlay(
	result fielding.FieldingResult,
	fielders map[field.Role]*fielding.Fielder,
	batter *BaseRunner,
	conditions PlayConditions,
	rng *rand.Rand,
) PlayOutcome {
	flyCandidate := infieldFlyCandidate(conditions, result)
	errorOnPlay := result.Controlled && result.Cleanness > 0 && result.Cleanness < ErrorCleanlinessThreshold

	final := copyRunners(conditions.Runners)

	if result.Kind == fielding.ControlAirCatch && !errorOnPlay {
		outs := 1
		runs := resolveTagUps(final, result, conditions, rng)
		label := LabelFlyOut
		return PlayOutcome{
			OutsRecorded:        outs,
			RunsScored:          runs,
			FinalRunners:        final,
			Label:               label,
			InfieldFlyCandidate: flyCandidate,
		}
	}

	if errorOnPlay {
		// The defense muffs the play; batter reaches first and every
		// other runner advances exactly one base, the conventional
		// scoring of an error that doesn't directly put a force out on
		// anyone else.
		runs := advanceAllOneBase(final)
		final[field.First] = batter
		return PlayOutcome{
			OutsRecorded:        0,
			RunsScored:          runs,
			FinalRunners:        final,
			Label:               LabelError,
			InfieldFlyCandidate: flyCandidate,
		}
	}

	controlFieldPos := vecmath.TrajToField(result.Position)

	if DoublePlayEligible(conditions) && result.Controlled && result.Fielder != nil {
		dp := AttemptDoublePlay(result, final[field.First], batter, fielders, rng)
		if dp.Completed {
			delete(final, field.First)
			runs, extraOuts := applyNonForcedAdvances(final, result, conditions, classifyHit(result), rng)
			return PlayOutcome{
				OutsRecorded:        2 + extraOuts,
				RunsScored:          runs,
				FinalRunners:        final,
				Label:               LabelDoublePlay,
				InfieldFlyCandidate: flyCandidate,
			}
		}
		if dp.LeadRunnerOut {
			delete(final, field.First)
			final[field.First] = batter
			runs, extraOuts := applyNonForcedAdvances(final, result, conditions, classifyHit(result), rng)
			return PlayOutcome{
				OutsRecorded:        1 + extraOuts,
				RunsScored:          runs,
				FinalRunners:        final,
				Label:               LabelForceOut,
				InfieldFlyCandidate: flyCandidate,
			}
		}
		// Lead runner beat the throw to the pivot base; fall through to a
		// routine force play at first against the batter.
	}

	batterOut := false
	if result.Controlled && result.Fielder != nil {
		throwToFirst := SimulateThrow(controlFieldPos, field.First, result.Fielder, rng)
		batterTime := TimeToBase(batter, field.Home, field.First, true)
		batterOut = ResolveForcePlay(throwToFirst.ArrivalTime, batterTime)
	}

	if batterOut {
		label := LabelGroundOut
		if conditions.BallType == fielding.BallFly || conditions.BallType == fielding.BallLine {
			label = LabelFlyOut
		}
		return PlayOutcome{
			OutsRecorded:        1,
			RunsScored:          0,
			FinalRunners:        final,
			Label:               label,
			InfieldFlyCandidate: flyCandidate,
		}
	}

	hit := classifyHit(result)
	final[field.First] = batter
	var runs, extraOuts int
	if conditions.Outs >= 2 {
		runs, extraOuts = applyAggressiveAdvances(final, result, hit, rng)
	} else {
		runs, extraOuts = applyNonForcedAdvances(final, result, conditions, hit, rng)
	}

	label := hitLabel(hit)
	return PlayOutcome{
		OutsRecorded:        extraOuts,
		RunsScored:          runs,
		FinalRunners:        final,
		Label:               label,
		InfieldFlyCandidate: flyCandidate,
	}
}

func hitLabel(hit HitType) Label {
	switch hit {
	case HitSingle:
		return LabelSingle
	case HitDouble:
		return LabelDouble
	case HitTriple:
		return LabelTriple
	case HitHomeRun:
		return LabelHomeRun
	default:
		return LabelSingle
	}
}

func copyRunners(runners map[field.Base]*BaseRunner) map[field.Base]*BaseRunner {
	out := make(map[field.Base]*BaseRunner, len(runners))
	for k, v := range runners {
		out[k] = v
	}
	return out
}

// applyNonForcedAdvances processes runners in lead order (3rd, 2nd, 1st)
// so a runner's target base is provably unoccupied at decision time, per
// the spec's ordering requirement. DecideAdvance's probabilities decide
// only whether a runner attempts the extra base; every attempt then runs
// an actual tag-play race against the ball's controlling fielder, per the
// spec's "every aggressive non-forced advance incurs a tag-play race."
// Returns runs scored and additional outs recorded by runners thrown out
// attempting the advance.
func applyNonForcedAdvances(final map[field.Base]*BaseRunner, result fielding.FieldingResult, conditions PlayConditions, hit HitType, rng *rand.Rand) (runs, outs int) {
	order := []field.Base{field.Third, field.Second, field.First}
	for _, base := range order {
		runner := final[base]
		if runner == nil {
			continue
		}
		decision := DecideAdvance(runner, hit, advanceDepthFor(hit), conditions.Outs, rng)
		delete(final, base)
		if !decision.Attempts {
			final[runner.CurrentBase] = runner
			continue
		}
		if !raceOutcome(runner, base, decision.TargetBase, result, rng) {
			outs++
			continue
		}
		if decision.TargetBase == field.Home {
			runs++
			continue
		}
		runner.CurrentBase = decision.TargetBase
		final[decision.TargetBase] = runner
	}
	return runs, outs
}

// raceOutcome resolves one non-forced advance attempt as an actual
// tag-play race: the controlling fielder throws to the target base, the
// runner's travel time plus SlideTime is checked against the throw's
// arrival plus TagApplicationJitter through ResolveTagPlay. A ball nobody
// controls (e.g. a home run leaving play) has no defense to contest the
// advance, so it is unconditionally safe.
func raceOutcome(runner *BaseRunner, from, to field.Base, result fielding.FieldingResult, rng *rand.Rand) bool {
	if result.Fielder == nil {
		return true
	}
	fieldPos := vecmath.TrajToField(result.Position)
	runnerArrival := TimeToBase(runner, from, to, false)
	throw := SimulateThrow(fieldPos, to, result.Fielder, rng)

	runnerSlideComplete := runnerArrival + runner.SlideTime
	fielderTagApplied := throw.ArrivalTime + TagApplicationJitter(rng)
	return ResolveTagPlay(runnerSlideComplete, fielderTagApplied, rng)
}

// advanceDepthFor maps a classified hit type back to a representative
// depth for the advancement decision rules, since classifyHit already
// consumed the raw fielding depth. Each hit type gets one fixed depth
// inside its classifyHit band (50 m for a single, 85 m for a double,
// 110 m for a triple or home run), so the advancement probabilities stay
// consistent with which band the hit actually classified into.
func advanceDepthFor(hit HitType) float64 {
	switch hit {
	case HitSingle:
		return 50
	case HitDouble:
		return 85
	case HitTriple, HitHomeRun:
		return 110
	default:
		return 0
	}
}

// applyAggressiveAdvances implements the 2-outs rule: target base is
// computed straight from hit type, with no probabilistic attempt
// decision, but the advance is still contested by the same tag-play race
// as applyNonForcedAdvances — aggressive does not mean uncontested.
func applyAggressiveAdvances(final map[field.Base]*BaseRunner, result fielding.FieldingResult, hit HitType, rng *rand.Rand) (runs, outs int) {
	order := []field.Base{field.Third, field.Second, field.First}
	for _, base := range order {
		runner := final[base]
		if runner == nil {
			continue
		}
		delete(final, base)
		target := AggressiveAdvance(runner, hit)
		if !raceOutcome(runner, base, target, result, rng) {
			outs++
			continue
		}
		if target == field.Home {
			runs++
			continue
		}
		runner.CurrentBase = target
		final[target] = runner
	}
	return runs, outs
}

func advanceAllOneBase(final map[field.Base]*BaseRunner) int {
	runs := 0
	order := []field.Base{field.Third, field.Second, field.First}
	for _, base := range order {
		runner := final[base]
		if runner == nil {
			continue
		}
		delete(final, base)
		target := field.Base(int(base) + 1)
		if target > field.Third {
			runs++
			continue
		}
		runner.CurrentBase = target
		final[target] = runner
	}
	return runs
}

// resolveTagUps applies the fly-out tag-up rule to the runner on third,
// the only base the spec names as eligible, and returns the number of
// runs scored by a successful tag-up.
func resolveTagUps(final map[field.Base]*BaseRunner, result fielding.FieldingResult, conditions PlayConditions, rng *rand.Rand) int {
	runner := final[field.Third]
	if runner == nil {
		return 0
	}
	fieldPos := vecmath.TrajToField(result.Position)
	depth := fieldPos.Horizontal().Magnitude()

	runnerTime := TimeToBase(runner, field.Third, field.Home, false)
	throwTime := 0.0
	if result.Fielder != nil {
		throw := SimulateThrow(fieldPos, field.Home, result.Fielder, rng)
		throwTime = throw.ArrivalTime
	}

	if DecideTagUp(runner, conditions.Outs, depth, runnerTime, throwTime, 0.2) {
		delete(final, field.Third)
		return 1
	}
	return 0
}
