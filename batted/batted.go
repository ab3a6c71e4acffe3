// Package batted is the core's single entry point: it wires the
// Trajectory Integrator, Fielding Solver, and Play Resolver into one call
// that takes a batted ball's initial condition and the game state at
// contact and returns the committed PlayOutcome. Nothing in this package
// holds state across calls; every stochastic draw is taken from the
// *rand.Rand the caller passes in.
package batted

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"diamondsim/aero"
	"diamondsim/field"
	"diamondsim/fielding"
	"diamondsim/playresolver"
	"diamondsim/simerrors"
	"diamondsim/trajectory"
)

// Request bundles everything Resolve needs beyond the RNG and logger: the
// ball's initial condition, the air it flies through, the defense on the
// field, and the runners/outs at the moment of contact.
type Request struct {
	Initial    trajectory.BattedBallInitialState
	Air        aero.AirState
	Env        trajectory.Env
	BallType   fielding.BallType
	Fielders   map[field.Role]*fielding.Fielder
	Batter     *playresolver.BaseRunner
	Conditions playresolver.PlayConditions
}

// Result is Resolve's output: the committed play plus the intermediate
// Trajectory and FieldingResult, kept for callers that want to log or
// render the physics behind the decision rather than just the label.
type Result struct {
	Trajectory trajectory.Trajectory
	Fielding   fielding.FieldingResult
	Outcome    playresolver.PlayOutcome
}

// Resolve runs one batted ball end to end: integrate its flight, find the
// best interception, and resolve the resulting play. logger may be nil,
// which silences all warning output; a nil logger never changes the
// returned Result. The only errors this returns are wrapped
// simerrors.ContractError values for the category-1 contract violations
// spec.md §7 names: an empty fielder roster, NaN/Inf in the ball's initial
// condition or the air's wind vector, a NaN/Inf air density or viscosity,
// or negative air density. These are
// checked here, at the single external entry point, rather than deep
// inside aero/trajectory, so every other function in this core can keep
// assuming its inputs are already finite. Edge-of-physics conditions are
// not contract violations; they are reported through
// Result.Trajectory.Warning and Result.Fielding.Warning instead.
func Resolve(req Request, rng *rand.Rand, logger *log.Logger) (Result, error) {
	if len(req.Fielders) == 0 {
		return Result{}, simerrors.NewContractError("batted.Resolve", "fielder roster is empty")
	}
	if err := validateInputs(req); err != nil {
		return Result{}, err
	}

	traj := trajectory.Integrate(req.Initial, req.Air, req.Env)
	if traj.Warning != simerrors.WarningNone {
		logWarning(logger, "trajectory clamped before landing", traj.Warning)
	}

	roster := make([]*fielding.Fielder, 0, len(req.Fielders))
	for _, f := range req.Fielders {
		roster = append(roster, f)
	}

	result := runFielding(traj, roster, req.BallType, rng)
	if result.Warning != simerrors.WarningNone {
		logWarning(logger, "no fielder reached the ball", result.Warning)
	}

	outcome := playresolver.ResolvePlay(result, req.Fielders, req.Batter, req.Conditions, rng)

	return Result{Trajectory: traj, Fielding: result, Outcome: outcome}, nil
}

// runFielding isolates the one call in this pipeline the spec allows to
// panic on a contract violation (an empty roster, already rejected above)
// so Resolve itself stays a plain two-return function rather than needing
// a recover.
func runFielding(traj trajectory.Trajectory, roster []*fielding.Fielder, ballType fielding.BallType, rng *rand.Rand) fielding.FieldingResult {
	return fielding.BestInterception(traj, roster, ballType, rng)
}

// validateInputs checks the category-1 contract violations spec.md §7
// names for a batted ball's initial condition and air state: every
// position/velocity/spin/wind component must be finite, and air density
// must be non-negative (a physically meaningless atmosphere, not an
// edge-of-physics case to clamp).
func validateInputs(req Request) error {
	if !req.Initial.Position.IsFinite() {
		return simerrors.NewContractError("batted.Resolve", "initial position is non-finite: %+v", req.Initial.Position)
	}
	if !req.Initial.Velocity.IsFinite() {
		return simerrors.NewContractError("batted.Resolve", "initial velocity is non-finite: %+v", req.Initial.Velocity)
	}
	if !req.Initial.Spin.IsFinite() {
		return simerrors.NewContractError("batted.Resolve", "initial spin is non-finite: %+v", req.Initial.Spin)
	}
	if !req.Air.Wind.IsFinite() {
		return simerrors.NewContractError("batted.Resolve", "air wind is non-finite: %+v", req.Air.Wind)
	}
	if math.IsNaN(req.Air.Density) || math.IsInf(req.Air.Density, 0) {
		return simerrors.NewContractError("batted.Resolve", "air density is non-finite: %v", req.Air.Density)
	}
	if req.Air.Density < 0 {
		return simerrors.NewContractError("batted.Resolve", "air density is negative: %v", req.Air.Density)
	}
	if math.IsNaN(req.Air.Viscosity) || math.IsInf(req.Air.Viscosity, 0) {
		return simerrors.NewContractError("batted.Resolve", "air viscosity is non-finite: %v", req.Air.Viscosity)
	}
	return nil
}

func logWarning(logger *log.Logger, msg string, w simerrors.Warning) {
	if logger == nil {
		return
	}
	logger.Warn(msg, "warning", w.String())
}
