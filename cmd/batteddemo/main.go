// Command batteddemo exercises one full batted ball end to end: contact,
// flight, fielding, and the resulting play. It is a manual-inspection
// tool, not part of the core's public contract, the same way the
// teacher's flight_dynamics_demo.go isn't part of its flight-dynamics
// contract.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"

	"diamondsim/aero"
	"diamondsim/batted"
	"diamondsim/field"
	"diamondsim/fielding"
	"diamondsim/playresolver"
	"diamondsim/ratings"
	"diamondsim/trajectory"
	"diamondsim/vecmath"
)

func main() {
	rng := rand.New(rand.NewSource(42))
	logger := log.New(os.Stderr)
	logger.SetLevel(log.WarnLevel)

	fmt.Println("Line drive to left-center, runner on first, one out")
	fmt.Println("====================================================")
	runPlay(rng, logger, trajectory.BattedBallInitialState{
		Position: vecmath.Vec3{X: 0, Y: 0, Z: 1.0},
		Velocity: vecmath.Vec3{X: 38.0, Y: 6.0, Z: 14.0},
		Spin:     vecmath.Vec3{X: 0, Y: 180.0, Z: 0},
	}, fielding.BallLine, 1, map[field.Base]*playresolver.BaseRunner{
		field.First: averageRunner("r1", field.First),
	})

	fmt.Println()
	fmt.Println("Routine grounder to short, nobody on")
	fmt.Println("=====================================")
	runPlay(rng, logger, trajectory.BattedBallInitialState{
		Position: vecmath.Vec3{X: 0, Y: 0, Z: 0.3},
		Velocity: vecmath.Vec3{X: 24.0, Y: 5.0, Z: 1.0},
		Spin:     vecmath.Vec3{},
	}, fielding.BallGround, 0, map[field.Base]*playresolver.BaseRunner{})
}

func runPlay(rng *rand.Rand, logger *log.Logger, initial trajectory.BattedBallInitialState, ballType fielding.BallType, outs int, runners map[field.Base]*playresolver.BaseRunner) {
	req := batted.Request{
		Initial:  initial,
		Air:      aero.AirState{Density: 1.225},
		Env:      trajectory.DefaultEnv(),
		BallType: ballType,
		Fielders: defaultRoster(),
		Batter:   averageRunner("batter", field.Home),
		Conditions: playresolver.PlayConditions{
			Outs:     outs,
			Runners:  runners,
			BallType: ballType,
		},
	}

	result, err := batted.Resolve(req, rng, logger)
	if err != nil {
		fmt.Printf("resolve failed: %v\n", err)
		return
	}

	fmt.Printf("terminal event: %s at t=%.2fs, pos=(%.1f, %.1f, %.1f)\n",
		result.Trajectory.Kind, result.Trajectory.Terminal.T,
		result.Trajectory.Terminal.Position.X, result.Trajectory.Terminal.Position.Y, result.Trajectory.Terminal.Position.Z)
	fmt.Printf("fielded by: %v, controlled=%v, kind=%v\n",
		fielderID(result.Fielding), result.Fielding.Controlled, result.Fielding.Kind)
	fmt.Printf("outcome: %s, outs recorded=%d, runs scored=%d\n",
		result.Outcome.Label, result.Outcome.OutsRecorded, result.Outcome.RunsScored)
}

func fielderID(result fielding.FieldingResult) string {
	if result.Fielder == nil {
		return "none"
	}
	return result.Fielder.ID
}

func roleName(role field.Role) string {
	switch role {
	case field.Pitcher:
		return "P"
	case field.Catcher:
		return "C"
	case field.FirstBase:
		return "1B"
	case field.SecondBase:
		return "2B"
	case field.ThirdBase:
		return "3B"
	case field.ShortStop:
		return "SS"
	case field.LeftField:
		return "LF"
	case field.CenterField:
		return "CF"
	case field.RightField:
		return "RF"
	default:
		return "?"
	}
}

// averageRunner builds a BaseRunner from the league-average rating
// (50000 on the 0-100000 scale) via package ratings, rather than
// hand-picked SI values, so the demo exercises the same compatibility
// contract a real roster loader would.
func averageRunner(id string, base field.Base) *playresolver.BaseRunner {
	const avg = 50000.0
	return &playresolver.BaseRunner{
		ID:             id,
		CurrentBase:    base,
		TopSprintSpeed: ratings.TopSprintSpeed(avg),
		Acceleration:   ratings.Acceleration(avg),
		ReactionTime:   ratings.ReactionTime(avg),
		SlideTime:      ratings.SlideTime(avg),
		BaserunningIQ:  0.5,
	}
}

func defaultRoster() map[field.Role]*fielding.Fielder {
	const avg = 50000.0
	roles := []field.Role{
		field.Pitcher, field.Catcher, field.FirstBase, field.SecondBase,
		field.ThirdBase, field.ShortStop, field.LeftField, field.CenterField, field.RightField,
	}
	roster := make(map[field.Role]*fielding.Fielder, len(roles))
	for _, role := range roles {
		roster[role] = &fielding.Fielder{
			ID:              roleName(role),
			Role:            role,
			Home:            field.DefaultPosition(role),
			ReactionTime:    ratings.ReactionTime(avg),
			TopSprintSpeed:  ratings.TopSprintSpeed(avg),
			Acceleration:    ratings.Acceleration(avg),
			RouteEfficiency: ratings.RouteEfficiency(avg),
			ArmStrength:     ratings.ArmStrength(avg),
			ArmAccuracy:     ratings.ArmAccuracy(avg),
			TransferTime:    ratings.TransferTime(avg),
		}
	}
	return roster
}
