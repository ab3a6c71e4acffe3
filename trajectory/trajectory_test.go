package trajectory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diamondsim/aero"
	"diamondsim/field"
	"diamondsim/simerrors"
	"diamondsim/vecmath"
)

func vacuumAir() aero.AirState {
	return aero.AirState{Density: 0}
}

// TestIntegrateReducesToVacuumParabola checks the no-drag, no-lift case
// (zero air density) against the closed-form projectile range, since with
// Density 0 both drag and lift vanish and gravity alone governs the flight.
// Velocity.X carries the outfield-direction component, per the trajectory
// frame's (x = outfield, y = lateral, z = up) convention.
func TestIntegrateReducesToVacuumParabola(t *testing.T) {
	v0 := 40.0
	angle := 35.0 * math.Pi / 180.0
	initial := BattedBallInitialState{
		Position: vecmath.Vec3{X: 0, Y: 0, Z: 1},
		Velocity: vecmath.Vec3{X: v0 * math.Cos(angle), Y: 0, Z: v0 * math.Sin(angle)},
	}
	env := DefaultEnv()
	env.Dt = 0.0005

	traj := Integrate(initial, vacuumAir(), env)
	require.Equal(t, TerminalLanding, traj.Kind)

	vx := initial.Velocity.X
	vz := initial.Velocity.Z
	z0 := initial.Position.Z
	// Solve z0 + vz*t - 0.5*g*t^2 = 0 for the positive root.
	disc := vz*vz + 2*aero.Gravity*z0
	expectedT := (vz + math.Sqrt(disc)) / aero.Gravity
	expectedX := vx * expectedT

	assert.InDelta(t, expectedT, traj.Terminal.T, 0.01)
	assert.InDelta(t, expectedX, traj.Terminal.Position.X, 0.2)
}

// TestIntegrateTimeIsMonotone checks that sample times strictly increase,
// the minimal contract any consumer of a Trajectory relies on.
func TestIntegrateTimeIsMonotone(t *testing.T) {
	initial := BattedBallInitialState{
		Position: vecmath.Vec3{Z: 1},
		Velocity: vecmath.Vec3{X: 35, Z: 25},
		Spin:     vecmath.Vec3{X: 0, Y: 0, Z: 200},
	}
	env := DefaultEnv()
	air := aero.AirState{Density: 1.225}

	traj := Integrate(initial, air, env)
	for i := 1; i < len(traj.Samples); i++ {
		assert.Greater(t, traj.Samples[i].T, traj.Samples[i-1].T)
	}
	assert.Equal(t, traj.Terminal, traj.Samples[len(traj.Samples)-1])
}

// TestIntegrateLandingInterpolatesGroundCrossing checks that the terminal
// sample's height is within one step's worth of the ground plane rather
// than overshooting by a full Dt, verifying the interpolation logic runs.
func TestIntegrateLandingInterpolatesGroundCrossing(t *testing.T) {
	initial := BattedBallInitialState{
		Position: vecmath.Vec3{Z: 1},
		Velocity: vecmath.Vec3{X: 30, Z: 15},
	}
	env := DefaultEnv()
	air := aero.AirState{Density: 1.225}

	traj := Integrate(initial, air, env)
	require.Equal(t, TerminalLanding, traj.Kind)
	assert.InDelta(t, env.GroundZ, traj.Terminal.Position.Z, 1e-6)
}

// TestIntegrateStopsAtWall places a straight center-field wall in the field
// frame (y = 100, spanning the lateral x range) and a trajectory-frame shot
// straight out along x, which TrajToField maps to field y, so the ball
// closes on the wall as it flies.
func TestIntegrateStopsAtWall(t *testing.T) {
	initial := BattedBallInitialState{
		Position: vecmath.Vec3{Z: 1},
		Velocity: vecmath.Vec3{X: 42, Z: 20},
	}
	env := DefaultEnv()
	env.Wall = &field.Wall{Points: []field.WallPoint{
		{Position: vecmath.Vec3{X: -60, Y: 100}, Height: 5},
		{Position: vecmath.Vec3{X: 60, Y: 100}, Height: 5},
	}}
	air := aero.AirState{Density: 1.225}

	traj := Integrate(initial, air, env)
	assert.Equal(t, TerminalWall, traj.Kind)
	assert.InDelta(t, 100, traj.Terminal.Position.X, 0.1)
}

func TestIntegrateClampsRunawayFlightTime(t *testing.T) {
	initial := BattedBallInitialState{
		Position: vecmath.Vec3{Z: 1000},
		Velocity: vecmath.Vec3{X: 1},
	}
	env := DefaultEnv()
	env.MaxFlightTime = 0.5
	air := aero.AirState{Density: 1.225}

	traj := Integrate(initial, air, env)
	assert.Equal(t, TerminalClamped, traj.Kind)
	assert.Equal(t, simerrors.WarningFlightTimeClamped, traj.Warning)
	assert.InDelta(t, 0.5, traj.Terminal.T, env.Dt)
}

func TestWithCatchTruncatesSamples(t *testing.T) {
	initial := BattedBallInitialState{
		Position: vecmath.Vec3{Z: 1},
		Velocity: vecmath.Vec3{X: 30, Z: 15},
	}
	env := DefaultEnv()
	air := aero.AirState{Density: 1.225}
	traj := Integrate(initial, air, env)

	catchTime := traj.Terminal.T / 2
	truncated := WithCatch(traj, catchTime, vecmath.Vec3{X: 20, Z: 5}, vecmath.Vec3{X: 25})

	assert.Equal(t, TerminalCatch, truncated.Kind)
	for _, s := range truncated.Samples {
		assert.LessOrEqual(t, s.T, catchTime)
	}
	assert.Equal(t, catchTime, truncated.Terminal.T)
}
