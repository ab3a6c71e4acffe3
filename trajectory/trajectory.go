// Package trajectory performs fixed-step RK4 integration of a batted
// ball's 6-DOF point-mass motion under gravity and the aerodynamic forces
// from package aero, producing a position/velocity timeline and a
// terminal landing, wall, or clamp event. The integrator is a total
// function on finite inputs: it has no error return, only a Warning for
// the edge-of-physics cases the spec asks to clamp rather than fail.
package trajectory

import (
	"math"

	"diamondsim/aero"
	"diamondsim/field"
	"diamondsim/simerrors"
	"diamondsim/vecmath"
)

// BattedBallInitialState is the initial condition produced by an external
// at-bat model: launch position (trajectory frame, typically home plate),
// exit velocity vector, and spin axis/rate (rad/s).
type BattedBallInitialState struct {
	Position vecmath.Vec3
	Velocity vecmath.Vec3
	Spin     vecmath.Vec3
}

// Sample is one point in a Trajectory: simulation time since contact,
// position, and velocity, all in the trajectory frame.
type Sample struct {
	T        float64
	Position vecmath.Vec3
	Velocity vecmath.Vec3
}

// TerminalKind classifies why a Trajectory ended.
type TerminalKind int

const (
	TerminalLanding TerminalKind = iota
	TerminalWall
	TerminalCatch
	TerminalClamped
)

func (k TerminalKind) String() string {
	switch k {
	case TerminalLanding:
		return "landing"
	case TerminalWall:
		return "wall"
	case TerminalCatch:
		return "catch"
	case TerminalClamped:
		return "clamped"
	default:
		return "unknown"
	}
}

// Trajectory is the ordered, strictly-increasing-in-t sample stream from
// contact to a terminal event. Between samples the state satisfies the ODE
// to within the integrator's step tolerance.
type Trajectory struct {
	Samples  []Sample
	Terminal Sample
	Kind     TerminalKind
	Warning  simerrors.Warning
}

// Env bundles the integrator's tunable knobs: step size, ground plane,
// sampling decimation, an optional outfield wall, an optional spin-decay
// half-life (0 disables decay, treating spin as constant over the
// flight), and the flight-time clamp for the edge-of-physics fallback.
type Env struct {
	Dt                float64
	GroundZ           float64
	SampleEveryN      int
	Wall              *field.Wall
	SpinDecayHalfLife float64
	MaxFlightTime     float64
}

// DefaultEnv returns the recommended integration parameters: a 1ms step,
// ground at z=0, every step sampled, no wall, no spin decay, and a 15s
// flight-time clamp.
func DefaultEnv() Env {
	return Env{
		Dt:            0.001,
		GroundZ:       0,
		SampleEveryN:  1,
		MaxFlightTime: 15.0,
	}
}

// spinAt returns the spin vector at time t, applying exponential decay if
// env.SpinDecayHalfLife is positive; otherwise spin is constant over the
// flight, per the spec's default.
func spinAt(initial vecmath.Vec3, t float64, halfLife float64) vecmath.Vec3 {
	if halfLife <= 0 {
		return initial
	}
	decay := math.Exp2(-t / halfLife)
	return initial.Scale(decay)
}

// Integrate advances a batted ball from contact to a terminal event using
// fixed-step RK4, re-evaluating aerodynamic forces at each of the four
// stage points per step. Termination conditions are checked in priority
// order after every step: wall collision, then ground-plane crossing
// (landing time found by linear interpolation between the bracketing
// samples), then the flight-time clamp. A catch event is never produced
// here, since the fielding solver consumes the full trajectory to find the
// earliest interception point. WithCatch can truncate the result at a
// catch afterward; neither package fielding nor package batted calls it,
// so the Trajectory that batted.Resolve returns always ends in a landing,
// wall, or clamp event, even when the ball was caught.
func Integrate(initial BattedBallInitialState, air aero.AirState, env Env) Trajectory {
	pos := initial.Position
	vel := initial.Velocity
	t := 0.0

	samples := []Sample{{T: t, Position: pos, Velocity: vel}}

	accel := func(t float64, vel vecmath.Vec3) vecmath.Vec3 {
		spin := spinAt(initial.Spin, t, env.SpinDecayHalfLife)
		return aero.ForcePerMass(vel, spin, air)
	}

	stepCount := 0
	for {
		k1v := accel(t, vel)
		k1p := vel

		k2v := accel(t+env.Dt/2, vel.Add(k1v.Scale(env.Dt/2)))
		k2p := vel.Add(k1v.Scale(env.Dt / 2))

		k3v := accel(t+env.Dt/2, vel.Add(k2v.Scale(env.Dt/2)))
		k3p := vel.Add(k2v.Scale(env.Dt / 2))

		k4v := accel(t+env.Dt, vel.Add(k3v.Scale(env.Dt)))
		k4p := vel.Add(k3v.Scale(env.Dt))

		avgVelDot := k1v.Add(k2v.Scale(2)).Add(k3v.Scale(2)).Add(k4v).Scale(1.0 / 6.0)
		avgPosDot := k1p.Add(k2p.Scale(2)).Add(k3p.Scale(2)).Add(k4p).Scale(1.0 / 6.0)

		newVel := vel.Add(avgVelDot.Scale(env.Dt))
		newPos := pos.Add(avgPosDot.Scale(env.Dt))
		newT := t + env.Dt

		// Wall collision check, in the field frame, ahead of ground check.
		if env.Wall != nil {
			prevField := vecmath.TrajToField(pos)
			currField := vecmath.TrajToField(newPos)
			if contactField, hit := env.Wall.Intersect(prevField, currField); hit {
				contactTraj := vecmath.FieldToTraj(contactField)
				frac := safeFrac(prevField.Distance(contactField), prevField.Distance(currField))
				contactVel := vel.Add(newVel.Sub(vel).Scale(frac))
				terminal := Sample{T: t + frac*env.Dt, Position: contactTraj, Velocity: contactVel}
				samples = appendSample(samples, env.SampleEveryN, stepCount, terminal)
				return Trajectory{Samples: samples, Terminal: terminal, Kind: TerminalWall}
			}
		}

		// Ground-plane crossing, found by linear interpolation between the
		// two bracketing samples.
		if newPos.Z <= env.GroundZ && pos.Z > env.GroundZ {
			frac := safeFrac(pos.Z-env.GroundZ, pos.Z-newPos.Z)
			terminal := Sample{
				T:        t + frac*env.Dt,
				Position: pos.Add(newPos.Sub(pos).Scale(frac)),
				Velocity: vel.Add(newVel.Sub(vel).Scale(frac)),
			}
			samples = appendSample(samples, env.SampleEveryN, stepCount, terminal)
			return Trajectory{Samples: samples, Terminal: terminal, Kind: TerminalLanding}
		}

		pos, vel, t = newPos, newVel, newT
		stepCount++
		samples = appendSample(samples, env.SampleEveryN, stepCount, Sample{T: t, Position: pos, Velocity: vel})

		if t >= env.MaxFlightTime {
			terminal := Sample{T: t, Position: pos, Velocity: vel}
			return Trajectory{
				Samples: samples,
				Terminal: terminal,
				Kind:     TerminalClamped,
				Warning:  simerrors.WarningFlightTimeClamped,
			}
		}
	}
}

func safeFrac(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	frac := num / den
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}

func appendSample(samples []Sample, everyN, stepCount int, s Sample) []Sample {
	n := everyN
	if n <= 0 {
		n = 1
	}
	if stepCount%n == 0 {
		return append(samples, s)
	}
	return samples
}

// WithCatch truncates a Trajectory at a caller-supplied catch event:
// every sample after the catch time is discarded and the
// terminal sample is replaced with the catch point, flagged
// TerminalCatch. The input trajectory is not mutated.
func WithCatch(traj Trajectory, catchTime float64, catchPosition, catchVelocity vecmath.Vec3) Trajectory {
	kept := make([]Sample, 0, len(traj.Samples))
	for _, s := range traj.Samples {
		if s.T > catchTime {
			break
		}
		kept = append(kept, s)
	}
	terminal := Sample{T: catchTime, Position: catchPosition, Velocity: catchVelocity}
	kept = append(kept, terminal)
	return Trajectory{Samples: kept, Terminal: terminal, Kind: TerminalCatch}
}
