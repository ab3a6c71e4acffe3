package fielding

import (
	"math"

	"diamondsim/vecmath"
)

// Ground-phase constants for the post-bounce roll/skid model. The spec
// describes this only in prose ("a simpler 2D model"); these are the
// concrete named constants that model gives it, distinct for grass and
// infield dirt the way the Aero Model tabulates its own regime constants.
const (
	GrassFriction = 3.8 // m/s^2 horizontal speed decay on grass
	DirtFriction  = 5.2 // m/s^2 horizontal speed decay on infield dirt

	Restitution = 0.35 // vertical speed retained per bounce

	// minBounceSpeed below which the ball is considered to have stopped
	// bouncing and rolls the remainder of its distance flat.
	minBounceSpeed = 0.3
)

// SurfaceFriction selects the horizontal deceleration for a ground-frame
// position: infield dirt within InfieldRadius of home plate, grass beyond.
const InfieldRadius = 29.0 // meters, rough infield dirt cutout radius

func frictionAt(distanceFromHome float64) float64 {
	if distanceFromHome <= InfieldRadius {
		return DirtFriction
	}
	return GrassFriction
}

// GroundSample is one point in the post-landing roll/bounce phase, in the
// same trajectory frame the Integrator produces.
type GroundSample struct {
	T        float64
	Position vecmath.Vec3
	Velocity vecmath.Vec3
}

// RollOut advances a ball's post-landing ground phase from the landing
// sample, bouncing with Restitution until the vertical speed decays below
// minBounceSpeed, then decelerating the horizontal component under
// friction until it stops. It is a 2D model: Z only governs the bounce
// decay, never goes negative, and horizontal motion is damped by a
// constant deceleration rather than re-integrated against the Aero Model.
func RollOut(landing GroundSample, dt float64) []GroundSample {
	if dt <= 0 {
		dt = 0.01
	}

	samples := []GroundSample{landing}
	t := landing.T
	pos := landing.Position
	vel := landing.Velocity

	for {
		distFromHome := pos.Horizontal().Magnitude()
		decel := frictionAt(distFromHome)

		horiz := vel.Horizontal()
		speed := horiz.Magnitude()

		bouncing := math.Abs(vel.Z) > minBounceSpeed

		if bouncing {
			vel.Z = -vel.Z * Restitution
		} else {
			vel.Z = 0
			pos.Z = 0
		}

		if speed > 0 {
			newSpeed := speed - decel*dt
			if newSpeed < 0 {
				newSpeed = 0
			}
			scale := 0.0
			if speed > 0 {
				scale = newSpeed / speed
			}
			vel.X *= scale
			vel.Y *= scale
		}

		pos = pos.Add(vel.Scale(dt))
		if pos.Z < 0 {
			pos.Z = 0
		}
		t += dt

		samples = append(samples, GroundSample{T: t, Position: pos, Velocity: vel})

		if vel.Horizontal().Magnitude() < 0.05 && !bouncing {
			break
		}
		if len(samples) > 5000 {
			break // runaway guard; should never trigger given the friction model
		}
	}

	return samples
}
