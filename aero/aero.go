// Package aero implements the aerodynamic force model for a spinning
// baseball: Reynolds-dependent drag, spin-induced lift (Magnus effect), and
// the combination into an instantaneous force-per-unit-mass the trajectory
// integrator consumes at every step. Every function here is pure,
// deterministic, and allocation-free in the hot path: given the same
// inputs the outputs are bit-identical across calls. Inputs are assumed
// finite; NaN propagates rather than being checked for, matching the "no
// error mode" contract for this component.
package aero

import (
	"math"

	"diamondsim/vecmath"
)

// Physical constants for a regulation baseball and the standard atmosphere
// this model is calibrated against. These are domain constants, not
// configuration: they are a fixed table read at package scope, never
// threaded through call signatures.
const (
	BallDiameter = 0.0748 // m (~2.94 in, rulebook midpoint)
	BallRadius   = BallDiameter / 2
	BallMass     = 0.145   // kg (~5.125 oz, rulebook midpoint)
	BallArea     = math.Pi * (BallRadius * BallRadius)
	AirViscosity = 1.81e-5 // Pa*s, dynamic viscosity of air near 15C

	// Reynolds-number drag-crisis regime boundaries.
	ReynoldsLow  = 200000.0
	ReynoldsHigh = 250000.0

	CDBase = 0.32
	KSub   = 0.04
	KSup   = 0.025

	CDMin = 0.27
	CDMax = 0.42

	// KSpin is the empirical spin-induced drag coefficient addition per
	// unit of spin factor S.
	KSpin = 0.08

	// Lift-curve constants for the saturating spin-factor model
	// CL = 1 / (liftA + liftB/S), the standard Nathan-form baseball lift
	// curve, clamped to CLMax.
	liftA = 2.32
	liftB = 0.40
	CLMax = 0.35

	Gravity = 9.80665 // m/s^2
)

// Regime identifies which side of the drag crisis a Reynolds number falls
// in, exposed for logging/diagnostics rather than control flow.
type Regime int

const (
	RegimeSubcritical Regime = iota
	RegimeCritical
	RegimeSupercritical
)

func (r Regime) String() string {
	switch r {
	case RegimeSubcritical:
		return "subcritical"
	case RegimeCritical:
		return "critical"
	case RegimeSupercritical:
		return "supercritical"
	default:
		return "unknown"
	}
}

// AirState describes the atmosphere the ball flies through: density,
// dynamic viscosity, and a wind vector in the trajectory frame.
type AirState struct {
	Density   float64 // kg/m^3
	Viscosity float64 // Pa*s; zero means "use AirViscosity"
	Wind      vecmath.Vec3
}

func (a AirState) viscosity() float64 {
	if a.Viscosity > 0 {
		return a.Viscosity
	}
	return AirViscosity
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Reynolds computes the Reynolds number for a ball moving at speed through
// air of the given density: Re = rho*|v|*D/mu.
func Reynolds(speed, density, viscosity float64) float64 {
	return density * speed * BallDiameter / viscosity
}

// reynoldsRegimeCD returns the base drag coefficient for a Reynolds number,
// with its regime, before clamping.
func reynoldsRegimeCD(re float64) (float64, Regime) {
	switch {
	case re < ReynoldsLow:
		frac := math.Min((ReynoldsLow-re)/50000.0, 1.0)
		return CDBase + KSub*frac, RegimeSubcritical
	case re <= ReynoldsHigh:
		return CDBase, RegimeCritical
	default:
		frac := math.Min((re-ReynoldsHigh)/50000.0, 1.0)
		return CDBase - KSup*frac, RegimeSupercritical
	}
}

// DragCoefficient returns the Reynolds-dependent drag coefficient for a
// ball moving at velocity v through air of the given density and dynamic
// viscosity, capturing the aerodynamic drag crisis so low-exit-velocity
// trajectories are not systematically over-flown. CD is monotone
// non-increasing in Re for Re >= ReynoldsHigh and also for Re <= ReynoldsLow,
// and constant in between.
func DragCoefficient(v vecmath.Vec3, airDensity, viscosity float64) (cd float64, regime Regime) {
	re := Reynolds(v.Magnitude(), airDensity, viscosity)
	cd, regime = reynoldsRegimeCD(re)
	return clamp(cd, CDMin, CDMax), regime
}

// spinFactor computes S = (omega*r)/|v|, the dimensionless spin parameter
// that drives both the spin-induced drag addition and the lift curve.
func spinFactor(v, spin vecmath.Vec3) float64 {
	speed := v.Magnitude()
	if speed == 0 {
		return 0
	}
	return spin.Magnitude() * BallRadius / speed
}

// SpinAdjustedCD adds an empirical spin-induced drag term to the
// Reynolds-based drag coefficient.
func SpinAdjustedCD(v, spin vecmath.Vec3, airDensity, viscosity float64) (cd float64, regime Regime) {
	base, regime := DragCoefficient(v, airDensity, viscosity)
	s := spinFactor(v, spin)
	return clamp(base+KSpin*s, CDMin, CDMax), regime
}

// LiftCoefficient returns the Magnus lift coefficient CL as a monotone
// saturating function of the spin factor S = (omega*r)/|v|.
func LiftCoefficient(v, spin vecmath.Vec3) float64 {
	s := spinFactor(v, spin)
	if s <= 0 {
		return 0
	}
	cl := 1.0 / (liftA + liftB/s)
	return clamp(cl, 0, CLMax)
}

// ForcePerMass returns the instantaneous acceleration (force per unit
// mass) acting on the ball: drag + Magnus lift + gravity, evaluated
// against the velocity of the ball relative to the wind (the "wind
// coupling" the spec names is this substitution, not a fourth additive
// term). Drag acts along -v_rel_hat; Magnus acts along (spin_hat x
// v_rel_hat) scaled by CL. Gravity acts along -z. Inputs must be finite;
// NaN propagates.
func ForcePerMass(v, spin vecmath.Vec3, air AirState) vecmath.Vec3 {
	relative := v.Sub(air.Wind)
	speed := relative.Magnitude()
	gravity := vecmath.Vec3{Z: -Gravity}

	if speed == 0 {
		return gravity
	}

	cd, _ := SpinAdjustedCD(relative, spin, air.Density, air.viscosity())
	cl := LiftCoefficient(relative, spin)

	q := 0.5 * air.Density * speed * speed
	dragMag := cd * q * BallArea / BallMass
	dragAccel := relative.Normalize().Scale(-dragMag)

	magnusAccel := vecmath.Vec3{}
	if spin.Magnitude() > 0 {
		spinHat := spin.Normalize()
		velHat := relative.Normalize()
		liftDir := spinHat.Cross(velHat)
		if liftDir.Magnitude() > 0 {
			liftMag := cl * q * BallArea / BallMass
			magnusAccel = liftDir.Normalize().Scale(liftMag)
		}
	}

	return dragAccel.Add(magnusAccel).Add(gravity)
}
