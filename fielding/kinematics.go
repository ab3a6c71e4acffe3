package fielding

import "math"

// timeToCover is the accelerate-then-cruise kinematic shared by fielders
// chasing a batted ball and baserunners advancing between bases: phase 1
// accelerates from rest at a to vMax, covering vMax^2/(2a) over vMax/a
// seconds; phase 2 covers the remaining distance at vMax. routeEfficiency
// multiplies the effective distance before either phase, so a worse route
// inflates the distance actually covered rather than the speed.
func timeToCover(distance, vMax, a, routeEfficiency float64) float64 {
	if routeEfficiency <= 0 {
		routeEfficiency = 1
	}
	effective := distance / routeEfficiency
	if effective <= 0 {
		return 0
	}

	accelDistance := (vMax * vMax) / (2 * a)
	if effective <= accelDistance {
		// Never reaches vMax: invert d = 0.5*a*t^2.
		return math.Sqrt(2 * effective / a)
	}

	accelTime := vMax / a
	cruiseDistance := effective - accelDistance
	cruiseTime := cruiseDistance / vMax
	return accelTime + cruiseTime
}

// TimeToCover exports the kinematic for package playresolver's runner race
// logic, which shares the exact same accelerate-then-cruise model.
func TimeToCover(distance, vMax, a, routeEfficiency float64) float64 {
	return timeToCover(distance, vMax, a, routeEfficiency)
}
