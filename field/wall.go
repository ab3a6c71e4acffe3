package field

import "diamondsim/vecmath"

// WallPoint is one vertex of an outfield wall polygon: a ground-frame
// (x, y) position paired with the wall's height above the playing surface
// at that point, since real outfield walls vary in height around the arc
// (a short porch vs. a deep-center batter's eye).
type WallPoint struct {
	Position vecmath.Vec3 // field frame; Z ignored, height carried separately
	Height   float64      // meters above ground level at this point
}

// Wall is an ordered polyline tracing the outfield wall's ground-plane
// footprint, used by the trajectory integrator's wall-collision
// termination condition. Points should run in a consistent order (e.g.
// left-field foul pole to right-field foul pole) so consecutive points
// form the wall's actual segments.
type Wall struct {
	Points []WallPoint
}

// segmentIntersect2D finds the intersection of segments (p1,p2) and
// (p3,p4) projected onto the XY ground plane, returning the interpolation
// fraction t along (p1,p2) and whether an intersection exists within both
// segments' bounds.
func segmentIntersect2D(p1, p2, p3, p4 vecmath.Vec3) (t float64, hit bool) {
	d1x, d1y := p2.X-p1.X, p2.Y-p1.Y
	d2x, d2y := p4.X-p3.X, p4.Y-p3.Y

	denom := d1x*d2y - d1y*d2x
	if denom == 0 {
		return 0, false // parallel or degenerate
	}

	dx, dy := p3.X-p1.X, p3.Y-p1.Y
	t = (dx*d2y - dy*d2x) / denom
	u := (dx*d1y - dy*d1x) / denom

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return 0, false
	}
	return t, true
}

// Intersect checks whether the ball's flight segment from prevField to
// currField (both field-frame positions, one sample apart) crosses the
// wall's ground-plane footprint at a height below the wall, meaning the
// ball has struck the wall rather than cleared it. It returns the
// field-frame contact point and true on a strike; if the ball's
// interpolated height at the crossing point exceeds the wall height there,
// the ball clears the wall and Intersect reports no hit (the trajectory
// continues; the caller treats this as a home run once it also leaves the
// park boundary, or simply keeps integrating).
func (w Wall) Intersect(prevField, currField vecmath.Vec3) (contact vecmath.Vec3, hit bool) {
	for i := 0; i+1 < len(w.Points); i++ {
		a := w.Points[i]
		b := w.Points[i+1]

		t, crosses := segmentIntersect2D(prevField, currField, a.Position, b.Position)
		if !crosses {
			continue
		}

		ballHeightAtCrossing := prevField.Z + t*(currField.Z-prevField.Z)

		// Interpolate wall height along the wall segment using the
		// fraction of the crossing point along (a, b) in ground distance.
		segLen := a.Position.Horizontal().Distance(b.Position.Horizontal())
		var wallFrac float64
		if segLen > 0 {
			crossPoint := vecmath.Vec3{
				X: prevField.X + t*(currField.X-prevField.X),
				Y: prevField.Y + t*(currField.Y-prevField.Y),
			}
			wallFrac = a.Position.Horizontal().Distance(crossPoint) / segLen
		}
		wallHeightAtCrossing := a.Height + wallFrac*(b.Height-a.Height)

		if ballHeightAtCrossing <= wallHeightAtCrossing {
			contact = vecmath.Vec3{
				X: prevField.X + t*(currField.X-prevField.X),
				Y: prevField.Y + t*(currField.Y-prevField.Y),
				Z: ballHeightAtCrossing,
			}
			return contact, true
		}
	}
	return vecmath.Vec3{}, false
}
