package playresolver

import "diamondsim/field"

// ForceMap returns, for each base, whether the runner there (if any) is
// forced to advance: forces propagate upward from home. The batter is
// always forced to first; first's runner is forced iff first is
// occupied; second's runner is forced iff first and second are both
// occupied; third's runner is forced iff first, second, and third are
// all occupied.
func ForceMap(runners map[field.Base]*BaseRunner) map[field.Base]bool {
	forced := map[field.Base]bool{
		field.First:  true,
		field.Second: runners[field.First] != nil,
		field.Third:  runners[field.First] != nil && runners[field.Second] != nil,
	}
	return forced
}
