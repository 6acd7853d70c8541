package geometry

import "math"

// AngleDiff returns the signed difference a - b folded into [-Pi, Pi],
// i.e. the shortest rotation that brings heading b onto heading a.
//
// Only differences strictly beyond ±Pi are folded: a raw difference of
// exactly +Pi or -Pi is returned unchanged. Steering relies on that bias.
func AngleDiff(a, b float64) float64 {
	d := a - b
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
