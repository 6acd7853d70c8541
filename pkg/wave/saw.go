// Package wave generates periodic signals from a continuously rising value,
// such as a tick counter.
package wave

import "math"

// Saw samples a symmetric saw (triangle) wave at state.
//
// The period is length, shifted by phase. With abs set the output ranges
// over [0, amplitude], peaking at the start of each period. Otherwise it is
// centred on zero and ranges over [-amplitude/4, amplitude/4].
func Saw(state, phase, length, amplitude float64, abs bool) float64 {
	s := math.Mod(state+phase, length) / length
	s = math.Abs(s-0.5) * 2
	if abs {
		return s * amplitude
	}
	return (s - 0.5) * amplitude / 2
}
