package ants

import (
	"math"

	"github.com/lao-tseu-is-alive/go-ant-simulation/pkg/geometry"
)

const (
	// Step is the base distance an ant covers in one tick.
	Step = 0.0333
	// SteeringDamping divides the heading correction toward the pheromone mean.
	SteeringDamping = 40.0
	// NoiseAmplitude is the full width of the random heading jitter, centred on 0.
	NoiseAmplitude = 0.25
	// headingBias offsets the initial heading draw.
	headingBias = 0.4
)

// Ant is a steerable point agent. Dir is a unit heading; it is only ever
// rotated, never rescaled, so it stays close to unit length.
type Ant struct {
	Pos geometry.Vector `json:"pos"`
	Dir geometry.Vector `json:"dir"`
}

// NewAnt places an ant uniformly in the unit square with a random heading
// biased toward the positive X axis.
func NewAnt(src Source) Ant {
	return Ant{
		Pos: geometry.Vector{X: src.Float64(), Y: src.Float64()},
		Dir: geometry.FromAngle((src.Float64() - headingBias) * 2 * math.Pi),
	}
}

// Evolve steers and moves the ant for one tick.
//
// Every pheromone except those sitting exactly on the ant votes for a
// direction, weighted by its power and by how well it lines up with the
// current heading. The heading turns a fortieth of the way toward the
// weighted mean, picks up some noise, then the ant moves forward. Dense
// fields slow it down. Leaving the unit square turns the ant around and
// replays the same move once; it may still end slightly outside.
func (a *Ant) Evolve(pheromones []Pheromone, src Source) {
	heading := a.Dir.Angle()
	// atan2 never exceeds Pi, so the full-turn correction that used to live
	// here can not trigger. Nothing to do.

	mean, totalWeight := a.weightedMean(heading, pheromones)
	if totalWeight == 0 {
		totalWeight = 1
	}

	if meanHeading := mean.Angle(); meanHeading != 0 {
		a.Dir = a.Dir.Rotate(geometry.AngleDiff(meanHeading, heading) / SteeringDamping)
	}

	noise := (src.Float64() - 0.5) * NoiseAmplitude
	a.Dir = a.Dir.Rotate(noise)

	move := Step / math.Sqrt(totalWeight/10)
	a.Pos = a.Pos.Add(a.Dir.Mul(move))
	if a.outOfBounds() {
		a.Dir = a.Dir.Rotate(math.Pi)
		a.Pos = a.Pos.Add(a.Dir.Mul(move))
	}
}

func (a *Ant) weightedMean(heading float64, pheromones []Pheromone) (geometry.Vector, float64) {
	var mean geometry.Vector
	total := 0.0
	for _, p := range pheromones {
		if p.Pos == a.Pos {
			continue
		}
		toP := p.Pos.Sub(a.Pos)
		diff := math.Abs(geometry.AngleDiff(heading, toP.Angle()))
		if diff == 0 {
			diff = 1
		}
		weight := p.Pow * (2 / diff)
		total += weight * toP.Len()
		mean = mean.Add(toP.Mul(weight))
	}
	return mean, total
}

func (a *Ant) outOfBounds() bool {
	return a.Pos.X < 0 || a.Pos.X > 1 || a.Pos.Y < 0 || a.Pos.Y > 1
}
