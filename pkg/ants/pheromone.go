package ants

import "github.com/lao-tseu-is-alive/go-ant-simulation/pkg/geometry"

// Decay is the power a pheromone loses on every tick.
const Decay = 0.1

// Pheromone is a scent marker left by an ant. Pow is its remaining power;
// World drops it once Pow reaches zero or below.
type Pheromone struct {
	Pos geometry.Vector `json:"pos"`
	Pow float64         `json:"pow"`
}

// NewPheromone returns a full power marker at pos.
func NewPheromone(pos geometry.Vector) Pheromone {
	return Pheromone{Pos: pos, Pow: 1}
}

// Evolve ages the pheromone by one tick. Pow is not clamped.
func (p *Pheromone) Evolve() {
	p.Pow -= Decay
}

// Combine returns the component-wise sum of both markers (position and power).
// It is commutative and associative.
func (p Pheromone) Combine(other Pheromone) Pheromone {
	return Pheromone{
		Pos: p.Pos.Add(other.Pos),
		Pow: p.Pow + other.Pow,
	}
}
