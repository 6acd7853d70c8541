package ants

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/lao-tseu-is-alive/go-ant-simulation/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lifetime counts the ticks a fresh pheromone survives, deposit tick included.
func lifetime() int {
	n := 0
	for p := NewPheromone(geometry.Vector{}); p.Pow > 0; p.Evolve() {
		n++
	}
	return n
}

func TestPheromone_Evolve(t *testing.T) {
	p := NewPheromone(geometry.Vector{X: 0.2, Y: 0.3})
	require.Equal(t, 1.0, p.Pow)

	prev := p.Pow
	for i := 0; i < 15; i++ {
		p.Evolve()
		assert.InDelta(t, prev-Decay, p.Pow, 1e-12)
		assert.Less(t, p.Pow, prev)
		prev = p.Pow
	}
	assert.Less(t, p.Pow, 0.0, "power is not clamped")
}

func TestPheromone_Combine(t *testing.T) {
	a := Pheromone{Pos: geometry.Vector{X: 0.1, Y: 0.2}, Pow: 0.5}
	b := Pheromone{Pos: geometry.Vector{X: 0.3, Y: 0.4}, Pow: 0.25}
	c := Pheromone{Pos: geometry.Vector{X: 1, Y: 1}, Pow: 1}

	assert.Equal(t, a.Combine(b), b.Combine(a))
	left := a.Combine(b).Combine(c)
	right := a.Combine(b.Combine(c))
	assert.True(t, left.Pos.Eq(right.Pos))
	assert.InDelta(t, left.Pow, right.Pow, 1e-12)
	assert.InDelta(t, 0.75, a.Combine(b).Pow, 1e-12)
}

func TestNewWorld(t *testing.T) {
	w := NewWorld(10)
	assert.Len(t, w.Ants, 10)
	assert.Empty(t, w.Pheromones)

	assert.Empty(t, NewWorld(0).Ants)
	assert.Empty(t, NewWorld(-3).Ants)
}

func TestWorld_Evolve_SingleAnt(t *testing.T) {
	w := NewWorld(1)
	before := w.Ants[0]

	w.Evolve()

	require.Len(t, w.Pheromones, 1)
	assert.Equal(t, before.Pos, w.Pheromones[0].Pos)
	assert.Equal(t, 1.0, w.Pheromones[0].Pow)

	// Only noise acts on the heading, plus a half turn when the ant bounced.
	turn := math.Abs(geometry.AngleDiff(w.Ants[0].Dir.Angle(), before.Dir.Angle()))
	if turn > math.Pi/2 {
		turn = math.Abs(math.Pi - turn)
	}
	assert.LessOrEqual(t, turn, NoiseAmplitude/2+1e-9)
}

func TestWorld_Evolve_SingleAntDeterministic(t *testing.T) {
	w := NewWorld(0, WithSource(constSource(0.75)))
	w.Ants = []Ant{{Pos: geometry.Vector{X: 0.5, Y: 0.5}, Dir: geometry.Vector{X: 1, Y: 0}}}

	w.Evolve()

	want := Ant{Pos: geometry.Vector{X: 0.5, Y: 0.5}, Dir: geometry.Vector{X: 1, Y: 0}}
	want.Evolve(nil, constSource(0.75))
	assert.Equal(t, want, w.Ants[0])
	assert.Equal(t, []Pheromone{{Pos: geometry.Vector{X: 0.5, Y: 0.5}, Pow: 1}}, w.Pheromones)
}

func TestWorld_Evolve_PrunesSpentPheromones(t *testing.T) {
	w := NewWorld(0)
	w.Pheromones = []Pheromone{
		{Pos: geometry.Vector{X: 0.1, Y: 0.1}, Pow: 0.05},
		{Pos: geometry.Vector{X: 0.2, Y: 0.2}, Pow: 0.5},
		{Pos: geometry.Vector{X: 0.3, Y: 0.3}, Pow: 0.1},
		{Pos: geometry.Vector{X: 0.3, Y: 0.3}, Pow: 0.9},
	}

	w.Evolve()

	require.Len(t, w.Pheromones, 2)
	assert.Equal(t, geometry.Vector{X: 0.2, Y: 0.2}, w.Pheromones[0].Pos)
	assert.Equal(t, geometry.Vector{X: 0.3, Y: 0.3}, w.Pheromones[1].Pos)
}

func TestWorld_Evolve_Invariants(t *testing.T) {
	const numAnts = 20
	life := lifetime()

	variants := map[string]func(*World){
		"sequential":  (*World).Evolve,
		"threaded-1":  func(w *World) { w.EvolveThreaded(1) },
		"threaded-4":  func(w *World) { w.EvolveThreaded(4) },
		"threaded-7":  func(w *World) { w.EvolveThreaded(7) },
		"threaded-0":  func(w *World) { w.EvolveThreaded(0) },
		"threaded-64": func(w *World) { w.EvolveThreaded(64) },
	}
	for name, evolve := range variants {
		t.Run(name, func(t *testing.T) {
			w := NewWorld(numAnts)
			for tick := 1; tick <= 2*life; tick++ {
				evolve(w)

				require.Len(t, w.Ants, numAnts)
				require.Len(t, w.Pheromones, numAnts*min(tick, life))
				for _, p := range w.Pheromones {
					require.Greater(t, p.Pow, 0.0)
				}
			}
		})
	}
}

func TestWorld_EvolveThreaded_StatisticallyMatchesSequential(t *testing.T) {
	const (
		numAnts = 64
		ticks   = 30
	)
	// run returns the median per-ant displacement over all ticks and the
	// final pheromone count.
	run := func(w *World, evolve func(*World)) (float64, int) {
		steps := make([]float64, 0, numAnts*ticks)
		for tick := 0; tick < ticks; tick++ {
			before := make([]geometry.Vector, len(w.Ants))
			for i, a := range w.Ants {
				before[i] = a.Pos
			}
			evolve(w)
			for i, a := range w.Ants {
				steps = append(steps, a.Pos.DistanceTo(before[i]))
			}
		}
		slices.Sort(steps)
		return steps[len(steps)/2], len(w.Pheromones)
	}

	seqStep, seqCount := run(NewWorld(numAnts, WithSource(rand.New(rand.NewPCG(1, 1)))), (*World).Evolve)
	parStep, parCount := run(NewWorld(numAnts, WithSource(rand.New(rand.NewPCG(1, 1)))), func(w *World) { w.EvolveThreaded(8) })

	assert.Equal(t, seqCount, parCount)
	require.Greater(t, seqStep, 0.0)
	require.Greater(t, parStep, 0.0)
	ratio := parStep / seqStep
	assert.Greater(t, ratio, 1.0/3)
	assert.Less(t, ratio, 3.0)
}

func TestChunks(t *testing.T) {
	tests := []struct {
		name       string
		n, threads int
		want       []span
	}{
		{"empty", 0, 4, nil},
		{"even", 8, 4, []span{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
		{"remainder", 10, 3, []span{{0, 3}, {3, 6}, {6, 9}, {9, 10}}},
		{"small remainder", 11, 4, []span{{0, 2}, {2, 4}, {4, 6}, {6, 8}, {8, 10}, {10, 11}}},
		{"more threads than items", 3, 16, []span{{0, 1}, {1, 2}, {2, 3}}},
		{"zero threads", 3, 0, []span{{0, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chunks(tt.n, tt.threads))
		})
	}
}

func BenchmarkWorld_Evolve(b *testing.B) {
	w := NewWorld(256)
	for i := 0; i < 20; i++ {
		w.Evolve()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Evolve()
	}
}

func BenchmarkWorld_EvolveThreaded(b *testing.B) {
	w := NewWorld(256)
	for i := 0; i < 20; i++ {
		w.EvolveThreaded(16)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.EvolveThreaded(16)
	}
}
