package ants

import (
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
)

// World owns the colony and the pheromone field. It is not safe for
// concurrent use: callers that render while ticking must serialise access
// themselves (see simulation.Engine).
type World struct {
	Ants       []Ant
	Pheromones []Pheromone

	src Source
}

// Option customises a World at construction.
type Option func(*World)

// WithSource replaces the process-wide random generator. It exists for
// tests that need reproducible sequential runs; the source is wrapped so it
// may be shared by the workers of EvolveThreaded.
func WithSource(src Source) Option {
	return func(w *World) {
		w.src = &lockedSource{src: src}
	}
}

// NewWorld builds a world of n randomly placed ants and no pheromones.
func NewWorld(n int, opts ...Option) *World {
	w := &World{src: globalSource{}}
	for _, opt := range opts {
		opt(w)
	}
	if n < 0 {
		n = 0
	}
	w.Ants = make([]Ant, n)
	for i := range w.Ants {
		w.Ants[i] = NewAnt(w.src)
	}
	return w
}

// Evolve advances the world by one tick, sequentially.
//
// Every ant deposits a pheromone where it stands before moving, so ants
// later in the slice already sense the fresh deposits of earlier ones.
func (w *World) Evolve() {
	for i := range w.Pheromones {
		w.Pheromones[i].Evolve()
	}
	w.prune()
	for i := range w.Ants {
		a := &w.Ants[i]
		w.Pheromones = append(w.Pheromones, NewPheromone(a.Pos))
		a.Evolve(w.Pheromones, w.src)
	}
}

// EvolveThreaded advances the world by one tick using up to threads workers.
//
// Pheromones are aged in contiguous chunks, then pruned sequentially. Ants
// are then processed in contiguous chunks: inside a chunk ants run in
// order, chunks run concurrently. Deposits are appended under the write
// lock, which is released before the ant scans the field under the read
// lock. Whether an ant sees deposits from other chunks during the same tick
// depends on scheduling.
func (w *World) EvolveThreaded(threads int) {
	if threads < 1 {
		threads = 1
	}

	var decay errgroup.Group
	decay.SetLimit(threads)
	for _, c := range chunks(len(w.Pheromones), threads) {
		part := w.Pheromones[c.lo:c.hi]
		decay.Go(func() error {
			for i := range part {
				part[i].Evolve()
			}
			return nil
		})
	}
	_ = decay.Wait()
	w.prune()

	var (
		mu    sync.RWMutex
		steer errgroup.Group
	)
	steer.SetLimit(threads)
	for _, c := range chunks(len(w.Ants), threads) {
		part := w.Ants[c.lo:c.hi]
		steer.Go(func() error {
			for i := range part {
				a := &part[i]

				mu.Lock()
				w.Pheromones = append(w.Pheromones, NewPheromone(a.Pos))
				mu.Unlock()

				mu.RLock()
				a.Evolve(w.Pheromones, w.src)
				mu.RUnlock()
			}
			return nil
		})
	}
	_ = steer.Wait()
}

// prune drops every pheromone whose power is spent, keeping insertion order.
func (w *World) prune() {
	w.Pheromones = slices.DeleteFunc(w.Pheromones, func(p Pheromone) bool {
		return p.Pow <= 0
	})
}
