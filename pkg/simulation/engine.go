package simulation

import (
	"slices"
	"sync"
	"time"

	"github.com/lao-tseu-is-alive/go-ant-simulation/pkg/ants"
)

// Snapshot is a copy of the world taken between two ticks. It shares no
// memory with the live world, renderers may keep it as long as they like.
type Snapshot struct {
	Tick       uint64
	Threads    int
	Parallel   bool
	Ants       []ants.Ant
	Pheromones []ants.Pheromone
}

// TickReport describes one completed tick.
type TickReport struct {
	Tick       uint64
	Ants       int
	Pheromones int
	Elapsed    time.Duration
}

// Engine guards a World with a single coarse lock. A whole tick runs under
// it, and so does taking a snapshot, so readers only ever see the world
// before or after a tick.
type Engine struct {
	mu       sync.Mutex
	world    *ants.World
	opts     []ants.Option
	threads  int
	parallel bool
	ticks    uint64
}

// NewEngine creates an engine populated with cfg.NumAnts ants.
// opts are forwarded to ants.NewWorld, now and on every Reset.
func NewEngine(cfg *Config, opts ...ants.Option) *Engine {
	return &Engine{
		world:    ants.NewWorld(cfg.NumAnts, opts...),
		opts:     opts,
		threads:  max(cfg.Threads, 1),
		parallel: cfg.Parallel,
	}
}

// Step advances the world by one tick with the current strategy.
func (e *Engine) Step() TickReport {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	if e.parallel {
		e.world.EvolveThreaded(e.threads)
	} else {
		e.world.Evolve()
	}
	e.ticks++
	return TickReport{
		Tick:       e.ticks,
		Ants:       len(e.world.Ants),
		Pheromones: len(e.world.Pheromones),
		Elapsed:    time.Since(start),
	}
}

// Snapshot copies the current world.
func (e *Engine) Snapshot() *Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return &Snapshot{
		Tick:       e.ticks,
		Threads:    e.threads,
		Parallel:   e.parallel,
		Ants:       slices.Clone(e.world.Ants),
		Pheromones: slices.Clone(e.world.Pheromones),
	}
}

// SetThreads changes the worker count used by parallel ticks.
func (e *Engine) SetThreads(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.threads = max(n, 1)
}

// SetParallel switches between the sequential and the threaded tick.
func (e *Engine) SetParallel(parallel bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.parallel = parallel
}

// Reset replaces the world with a fresh colony of n ants and restarts the tick count.
func (e *Engine) Reset(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.world = ants.NewWorld(n, e.opts...)
	e.ticks = 0
}

// Ticks returns the number of ticks since creation or the last Reset.
func (e *Engine) Ticks() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ticks
}
