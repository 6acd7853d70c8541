package simulation

import (
	"time"

	"github.com/google/uuid"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Messages understood by the WorldActor:
//
//	*durationpb.Duration   run one tick (the payload is the frame delta time)
//	*wrapperspb.Int32Value set the worker count of parallel ticks
//	*wrapperspb.BoolValue  switch between parallel and sequential ticks
//	*emptypb.Empty         reset the colony
//
// After every tick the actor pushes a fresh Snapshot on its channel.

// WorldActor drives the Engine. Its mailbox serialises every mutation, and
// the engine lock keeps snapshots consistent for anyone else reading it.
type WorldActor struct {
	engine     *Engine
	cfg        *Config
	runID      string
	snapshotCh chan<- *Snapshot
	// --- Benchmark Stats ---
	ticksSinceLog int
	computeTime   time.Duration
	frameTime     time.Duration
	lastLogTime   time.Time
}

// NewWorldActor creates the world logic unit
func NewWorldActor(snapshotCh chan<- *Snapshot, engine *Engine, cfg *Config) *WorldActor {
	return &WorldActor{
		engine:      engine,
		cfg:         cfg,
		runID:       uuid.NewString(),
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
}

// RunID identifies this run in the logs.
func (w *WorldActor) RunID() string { return w.runID }

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World %s is hatching %d ants...", w.runID, w.cfg.NumAnts)
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		ctx.Logger().Infof("World %s started (parallel=%t threads=%d)", w.runID, w.cfg.Parallel, w.cfg.Threads)
		w.pushSnapshot()

	// The Main Simulation Step (Driven by Game Loop)
	case *durationpb.Duration:
		report := w.engine.Step()
		w.frameTime += msg.AsDuration()
		w.logBenchmarks(ctx, report)
		w.pushSnapshot()

	case *wrapperspb.Int32Value:
		w.engine.SetThreads(int(msg.GetValue()))
		ctx.Logger().Infof("World %s now evolves with %d threads", w.runID, msg.GetValue())

	case *wrapperspb.BoolValue:
		w.engine.SetParallel(msg.GetValue())
		ctx.Logger().Infof("World %s parallel evolution: %t", w.runID, msg.GetValue())

	case *emptypb.Empty:
		w.engine.Reset(w.cfg.NumAnts)
		ctx.Logger().Infof("World %s reset with %d ants", w.runID, w.cfg.NumAnts)
		w.pushSnapshot()

	default:
		ctx.Unhandled()
	}
}

// logBenchmarks prints the tick telemetry at most once per second.
func (w *WorldActor) logBenchmarks(ctx *actor.ReceiveContext, report TickReport) {
	w.ticksSinceLog++
	w.computeTime += report.Elapsed
	if time.Since(w.lastLogTime) < time.Second {
		return
	}
	n := time.Duration(w.ticksSinceLog)
	ctx.Logger().Infof("🐜 %d ants\t%d pheromones\t%d evolution\t%d micros to compute\t%d micros between frames",
		report.Ants, report.Pheromones, report.Tick,
		(w.computeTime / n).Microseconds(), (w.frameTime / n).Microseconds())
	w.ticksSinceLog = 0
	w.computeTime = 0
	w.frameTime = 0
	w.lastLogTime = time.Now()
}

func (w *WorldActor) pushSnapshot() {
	if w.snapshotCh == nil {
		return
	}
	select {
	case w.snapshotCh <- w.engine.Snapshot():
	default:
		// UI busy, skip frame
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World %s is shutdown after %d ticks", w.runID, w.engine.Ticks())
	return nil
}
