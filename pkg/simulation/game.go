package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lao-tseu-is-alive/go-ant-simulation/pkg/render"
	"github.com/lao-tseu-is-alive/go-ant-simulation/pkg/ui"
	"github.com/lao-tseu-is-alive/go-ant-simulation/pkg/wave"
	"github.com/tochemey/goakt/v3/actor"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Game is the ebiten front end. It never touches the world: it asks the
// WorldActor for ticks and paints whatever snapshot came back last.
type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	worldPID   *actor.PID
	snapshotCh chan *Snapshot
	lastState  *Snapshot

	frame  *render.Frame
	canvas *ebiten.Image

	// UI Controls
	panel          *ui.Panel
	widgetThreads  *ui.Slider
	widgetParallel *ui.Checkbox

	cfg *Config

	// Timing instrumentation
	lastUpdate time.Time
	updateAvg  float64 // Rolling average in ms
	drawAvg    float64 // Rolling average in ms
}

// NewGame spawns the world actor in system and wires the control panel to it.
func NewGame(ctx context.Context, cfg *Config, system actor.ActorSystem) (*Game, error) {
	// Buffer to avoid blocking the world between two frames
	snapshotCh := make(chan *Snapshot, 4)

	worldPID, err := system.Spawn(ctx, "world", NewWorldActor(snapshotCh, NewEngine(cfg), cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}

	g := &Game{
		ctx:        ctx,
		System:     system,
		worldPID:   worldPID,
		snapshotCh: snapshotCh,
		lastState:  &Snapshot{}, // Avoid nil pointer
		frame:      render.NewFrame(cfg.GridWidth, cfg.GridHeight),
		canvas:     ebiten.NewImage(cfg.GridWidth, cfg.GridHeight),
		cfg:        cfg,
		lastUpdate: time.Now(),
	}

	g.panel = ui.NewPanel("Evolution", 10, 10, 200)
	g.widgetThreads = ui.NewSlider("Threads", 180, 1, 64, cfg.Threads)
	g.widgetParallel = ui.NewCheckbox("Parallel", cfg.Parallel)
	g.panel.Add(g.widgetThreads)
	g.panel.Add(g.widgetParallel)
	g.panel.Add(ui.NewButton("Reset colony", 120, g.reset))
	return g, nil
}

func (g *Game) reset() {
	g.tell(&emptypb.Empty{})
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	// 1. Update UI Panel and forward changed settings to the world
	if g.cfg.ShowPanel {
		g.panel.Update()
		if g.widgetThreads.Changed() {
			g.tell(wrapperspb.Int32(int32(g.widgetThreads.Value)))
		}
		if g.widgetParallel.Changed() {
			g.tell(wrapperspb.Bool(g.widgetParallel.Value))
		}
	}

	// 2. Retrieve Latest State (Non-blocking), keep only the newest
Drain:
	for {
		select {
		case snap := <-g.snapshotCh:
			g.lastState = snap
		default:
			break Drain
		}
	}

	// 3. Trigger Simulation Step
	now := time.Now()
	g.tell(durationpb.New(now.Sub(g.lastUpdate)))
	g.lastUpdate = now
	return nil
}

func (g *Game) tell(msg proto.Message) {
	if err := actor.Tell(g.ctx, g.worldPID, msg); err != nil {
		g.System.Logger().Errorf("failed to reach world: %v", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	// 1. Paint the last snapshot in the fixed-resolution grid, then scale it up
	render.Paint(g.frame, g.lastState.Ants, g.lastState.Pheromones, g.antShade())
	g.canvas.WritePixels(g.frame.Pix)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.cfg.WindowScale, g.cfg.WindowScale)
	screen.DrawImage(g.canvas, op)

	// 2. Draw UI Panel
	if g.cfg.ShowPanel {
		g.panel.Draw(screen)
	}

	// 3. Performance stats on the right side
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\n\nTick: %d\nAnts: %d\nPheromones: %d\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.lastState.Tick,
		len(g.lastState.Ants),
		len(g.lastState.Pheromones),
		g.updateAvg,
		g.drawAvg)
	w, _ := g.Layout(0, 0)
	ebitenutil.DebugPrintAt(screen, msg, w-160, 10)
}

// antShade pulses the ant brightness between half and full when enabled.
func (g *Game) antShade() float64 {
	if g.cfg.PulsePeriod <= 0 {
		return 1
	}
	return 0.5 + wave.Saw(float64(g.lastState.Tick), 0, g.cfg.PulsePeriod, 0.5, true)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return int(float64(g.cfg.GridWidth) * g.cfg.WindowScale), int(float64(g.cfg.GridHeight) * g.cfg.WindowScale)
}
