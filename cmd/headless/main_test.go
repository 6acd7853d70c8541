package main

import (
	"testing"
	"time"

	"github.com/lao-tseu-is-alive/go-ant-simulation/pkg/simulation"
)

func TestSpeedup(t *testing.T) {
	seq := []runStats{{total: 4 * time.Second}, {total: 2 * time.Second}}
	par := []runStats{{total: time.Second}, {total: 2 * time.Second}}
	if got := speedup(seq, par); got != 2 {
		t.Fatalf("expected speedup 2, got %v", got)
	}
	if got := speedup(seq, nil); got != 0 {
		t.Fatalf("expected speedup 0 without parallel runs, got %v", got)
	}
}

func TestMeanPerTick(t *testing.T) {
	rs := []runStats{{total: 100 * time.Millisecond}, {total: 300 * time.Millisecond}}
	if got := meanPerTick(rs, 10); got != 20*time.Millisecond {
		t.Fatalf("expected 20ms per tick, got %v", got)
	}
	if got := meanPerTick(nil, 10); got != 0 {
		t.Fatalf("expected 0 for no runs, got %v", got)
	}
}

func TestRunColony(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.NumAnts = 20
	cfg.Threads = 3

	for _, parallel := range []bool{false, true} {
		rs := runColony(1, 7, 5, cfg, parallel)
		if rs.final.Tick != 5 {
			t.Fatalf("parallel=%t: expected tick 5, got %d", parallel, rs.final.Tick)
		}
		if rs.final.Ants != 20 {
			t.Fatalf("parallel=%t: expected 20 ants, got %d", parallel, rs.final.Ants)
		}
		// Every ant drops one pheromone per tick and none has decayed away yet.
		if rs.final.Pheromones != 100 {
			t.Fatalf("parallel=%t: expected 100 pheromones, got %d", parallel, rs.final.Pheromones)
		}
		if rs.final.MeanDisplacement <= 0 {
			t.Fatalf("parallel=%t: expected ants to move on the last tick", parallel)
		}
		if rs.runID == "" {
			t.Fatalf("parallel=%t: expected a run id", parallel)
		}
	}
	if cfg.Parallel != true {
		t.Fatalf("runColony must not modify the shared config")
	}
}
