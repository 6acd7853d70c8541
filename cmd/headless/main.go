package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/lao-tseu-is-alive/go-ant-simulation/pkg/ants"
	"github.com/lao-tseu-is-alive/go-ant-simulation/pkg/simulation"
)

type runStats struct {
	runIndex int
	runID    string
	seed     uint64
	parallel bool
	threads  int

	total   time.Duration
	slowest time.Duration
	final   simulation.Stats
}

func (r runStats) mode() string {
	if r.parallel {
		return fmt.Sprintf("parallel/%d", r.threads)
	}
	return "sequential"
}

func (r runStats) perTick(ticks int) time.Duration {
	if ticks <= 0 {
		return 0
	}
	return r.total / time.Duration(ticks)
}

func main() {
	var runs int
	var ticks int
	var seedBase uint64
	var threads int
	var configFile string
	var schemaFile string
	var compare bool

	flag.IntVar(&runs, "runs", 3, "number of headless runs")
	flag.IntVar(&ticks, "ticks", 600, "ticks per run")
	flag.Uint64Var(&seedBase, "seed-base", 42, "RNG seed for run 1, incremented per run")
	flag.IntVar(&threads, "threads", 0, "worker count for parallel runs (0 keeps the configured value)")
	flag.StringVar(&configFile, "config", "", "JSON or YAML configuration file")
	flag.StringVar(&schemaFile, "schema", "configs/config.schema.json", "JSON schema for -config")
	flag.BoolVar(&compare, "compare", false, "run every seed both sequentially and in parallel")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		os.Exit(2)
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		os.Exit(2)
	}

	cfg := simulation.DefaultConfig()
	if configFile != "" {
		loaded, err := simulation.LoadConfig(configFile, schemaFile)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if threads > 0 {
		cfg.Threads = threads
	}

	fmt.Printf("=== Headless Colony Report ===\n")
	fmt.Printf("ants=%d runs=%d ticks=%d threads=%d parallel=%t compare=%t\n\n",
		cfg.NumAnts, runs, ticks, cfg.Threads, cfg.Parallel, compare)

	var seq, par []runStats
	for i := 0; i < runs; i++ {
		seed := seedBase + uint64(i)
		modes := []bool{cfg.Parallel}
		if compare {
			modes = []bool{false, true}
		}
		for _, parallel := range modes {
			rs := runColony(i+1, seed, ticks, cfg, parallel)
			printRun(rs, ticks)
			if parallel {
				par = append(par, rs)
			} else {
				seq = append(seq, rs)
			}
		}
	}

	if compare {
		fmt.Printf("\n=== Comparison ===\n")
		fmt.Printf("sequential  mean tick %v\n", meanPerTick(seq, ticks))
		fmt.Printf("parallel    mean tick %v\n", meanPerTick(par, ticks))
		fmt.Printf("speedup     %.2fx\n", speedup(seq, par))
		fmt.Printf("pheromones  sequential=%.1f parallel=%.1f\n", meanPheromones(seq), meanPheromones(par))
	}
}

func runColony(runIndex int, seed uint64, ticks int, base *simulation.Config, parallel bool) runStats {
	cfg := *base
	cfg.Parallel = parallel
	src := rand.New(rand.NewPCG(seed, seed))
	engine := simulation.NewEngine(&cfg, ants.WithSource(src))

	rs := runStats{
		runIndex: runIndex,
		runID:    uuid.NewString(),
		seed:     seed,
		parallel: parallel,
		threads:  cfg.Threads,
	}
	prev := engine.Snapshot()
	var last *simulation.Snapshot
	for t := 0; t < ticks; t++ {
		if t == ticks-1 {
			last = engine.Snapshot()
		}
		report := engine.Step()
		rs.total += report.Elapsed
		rs.slowest = max(rs.slowest, report.Elapsed)
	}
	if last == nil {
		last = prev
	}
	rs.final = simulation.ComputeStats(engine.Snapshot(), last)
	return rs
}

func printRun(rs runStats, ticks int) {
	fmt.Printf("run %d [%s] seed=%d mode=%s\n", rs.runIndex, rs.runID, rs.seed, rs.mode())
	fmt.Printf("  tick=%d ants=%d pheromones=%d mean_pow=%.3f\n",
		rs.final.Tick, rs.final.Ants, rs.final.Pheromones, rs.final.MeanPower)
	fmt.Printf("  last_step=%.5f out_of_bounds=%d\n", rs.final.MeanDisplacement, rs.final.OutOfBounds)
	fmt.Printf("  total=%v per_tick=%v slowest=%v\n", rs.total, rs.perTick(ticks), rs.slowest)
}

func meanPerTick(rs []runStats, ticks int) time.Duration {
	if len(rs) == 0 {
		return 0
	}
	var sum time.Duration
	for _, r := range rs {
		sum += r.perTick(ticks)
	}
	return sum / time.Duration(len(rs))
}

func meanPheromones(rs []runStats) float64 {
	if len(rs) == 0 {
		return 0
	}
	sum := 0
	for _, r := range rs {
		sum += r.final.Pheromones
	}
	return float64(sum) / float64(len(rs))
}

// speedup is the total sequential time over the total parallel time, 0 when
// either side is missing.
func speedup(seq, par []runStats) float64 {
	var s, p time.Duration
	for _, r := range seq {
		s += r.total
	}
	for _, r := range par {
		p += r.total
	}
	if s == 0 || p == 0 {
		return 0
	}
	return float64(s) / float64(p)
}
