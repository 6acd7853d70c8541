package simulation

// Stats aggregates a snapshot for reports and for comparing strategies.
type Stats struct {
	Tick             uint64
	Ants             int
	Pheromones       int
	MeanPower        float64
	MeanDisplacement float64 // per ant, since the previous snapshot
	OutOfBounds      int     // ants left outside the unit square by a bounce
}

// ComputeStats summarises cur. prev may be nil; displacement is then zero.
// Ants are paired by index, which holds because the population never changes
// between two snapshots of the same run.
func ComputeStats(cur, prev *Snapshot) Stats {
	s := Stats{
		Tick:       cur.Tick,
		Ants:       len(cur.Ants),
		Pheromones: len(cur.Pheromones),
	}

	for _, p := range cur.Pheromones {
		s.MeanPower += p.Pow
	}
	if s.Pheromones > 0 {
		s.MeanPower /= float64(s.Pheromones)
	}

	for _, a := range cur.Ants {
		if a.Pos.X < 0 || a.Pos.X > 1 || a.Pos.Y < 0 || a.Pos.Y > 1 {
			s.OutOfBounds++
		}
	}

	if prev != nil && len(prev.Ants) == len(cur.Ants) && s.Ants > 0 {
		for i, a := range cur.Ants {
			s.MeanDisplacement += a.Pos.DistanceTo(prev.Ants[i].Pos)
		}
		s.MeanDisplacement /= float64(s.Ants)
	}
	return s
}
