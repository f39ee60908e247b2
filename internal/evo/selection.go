package evo

import (
	"fmt"
	"math/rand"
)

// ScoredGenome pairs a genome with the fitness it had when ranked.
type ScoredGenome struct {
	Genome  *Genome
	Fitness float64
}

// EliteSelector draws parents uniformly, with replacement, from the top k of
// an ascending ranking. Fitness only decides pool membership; it never
// weights the draw.
type EliteSelector struct{}

func (EliteSelector) Name() string {
	return "top-k"
}

func (EliteSelector) Select(rng *rand.Rand, ranked []ScoredGenome, k, n int) ([]*Genome, error) {
	if rng == nil {
		return nil, fmt.Errorf("random source is required")
	}
	if n < 0 {
		return nil, fmt.Errorf("invalid parent count: %d", n)
	}
	if n == 0 {
		return nil, nil
	}
	if k <= 0 || k > len(ranked) {
		return nil, fmt.Errorf("invalid elite pool size: %d", k)
	}
	pool := ranked[len(ranked)-k:]
	parents := make([]*Genome, n)
	for i := range parents {
		parents[i] = pool[rng.Intn(k)].Genome
	}
	return parents, nil
}
