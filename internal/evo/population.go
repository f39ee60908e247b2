package evo

import (
	"fmt"
	"math/rand"
	"sort"

	"tspevo/internal/cityset"
)

type PopulationConfig struct {
	Size    int
	Elitism int
	TopK    int // elite pool size parents are drawn from; 0 means Size/4
	Seed    int64
}

// Population owns its members and the random source every stochastic
// operator draws from. It is not safe for concurrent use.
type Population struct {
	cfg        PopulationConfig
	set        *cityset.Set
	rng        *rand.Rand
	selector   EliteSelector
	members    []*Genome
	generation int
}

func (c PopulationConfig) withDefaults() PopulationConfig {
	if c.TopK == 0 {
		c.TopK = c.Size / 4
	}
	return c
}

// Validate checks the size, elitism and pool constraints after defaults.
func (c PopulationConfig) Validate() error {
	c = c.withDefaults()
	if c.Size <= 0 {
		return fmt.Errorf("%w: population size must be > 0, got %d", ErrInvalidConfig, c.Size)
	}
	if c.Elitism < 0 || c.Elitism > c.Size {
		return fmt.Errorf("%w: elitism must be in [0, %d], got %d", ErrInvalidConfig, c.Size, c.Elitism)
	}
	if (c.Size-c.Elitism)%2 != 0 {
		return fmt.Errorf("%w: size minus elitism must be even, got %d-%d", ErrInvalidConfig, c.Size, c.Elitism)
	}
	if c.Size > c.Elitism && (c.TopK < 1 || c.TopK > c.Size) {
		return fmt.Errorf("%w: top-k must be in [1, %d], got %d", ErrInvalidConfig, c.Size, c.TopK)
	}
	return nil
}

// NewPopulation validates cfg and seeds Size random tours over set.
func NewPopulation(cfg PopulationConfig, set *cityset.Set) (*Population, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if set == nil || set.Len() <= 1 {
		n := 0
		if set != nil {
			n = set.Len()
		}
		return nil, fmt.Errorf("%w: need at least 2 cities, got %d", ErrDegenerateCitySet, n)
	}
	if set.Coincident() {
		return nil, fmt.Errorf("%w: all cities share one position", ErrDegenerateCitySet)
	}

	p := &Population{
		cfg: cfg.withDefaults(),
		set: set,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
	p.initialize()
	return p, nil
}

func (p *Population) initialize() {
	cities := p.set.Cities()
	p.members = make([]*Genome, p.cfg.Size)
	for i := range p.members {
		order := p.rng.Perm(len(cities))
		chromosome := make([]*cityset.City, len(cities))
		for j, idx := range order {
			chromosome[j] = cities[idx]
		}
		p.members[i] = &Genome{chromosome: chromosome}
	}
}

// StepGeneration replaces the members with the next generation and returns
// the fittest member of the generation it replaced.
func (p *Population) StepGeneration(crossover CrossoverKind, mutation MutationKind) (*Genome, error) {
	if err := checkKinds(crossover, mutation); err != nil {
		return nil, err
	}

	ranked := p.rank()
	parentCount := p.cfg.Size - p.cfg.Elitism
	parents, err := p.selector.Select(p.rng, ranked, p.cfg.TopK, parentCount)
	if err != nil {
		return nil, err
	}

	next := make([]*Genome, 0, p.cfg.Size)
	for i := 0; i+1 < len(parents); i += 2 {
		child1, child2, err := Crossover(p.rng, parents[i], parents[i+1], crossover)
		if err != nil {
			return nil, err
		}
		if err := child1.Mutate(p.rng, mutation); err != nil {
			return nil, err
		}
		if err := child2.Mutate(p.rng, mutation); err != nil {
			return nil, err
		}
		next = append(next, child1, child2)
	}
	for _, elite := range ranked[len(ranked)-p.cfg.Elitism:] {
		next = append(next, elite.Genome)
	}

	p.members = next
	p.generation++
	return ranked[len(ranked)-1].Genome, nil
}

// rank scores every member once and sorts ascending by fitness. The sort is
// stable so ties keep member order and seeded runs stay reproducible.
func (p *Population) rank() []ScoredGenome {
	ranked := make([]ScoredGenome, len(p.members))
	for i, g := range p.members {
		ranked[i] = ScoredGenome{Genome: g, Fitness: g.Fitness()}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Fitness < ranked[j].Fitness
	})
	return ranked
}

// Members returns the current generation. The genomes must not be mutated.
func (p *Population) Members() []*Genome {
	out := make([]*Genome, len(p.members))
	copy(out, p.members)
	return out
}

// Fitnesses returns member fitness in member order.
func (p *Population) Fitnesses() []float64 {
	out := make([]float64, len(p.members))
	for i, g := range p.members {
		out[i] = g.Fitness()
	}
	return out
}

func (p *Population) Size() int                { return p.cfg.Size }
func (p *Population) Generation() int          { return p.generation }
func (p *Population) Config() PopulationConfig { return p.cfg }
func (p *Population) Cities() *cityset.Set     { return p.set }

// Best returns the fittest current member.
func (p *Population) Best() *Genome {
	ranked := p.rank()
	return ranked[len(ranked)-1].Genome
}
