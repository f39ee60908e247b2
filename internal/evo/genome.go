package evo

import (
	"fmt"
	"strings"

	"tspevo/internal/cityset"
)

// Genome is one candidate tour: an ordering of every city in the set.
//
// Genomes handed out by a Population are never modified again; Mutate is only
// called on fresh crossover children before they join the next generation.
type Genome struct {
	chromosome []*cityset.City
}

// NewGenome copies cities into a new chromosome.
func NewGenome(cities []*cityset.City) *Genome {
	chromosome := make([]*cityset.City, len(cities))
	copy(chromosome, cities)
	return &Genome{chromosome: chromosome}
}

func (g *Genome) Len() int {
	return len(g.chromosome)
}

// Chromosome returns a copy of the ordering.
func (g *Genome) Chromosome() []*cityset.City {
	out := make([]*cityset.City, len(g.chromosome))
	copy(out, g.chromosome)
	return out
}

// TourLength sums the edges of the closed tour, including last -> first.
func (g *Genome) TourLength() float64 {
	n := len(g.chromosome)
	if n < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < n; i++ {
		total += cityset.Distance(g.chromosome[i], g.chromosome[(i+1)%n])
	}
	return total
}

// Fitness is the reciprocal of the tour length. A zero-length tour scores 0.
func (g *Genome) Fitness() float64 {
	length := g.TourLength()
	if length == 0 {
		return 0
	}
	return 1 / length
}

// Replicate returns a genome with its own ordering over the same cities.
func (g *Genome) Replicate() *Genome {
	return NewGenome(g.chromosome)
}

// Solution returns the city ids in tour order.
func (g *Genome) Solution() []string {
	ids := make([]string, len(g.chromosome))
	for i, c := range g.chromosome {
		ids[i] = c.ID()
	}
	return ids
}

func (g *Genome) String() string {
	return fmt.Sprintf("Distance:%.2f Solution:[%s]", g.TourLength(), strings.Join(g.Solution(), " "))
}

// IsPermutationOf reports whether the chromosome holds every city of set
// exactly once.
func (g *Genome) IsPermutationOf(set *cityset.Set) bool {
	if len(g.chromosome) != set.Len() {
		return false
	}
	want := make(map[*cityset.City]bool, set.Len())
	for i := 0; i < set.Len(); i++ {
		want[set.At(i)] = false
	}
	for _, c := range g.chromosome {
		seen, ok := want[c]
		if !ok || seen {
			return false
		}
		want[c] = true
	}
	return true
}
