package evo

import (
	"fmt"
	"math/rand"

	"tspevo/internal/cityset"
)

// Crossover recombines two parents into two fresh children. The parents are
// only read.
func Crossover(rng *rand.Rand, parent1, parent2 *Genome, kind CrossoverKind) (*Genome, *Genome, error) {
	if !kind.Valid() {
		return nil, nil, fmt.Errorf("%w: %s", ErrInvalidCrossoverKind, kind)
	}
	if parent1 == nil || parent2 == nil {
		return nil, nil, fmt.Errorf("%w: missing parent", ErrParentMismatch)
	}
	n := len(parent1.chromosome)
	if n != len(parent2.chromosome) || n < 2 {
		return nil, nil, fmt.Errorf("%w: lengths %d and %d", ErrParentMismatch, n, len(parent2.chromosome))
	}
	if rng == nil {
		return nil, nil, fmt.Errorf("random source is required")
	}

	a, b := parent1.chromosome, parent2.chromosome
	var child1, child2 []*cityset.City
	switch kind {
	case OrderCrossover:
		p1, p2 := cutPoints(rng, n)
		child1, child2 = orderCrossover(a, b, p1, p2)
	case PartiallyMappedCrossover:
		p1, p2 := cutPoints(rng, n)
		child1, child2 = partiallyMappedCrossover(a, b, p1, p2)
	case CycleCrossover:
		child1, child2 = cycleCrossover(a, b)
	}
	return &Genome{chromosome: child1}, &Genome{chromosome: child2}, nil
}

// orderCrossover gives each child the other parent's [p1,p2) segment, then
// fills the rest from its own parent in order, starting at p2 and wrapping.
func orderCrossover(a, b []*cityset.City, p1, p2 int) ([]*cityset.City, []*cityset.City) {
	return orderFill(a, b, p1, p2), orderFill(b, a, p1, p2)
}

func orderFill(own, other []*cityset.City, p1, p2 int) []*cityset.City {
	n := len(own)
	child := make([]*cityset.City, n)
	placed := make(map[*cityset.City]bool, n)
	for i := p1; i < p2; i++ {
		child[i] = other[i]
		placed[other[i]] = true
	}
	write := p2
	for i := 0; i < n; i++ {
		gene := own[(p2+i)%n]
		if placed[gene] {
			continue
		}
		child[write%n] = gene
		placed[gene] = true
		write++
	}
	return child
}

// partiallyMappedCrossover swaps the [p1,p2) segments and repairs conflicts
// outside the segment by following the segment's position-wise mapping.
func partiallyMappedCrossover(a, b []*cityset.City, p1, p2 int) ([]*cityset.City, []*cityset.City) {
	return mappedFill(a, b, p1, p2), mappedFill(b, a, p1, p2)
}

func mappedFill(own, other []*cityset.City, p1, p2 int) []*cityset.City {
	n := len(own)
	child := make([]*cityset.City, n)
	placed := make(map[*cityset.City]bool, n)
	// segmentAt maps a gene of the inherited segment to its position.
	segmentAt := make(map[*cityset.City]int, p2-p1)
	for i := p1; i < p2; i++ {
		child[i] = other[i]
		placed[other[i]] = true
		segmentAt[other[i]] = i
	}

	for i := 0; i < n; i++ {
		if i >= p1 && i < p2 {
			continue
		}
		gene := own[i]
		consumed := make(map[int]bool)
		for placed[gene] {
			at, ok := segmentAt[gene]
			if !ok || consumed[at] {
				break
			}
			consumed[at] = true
			gene = own[at]
		}
		child[i] = gene
		placed[gene] = true
	}
	return child
}

// cycleCrossover keeps the cycle through index 0 in place and takes every other
// position from the opposite parent.
func cycleCrossover(a, b []*cityset.City) ([]*cityset.City, []*cityset.City) {
	n := len(a)
	indexInB := make(map[*cityset.City]int, n)
	for i, gene := range b {
		indexInB[gene] = i
	}

	child1 := make([]*cityset.City, n)
	child2 := make([]*cityset.City, n)
	inCycle := make([]bool, n)
	for i := 0; !inCycle[i]; {
		inCycle[i] = true
		child1[i] = a[i]
		child2[i] = b[i]
		next, ok := indexInB[a[i]]
		if !ok {
			break
		}
		i = next
	}
	for i := 0; i < n; i++ {
		if !inCycle[i] {
			child1[i] = b[i]
			child2[i] = a[i]
		}
	}
	return child1, child2
}
