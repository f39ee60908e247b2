package evo

import (
	"fmt"
	"math/rand"
)

// Mutate perturbs the chromosome in place. Kind and length are checked before
// any random draw so a rejected call leaves both the genome and rng untouched.
func (g *Genome) Mutate(rng *rand.Rand, kind MutationKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidMutationKind, kind)
	}
	if len(g.chromosome) < 2 {
		return fmt.Errorf("%w: cannot mutate a chromosome of %d cities", ErrDegenerateCitySet, len(g.chromosome))
	}
	if rng == nil {
		return fmt.Errorf("random source is required")
	}
	if kind == RandomMutation {
		kind = []MutationKind{SwapMutation, InversionMutation, EdgeExchangeMutation}[rng.Intn(3)]
	}

	p1, p2 := distinctPoints(rng, len(g.chromosome))
	switch kind {
	case SwapMutation:
		g.swap(p1, p2)
	case InversionMutation:
		if p1 > p2 {
			p1, p2 = p2, p1
		}
		g.invert(p1, p2)
	case EdgeExchangeMutation:
		g.exchangeEdges(p1, p2)
	}
	return nil
}

func (g *Genome) swap(i, j int) {
	g.chromosome[i], g.chromosome[j] = g.chromosome[j], g.chromosome[i]
}

// invert reverses the half-open segment [from, to).
func (g *Genome) invert(from, to int) {
	for i, j := from, to-1; i < j; i, j = i+1, j-1 {
		g.swap(i, j)
	}
}

// exchangeEdges swaps the successors of p1 and p2. No segment is reversed, so
// this is not a textbook 2-opt move.
func (g *Genome) exchangeEdges(p1, p2 int) {
	n := len(g.chromosome)
	g.swap((p1+1)%n, (p2+1)%n)
}

// distinctPoints draws two different positions in [0, n), in draw order.
func distinctPoints(rng *rand.Rand, n int) (int, int) {
	p1 := rng.Intn(n)
	p2 := rng.Intn(n - 1)
	if p2 >= p1 {
		p2++
	}
	return p1, p2
}

// cutPoints draws two different positions in [0, n) and returns them sorted.
func cutPoints(rng *rand.Rand, n int) (int, int) {
	p1, p2 := distinctPoints(rng, n)
	if p1 > p2 {
		p1, p2 = p2, p1
	}
	return p1, p2
}
