package evo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tspevo/internal/cityset"
)

func TestSwapChangesExactlyTwoPositions(t *testing.T) {
	set := randomSet(t, 11, 20)
	for seed := int64(0); seed < 50; seed++ {
		g := NewGenome(set.Cities())
		before := g.Chromosome()
		require.NoError(t, g.Mutate(rand.New(rand.NewSource(seed)), SwapMutation))

		changed := 0
		for i, c := range g.Chromosome() {
			if c != before[i] {
				changed++
			}
		}
		assert.Equal(t, 2, changed, "seed %d", seed)
		requirePermutation(t, set, g)
	}
}

func TestInversionReversesOnlyTheDrawnSegment(t *testing.T) {
	set := randomSet(t, 5, 15)
	for seed := int64(0); seed < 50; seed++ {
		g := NewGenome(set.Cities())
		before := g.Chromosome()
		require.NoError(t, g.Mutate(rand.New(rand.NewSource(seed)), InversionMutation))
		requirePermutation(t, set, g)

		p1, p2 := cutPoints(rand.New(rand.NewSource(seed)), len(before))
		after := g.Chromosome()
		for i := range after {
			if i >= p1 && i < p2 {
				assert.Same(t, before[p1+p2-1-i], after[i], "seed %d index %d", seed, i)
			} else {
				assert.Same(t, before[i], after[i], "seed %d index %d", seed, i)
			}
		}
	}
}

func TestEdgeExchangeSwapsSuccessors(t *testing.T) {
	cities := numberedCities(5)

	g := NewGenome(cities)
	g.exchangeEdges(1, 3)
	assert.Equal(t, []string{"1", "2", "5", "4", "3"}, g.Solution())

	g = NewGenome(cities)
	g.exchangeEdges(1, 4)
	assert.Equal(t, []string{"3", "2", "1", "4", "5"}, g.Solution())
}

func TestEdgeExchangeFollowsDrawnPoints(t *testing.T) {
	set := randomSet(t, 8, 10)
	for seed := int64(0); seed < 30; seed++ {
		g := NewGenome(set.Cities())
		require.NoError(t, g.Mutate(rand.New(rand.NewSource(seed)), EdgeExchangeMutation))

		p1, p2 := distinctPoints(rand.New(rand.NewSource(seed)), set.Len())
		want := NewGenome(set.Cities())
		want.exchangeEdges(p1, p2)
		assert.Equal(t, want.Solution(), g.Solution(), "seed %d", seed)
	}
}

func TestRandomMutationKeepsPermutation(t *testing.T) {
	set := randomSet(t, 9, 12)
	rng := rand.New(rand.NewSource(99))
	g := NewGenome(set.Cities())
	for i := 0; i < 200; i++ {
		require.NoError(t, g.Mutate(rng, RandomMutation))
		requirePermutation(t, set, g)
	}
}

func TestMutateRejectsBeforeDrawing(t *testing.T) {
	cities := numberedCities(6)
	g := NewGenome(cities)
	rng := rand.New(rand.NewSource(4))

	err := g.Mutate(rng, MutationKind(42))
	require.ErrorIs(t, err, ErrInvalidMutationKind)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, g.Solution())
	assert.Equal(t, rand.New(rand.NewSource(4)).Int63(), rng.Int63())

	single := NewGenome(cities[:1])
	require.ErrorIs(t, single.Mutate(rand.New(rand.NewSource(1)), SwapMutation), ErrDegenerateCitySet)
}

func TestTwoCityMutationsStayValid(t *testing.T) {
	cities := numberedCities(2)
	set, err := cityset.NewSet("pair", cities)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(2))
	for _, kind := range AllMutationKinds() {
		g := NewGenome(cities)
		require.NoError(t, g.Mutate(rng, kind))
		requirePermutation(t, set, g)
	}
}
