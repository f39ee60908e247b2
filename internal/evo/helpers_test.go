package evo

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"tspevo/internal/cityset"
)

// numberedCities returns n cities with ids "1".."n" on distinct points.
func numberedCities(n int) []*cityset.City {
	cities := make([]*cityset.City, n)
	for i := range cities {
		id := strconv.Itoa(i + 1)
		cities[i] = cityset.NewCity(id, "", float64(i), float64(i*i%7))
	}
	return cities
}

// order picks cities by their 1-based id.
func order(cities []*cityset.City, ids ...int) []*cityset.City {
	out := make([]*cityset.City, len(ids))
	for i, id := range ids {
		out[i] = cities[id-1]
	}
	return out
}

func ids(chromosome []*cityset.City) []string {
	out := make([]string, len(chromosome))
	for i, c := range chromosome {
		out[i] = c.ID()
	}
	return out
}

func randomSet(t *testing.T, seed int64, n int) *cityset.Set {
	t.Helper()
	set, err := cityset.RandomGrid(rand.New(rand.NewSource(seed)), n, 300, 300)
	require.NoError(t, err)
	return set
}

func requirePermutation(t *testing.T, set *cityset.Set, g *Genome) {
	t.Helper()
	require.Truef(t, g.IsPermutationOf(set), "not a permutation: %v", g.Solution())
}
