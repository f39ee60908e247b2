package evo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKinds(t *testing.T) {
	crossovers := map[string]CrossoverKind{
		"ox": OrderCrossover, "Order": OrderCrossover,
		"pmx": PartiallyMappedCrossover, "partially-mapped": PartiallyMappedCrossover,
		" cx ": CycleCrossover, "cycle": CycleCrossover,
	}
	for tag, want := range crossovers {
		got, err := ParseCrossoverKind(tag)
		require.NoError(t, err, tag)
		assert.Equal(t, want, got, tag)
	}

	mutations := map[string]MutationKind{
		"swap": SwapMutation, "inverse": InversionMutation, "inversion": InversionMutation,
		"2-opt": EdgeExchangeMutation, "edge-exchange": EdgeExchangeMutation, "RANDOM": RandomMutation,
	}
	for tag, want := range mutations {
		got, err := ParseMutationKind(tag)
		require.NoError(t, err, tag)
		assert.Equal(t, want, got, tag)
	}

	_, err := ParseCrossoverKind("erx")
	require.ErrorIs(t, err, ErrInvalidCrossoverKind)
	_, err = ParseMutationKind("scramble")
	require.ErrorIs(t, err, ErrInvalidMutationKind)
}

func TestKindStringsRoundTrip(t *testing.T) {
	for _, kind := range AllCrossoverKinds() {
		parsed, err := ParseCrossoverKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}
	for _, kind := range AllMutationKinds() {
		parsed, err := ParseMutationKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}
	assert.False(t, CrossoverKind(0).Valid())
	assert.False(t, MutationKind(5).Valid())
	assert.Equal(t, "mutation(5)", MutationKind(5).String())
}
