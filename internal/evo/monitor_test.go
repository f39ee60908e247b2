package evo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulationMonitorRun(t *testing.T) {
	set := randomSet(t, 30, 15)
	var reports []GenerationReport
	monitor, err := NewPopulationMonitor(MonitorConfig{
		Population:  PopulationConfig{Size: 20, Elitism: 2, Seed: 30},
		Crossover:   OrderCrossover,
		Mutation:    InversionMutation,
		Generations: 30,
		OnGeneration: func(r GenerationReport) {
			reports = append(reports, r)
		},
	}, set)
	require.NoError(t, err)

	result, err := monitor.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.BestByGeneration, 30)
	require.Len(t, result.GenerationDiagnostics, 30)
	require.Len(t, reports, 30)
	require.NotNil(t, result.Best)
	requirePermutation(t, set, result.Best)

	require.NotEmpty(t, result.Improvements)
	assert.Equal(t, 0, result.Improvements[0].Generation)
	for i := 1; i < len(result.Improvements); i++ {
		assert.LessOrEqual(t, result.Improvements[i].Distance, result.Improvements[i-1].Distance)
		assert.Greater(t, result.Improvements[i].Generation, result.Improvements[i-1].Generation)
	}
	last := result.Improvements[len(result.Improvements)-1]
	assert.Equal(t, result.BestGeneration, last.Generation)
	assert.InDelta(t, result.Best.TourLength(), last.Distance, 0.001)

	for i, d := range result.GenerationDiagnostics {
		assert.Equal(t, i, d.Generation)
		assert.LessOrEqual(t, d.MinFitness, d.MeanFitness+1e-12)
		assert.LessOrEqual(t, d.MeanFitness, d.BestFitness+1e-12)
		assert.GreaterOrEqual(t, d.FitnessStdDev, 0.0)
		assert.InDelta(t, result.BestByGeneration[i], d.BestDistance, 1e-9)
		assert.True(t, d.DistinctTours >= 1 && d.DistinctTours <= 20)
	}

	require.Len(t, result.FinalPopulation, 20)
	for i := 1; i < len(result.FinalPopulation); i++ {
		assert.GreaterOrEqual(t, result.FinalPopulation[i-1].Fitness, result.FinalPopulation[i].Fitness)
	}
}

func TestPopulationMonitorValidation(t *testing.T) {
	set := randomSet(t, 1, 6)
	base := MonitorConfig{
		Population:  PopulationConfig{Size: 8, Elitism: 2},
		Crossover:   CycleCrossover,
		Mutation:    SwapMutation,
		Generations: 5,
	}

	bad := base
	bad.Generations = 0
	_, err := NewPopulationMonitor(bad, set)
	require.ErrorIs(t, err, ErrInvalidConfig)

	bad = base
	bad.Crossover = 0
	_, err = NewPopulationMonitor(bad, set)
	require.ErrorIs(t, err, ErrInvalidCrossoverKind)

	bad = base
	bad.Population.Elitism = 3
	_, err = NewPopulationMonitor(bad, set)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestPopulationMonitorStopsOnCancel(t *testing.T) {
	set := randomSet(t, 2, 8)
	ctx, cancel := context.WithCancel(context.Background())
	steps := 0
	monitor, err := NewPopulationMonitor(MonitorConfig{
		Population:  PopulationConfig{Size: 8, Elitism: 2},
		Crossover:   OrderCrossover,
		Mutation:    SwapMutation,
		Generations: 100,
		OnGeneration: func(GenerationReport) {
			steps++
			if steps == 3 {
				cancel()
			}
		},
	}, set)
	require.NoError(t, err)

	_, err = monitor.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, steps)
	assert.Equal(t, 3, monitor.Population().Generation())
}
