package evo

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"tspevo/internal/cityset"
	"tspevo/internal/model"
)

// GenerationReport is passed to MonitorConfig.OnGeneration after every step.
type GenerationReport struct {
	Generation  int
	Best        *Genome
	Distance    float64
	Improved    bool
	Diagnostics model.GenerationDiagnostics
}

// RunResult holds the tour length of each step's pre-step best in
// BestByGeneration. FinalPopulation is ranked best first.
type RunResult struct {
	BestByGeneration      []float64
	GenerationDiagnostics []model.GenerationDiagnostics
	Improvements          []model.Improvement
	Best                  *Genome
	BestGeneration        int
	FinalPopulation       []ScoredGenome
}

type MonitorConfig struct {
	Population   PopulationConfig
	Crossover    CrossoverKind
	Mutation     MutationKind
	Generations  int
	OnGeneration func(GenerationReport)
}

// PopulationMonitor drives one population through a fixed number of
// generations and records its progress.
type PopulationMonitor struct {
	cfg        MonitorConfig
	population *Population
}

func NewPopulationMonitor(cfg MonitorConfig, set *cityset.Set) (*PopulationMonitor, error) {
	if err := checkKinds(cfg.Crossover, cfg.Mutation); err != nil {
		return nil, err
	}
	if cfg.Generations <= 0 {
		return nil, fmt.Errorf("%w: generations must be > 0, got %d", ErrInvalidConfig, cfg.Generations)
	}
	population, err := NewPopulation(cfg.Population, set)
	if err != nil {
		return nil, err
	}
	return &PopulationMonitor{cfg: cfg, population: population}, nil
}

func (m *PopulationMonitor) Population() *Population {
	return m.population
}

func (m *PopulationMonitor) Run(ctx context.Context) (RunResult, error) {
	result := RunResult{
		BestByGeneration:      make([]float64, 0, m.cfg.Generations),
		GenerationDiagnostics: make([]model.GenerationDiagnostics, 0, m.cfg.Generations),
	}
	bestFitness := 0.0

	for gen := 0; gen < m.cfg.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return RunResult{}, err
		}

		diagnostics := summarizeGeneration(m.population, gen)
		best, err := m.population.StepGeneration(m.cfg.Crossover, m.cfg.Mutation)
		if err != nil {
			return RunResult{}, fmt.Errorf("generation %d: %w", gen, err)
		}
		distance := best.TourLength()
		result.BestByGeneration = append(result.BestByGeneration, distance)
		result.GenerationDiagnostics = append(result.GenerationDiagnostics, diagnostics)

		fitness := best.Fitness()
		improved := fitness > bestFitness
		if improved {
			bestFitness = fitness
			result.Best = best
			result.BestGeneration = gen
			result.Improvements = append(result.Improvements, model.Improvement{
				Distance:   math.Round(distance*1000) / 1000,
				Generation: gen,
			})
		}

		if m.cfg.OnGeneration != nil {
			m.cfg.OnGeneration(GenerationReport{
				Generation:  gen,
				Best:        best,
				Distance:    distance,
				Improved:    improved,
				Diagnostics: diagnostics,
			})
		}
	}

	result.FinalPopulation = m.population.rank()
	sort.SliceStable(result.FinalPopulation, func(i, j int) bool {
		return result.FinalPopulation[i].Fitness > result.FinalPopulation[j].Fitness
	})
	return result, nil
}

func summarizeGeneration(p *Population, generation int) model.GenerationDiagnostics {
	members := p.Members()
	if len(members) == 0 {
		return model.GenerationDiagnostics{Generation: generation}
	}

	fitness := p.Fitnesses()
	distances := make([]float64, len(members))
	tours := make(map[string]struct{}, len(members))
	for i, g := range members {
		distances[i] = g.TourLength()
		tours[strings.Join(g.Solution(), ",")] = struct{}{}
	}
	mean, std := stat.MeanStdDev(fitness, nil)
	if len(members) < 2 || math.IsNaN(std) {
		std = 0
	}

	return model.GenerationDiagnostics{
		Generation:    generation,
		BestFitness:   floats.Max(fitness),
		MeanFitness:   mean,
		MinFitness:    floats.Min(fitness),
		FitnessStdDev: std,
		BestDistance:  floats.Min(distances),
		MeanDistance:  stat.Mean(distances, nil),
		DistinctTours: len(tours),
	}
}
