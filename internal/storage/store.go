package storage

import (
	"context"

	"tspevo/internal/model"
)

// Store persists city maps and the outcome of evolution runs.
type Store interface {
	Init(ctx context.Context) error
	SaveCityMap(ctx context.Context, cityMap model.CityMap) error
	GetCityMap(ctx context.Context, id string) (model.CityMap, bool, error)
	SaveSolution(ctx context.Context, solution model.Solution) error
	GetSolution(ctx context.Context, runID string) (model.Solution, bool, error)
	// ListSolutions returns the solutions for mapID, or for every map when
	// mapID is empty, shortest tour first.
	ListSolutions(ctx context.Context, mapID string) ([]model.Solution, error)
	SaveFitnessHistory(ctx context.Context, runID string, history []float64) error
	GetFitnessHistory(ctx context.Context, runID string) ([]float64, bool, error)
	SaveGenerationDiagnostics(ctx context.Context, runID string, diagnostics []model.GenerationDiagnostics) error
	GetGenerationDiagnostics(ctx context.Context, runID string) ([]model.GenerationDiagnostics, bool, error)
}
