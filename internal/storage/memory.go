package storage

import (
	"context"
	"errors"
	"sync"

	"tspevo/internal/model"
)

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	cityMaps    map[string]model.CityMap
	solutions   map[string]model.Solution
	history     map[string][]float64
	diagnostics map[string][]model.GenerationDiagnostics
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.cityMaps = make(map[string]model.CityMap)
	s.solutions = make(map[string]model.Solution)
	s.history = make(map[string][]float64)
	s.diagnostics = make(map[string][]model.GenerationDiagnostics)
	return nil
}

func (s *MemoryStore) SaveCityMap(_ context.Context, cityMap model.CityMap) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errNotInitialized
	}
	cityMap.VersionedRecord = stampVersion(cityMap.VersionedRecord)
	cityMap.Cities = append([]model.CityRecord(nil), cityMap.Cities...)
	s.cityMaps[cityMap.ID] = cityMap
	return nil
}

func (s *MemoryStore) GetCityMap(_ context.Context, id string) (model.CityMap, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cityMap, ok := s.cityMaps[id]
	if !ok {
		return model.CityMap{}, false, nil
	}
	cityMap.Cities = append([]model.CityRecord(nil), cityMap.Cities...)
	return cityMap, true, nil
}

func (s *MemoryStore) SaveSolution(_ context.Context, solution model.Solution) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errNotInitialized
	}
	solution.VersionedRecord = stampVersion(solution.VersionedRecord)
	solution.CityIDs = append([]string(nil), solution.CityIDs...)
	s.solutions[solution.RunID] = solution
	return nil
}

func (s *MemoryStore) GetSolution(_ context.Context, runID string) (model.Solution, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	solution, ok := s.solutions[runID]
	if !ok {
		return model.Solution{}, false, nil
	}
	solution.CityIDs = append([]string(nil), solution.CityIDs...)
	return solution, true, nil
}

func (s *MemoryStore) ListSolutions(_ context.Context, mapID string) ([]model.Solution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Solution, 0, len(s.solutions))
	for _, solution := range s.solutions {
		if mapID != "" && solution.MapID != mapID {
			continue
		}
		solution.CityIDs = append([]string(nil), solution.CityIDs...)
		out = append(out, solution)
	}
	sortSolutions(out)
	return out, nil
}

func (s *MemoryStore) SaveFitnessHistory(_ context.Context, runID string, history []float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errNotInitialized
	}
	s.history[runID] = append([]float64(nil), history...)
	return nil
}

func (s *MemoryStore) GetFitnessHistory(_ context.Context, runID string) ([]float64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.history[runID]
	if !ok {
		return nil, false, nil
	}
	return append([]float64(nil), history...), true, nil
}

func (s *MemoryStore) SaveGenerationDiagnostics(_ context.Context, runID string, diagnostics []model.GenerationDiagnostics) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errNotInitialized
	}
	s.diagnostics[runID] = append([]model.GenerationDiagnostics(nil), diagnostics...)
	return nil
}

func (s *MemoryStore) GetGenerationDiagnostics(_ context.Context, runID string) ([]model.GenerationDiagnostics, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	diagnostics, ok := s.diagnostics[runID]
	if !ok {
		return nil, false, nil
	}
	return append([]model.GenerationDiagnostics(nil), diagnostics...), true, nil
}

var errNotInitialized = errors.New("store is not initialized")
