package tspevo

import (
	"context"
	"errors"
	"fmt"

	"tspevo/internal/cityset"
	"tspevo/internal/model"
	"tspevo/internal/stats"
)

const defaultListLimit = 20

type RunsRequest struct {
	Limit      int
	MapID      string
	Experiment string
}

type RunItem struct {
	RunID          string  `json:"run_id"`
	CreatedAtUTC   string  `json:"created_at_utc"`
	Experiment     string  `json:"experiment,omitempty"`
	MapID          string  `json:"map_id"`
	Cities         int     `json:"cities"`
	Crossover      string  `json:"crossover"`
	Mutation       string  `json:"mutation"`
	Seed           int64   `json:"seed"`
	Population     int     `json:"population_size"`
	Generations    int     `json:"generations"`
	BestDistance   float64 `json:"best_distance"`
	BestGeneration int     `json:"best_generation"`
}

type ShowRequest struct {
	RunID  string
	Latest bool
}

// RunDetails is everything recorded about one run. The store is consulted
// first; the run directory fills in what a fresh memory store cannot know.
type RunDetails struct {
	Config         stats.RunConfig               `json:"config"`
	Solution       model.Solution                `json:"solution"`
	Improvements   []model.Improvement           `json:"improvements"`
	FitnessHistory []float64                     `json:"fitness_history,omitempty"`
	Diagnostics    []model.GenerationDiagnostics `json:"diagnostics,omitempty"`
}

type SolutionsRequest struct {
	MapID string
	Limit int
}

type ExportRequest struct {
	RunID  string
	Latest bool
	OutDir string
}

type ExportSummary struct {
	RunID     string
	Directory string
}

type ExperimentItem struct {
	Name           string
	StartedAtUTC   string
	Runs           int
	BestTitle      string
	BestDistance   float64
	BestGeneration int
}

type MapItem struct {
	Name   string
	Cities int
}

// Runs lists indexed runs, newest first.
func (c *Client) Runs(_ context.Context, req RunsRequest) ([]RunItem, error) {
	if req.Limit < 0 {
		return nil, errors.New("limit must be >= 0")
	}
	if req.Limit == 0 {
		req.Limit = defaultListLimit
	}
	entries, err := stats.ListRunIndex(c.runsDir)
	if err != nil {
		return nil, err
	}

	items := make([]RunItem, 0, min(len(entries), req.Limit))
	for _, e := range entries {
		if req.MapID != "" && e.MapID != req.MapID {
			continue
		}
		if req.Experiment != "" && e.Experiment != req.Experiment {
			continue
		}
		items = append(items, RunItem{
			RunID:          e.RunID,
			CreatedAtUTC:   e.CreatedAtUTC,
			Experiment:     e.Experiment,
			MapID:          e.MapID,
			Cities:         e.Cities,
			Crossover:      e.Crossover,
			Mutation:       e.Mutation,
			Seed:           e.Seed,
			Population:     e.PopulationSize,
			Generations:    e.Generations,
			BestDistance:   e.BestDistance,
			BestGeneration: e.BestGeneration,
		})
		if len(items) == req.Limit {
			break
		}
	}
	return items, nil
}

func (c *Client) Show(ctx context.Context, req ShowRequest) (RunDetails, error) {
	runID, err := c.resolveRunID(req.RunID, req.Latest)
	if err != nil {
		return RunDetails{}, err
	}
	if err := c.ensureInit(ctx); err != nil {
		return RunDetails{}, err
	}

	cfg, ok, err := stats.ReadRunConfig(c.runsDir, runID)
	if err != nil {
		return RunDetails{}, err
	}
	if !ok {
		return RunDetails{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	details := RunDetails{Config: cfg}

	solution, ok, err := c.store.GetSolution(ctx, runID)
	if err != nil {
		return RunDetails{}, err
	}
	if !ok {
		solution, _, err = stats.ReadBestSolution(c.runsDir, runID)
		if err != nil {
			return RunDetails{}, err
		}
	}
	details.Solution = solution

	if details.Improvements, _, err = stats.ReadImprovements(c.runsDir, runID); err != nil {
		return RunDetails{}, err
	}

	history, ok, err := c.store.GetFitnessHistory(ctx, runID)
	if err != nil {
		return RunDetails{}, err
	}
	if ok {
		details.FitnessHistory = history
	}
	diagnostics, ok, err := c.store.GetGenerationDiagnostics(ctx, runID)
	if err != nil {
		return RunDetails{}, err
	}
	if ok {
		details.Diagnostics = diagnostics
	}
	return details, nil
}

// Solutions lists stored best tours, shortest first, optionally for one map.
func (c *Client) Solutions(ctx context.Context, req SolutionsRequest) ([]model.Solution, error) {
	if req.Limit < 0 {
		return nil, errors.New("limit must be >= 0")
	}
	if err := c.ensureInit(ctx); err != nil {
		return nil, err
	}
	solutions, err := c.store.ListSolutions(ctx, req.MapID)
	if err != nil {
		return nil, err
	}
	if req.Limit > 0 && len(solutions) > req.Limit {
		solutions = solutions[:req.Limit]
	}
	return solutions, nil
}

func (c *Client) Export(_ context.Context, req ExportRequest) (ExportSummary, error) {
	runID, err := c.resolveRunID(req.RunID, req.Latest)
	if err != nil {
		return ExportSummary{}, err
	}
	outDir := req.OutDir
	if outDir == "" {
		outDir = c.exportsDir
	}
	dir, err := stats.ExportRunArtifacts(c.runsDir, runID, outDir)
	if err != nil {
		return ExportSummary{}, err
	}
	return ExportSummary{RunID: runID, Directory: dir}, nil
}

// Experiments lists recorded sweeps, newest first, with each sweep's winner.
func (c *Client) Experiments(_ context.Context, limit int) ([]ExperimentItem, error) {
	if limit < 0 {
		return nil, errors.New("limit must be >= 0")
	}
	if limit == 0 {
		limit = defaultListLimit
	}
	exps, err := stats.ListExperiments(c.runsDir)
	if err != nil {
		return nil, err
	}
	if len(exps) > limit {
		exps = exps[:limit]
	}
	items := make([]ExperimentItem, 0, len(exps))
	for _, exp := range exps {
		item := ExperimentItem{
			Name:         exp.ID,
			StartedAtUTC: exp.StartedAtUTC,
			Runs:         len(exp.Runs),
		}
		if ranked := stats.RankRuns(exp.Runs); len(ranked) > 0 {
			item.BestTitle = ranked[0].Title
			item.BestDistance = ranked[0].BestDistance
			item.BestGeneration = ranked[0].BestGeneration
		}
		items = append(items, item)
	}
	return items, nil
}

// Maps lists the built-in coordinate maps.
func (c *Client) Maps() ([]MapItem, error) {
	names := cityset.NamedMaps()
	items := make([]MapItem, 0, len(names))
	for _, name := range names {
		set, err := cityset.Named(name)
		if err != nil {
			return nil, err
		}
		items = append(items, MapItem{Name: name, Cities: set.Len()})
	}
	return items, nil
}

func (c *Client) resolveRunID(runID string, latest bool) (string, error) {
	if runID != "" && latest {
		return "", errors.New("use either run id or latest, not both")
	}
	if runID != "" {
		return runID, nil
	}
	if !latest {
		return "", errors.New("run id or latest is required")
	}
	entries, err := stats.ListRunIndex(c.runsDir)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("%w: no runs recorded", ErrRunNotFound)
	}
	return entries[0].RunID, nil
}
