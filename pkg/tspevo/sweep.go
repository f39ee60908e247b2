package tspevo

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"tspevo/internal/cityset"
	"tspevo/internal/evo"
	"tspevo/internal/stats"
)

const defaultSweepName = "tsp_1"

// SweepRequest runs every listed crossover against every listed mutation on one
// city set. Each run is reseeded with Seed so they start from the same
// population. Empty operator lists mean all of them.
type SweepRequest struct {
	Name          string
	Map           MapSpec
	Population    int
	Elitism       int
	TopK          int
	Generations   int
	Seed          int64
	Crossovers    []string
	Mutations     []string
	Notes         string
	ProgressEvery int
}

// SweepSummary lists the runs ranked by best fitness, highest first.
type SweepSummary struct {
	Name      string
	Directory string
	Runs      []stats.ExperimentRun
	Summary   string
}

func (c *Client) Sweep(ctx context.Context, req SweepRequest) (SweepSummary, error) {
	if req.Name == "" {
		req.Name = defaultSweepName
	}
	name := slug(req.Name)
	crossovers, err := parseCrossovers(req.Crossovers)
	if err != nil {
		return SweepSummary{}, err
	}
	mutations, err := parseMutations(req.Mutations)
	if err != nil {
		return SweepSummary{}, err
	}
	base := RunRequest{
		Population:    req.Population,
		Elitism:       req.Elitism,
		TopK:          req.TopK,
		Generations:   req.Generations,
		Seed:          req.Seed,
		Experiment:    name,
		ProgressEvery: req.ProgressEvery,
	}.withDefaults()
	if err := (evo.PopulationConfig{Size: base.Population, Elitism: base.Elitism, TopK: base.TopK}).Validate(); err != nil {
		return SweepSummary{}, err
	}
	if err := c.ensureInit(ctx); err != nil {
		return SweepSummary{}, err
	}

	set, cityMap, err := c.resolveMap(ctx, req.Map, req.Seed)
	if err != nil {
		return SweepSummary{}, err
	}
	width, height := set.Bounds()
	if cityMap.Width > 0 || cityMap.Height > 0 {
		width, height = cityMap.Width, cityMap.Height
	}

	experiment := stats.Experiment{
		ID: name,
		Parameters: stats.Parameters{
			Name:        name,
			Seed:        req.Seed,
			Generations: base.Generations,
			MapID:       cityMap.ID,
			Cities:      set.Len(),
			MapWidth:    width,
			MapHeight:   height,
			Population:  base.Population,
			Elitism:     base.Elitism,
			TopK:        topKOrDefault(base),
			Notes:       req.Notes,
		},
		StartedAtUTC: time.Now().UTC().Format(timestampLayout),
	}
	dir := stats.ExperimentDir(c.runsDir, name)
	if err := stats.WriteParameters(dir, experiment.Parameters); err != nil {
		return SweepSummary{}, err
	}

	c.log.WithField("experiment", name).
		WithField("runs", len(crossovers)*len(mutations)).
		Info("sweep started")

	series := make([]stats.HistorySeries, 0, len(crossovers)*len(mutations))
	for _, crossover := range crossovers {
		for _, mutation := range mutations {
			title := crossover.String() + " " + mutation.String()
			runReq := base
			runReq.Crossover = crossover.String()
			runReq.Mutation = mutation.String()
			runReq.RunID = fmt.Sprintf("%s-%s-%s", name, crossover, mutation)

			summary, err := c.runOn(ctx, runReq, set, cityMap, crossover, mutation)
			if err != nil {
				return SweepSummary{}, fmt.Errorf("%s: %w", title, err)
			}
			experiment.Runs = append(experiment.Runs, stats.ExperimentRun{
				Title:          title,
				RunID:          summary.RunID,
				BestFitness:    summary.BestFitness,
				BestDistance:   summary.BestDistance,
				BestGeneration: summary.BestGeneration,
				Solution:       summary.Solution,
				Improvements:   summary.Improvements,
			})
			series = append(series, stats.HistorySeries{Name: title, Improvements: summary.Improvements})

			if c.plots {
				if err := plotRun(filepath.Join(dir, slug(title)+".png"), set, title, summary.BestGeneration, summary.BestDistance, summary.Solution); err != nil {
					return SweepSummary{}, err
				}
			}
		}
	}

	ranked := stats.RankRuns(experiment.Runs)
	if err := stats.WriteSummary(dir, experiment.Runs); err != nil {
		return SweepSummary{}, err
	}
	if c.plots && len(ranked) > 0 {
		best := ranked[0]
		if err := plotRun(filepath.Join(dir, "best.png"), set, best.Title, best.BestGeneration, best.BestDistance, best.Solution); err != nil {
			return SweepSummary{}, err
		}
		if err := stats.PlotBestHistory(filepath.Join(dir, "best_solutions.png"), series, base.Generations); err != nil {
			return SweepSummary{}, fmt.Errorf("plot history: %w", err)
		}
	}

	experiment.CompletedAtUTC = time.Now().UTC().Format(timestampLayout)
	if err := stats.WriteExperiment(c.runsDir, experiment); err != nil {
		return SweepSummary{}, err
	}
	c.log.WithField("experiment", name).
		WithField("best", ranked[0].Title).
		WithField("best_distance", ranked[0].BestDistance).
		Info("sweep finished")

	return SweepSummary{
		Name:      name,
		Directory: dir,
		Runs:      ranked,
		Summary:   stats.FormatSummary(experiment.Runs),
	}, nil
}

func plotRun(path string, set *cityset.Set, title string, generation int, distance float64, solution []string) error {
	full := fmt.Sprintf("TSP: %d cities. %s Generation:%d Best:%.2f", set.Len(), title, generation, distance)
	if err := stats.PlotTour(path, full, tourPoints(set, solution)); err != nil {
		return fmt.Errorf("plot %s: %w", title, err)
	}
	return nil
}

func topKOrDefault(req RunRequest) int {
	if req.TopK == 0 {
		return req.Population / 4
	}
	return req.TopK
}

func parseCrossovers(tags []string) ([]evo.CrossoverKind, error) {
	if len(tags) == 0 {
		return evo.AllCrossoverKinds(), nil
	}
	kinds := make([]evo.CrossoverKind, 0, len(tags))
	for _, tag := range tags {
		kind, err := evo.ParseCrossoverKind(tag)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func parseMutations(tags []string) ([]evo.MutationKind, error) {
	if len(tags) == 0 {
		return evo.AllMutationKinds(), nil
	}
	kinds := make([]evo.MutationKind, 0, len(tags))
	for _, tag := range tags {
		kind, err := evo.ParseMutationKind(tag)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}
