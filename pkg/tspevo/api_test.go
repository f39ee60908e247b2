package tspevo

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tspevo/internal/cityset"
	"tspevo/internal/evo"
)

func newTestClient(t *testing.T, runsDir string, opts Options) (*Client, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	opts.Logger = logger
	opts.RunsDir = runsDir
	if opts.ExportsDir == "" {
		opts.ExportsDir = filepath.Join(t.TempDir(), "exports")
	}
	client, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client, hook
}

func smallRun(seed int64) RunRequest {
	return RunRequest{
		Map:         MapSpec{Cities: 8, Width: 50, Height: 50},
		Population:  20,
		Elitism:     2,
		TopK:        5,
		Generations: 15,
		Seed:        seed,
	}
}

func cityIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = strconv.Itoa(i)
	}
	sort.Strings(ids)
	return ids
}

func TestRunRecordsBestTour(t *testing.T) {
	ctx := context.Background()
	runsDir := t.TempDir()
	client, hook := newTestClient(t, runsDir, Options{DisablePlots: true})

	summary, err := client.Run(ctx, smallRun(3))
	require.NoError(t, err)

	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, "random-8-50x50-s3", summary.MapID)
	assert.Equal(t, "ox", summary.Crossover)
	assert.Equal(t, "swap", summary.Mutation)
	assert.Equal(t, 8, summary.Cities)
	require.Len(t, summary.BestByGeneration, 15)

	tour := append([]string(nil), summary.Solution...)
	sort.Strings(tour)
	assert.Equal(t, cityIDs(8), tour)

	require.NotEmpty(t, summary.Improvements)
	assert.Equal(t, 0, summary.Improvements[0].Generation)
	for i := 1; i < len(summary.Improvements); i++ {
		assert.LessOrEqual(t, summary.Improvements[i].Distance, summary.Improvements[i-1].Distance)
		assert.Greater(t, summary.Improvements[i].Generation, summary.Improvements[i-1].Generation)
	}
	last := summary.Improvements[len(summary.Improvements)-1]
	assert.InDelta(t, summary.BestDistance, last.Distance, 0.001)
	assert.Equal(t, last.Generation, summary.BestGeneration)
	assert.InDelta(t, 1/summary.BestDistance, summary.BestFitness, 1e-12)
	for _, d := range summary.BestByGeneration {
		assert.GreaterOrEqual(t, d+1e-9, summary.BestDistance)
	}

	for _, file := range []string{"config.json", "fitness_history.json", "diagnostics.json", "best_solution.json", "fitness_series.csv"} {
		assert.FileExists(t, filepath.Join(summary.ArtifactsDir, file))
	}
	assert.NoFileExists(t, filepath.Join(summary.ArtifactsDir, "best_tour.png"))

	details, err := client.Show(ctx, ShowRequest{RunID: summary.RunID})
	require.NoError(t, err)
	assert.Equal(t, summary.Solution, details.Solution.CityIDs)
	assert.Equal(t, 5, details.Config.TopK)
	assert.Len(t, details.FitnessHistory, 15)
	assert.Len(t, details.Diagnostics, 15)
	assert.Equal(t, summary.Improvements, details.Improvements)

	runs, err := client.Runs(ctx, RunsRequest{})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, summary.RunID, runs[0].RunID)
	assert.Equal(t, summary.BestDistance, runs[0].BestDistance)

	messages := make([]string, 0, len(hook.AllEntries()))
	for _, entry := range hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	assert.Contains(t, messages, "run started")
	assert.Contains(t, messages, "new best tour")
	assert.Contains(t, messages, "run finished")
	assert.Equal(t, summary.RunID, hook.LastEntry().Data["run_id"])
}

func TestRunIsReproducibleForSeed(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestClient(t, t.TempDir(), Options{DisablePlots: true})
	b, _ := newTestClient(t, t.TempDir(), Options{DisablePlots: true})

	req := smallRun(11)
	req.Crossover = "pmx"
	req.Mutation = "edge-exchange"
	first, err := a.Run(ctx, req)
	require.NoError(t, err)
	second, err := b.Run(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.Solution, second.Solution)
	assert.Equal(t, first.BestByGeneration, second.BestByGeneration)
	assert.Equal(t, first.Improvements, second.Improvements)
}

func TestRunRejectsInvalidRequests(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t, t.TempDir(), Options{DisablePlots: true})

	req := smallRun(1)
	req.Crossover = "uniform"
	_, err := client.Run(ctx, req)
	assert.ErrorIs(t, err, evo.ErrInvalidCrossoverKind)

	req = smallRun(1)
	req.Mutation = "scramble"
	_, err = client.Run(ctx, req)
	assert.ErrorIs(t, err, evo.ErrInvalidMutationKind)

	req = smallRun(1)
	req.Population = 21
	_, err = client.Run(ctx, req)
	assert.ErrorIs(t, err, evo.ErrInvalidConfig)

	req = smallRun(1)
	req.Map = MapSpec{Cities: 1}
	_, err = client.Run(ctx, req)
	assert.ErrorIs(t, err, evo.ErrDegenerateCitySet)

	req = smallRun(1)
	req.Map = MapSpec{MapID: "missing"}
	_, err = client.Run(ctx, req)
	assert.ErrorIs(t, err, ErrMapNotFound)

	req = smallRun(1)
	req.Map = MapSpec{Named: "atlantis"}
	_, err = client.Run(ctx, req)
	assert.ErrorIs(t, err, cityset.ErrUnknownMap)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = client.Run(cancelled, smallRun(1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunReusesStoredMap(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t, t.TempDir(), Options{DisablePlots: true})

	first, err := client.Run(ctx, smallRun(5))
	require.NoError(t, err)

	req := smallRun(99)
	req.Map = MapSpec{MapID: first.MapID}
	second, err := client.Run(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first.MapID, second.MapID)

	tour := append([]string(nil), second.Solution...)
	sort.Strings(tour)
	assert.Equal(t, cityIDs(8), tour)
}

func TestRunOnNamedMapWritesTourPlot(t *testing.T) {
	client, _ := newTestClient(t, t.TempDir(), Options{})

	summary, err := client.Run(context.Background(), RunRequest{
		Map:         MapSpec{Named: "nigeria"},
		Population:  10,
		Generations: 3,
		Seed:        2,
	})
	require.NoError(t, err)
	assert.Equal(t, "nigeria", summary.MapID)
	assert.Contains(t, summary.Solution, "Lagos")

	info, err := os.Stat(filepath.Join(summary.ArtifactsDir, "best_tour.png"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSweepRanksEveryCombination(t *testing.T) {
	ctx := context.Background()
	runsDir := t.TempDir()
	client, _ := newTestClient(t, runsDir, Options{})

	sweep, err := client.Sweep(ctx, SweepRequest{
		Name:        "Small Sweep",
		Map:         MapSpec{Cities: 7, Width: 40, Height: 40},
		Population:  12,
		Elitism:     2,
		Generations: 10,
		Seed:        42,
		Crossovers:  []string{"ox", "cx"},
		Mutations:   []string{"swap", "inversion"},
		Notes:       "smoke",
	})
	require.NoError(t, err)
	assert.Equal(t, "small_sweep", sweep.Name)
	require.Len(t, sweep.Runs, 4)

	titles := make([]string, 0, len(sweep.Runs))
	for i, run := range sweep.Runs {
		titles = append(titles, run.Title)
		if i > 0 {
			assert.GreaterOrEqual(t, sweep.Runs[i-1].BestFitness, run.BestFitness)
		}
		// Every run is reseeded identically, so generation 0 sees the same population.
		require.NotEmpty(t, run.Improvements)
		assert.Equal(t, sweep.Runs[0].Improvements[0], run.Improvements[0])
	}
	assert.ElementsMatch(t, []string{"ox swap", "ox inversion", "cx swap", "cx inversion"}, titles)

	for _, file := range []string{"parameters.txt", "summary.txt", "experiment.json", "best.png", "best_solutions.png", "ox_swap.png", "cx_inversion.png"} {
		assert.FileExists(t, filepath.Join(sweep.Directory, file))
	}
	lines := strings.Split(strings.TrimSpace(sweep.Summary), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "1 "))
	assert.True(t, strings.HasSuffix(lines[0], sweep.Runs[0].Title))

	runs, err := client.Runs(ctx, RunsRequest{Experiment: "small_sweep"})
	require.NoError(t, err)
	assert.Len(t, runs, 4)
	runs, err = client.Runs(ctx, RunsRequest{Experiment: "small_sweep", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	exps, err := client.Experiments(ctx, 0)
	require.NoError(t, err)
	require.Len(t, exps, 1)
	assert.Equal(t, "small_sweep", exps[0].Name)
	assert.Equal(t, 4, exps[0].Runs)
	assert.Equal(t, sweep.Runs[0].Title, exps[0].BestTitle)
	assert.InDelta(t, sweep.Runs[0].BestDistance, exps[0].BestDistance, 1e-9)
	_, err = client.Experiments(ctx, -1)
	require.Error(t, err)
}

func TestSweepRejectsUnknownOperator(t *testing.T) {
	client, _ := newTestClient(t, t.TempDir(), Options{DisablePlots: true})
	_, err := client.Sweep(context.Background(), SweepRequest{Mutations: []string{"swap", "shuffle"}})
	assert.ErrorIs(t, err, evo.ErrInvalidMutationKind)

	_, err = client.Sweep(context.Background(), SweepRequest{Population: 9})
	assert.ErrorIs(t, err, evo.ErrInvalidConfig)
}

func TestShowAndExportLatest(t *testing.T) {
	ctx := context.Background()
	runsDir := t.TempDir()
	client, _ := newTestClient(t, runsDir, Options{DisablePlots: true})

	_, err := client.Export(ctx, ExportRequest{Latest: true})
	assert.ErrorIs(t, err, ErrRunNotFound)

	_, err = client.Run(ctx, smallRun(1))
	require.NoError(t, err)
	second, err := client.Run(ctx, smallRun(2))
	require.NoError(t, err)

	outDir := filepath.Join(t.TempDir(), "out")
	exported, err := client.Export(ctx, ExportRequest{Latest: true, OutDir: outDir})
	require.NoError(t, err)
	assert.Equal(t, second.RunID, exported.RunID)
	assert.FileExists(t, filepath.Join(exported.Directory, "best_solution.json"))

	_, err = client.Export(ctx, ExportRequest{RunID: "x", Latest: true})
	require.Error(t, err)
	_, err = client.Export(ctx, ExportRequest{})
	require.Error(t, err)

	_, err = client.Show(ctx, ShowRequest{RunID: "missing"})
	assert.ErrorIs(t, err, ErrRunNotFound)

	// A fresh memory store knows nothing; the run directory still does.
	fresh, _ := newTestClient(t, runsDir, Options{DisablePlots: true})
	details, err := fresh.Show(ctx, ShowRequest{Latest: true})
	require.NoError(t, err)
	assert.Equal(t, second.RunID, details.Config.RunID)
	assert.Equal(t, second.Solution, details.Solution.CityIDs)
	assert.Empty(t, details.Diagnostics)
}

func TestSolutionsPersistInSQLite(t *testing.T) {
	ctx := context.Background()
	runsDir := t.TempDir()
	dbPath := filepath.Join(t.TempDir(), "tspevo.db")
	client, _ := newTestClient(t, runsDir, Options{StoreKind: "sqlite", DBPath: dbPath, DisablePlots: true})

	first, err := client.Run(ctx, smallRun(4))
	require.NoError(t, err)
	for _, seed := range []int64{5, 6} {
		req := smallRun(seed)
		req.Map = MapSpec{MapID: first.MapID}
		_, err := client.Run(ctx, req)
		require.NoError(t, err)
	}
	require.NoError(t, client.Close())

	reopened, _ := newTestClient(t, runsDir, Options{StoreKind: "sqlite", DBPath: dbPath, DisablePlots: true})
	solutions, err := reopened.Solutions(ctx, SolutionsRequest{MapID: first.MapID})
	require.NoError(t, err)
	require.Len(t, solutions, 3)
	for i := 1; i < len(solutions); i++ {
		assert.LessOrEqual(t, solutions[i-1].Distance, solutions[i].Distance)
	}

	limited, err := reopened.Solutions(ctx, SolutionsRequest{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, solutions[0].RunID, limited[0].RunID)

	none, err := reopened.Solutions(ctx, SolutionsRequest{MapID: "other"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMapsListsBuiltins(t *testing.T) {
	client, _ := newTestClient(t, t.TempDir(), Options{DisablePlots: true})
	maps, err := client.Maps()
	require.NoError(t, err)

	names := make([]string, 0, len(maps))
	for _, m := range maps {
		names = append(names, m.Name)
		assert.Greater(t, m.Cities, 1)
	}
	assert.Equal(t, []string{"africa", "nigeria", "world"}, names)
}

func TestNewRejectsUnknownStore(t *testing.T) {
	_, err := New(Options{StoreKind: "postgres"})
	require.Error(t, err)
}
