package tspevo

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tspevo/internal/cityset"
	"tspevo/internal/evo"
	"tspevo/internal/model"
	"tspevo/internal/stats"
	"tspevo/internal/storage"
)

const (
	defaultRunsDir       = "runs"
	defaultExportsDir    = "exports"
	defaultDBPath        = "tspevo.db"
	defaultProgressEvery = 25

	defaultCities      = 30
	defaultMapSize     = 300
	defaultPopulation  = 100
	defaultGenerations = 1000
	defaultCrossover   = "ox"
	defaultMutation    = "swap"

	timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

var (
	ErrRunNotFound = errors.New("run not found")
	ErrMapNotFound = errors.New("city map not found")
)

type Options struct {
	StoreKind    string
	DBPath       string
	RunsDir      string
	ExportsDir   string
	Logger       logrus.FieldLogger
	DisablePlots bool
}

type Client struct {
	store      storage.Store
	log        logrus.FieldLogger
	runsDir    string
	exportsDir string
	plots      bool

	mu          sync.Mutex
	initialized bool
}

// MapSpec picks the city set of a run. MapID loads a stored map, Named one of
// the built-in maps; otherwise Cities points are drawn on a Width x Height grid
// from the run seed.
type MapSpec struct {
	MapID  string
	Named  string
	Cities int
	Width  int
	Height int
}

// RunRequest describes one run. Zero values take the defaults, except Elitism:
// zero carries no elites over.
type RunRequest struct {
	Map           MapSpec
	Population    int
	Elitism       int
	TopK          int
	Generations   int
	Crossover     string
	Mutation      string
	Seed          int64
	RunID         string
	Experiment    string
	ProgressEvery int
}

type RunSummary struct {
	RunID            string
	MapID            string
	ArtifactsDir     string
	Crossover        string
	Mutation         string
	Cities           int
	BestDistance     float64
	BestFitness      float64
	BestGeneration   int
	Solution         []string
	BestByGeneration []float64
	Improvements     []model.Improvement
}

func New(opts Options) (*Client, error) {
	storeKind := opts.StoreKind
	if storeKind == "" {
		storeKind = storage.DefaultStoreKind
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	runsDir := opts.RunsDir
	if runsDir == "" {
		runsDir = defaultRunsDir
	}
	exportsDir := opts.ExportsDir
	if exportsDir == "" {
		exportsDir = defaultExportsDir
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}

	return &Client{
		store:      store,
		log:        logger,
		runsDir:    runsDir,
		exportsDir: exportsDir,
		plots:      !opts.DisablePlots,
	}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

func (c *Client) Init(ctx context.Context) error {
	return c.ensureInit(ctx)
}

func (c *Client) ensureInit(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return nil
	}
	if err := c.store.Init(ctx); err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	c.initialized = true
	return nil
}

func (r RunRequest) withDefaults() RunRequest {
	if r.Population <= 0 {
		r.Population = defaultPopulation
	}
	if r.Generations <= 0 {
		r.Generations = defaultGenerations
	}
	if r.Crossover == "" {
		r.Crossover = defaultCrossover
	}
	if r.Mutation == "" {
		r.Mutation = defaultMutation
	}
	if r.ProgressEvery <= 0 {
		r.ProgressEvery = defaultProgressEvery
	}
	return r
}

func (m MapSpec) withDefaults() MapSpec {
	if m.Cities <= 0 {
		m.Cities = defaultCities
	}
	if m.Width <= 0 {
		m.Width = defaultMapSize
	}
	if m.Height <= 0 {
		m.Height = defaultMapSize
	}
	return m
}

// Run evolves one population with a single crossover and mutation pairing and
// records the best tour in the store and the run directory.
func (c *Client) Run(ctx context.Context, req RunRequest) (RunSummary, error) {
	req = req.withDefaults()
	crossover, err := evo.ParseCrossoverKind(req.Crossover)
	if err != nil {
		return RunSummary{}, err
	}
	mutation, err := evo.ParseMutationKind(req.Mutation)
	if err != nil {
		return RunSummary{}, err
	}
	if err := c.ensureInit(ctx); err != nil {
		return RunSummary{}, err
	}

	set, cityMap, err := c.resolveMap(ctx, req.Map, req.Seed)
	if err != nil {
		return RunSummary{}, err
	}
	return c.runOn(ctx, req, set, cityMap, crossover, mutation)
}

func (c *Client) runOn(
	ctx context.Context,
	req RunRequest,
	set *cityset.Set,
	cityMap model.CityMap,
	crossover evo.CrossoverKind,
	mutation evo.MutationKind,
) (RunSummary, error) {
	runID := req.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	logger := c.log.WithFields(logrus.Fields{
		"run_id":    runID,
		"map_id":    cityMap.ID,
		"crossover": crossover.String(),
		"mutation":  mutation.String(),
	})
	logger.WithFields(logrus.Fields{
		"cities":      set.Len(),
		"population":  req.Population,
		"generations": req.Generations,
		"seed":        req.Seed,
	}).Info("run started")

	monitor, err := evo.NewPopulationMonitor(evo.MonitorConfig{
		Population: evo.PopulationConfig{
			Size:    req.Population,
			Elitism: req.Elitism,
			TopK:    req.TopK,
			Seed:    req.Seed,
		},
		Crossover:   crossover,
		Mutation:    mutation,
		Generations: req.Generations,
		OnGeneration: func(report evo.GenerationReport) {
			entry := logger.WithFields(logrus.Fields{
				"generation": report.Generation,
				"distance":   report.Distance,
			})
			switch {
			case report.Improved:
				entry.Debug("new best tour")
			case report.Generation%req.ProgressEvery == 0:
				entry.WithField("mean_distance", report.Diagnostics.MeanDistance).Info("generation")
			}
		},
	}, set)
	if err != nil {
		return RunSummary{}, err
	}
	topK := monitor.Population().Config().TopK

	result, err := monitor.Run(ctx)
	if err != nil {
		return RunSummary{}, err
	}
	best := result.Best
	if best == nil {
		best = result.FinalPopulation[0].Genome
	}

	solution := model.Solution{
		VersionedRecord: storage.CurrentVersion(),
		RunID:           runID,
		MapID:           cityMap.ID,
		Crossover:       crossover.String(),
		Mutation:        mutation.String(),
		Seed:            req.Seed,
		CityIDs:         best.Solution(),
		Distance:        best.TourLength(),
		Fitness:         best.Fitness(),
		Generation:      result.BestGeneration,
	}
	diagnostics := result.GenerationDiagnostics
	history := make([]float64, len(diagnostics))
	for i, d := range diagnostics {
		history[i] = d.BestFitness
	}

	if err := c.store.SaveSolution(ctx, solution); err != nil {
		return RunSummary{}, err
	}
	if err := c.store.SaveFitnessHistory(ctx, runID, history); err != nil {
		return RunSummary{}, err
	}
	if err := c.store.SaveGenerationDiagnostics(ctx, runID, diagnostics); err != nil {
		return RunSummary{}, err
	}

	runDir, err := stats.WriteRunArtifacts(c.runsDir, stats.RunArtifacts{
		Config: stats.RunConfig{
			RunID:          runID,
			Experiment:     req.Experiment,
			MapID:          cityMap.ID,
			Cities:         set.Len(),
			MapWidth:       cityMap.Width,
			MapHeight:      cityMap.Height,
			PopulationSize: req.Population,
			Elitism:        req.Elitism,
			TopK:           topK,
			Generations:    req.Generations,
			Crossover:      crossover.String(),
			Mutation:       mutation.String(),
			Seed:           req.Seed,
		},
		BestByGeneration:      result.BestByGeneration,
		GenerationDiagnostics: diagnostics,
		Improvements:          result.Improvements,
		BestSolution:          solution,
	})
	if err != nil {
		return RunSummary{}, err
	}
	if c.plots {
		title := fmt.Sprintf("TSP: %d cities. %s %s Generation:%d Best:%.2f",
			set.Len(), crossover, mutation, solution.Generation, solution.Distance)
		if err := stats.PlotTour(stats.TourPlotPath(c.runsDir, runID), title, tourPoints(set, solution.CityIDs)); err != nil {
			return RunSummary{}, fmt.Errorf("plot tour: %w", err)
		}
	}

	if err := stats.AppendRunIndex(c.runsDir, stats.RunIndexEntry{
		RunID:          runID,
		Experiment:     req.Experiment,
		MapID:          cityMap.ID,
		Cities:         set.Len(),
		PopulationSize: req.Population,
		Generations:    req.Generations,
		Crossover:      crossover.String(),
		Mutation:       mutation.String(),
		Seed:           req.Seed,
		BestDistance:   solution.Distance,
		BestGeneration: solution.Generation,
		CreatedAtUTC:   time.Now().UTC().Format(timestampLayout),
	}); err != nil {
		return RunSummary{}, err
	}

	logger.WithFields(logrus.Fields{
		"best_distance":   solution.Distance,
		"best_generation": solution.Generation,
	}).Info("run finished")

	return RunSummary{
		RunID:            runID,
		MapID:            cityMap.ID,
		ArtifactsDir:     runDir,
		Crossover:        solution.Crossover,
		Mutation:         solution.Mutation,
		Cities:           set.Len(),
		BestDistance:     solution.Distance,
		BestFitness:      solution.Fitness,
		BestGeneration:   solution.Generation,
		Solution:         solution.CityIDs,
		BestByGeneration: result.BestByGeneration,
		Improvements:     result.Improvements,
	}, nil
}

// resolveMap builds the city set for spec and makes sure it is stored.
func (c *Client) resolveMap(ctx context.Context, spec MapSpec, seed int64) (*cityset.Set, model.CityMap, error) {
	switch {
	case spec.MapID != "":
		cityMap, ok, err := c.store.GetCityMap(ctx, spec.MapID)
		if err != nil {
			return nil, model.CityMap{}, err
		}
		if !ok {
			return nil, model.CityMap{}, fmt.Errorf("%w: %s", ErrMapNotFound, spec.MapID)
		}
		set, err := setFromRecord(cityMap)
		if err != nil {
			return nil, model.CityMap{}, err
		}
		return set, cityMap, nil
	case spec.Named != "":
		set, err := cityset.Named(spec.Named)
		if err != nil {
			return nil, model.CityMap{}, err
		}
		cityMap := recordFromSet(set.Name(), set, 0, 0)
		if err := c.store.SaveCityMap(ctx, cityMap); err != nil {
			return nil, model.CityMap{}, err
		}
		return set, cityMap, nil
	default:
		spec = spec.withDefaults()
		set, err := cityset.RandomGrid(rand.New(rand.NewSource(seed)), spec.Cities, spec.Width, spec.Height)
		if err != nil {
			return nil, model.CityMap{}, err
		}
		id := fmt.Sprintf("random-%d-%dx%d-s%d", spec.Cities, spec.Width, spec.Height, seed)
		cityMap := recordFromSet(id, set, float64(spec.Width), float64(spec.Height))
		if err := c.store.SaveCityMap(ctx, cityMap); err != nil {
			return nil, model.CityMap{}, err
		}
		return set, cityMap, nil
	}
}

func recordFromSet(id string, set *cityset.Set, width, height float64) model.CityMap {
	cities := make([]model.CityRecord, set.Len())
	for i, city := range set.Cities() {
		cities[i] = model.CityRecord{ID: city.ID(), Name: city.Name(), X: city.X(), Y: city.Y()}
	}
	return model.CityMap{
		VersionedRecord: storage.CurrentVersion(),
		ID:              id,
		Name:            set.Name(),
		Width:           width,
		Height:          height,
		Cities:          cities,
	}
}

func setFromRecord(cityMap model.CityMap) (*cityset.Set, error) {
	cities := make([]*cityset.City, len(cityMap.Cities))
	for i, rec := range cityMap.Cities {
		cities[i] = cityset.NewCity(rec.ID, rec.Name, rec.X, rec.Y)
	}
	return cityset.NewSet(cityMap.Name, cities)
}

func tourPoints(set *cityset.Set, ids []string) []stats.TourPoint {
	points := make([]stats.TourPoint, 0, len(ids))
	for _, id := range ids {
		city, ok := set.Lookup(id)
		if !ok {
			continue
		}
		points = append(points, stats.TourPoint{Label: city.Name(), X: city.X(), Y: city.Y()})
	}
	return points
}

// slug turns a free-form name into something safe for file and run names.
func slug(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
