package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"tspevo/internal/storage"
	"tspevo/pkg/tspevo"
)

// settings is the merged view of defaults, the optional TOML file and the
// flags given on the command line, in increasing priority.
type settings struct {
	Store      string
	DBPath     string
	RunsDir    string
	ExportsDir string
	LogLevel   string

	MapID     string
	Named     string
	Cities    int
	MapWidth  int
	MapHeight int

	Name          string
	Seed          int64
	Population    int
	Elitism       int
	TopK          int
	Generations   int
	ProgressEvery int
	Crossover     string
	Mutation      string
	Crossovers    string
	Mutations     string
	Notes         string
	NoPlots       bool
}

type fileConfig struct {
	Store      string        `toml:"store"`
	DBPath     string        `toml:"db_path"`
	RunsDir    string        `toml:"runs_dir"`
	ExportsDir string        `toml:"exports_dir"`
	LogLevel   string        `toml:"log_level"`
	Map        mapFileConfig `toml:"map"`
	Run        runFileConfig `toml:"run"`
}

type mapFileConfig struct {
	ID     string `toml:"id"`
	Named  string `toml:"named"`
	Cities int    `toml:"cities"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type runFileConfig struct {
	Name          string   `toml:"name"`
	Seed          int64    `toml:"seed"`
	Population    int      `toml:"population"`
	Elitism       int      `toml:"elitism"`
	TopK          int      `toml:"top_k"`
	Generations   int      `toml:"generations"`
	ProgressEvery int      `toml:"progress_every"`
	Crossover     string   `toml:"crossover"`
	Mutation      string   `toml:"mutation"`
	Crossovers    []string `toml:"crossovers"`
	Mutations     []string `toml:"mutations"`
	Notes         string   `toml:"notes"`
	Plots         bool     `toml:"plots"`
}

func defaultSettings() settings {
	return settings{
		Store:         storage.DefaultStoreKind,
		DBPath:        "tspevo.db",
		RunsDir:       runsDir,
		ExportsDir:    exportsDir,
		LogLevel:      "info",
		Cities:        30,
		MapWidth:      300,
		MapHeight:     300,
		Name:          "tsp_1",
		Seed:          1,
		Population:    100,
		Elitism:       10,
		Generations:   1000,
		ProgressEvery: 100,
		Crossover:     "ox",
		Mutation:      "swap",
	}
}

func bindStoreFlags(fs *flag.FlagSet, s *settings) {
	fs.StringVar(&s.Store, "store", s.Store, "store backend: "+strings.Join(storage.StoreKinds(), "|"))
	fs.StringVar(&s.DBPath, "db-path", s.DBPath, "sqlite database path")
	fs.StringVar(&s.RunsDir, "runs-dir", s.RunsDir, "directory holding run artifacts and the run index")
	fs.StringVar(&s.LogLevel, "log-level", s.LogLevel, "log level: debug|info|warn|error")
}

func bindMapFlags(fs *flag.FlagSet, s *settings) {
	fs.StringVar(&s.MapID, "map-id", s.MapID, "reuse a stored city map by id")
	fs.StringVar(&s.Named, "map", s.Named, "built-in coordinate map: africa|nigeria|world")
	fs.IntVar(&s.Cities, "cities", s.Cities, "random map city count")
	fs.IntVar(&s.MapWidth, "width", s.MapWidth, "random map width")
	fs.IntVar(&s.MapHeight, "height", s.MapHeight, "random map height")
}

func bindEvolutionFlags(fs *flag.FlagSet, s *settings) {
	fs.Int64Var(&s.Seed, "seed", s.Seed, "rng seed for the map and the population")
	fs.IntVar(&s.Population, "pop", s.Population, "population size")
	fs.IntVar(&s.Elitism, "elitism", s.Elitism, "elites carried over unchanged each generation")
	fs.IntVar(&s.TopK, "top-k", s.TopK, "elite pool parents are drawn from (0 means pop/4)")
	fs.IntVar(&s.Generations, "gens", s.Generations, "generation count")
	fs.IntVar(&s.ProgressEvery, "progress-every", s.ProgressEvery, "log progress every N generations")
	fs.BoolVar(&s.NoPlots, "no-plots", s.NoPlots, "skip PNG plots")
}

// applyConfigFile overlays the TOML file at path onto s. Keys whose flag was
// given explicitly keep the flag value.
func applyConfigFile(s *settings, path string, explicit map[string]bool) error {
	var cfg fileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("load config: unknown keys: %s", strings.Join(keys, ", "))
	}

	overlays := []struct {
		key   []string
		flag  string
		apply func()
	}{
		{[]string{"store"}, "store", func() { s.Store = cfg.Store }},
		{[]string{"db_path"}, "db-path", func() { s.DBPath = cfg.DBPath }},
		{[]string{"runs_dir"}, "runs-dir", func() { s.RunsDir = cfg.RunsDir }},
		{[]string{"exports_dir"}, "out", func() { s.ExportsDir = cfg.ExportsDir }},
		{[]string{"log_level"}, "log-level", func() { s.LogLevel = cfg.LogLevel }},
		{[]string{"map", "id"}, "map-id", func() { s.MapID = cfg.Map.ID }},
		{[]string{"map", "named"}, "map", func() { s.Named = cfg.Map.Named }},
		{[]string{"map", "cities"}, "cities", func() { s.Cities = cfg.Map.Cities }},
		{[]string{"map", "width"}, "width", func() { s.MapWidth = cfg.Map.Width }},
		{[]string{"map", "height"}, "height", func() { s.MapHeight = cfg.Map.Height }},
		{[]string{"run", "name"}, "name", func() { s.Name = cfg.Run.Name }},
		{[]string{"run", "seed"}, "seed", func() { s.Seed = cfg.Run.Seed }},
		{[]string{"run", "population"}, "pop", func() { s.Population = cfg.Run.Population }},
		{[]string{"run", "elitism"}, "elitism", func() { s.Elitism = cfg.Run.Elitism }},
		{[]string{"run", "top_k"}, "top-k", func() { s.TopK = cfg.Run.TopK }},
		{[]string{"run", "generations"}, "gens", func() { s.Generations = cfg.Run.Generations }},
		{[]string{"run", "progress_every"}, "progress-every", func() { s.ProgressEvery = cfg.Run.ProgressEvery }},
		{[]string{"run", "crossover"}, "crossover", func() { s.Crossover = cfg.Run.Crossover }},
		{[]string{"run", "mutation"}, "mutation", func() { s.Mutation = cfg.Run.Mutation }},
		{[]string{"run", "crossovers"}, "crossovers", func() { s.Crossovers = strings.Join(cfg.Run.Crossovers, ",") }},
		{[]string{"run", "mutations"}, "mutations", func() { s.Mutations = strings.Join(cfg.Run.Mutations, ",") }},
		{[]string{"run", "notes"}, "notes", func() { s.Notes = cfg.Run.Notes }},
		{[]string{"run", "plots"}, "no-plots", func() { s.NoPlots = !cfg.Run.Plots }},
	}
	for _, o := range overlays {
		if explicit[o.flag] || !md.IsDefined(o.key...) {
			continue
		}
		o.apply()
	}
	return nil
}

// parseWithConfig parses args and, when --config is given, merges the file
// underneath the explicit flags.
func parseWithConfig(fs *flag.FlagSet, s *settings, args []string) error {
	configPath := fs.String("config", "", "optional TOML config file; explicit flags win")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configPath == "" {
		return nil
	}
	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})
	return applyConfigFile(s, *configPath, explicit)
}

func (s settings) options(logger logrus.FieldLogger) tspevo.Options {
	return tspevo.Options{
		StoreKind:    s.Store,
		DBPath:       s.DBPath,
		RunsDir:      s.RunsDir,
		ExportsDir:   s.ExportsDir,
		Logger:       logger,
		DisablePlots: s.NoPlots,
	}
}

func (s settings) mapSpec() tspevo.MapSpec {
	return tspevo.MapSpec{
		MapID:  s.MapID,
		Named:  s.Named,
		Cities: s.Cities,
		Width:  s.MapWidth,
		Height: s.MapHeight,
	}
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// newLogger writes human-readable logs to a terminal and JSON lines otherwise.
func newLogger(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	if isTerminal(out) {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
