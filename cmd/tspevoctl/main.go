package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"tspevo/pkg/tspevo"
)

const (
	runsDir    = "runs"
	exportsDir = "exports"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "init":
		return runInit(ctx, args[1:])
	case "run":
		return runRun(ctx, args[1:])
	case "sweep":
		return runSweep(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	case "experiments":
		return runExperiments(ctx, args[1:])
	case "show":
		return runShow(ctx, args[1:])
	case "solutions":
		return runSolutions(ctx, args[1:])
	case "export":
		return runExport(ctx, args[1:])
	case "maps":
		return runMaps(ctx, args[1:])
	case "import-map":
		return runImportMap(ctx, args[1:])
	case "export-map":
		return runExportMap(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func openClient(s settings) (*tspevo.Client, error) {
	logger, err := newLogger(s.LogLevel, stderr)
	if err != nil {
		return nil, err
	}
	return tspevo.New(s.options(logger))
}

func runInit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	s := defaultSettings()
	bindStoreFlags(fs, &s)
	if err := parseWithConfig(fs, &s, args); err != nil {
		return err
	}

	client, err := openClient(s)
	if err != nil {
		return err
	}
	defer client.Close()
	if err := client.Init(ctx); err != nil {
		return err
	}

	if s.Store == "sqlite" {
		size := "0 B"
		if info, err := os.Stat(s.DBPath); err == nil {
			size = humanize.Bytes(uint64(info.Size()))
		}
		fmt.Fprintf(stdout, "initialized store=%s db=%s size=%s\n", s.Store, filepath.Clean(s.DBPath), size)
		return nil
	}
	fmt.Fprintf(stdout, "initialized store=%s\n", s.Store)
	return nil
}

func runRun(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	s := defaultSettings()
	bindStoreFlags(fs, &s)
	bindMapFlags(fs, &s)
	bindEvolutionFlags(fs, &s)
	fs.StringVar(&s.Crossover, "crossover", s.Crossover, "crossover operator: ox|pmx|cx")
	fs.StringVar(&s.Mutation, "mutation", s.Mutation, "mutation operator: swap|inversion|edge-exchange|random")
	runID := fs.String("run-id", "", "explicit run id (optional)")
	if err := parseWithConfig(fs, &s, args); err != nil {
		return err
	}

	client, err := openClient(s)
	if err != nil {
		return err
	}
	defer client.Close()

	started := time.Now()
	summary, err := client.Run(ctx, tspevo.RunRequest{
		Map:           s.mapSpec(),
		Population:    s.Population,
		Elitism:       s.Elitism,
		TopK:          s.TopK,
		Generations:   s.Generations,
		Crossover:     s.Crossover,
		Mutation:      s.Mutation,
		Seed:          s.Seed,
		RunID:         *runID,
		ProgressEvery: s.ProgressEvery,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "run completed run_id=%s map=%s cities=%d crossover=%s mutation=%s generations=%s elapsed=%s\n",
		summary.RunID,
		summary.MapID,
		summary.Cities,
		summary.Crossover,
		summary.Mutation,
		humanize.Comma(int64(len(summary.BestByGeneration))),
		time.Since(started).Round(time.Millisecond),
	)
	fmt.Fprintf(stdout, "best distance=%.2f generation=%d improvements=%d\n",
		summary.BestDistance, summary.BestGeneration, len(summary.Improvements))
	fmt.Fprintf(stdout, "solution=[%s]\n", strings.Join(summary.Solution, " "))
	fmt.Fprintf(stdout, "artifacts=%s\n", filepath.Clean(summary.ArtifactsDir))
	return nil
}

func runSweep(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sweep", flag.ContinueOnError)
	s := defaultSettings()
	bindStoreFlags(fs, &s)
	bindMapFlags(fs, &s)
	bindEvolutionFlags(fs, &s)
	fs.StringVar(&s.Name, "name", s.Name, "experiment name")
	fs.StringVar(&s.Crossovers, "crossovers", s.Crossovers, "comma separated crossovers (default all)")
	fs.StringVar(&s.Mutations, "mutations", s.Mutations, "comma separated mutations (default all)")
	fs.StringVar(&s.Notes, "notes", s.Notes, "free-form notes for parameters.txt")
	if err := parseWithConfig(fs, &s, args); err != nil {
		return err
	}

	client, err := openClient(s)
	if err != nil {
		return err
	}
	defer client.Close()

	sweep, err := client.Sweep(ctx, tspevo.SweepRequest{
		Name:          s.Name,
		Map:           s.mapSpec(),
		Population:    s.Population,
		Elitism:       s.Elitism,
		TopK:          s.TopK,
		Generations:   s.Generations,
		Seed:          s.Seed,
		Crossovers:    splitList(s.Crossovers),
		Mutations:     splitList(s.Mutations),
		Notes:         s.Notes,
		ProgressEvery: s.ProgressEvery,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "sweep completed name=%s runs=%d dir=%s\n", sweep.Name, len(sweep.Runs), filepath.Clean(sweep.Directory))
	fmt.Fprint(stdout, sweep.Summary)
	return nil
}

func runRuns(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	s := defaultSettings()
	bindStoreFlags(fs, &s)
	limit := fs.Int("limit", 20, "max runs to list")
	mapID := fs.String("map-id", "", "only runs on this map")
	experiment := fs.String("experiment", "", "only runs of this sweep")
	jsonOut := fs.Bool("json", false, "emit runs list as JSON")
	if err := parseWithConfig(fs, &s, args); err != nil {
		return err
	}
	if *limit <= 0 {
		return errors.New("limit must be > 0")
	}

	client, err := openClient(s)
	if err != nil {
		return err
	}
	defer client.Close()

	items, err := client.Runs(ctx, tspevo.RunsRequest{Limit: *limit, MapID: *mapID, Experiment: *experiment})
	if err != nil {
		return err
	}
	if *jsonOut {
		return writeJSON(items)
	}
	if len(items) == 0 {
		fmt.Fprintln(stdout, "no runs found")
		return nil
	}
	for _, item := range items {
		fmt.Fprintf(stdout, "run_id=%s created=%s map=%s cities=%d crossover=%s mutation=%s seed=%d pop=%d gens=%s best_distance=%.2f best_generation=%d\n",
			item.RunID,
			createdAgo(item.CreatedAtUTC),
			item.MapID,
			item.Cities,
			item.Crossover,
			item.Mutation,
			item.Seed,
			item.Population,
			humanize.Comma(int64(item.Generations)),
			item.BestDistance,
			item.BestGeneration,
		)
	}
	return nil
}

func runExperiments(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("experiments", flag.ContinueOnError)
	s := defaultSettings()
	bindStoreFlags(fs, &s)
	limit := fs.Int("limit", 20, "max sweeps to list")
	if err := parseWithConfig(fs, &s, args); err != nil {
		return err
	}
	if *limit <= 0 {
		return errors.New("limit must be > 0")
	}

	client, err := openClient(s)
	if err != nil {
		return err
	}
	defer client.Close()

	items, err := client.Experiments(ctx, *limit)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(stdout, "no experiments found")
		return nil
	}
	for _, item := range items {
		fmt.Fprintf(stdout, "experiment=%s started=%s runs=%d best=%q best_distance=%.2f best_generation=%d\n",
			item.Name,
			createdAgo(item.StartedAtUTC),
			item.Runs,
			item.BestTitle,
			item.BestDistance,
			item.BestGeneration,
		)
	}
	return nil
}

func runShow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	s := defaultSettings()
	bindStoreFlags(fs, &s)
	runID := fs.String("run-id", "", "run id")
	latest := fs.Bool("latest", false, "show the most recent run from run index")
	jsonOut := fs.Bool("json", false, "emit run details as JSON")
	if err := parseWithConfig(fs, &s, args); err != nil {
		return err
	}

	client, err := openClient(s)
	if err != nil {
		return err
	}
	defer client.Close()

	details, err := client.Show(ctx, tspevo.ShowRequest{RunID: *runID, Latest: *latest})
	if err != nil {
		return err
	}
	if *jsonOut {
		return writeJSON(details)
	}

	cfg := details.Config
	fmt.Fprintf(stdout, "run_id=%s map=%s cities=%d crossover=%s mutation=%s seed=%d pop=%d elitism=%d top_k=%d gens=%s\n",
		cfg.RunID, cfg.MapID, cfg.Cities, cfg.Crossover, cfg.Mutation, cfg.Seed,
		cfg.PopulationSize, cfg.Elitism, cfg.TopK, humanize.Comma(int64(cfg.Generations)))
	fmt.Fprintf(stdout, "best distance=%.2f fitness=%.6f generation=%d\n",
		details.Solution.Distance, details.Solution.Fitness, details.Solution.Generation)
	fmt.Fprintf(stdout, "solution=[%s]\n", strings.Join(details.Solution.CityIDs, " "))
	for _, imp := range details.Improvements {
		fmt.Fprintf(stdout, "improvement generation=%d distance=%.3f\n", imp.Generation, imp.Distance)
	}
	return nil
}

func runSolutions(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("solutions", flag.ContinueOnError)
	s := defaultSettings()
	bindStoreFlags(fs, &s)
	mapID := fs.String("map-id", "", "only solutions on this map")
	limit := fs.Int("limit", 10, "max solutions to list (0 lists all)")
	jsonOut := fs.Bool("json", false, "emit solutions as JSON")
	if err := parseWithConfig(fs, &s, args); err != nil {
		return err
	}

	client, err := openClient(s)
	if err != nil {
		return err
	}
	defer client.Close()

	solutions, err := client.Solutions(ctx, tspevo.SolutionsRequest{MapID: *mapID, Limit: *limit})
	if err != nil {
		return err
	}
	if *jsonOut {
		return writeJSON(solutions)
	}
	if len(solutions) == 0 {
		fmt.Fprintln(stdout, "no solutions found")
		return nil
	}
	for i, sol := range solutions {
		fmt.Fprintf(stdout, "%s run_id=%s map=%s crossover=%s mutation=%s distance=%.2f generation=%d\n",
			humanize.Ordinal(i+1), sol.RunID, sol.MapID, sol.Crossover, sol.Mutation, sol.Distance, sol.Generation)
	}
	return nil
}

func runExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	s := defaultSettings()
	bindStoreFlags(fs, &s)
	runID := fs.String("run-id", "", "run id")
	latest := fs.Bool("latest", false, "export the most recent run from run index")
	fs.StringVar(&s.ExportsDir, "out", s.ExportsDir, "export output directory")
	if err := parseWithConfig(fs, &s, args); err != nil {
		return err
	}
	if *runID != "" && *latest {
		return errors.New("use either --run-id or --latest, not both")
	}
	if *runID == "" && !*latest {
		return errors.New("export requires --run-id or --latest")
	}

	client, err := openClient(s)
	if err != nil {
		return err
	}
	defer client.Close()

	exported, err := client.Export(ctx, tspevo.ExportRequest{RunID: *runID, Latest: *latest, OutDir: s.ExportsDir})
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "exported run_id=%s to=%s\n", exported.RunID, filepath.Clean(exported.Directory))
	return nil
}

func runMaps(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("maps", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	client, err := tspevo.New(tspevo.Options{})
	if err != nil {
		return err
	}
	defer client.Close()

	maps, err := client.Maps()
	if err != nil {
		return err
	}
	for _, m := range maps {
		fmt.Fprintf(stdout, "map=%s cities=%d\n", m.Name, m.Cities)
	}
	return nil
}

func runImportMap(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("import-map", flag.ContinueOnError)
	s := defaultSettings()
	bindStoreFlags(fs, &s)
	file := fs.String("file", "", "CSV file with one city per row")
	id := fs.String("id", "", "map id (defaults to the file name)")
	name := fs.String("name", "", "display name")
	header := fs.Bool("header", true, "first row names the columns")
	if err := parseWithConfig(fs, &s, args); err != nil {
		return err
	}
	if *file == "" {
		return errors.New("import-map requires --file")
	}
	if *id == "" {
		*id = strings.TrimSuffix(filepath.Base(*file), filepath.Ext(*file))
	}

	in, err := os.Open(*file)
	if err != nil {
		return err
	}
	defer in.Close()

	client, err := openClient(s)
	if err != nil {
		return err
	}
	defer client.Close()

	imported, err := client.ImportMap(ctx, tspevo.ImportMapRequest{ID: *id, Name: *name, HasHeader: *header, Source: in})
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "imported map=%s cities=%d store=%s\n", imported.ID, imported.Cities, s.Store)
	return nil
}

func runExportMap(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export-map", flag.ContinueOnError)
	s := defaultSettings()
	bindStoreFlags(fs, &s)
	id := fs.String("map-id", "", "stored map id")
	out := fs.String("out", "", "output CSV path (default stdout)")
	if err := parseWithConfig(fs, &s, args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("export-map requires --map-id")
	}

	client, err := openClient(s)
	if err != nil {
		return err
	}
	defer client.Close()

	if *out == "" {
		return client.ExportMap(ctx, *id, stdout)
	}
	file, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := client.ExportMap(ctx, *id, file); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "exported map=%s to=%s\n", *id, filepath.Clean(*out))
	return nil
}

func writeJSON(value any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func createdAgo(ts string) string {
	created, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}
	return strings.ReplaceAll(humanize.Time(created), " ", "_")
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: tspevoctl <init|run|sweep|runs|experiments|show|solutions|export|maps|import-map|export-map> [flags]", msg)
}
