package stats

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"tspevo/internal/model"
)

const experimentsDir = "experiments"

// Experiment is one sweep: every operator combination run on the same city
// set with the same seed.
type Experiment struct {
	ID             string          `json:"id"`
	Parameters     Parameters      `json:"parameters"`
	StartedAtUTC   string          `json:"started_at_utc,omitempty"`
	CompletedAtUTC string          `json:"completed_at_utc,omitempty"`
	Runs           []ExperimentRun `json:"runs,omitempty"`
}

type Parameters struct {
	Name        string  `json:"name"`
	Seed        int64   `json:"seed"`
	Generations int     `json:"generations"`
	MapID       string  `json:"map_id"`
	Cities      int     `json:"cities"`
	MapWidth    float64 `json:"map_width"`
	MapHeight   float64 `json:"map_height"`
	Population  int     `json:"population"`
	Elitism     int     `json:"elitism"`
	TopK        int     `json:"top_k"`
	Notes       string  `json:"notes,omitempty"`
}

type ExperimentRun struct {
	Title          string              `json:"title"`
	RunID          string              `json:"run_id"`
	BestFitness    float64             `json:"best_fitness"`
	BestDistance   float64             `json:"best_distance"`
	BestGeneration int                 `json:"best_generation"`
	Solution       []string            `json:"solution"`
	Improvements   []model.Improvement `json:"improvements"`
}

// ExperimentDir is the directory holding an experiment's text reports and plots.
func ExperimentDir(baseDir, id string) string {
	return filepath.Join(baseDir, experimentsDir, id)
}

func WriteExperiment(baseDir string, exp Experiment) error {
	if exp.ID == "" {
		return fmt.Errorf("experiment id is required")
	}
	dir := ExperimentDir(baseDir, exp.ID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, "experiment.json"), exp)
}

func ReadExperiment(baseDir, id string) (Experiment, bool, error) {
	if id == "" {
		return Experiment{}, false, fmt.Errorf("experiment id is required")
	}
	var exp Experiment
	ok, err := readJSON(filepath.Join(ExperimentDir(baseDir, id), "experiment.json"), &exp)
	if err != nil || !ok {
		return Experiment{}, ok, err
	}
	return exp, true, nil
}

func ListExperiments(baseDir string) ([]Experiment, error) {
	entries, err := os.ReadDir(filepath.Join(baseDir, experimentsDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []Experiment{}, nil
		}
		return nil, err
	}

	exps := make([]Experiment, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		exp, ok, err := ReadExperiment(baseDir, entry.Name())
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		exps = append(exps, exp)
	}
	sort.Slice(exps, func(i, j int) bool {
		switch {
		case exps[i].StartedAtUTC == exps[j].StartedAtUTC:
			return exps[i].ID < exps[j].ID
		case exps[i].StartedAtUTC == "":
			return false
		case exps[j].StartedAtUTC == "":
			return true
		default:
			return exps[i].StartedAtUTC > exps[j].StartedAtUTC
		}
	})
	return exps, nil
}

// WriteParameters writes parameters.txt as name=value lines followed by the
// free-form notes.
func WriteParameters(dir string, params Parameters) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "name=%s\n", params.Name)
	fmt.Fprintf(&b, "seed=%d\n", params.Seed)
	fmt.Fprintf(&b, "generations=%d\n", params.Generations)
	fmt.Fprintf(&b, "map=%s\n", params.MapID)
	fmt.Fprintf(&b, "cities=%d\n", params.Cities)
	fmt.Fprintf(&b, "map_size=(%g, %g)\n", params.MapWidth, params.MapHeight)
	fmt.Fprintf(&b, "population=%d\n", params.Population)
	fmt.Fprintf(&b, "elitism=%d\n", params.Elitism)
	fmt.Fprintf(&b, "top_k=%d\n", params.TopK)
	fmt.Fprintf(&b, "\n%s\n", params.Notes)
	return os.WriteFile(filepath.Join(dir, "parameters.txt"), []byte(b.String()), 0o644)
}

// RankRuns orders runs by best fitness, highest first. Ties keep input order.
func RankRuns(runs []ExperimentRun) []ExperimentRun {
	ranked := append([]ExperimentRun(nil), runs...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].BestFitness > ranked[j].BestFitness
	})
	return ranked
}

// FormatSummary renders one line per ranked run:
// rank, best generation, the best tour and the run title.
func FormatSummary(runs []ExperimentRun) string {
	var b strings.Builder
	for i, run := range RankRuns(runs) {
		fmt.Fprintf(&b, "%d %d Distance:%.2f Solution:[%s] %s\n",
			i+1, run.BestGeneration, run.BestDistance, strings.Join(run.Solution, " "), run.Title)
	}
	return b.String()
}

func WriteSummary(dir string, runs []ExperimentRun) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "summary.txt"), []byte(FormatSummary(runs)), 0o644)
}
