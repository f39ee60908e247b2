package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput swaps the command writers for buffers until the test ends.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var out bytes.Buffer
	prevOut, prevErr := stdout, stderr
	stdout, stderr = &out, &bytes.Buffer{}
	t.Cleanup(func() {
		stdout, stderr = prevOut, prevErr
	})
	return &out
}

var runIDPattern = regexp.MustCompile(`run_id=(\S+)`)

func TestRunRunsShowAndExport(t *testing.T) {
	ctx := context.Background()
	out := captureOutput(t)
	dir := t.TempDir()
	runs := filepath.Join(dir, "runs")
	dbPath := filepath.Join(dir, "tspevo.db")
	common := []string{"--runs-dir", runs, "--store", "sqlite", "--db-path", dbPath}

	require.NoError(t, run(ctx, append([]string{"init"}, common...)))
	assert.Contains(t, out.String(), "initialized store=sqlite")

	out.Reset()
	args := append([]string{"run"}, common...)
	args = append(args, "--cities", "6", "--pop", "10", "--elitism", "2", "--gens", "5", "--seed", "3", "--no-plots", "--crossover", "cx", "--mutation", "random")
	require.NoError(t, run(ctx, args))
	text := out.String()
	assert.Contains(t, text, "crossover=cx mutation=random")
	assert.Contains(t, text, "generations=5")
	match := runIDPattern.FindStringSubmatch(text)
	require.Len(t, match, 2)
	runID := match[1]

	out.Reset()
	require.NoError(t, run(ctx, append([]string{"runs", "--json"}, common...)))
	var items []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, runID, items[0]["run_id"])

	out.Reset()
	require.NoError(t, run(ctx, append([]string{"show", "--latest"}, common...)))
	assert.Contains(t, out.String(), "run_id="+runID)
	assert.Contains(t, out.String(), "improvement generation=0")

	out.Reset()
	require.NoError(t, run(ctx, append([]string{"solutions"}, common...)))
	assert.True(t, strings.HasPrefix(out.String(), "1st run_id="+runID))

	out.Reset()
	exportDir := filepath.Join(dir, "exports")
	require.NoError(t, run(ctx, append([]string{"export", "--run-id", runID, "--out", exportDir}, common...)))
	assert.Contains(t, out.String(), "exported run_id="+runID)
	assert.FileExists(t, filepath.Join(exportDir, runID, "config.json"))
}

func TestSweepCommandPrintsRankedSummary(t *testing.T) {
	out := captureOutput(t)
	dir := t.TempDir()
	path := writeConfig(t, `
[map]
cities = 6
width = 30
height = 30

[run]
name = "cli_sweep"
population = 8
elitism = 2
generations = 4
crossovers = ["ox", "pmx"]
mutations = ["swap"]
`)

	require.NoError(t, run(context.Background(), []string{"sweep", "--config", path, "--runs-dir", dir, "--no-plots"}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "sweep completed name=cli_sweep runs=2")
	assert.True(t, strings.HasPrefix(lines[1], "1 "))
	assert.FileExists(t, filepath.Join(dir, "experiments", "cli_sweep", "summary.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "experiments", "cli_sweep", "best.png"))

	out.Reset()
	require.NoError(t, run(context.Background(), []string{"experiments", "--runs-dir", dir}))
	assert.True(t, strings.HasPrefix(out.String(), "experiment=cli_sweep "))
	assert.Contains(t, out.String(), "runs=2")
}

func TestImportRunAndExportMapWithSQLite(t *testing.T) {
	ctx := context.Background()
	out := captureOutput(t)
	dir := t.TempDir()
	common := []string{"--runs-dir", filepath.Join(dir, "runs"), "--store", "sqlite", "--db-path", filepath.Join(dir, "tspevo.db")}

	csvPath := filepath.Join(dir, "triangle.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("id,x,y\nA,0,0\nB,0,3\nC,4,0\n"), 0o644))

	require.NoError(t, run(ctx, append([]string{"import-map", "--file", csvPath}, common...)))
	assert.Contains(t, out.String(), "imported map=triangle cities=3")

	out.Reset()
	args := append([]string{"run", "--map-id", "triangle", "--pop", "4", "--elitism", "0", "--gens", "2", "--no-plots"}, common...)
	require.NoError(t, run(ctx, args))
	assert.Contains(t, out.String(), "best distance=12.00")

	out.Reset()
	require.NoError(t, run(ctx, append([]string{"export-map", "--map-id", "triangle"}, common...)))
	assert.Equal(t, "id,name,x,y\nA,,0,0\nB,,0,3\nC,,4,0\n", out.String())

	require.Error(t, run(ctx, append([]string{"import-map"}, common...)))
	require.Error(t, run(ctx, append([]string{"export-map", "--map-id", "missing"}, common...)))
}

func TestMapsCommand(t *testing.T) {
	out := captureOutput(t)
	require.NoError(t, run(context.Background(), []string{"maps"}))
	assert.Contains(t, out.String(), "map=nigeria cities=")
}

func TestCommandErrors(t *testing.T) {
	ctx := context.Background()
	captureOutput(t)
	dir := t.TempDir()

	err := run(ctx, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage: tspevoctl")

	err = run(ctx, []string{"bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command: bogus")

	require.Error(t, run(ctx, []string{"export", "--runs-dir", dir}))
	require.Error(t, run(ctx, []string{"export", "--runs-dir", dir, "--run-id", "a", "--latest"}))
	require.Error(t, run(ctx, []string{"runs", "--runs-dir", dir, "--limit", "0"}))
	require.Error(t, run(ctx, []string{"experiments", "--runs-dir", dir, "--limit", "-1"}))
	require.Error(t, run(ctx, []string{"run", "--runs-dir", dir, "--crossover", "uniform"}))
	require.Error(t, run(ctx, []string{"run", "--runs-dir", dir, "--log-level", "chatty"}))
}
