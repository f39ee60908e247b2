package stats

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tspevo/internal/model"
)

func TestPlotTourWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tour.png")
	err := PlotTour(path, "TSP: 3 cities. ox swap Generation:4 Best:12.00", []TourPoint{
		{Label: "A", X: 0, Y: 0},
		{Label: "B", X: 0, Y: 3},
		{Label: "C", X: 4, Y: 0},
	})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	require.Error(t, PlotTour(path, "empty", nil))
}

func TestPlotBestHistoryWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best_solutions.png")
	err := PlotBestHistory(path, []HistorySeries{
		{Name: "ox swap", Improvements: []model.Improvement{{Distance: 30, Generation: 0}, {Distance: 22.5, Generation: 7}}},
		{Name: "cx random", Improvements: []model.Improvement{{Distance: 28, Generation: 0}}},
		{Name: "no data"},
	}, 20)
	require.NoError(t, err)
	assert.FileExists(t, path)
}
