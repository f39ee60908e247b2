package stats

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"tspevo/internal/model"
)

// TourPoint is one stop of a tour as drawn on the map.
type TourPoint struct {
	Label string
	X     float64
	Y     float64
}

// HistorySeries is the improvement history of one run.
type HistorySeries struct {
	Name         string
	Improvements []model.Improvement
}

// PlotTour draws the cities as labelled points joined by the closed tour.
// The image format follows the extension of path.
func PlotTour(path, title string, tour []TourPoint) error {
	if len(tour) == 0 {
		return fmt.Errorf("tour is empty")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X Coordinate"
	p.Y.Label.Text = "Y Coordinate"

	stops := make(plotter.XYs, len(tour))
	labels := make([]string, len(tour))
	for i, point := range tour {
		stops[i].X = point.X
		stops[i].Y = point.Y
		labels[i] = point.Label
	}
	closed := append(append(plotter.XYs{}, stops...), stops[0])

	tourLine, err := plotter.NewLine(closed)
	if err != nil {
		return err
	}
	tourLine.Color = color.RGBA{R: 220, A: 255}

	cities, err := plotter.NewScatter(stops)
	if err != nil {
		return err
	}
	cities.Color = color.RGBA{B: 220, A: 255}
	cities.Radius = vg.Points(3)

	names, err := plotter.NewLabels(plotter.XYLabels{XYs: stops, Labels: labels})
	if err != nil {
		return err
	}
	names.Offset = vg.Point{X: -vg.Points(4), Y: vg.Points(6)}

	p.Add(tourLine, cities, names)
	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

// PlotBestHistory draws one step line per run: the best distance found so far
// against the generation, held flat until the final generation.
func PlotBestHistory(path string, series []HistorySeries, generations int) error {
	p := plot.New()
	p.Title.Text = "TSP Best Solutions History"
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Best distance"

	for i, s := range series {
		if len(s.Improvements) == 0 {
			continue
		}
		points := make(plotter.XYs, 0, 2*len(s.Improvements)+1)
		for j, imp := range s.Improvements {
			if j > 0 {
				points = append(points, plotter.XY{X: float64(imp.Generation), Y: s.Improvements[j-1].Distance})
			}
			points = append(points, plotter.XY{X: float64(imp.Generation), Y: imp.Distance})
		}
		last := s.Improvements[len(s.Improvements)-1]
		points = append(points, plotter.XY{X: float64(generations), Y: last.Distance})

		line, err := plotter.NewLine(points)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i / len(plotutil.DefaultColors))
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}
	p.Legend.Top = true

	return p.Save(10*vg.Inch, 7*vg.Inch, path)
}
