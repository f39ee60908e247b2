package tspevo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"tspevo/internal/dataextract"
	"tspevo/internal/model"
	"tspevo/internal/storage"
)

// ImportMapRequest reads a city table from CSV. Without a header the columns
// are id,x,y; with one they are found by name (id, name, x/lon, y/lat).
type ImportMapRequest struct {
	ID        string
	Name      string
	HasHeader bool
	Source    io.Reader
}

type ImportMapSummary struct {
	ID     string
	Cities int
}

func (c *Client) ImportMap(ctx context.Context, req ImportMapRequest) (ImportMapSummary, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return ImportMapSummary{}, errors.New("map id is required")
	}
	if req.Source == nil {
		return ImportMapSummary{}, errors.New("map source is required")
	}
	opts := dataextract.DefaultCitiesOptions()
	opts.HasHeader = req.HasHeader
	cities, err := dataextract.ExtractCitiesCSV(req.Source, opts)
	if err != nil {
		return ImportMapSummary{}, err
	}
	name := req.Name
	if name == "" {
		name = id
	}
	cityMap := model.CityMap{
		VersionedRecord: storage.CurrentVersion(),
		ID:              id,
		Name:            name,
		Cities:          cities,
	}
	set, err := setFromRecord(cityMap)
	if err != nil {
		return ImportMapSummary{}, fmt.Errorf("import map %s: %w", id, err)
	}
	if set.Len() < 2 {
		return ImportMapSummary{}, fmt.Errorf("import map %s: need at least 2 cities, got %d", id, set.Len())
	}

	if err := c.ensureInit(ctx); err != nil {
		return ImportMapSummary{}, err
	}
	if err := c.store.SaveCityMap(ctx, cityMap); err != nil {
		return ImportMapSummary{}, err
	}
	c.log.WithField("map_id", id).WithField("cities", set.Len()).Info("map imported")
	return ImportMapSummary{ID: id, Cities: set.Len()}, nil
}

// ExportMap writes a stored map as CSV with an id,name,x,y header.
func (c *Client) ExportMap(ctx context.Context, id string, out io.Writer) error {
	if err := c.ensureInit(ctx); err != nil {
		return err
	}
	cityMap, ok, err := c.store.GetCityMap(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrMapNotFound, id)
	}
	return dataextract.WriteCitiesCSV(out, cityMap.Cities)
}
