// Package dataextract reads city tables from CSV files into map records.
package dataextract

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tspevo/internal/model"
)

// CitiesOptions locates the id, name and coordinate columns. Names win over
// indexes when the file has a header; a negative index means "not present"
// for the name column and "use the default position" for the others.
type CitiesOptions struct {
	HasHeader       bool
	IDColumnName    string
	IDColumnIndex   int
	NameColumnName  string
	NameColumnIndex int
	XColumnName     string
	XColumnIndex    int
	YColumnName     string
	YColumnIndex    int
}

// DefaultCitiesOptions expects "id,x,y" without a header.
func DefaultCitiesOptions() CitiesOptions {
	return CitiesOptions{
		IDColumnIndex:   0,
		NameColumnIndex: -1,
		XColumnIndex:    1,
		YColumnIndex:    2,
	}
}

var (
	idAliases = []string{"id", "city", "code"}
	nameAlias = []string{"name", "label"}
	xAliases  = []string{"x", "lon", "lng", "longitude"}
	yAliases  = []string{"y", "lat", "latitude"}
)

// ExtractCitiesCSV reads one city per row. Blank rows are skipped; an empty
// id falls back to the row number.
func ExtractCitiesCSV(in io.Reader, opts CitiesOptions) ([]model.CityRecord, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	idIdx, nameIdx, xIdx, yIdx := opts.IDColumnIndex, opts.NameColumnIndex, opts.XColumnIndex, opts.YColumnIndex
	row := 0
	if opts.HasHeader {
		header, err := reader.Read()
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read cities header: %w", err)
		}
		row++
		if idIdx, err = resolveColumn(header, opts.IDColumnName, idAliases, idIdx); err != nil {
			return nil, err
		}
		if nameIdx, err = resolveColumn(header, opts.NameColumnName, nameAlias, nameIdx); err != nil {
			return nil, err
		}
		if xIdx, err = resolveColumn(header, opts.XColumnName, xAliases, xIdx); err != nil {
			return nil, err
		}
		if yIdx, err = resolveColumn(header, opts.YColumnName, yAliases, yIdx); err != nil {
			return nil, err
		}
	}
	if xIdx < 0 || yIdx < 0 {
		return nil, fmt.Errorf("cities csv needs x and y columns")
	}

	cities := make([]model.CityRecord, 0, 64)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read cities row %d: %w", row+1, err)
		}
		row++
		if blankRecord(record) {
			continue
		}

		x, err := parseFloatField(record, xIdx, row, "x")
		if err != nil {
			return nil, err
		}
		y, err := parseFloatField(record, yIdx, row, "y")
		if err != nil {
			return nil, err
		}
		id := field(record, idIdx)
		if id == "" {
			id = strconv.Itoa(len(cities))
		}
		cities = append(cities, model.CityRecord{
			ID:   id,
			Name: field(record, nameIdx),
			X:    x,
			Y:    y,
		})
	}
	return cities, nil
}

// WriteCitiesCSV writes a header and one "id,name,x,y" row per city.
func WriteCitiesCSV(out io.Writer, cities []model.CityRecord) error {
	writer := csv.NewWriter(out)
	if err := writer.Write([]string{"id", "name", "x", "y"}); err != nil {
		return fmt.Errorf("write cities header: %w", err)
	}
	for i, c := range cities {
		if err := writer.Write([]string{
			c.ID,
			c.Name,
			strconv.FormatFloat(c.X, 'f', -1, 64),
			strconv.FormatFloat(c.Y, 'f', -1, 64),
		}); err != nil {
			return fmt.Errorf("write cities row %d: %w", i+1, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush cities csv: %w", err)
	}
	return nil
}

// resolveColumn prefers an explicit column name, then a known alias, then the
// fallback index.
func resolveColumn(header []string, name string, aliases []string, fallback int) (int, error) {
	if strings.TrimSpace(name) != "" {
		return columnIndexByName(header, name)
	}
	for _, alias := range aliases {
		if idx, err := columnIndexByName(header, alias); err == nil {
			return idx, nil
		}
	}
	return fallback, nil
}

func parseFloatField(record []string, idx, row int, column string) (float64, error) {
	if idx >= len(record) {
		return 0, fmt.Errorf("cities row %d missing %s column index %d", row, column, idx)
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(record[idx]), 64)
	if err != nil {
		return 0, fmt.Errorf("parse cities %s row %d: %w", column, row, err)
	}
	return value, nil
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func columnIndexByName(header []string, name string) (int, error) {
	want := strings.TrimSpace(strings.ToLower(name))
	for i, f := range header {
		if strings.ToLower(strings.TrimSpace(f)) == want {
			return i, nil
		}
	}
	return -1, fmt.Errorf("csv column not found: %s", name)
}

func blankRecord(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
