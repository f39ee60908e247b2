package dataextract

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tspevo/internal/model"
)

func TestExtractCitiesCSVWithHeaderAliases(t *testing.T) {
	in := strings.NewReader("name,latitude,longitude,code\nLagos,6.5244,3.3792,LA\n\n Kano , 12.0022,8.592,KN\n")
	opts := DefaultCitiesOptions()
	opts.HasHeader = true

	cities, err := ExtractCitiesCSV(in, opts)
	require.NoError(t, err)
	assert.Equal(t, []model.CityRecord{
		{ID: "LA", Name: "Lagos", X: 3.3792, Y: 6.5244},
		{ID: "KN", Name: "Kano", X: 8.592, Y: 12.0022},
	}, cities)
}

func TestExtractCitiesCSVByIndexWithoutHeader(t *testing.T) {
	in := strings.NewReader("A,0,0\nB,0,3\n,4,0\n")
	cities, err := ExtractCitiesCSV(in, DefaultCitiesOptions())
	require.NoError(t, err)
	require.Len(t, cities, 3)
	assert.Equal(t, model.CityRecord{ID: "B", X: 0, Y: 3}, cities[1])
	assert.Equal(t, "2", cities[2].ID, "empty ids fall back to the row position")
}

func TestExtractCitiesCSVExplicitColumnNames(t *testing.T) {
	in := strings.NewReader("stop,east,north\nS1,10,20\n")
	cities, err := ExtractCitiesCSV(in, CitiesOptions{
		HasHeader:       true,
		IDColumnName:    "stop",
		NameColumnIndex: -1,
		XColumnName:     "east",
		YColumnName:     "north",
	})
	require.NoError(t, err)
	assert.Equal(t, []model.CityRecord{{ID: "S1", X: 10, Y: 20}}, cities)

	_, err = ExtractCitiesCSV(strings.NewReader("stop,east\nS1,10\n"), CitiesOptions{HasHeader: true, XColumnName: "east", YColumnName: "north"})
	require.Error(t, err)
}

func TestExtractCitiesCSVRejectsBadRows(t *testing.T) {
	_, err := ExtractCitiesCSV(strings.NewReader("A,1,north\n"), DefaultCitiesOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")

	_, err = ExtractCitiesCSV(strings.NewReader("A,1\n"), DefaultCitiesOptions())
	require.Error(t, err)

	cities, err := ExtractCitiesCSV(strings.NewReader(""), CitiesOptions{HasHeader: true, XColumnIndex: 1, YColumnIndex: 2})
	require.NoError(t, err)
	assert.Empty(t, cities)
}

func TestWriteCitiesCSVReadsBack(t *testing.T) {
	cities := []model.CityRecord{
		{ID: "0", Name: "City0", X: 1.5, Y: 2},
		{ID: "1", Name: "City1", X: 7, Y: 0.25},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteCitiesCSV(&buf, cities))
	assert.True(t, strings.HasPrefix(buf.String(), "id,name,x,y\n"))

	opts := DefaultCitiesOptions()
	opts.HasHeader = true
	back, err := ExtractCitiesCSV(&buf, opts)
	require.NoError(t, err)
	assert.Equal(t, cities, back)
}
