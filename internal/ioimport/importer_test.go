package ioimport

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/nitpicker55555/phenodb/pkg/config"
	"github.com/nitpicker55555/phenodb/pkg/phenodb"
	"github.com/nitpicker55555/phenodb/pkg/refdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayMonth(t *testing.T) {
	tests := []struct {
		cell       string
		day, month int
		ok         bool
	}{
		{"25.4.", 25, 4, true},
		{"25.4", 25, 4, true},
		{"1.12.", 1, 12, true},
		{"3. 5.", 3, 5, true},
		{"", 0, 0, false},
		{"-", 0, 0, false},
		{"blüht nicht", 0, 0, false},
		{"25.13.", 0, 0, false},
		{"32.4.", 0, 0, false},
		{"25.4.1856", 0, 0, false},
	}

	for _, tt := range tests {
		day, month, ok := parseDayMonth(tt.cell)
		assert.Equal(t, tt.ok, ok, tt.cell)
		assert.Equal(t, tt.day, day, tt.cell)
		assert.Equal(t, tt.month, month, tt.cell)
	}
}

func TestRowYear(t *testing.T) {
	assert.Equal(t, 1856, rowYear("25.11.1856", 1900))
	assert.Equal(t, 1856, rowYear("1856", 1900))
	assert.Equal(t, 1900, rowYear("", 1900))
	assert.Equal(t, 1900, rowYear("25.4.", 1900))
}

func TestDayOfYear(t *testing.T) {
	assert.Equal(t, 1, dayOfYear(1856, 1, 1))
	assert.Equal(t, 32, dayOfYear(1856, 2, 1))
	// 1856 is a leap year.
	assert.Equal(t, 61, dayOfYear(1856, 3, 1))
	assert.Equal(t, 62, dayOfYear(1857, 3, 3))
}

func TestStationIDDeterministic(t *testing.T) {
	a := stationID("Freihöls", "am Waldrand")
	b := stationID("Freihöls", "am Waldrand")
	c := stationID("Freihöls", "an der Straße")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 36)
}

func TestLoadMapping(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "mapping.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	w := csv.NewWriter(f)
	require.NoError(t, w.WriteAll([][]string{
		{"csv_name", "db_species_id"},
		{"Quercus robur, Eiche", "101"},
		{"Fagus sylvatica", "102"},
		{"kaputt", "not-a-number"},
		{"", "7"},
	}))
	require.NoError(t, f.Close())

	mapping, err := loadMapping(path)
	require.NoError(t, err)

	assert.Len(t, mapping, 2)
	assert.Equal(t, 101, mapping["Quercus robur, Eiche"])
	assert.Equal(t, 102, mapping["Fagus sylvatica"])
}

func TestCollectStations(t *testing.T) {
	imp := &importer{cfg: config.New(), rd: refdata.New()}

	rows := [][]string{
		mergedRow("6", "25.11.1856", "Freihöls", "Quercus robur", "am Waldrand"),
		mergedRow("6", "25.11.1856", "Freihöls", "Fagus sylvatica", "am Waldrand"),
		mergedRow("7", "", "", "Tilia cordata", ""),
	}

	stations := imp.collectStations(rows)
	require.Len(t, stations, 2)

	var freihoels *station
	for i := range stations {
		if stations[i].name == "Freihöls" {
			freihoels = &stations[i]
		}
	}
	require.NotNil(t, freihoels)
	assert.Equal(t, "am Waldrand", freihoels.description)
	assert.InDelta(t, 49.1637, freihoels.lat, 0.001)
}

func TestBuildObservations(t *testing.T) {
	imp := &importer{cfg: config.New(), rd: refdata.New()}
	header := phenodb.MergedCSVHeader()
	phaseCols := phaseColumns(header, imp.rd.PhaseMapping)

	row := mergedRow("6", "25.11.1856", "Freihöls", "Quercus robur", "am Waldrand")
	// "Die Knospen brechen." is the first phase column.
	row[4] = "25.4."
	// Duration column is unmapped and must not become an observation.
	row[10] = "14"
	noMapping := mergedRow("8", "", "Kastl", "Unbekannt", "")

	mapping := speciesMapping{"Quercus robur": 101}
	obs, skipped := imp.buildObservations(
		[][]string{row, noMapping}, mapping, phaseCols)

	assert.Equal(t, 1, skipped)
	require.Len(t, obs, 1)
	assert.Equal(t, 101, obs[0].speciesID)
	assert.Equal(t, 3, obs[0].phaseID)
	assert.Equal(t, 1856, obs[0].year)
	// 25 April 1856 (leap year).
	assert.Equal(t, 116, obs[0].dayOfYear)
	assert.Equal(t, stationID("Freihöls", "am Waldrand"), obs[0].stationID)
}

func TestPhaseColumns(t *testing.T) {
	header := phenodb.MergedCSVHeader()
	cols := phaseColumns(header, refdata.New().PhaseMapping)

	// 13 mapped headers; the duration column stays out.
	assert.Len(t, cols, 13)
	for col := range cols {
		assert.NotEqual(t, "Dauer der Blüthezeit.", header[col])
	}
}

// mergedRow builds a full-width merged CSV row with the given metadata
// and empty phase cells.
func mergedRow(index, date, location, species, description string) []string {
	row := make([]string, 3+phenodb.MergedColumnCount)
	row[0], row[1], row[2], row[3] = index, date, location, species
	row[len(row)-1] = description
	return row
}
