package query_test

import (
	"testing"

	"github.com/nitpicker55555/phenodb/pkg/query"
	"github.com/stretchr/testify/assert"
)

func TestMergeStations(t *testing.T) {
	a := []query.StationRow{
		{Name: "X", Lat: 49.1, Lon: 11.2, Count: 5},
		{Name: "Allersberg", Lat: 49.16, Lon: 11.17, Count: 2},
	}
	b := []query.StationRow{
		{Name: "X", Count: 3},
		{Name: "Kastl", Lat: 49.37, Lon: 11.68, Count: 7},
	}

	got := query.MergeStations(a, b)

	assert.Equal(t, []query.StationRow{
		{Name: "X", Lat: 49.1, Lon: 11.2, Count: 8},
		{Name: "Kastl", Lat: 49.37, Lon: 11.68, Count: 7},
		{Name: "Allersberg", Lat: 49.16, Lon: 11.17, Count: 2},
	}, got)
}

func TestMergeStationsCoordinateBackfill(t *testing.T) {
	a := []query.StationRow{{Name: "Freihöls", Count: 4}}
	b := []query.StationRow{{Name: "Freihöls", Lat: 49.16, Lon: 12.0, Count: 1}}

	got := query.MergeStations(a, b)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(5), got[0].Count)
	assert.Equal(t, 49.16, got[0].Lat)
}

func TestMergeSpecies(t *testing.T) {
	a := []query.SpeciesRow{
		{ID: 101, NameLa: "Quercus robur", NameEn: "Common Oak", Count: 10},
	}
	b := []query.SpeciesRow{
		{ID: 101, NameLa: "Quercus robur", NameDe: "Stieleiche", Count: 4},
		{ID: 205, NameLa: "Tilia cordata", Count: 30},
	}

	got := query.MergeSpecies(a, b)

	assert.Len(t, got, 2)
	assert.Equal(t, 205, got[0].ID)
	assert.Equal(t, 101, got[1].ID)
	assert.Equal(t, int64(14), got[1].Count)
	// Name fields fill from either source.
	assert.Equal(t, "Common Oak", got[1].NameEn)
	assert.Equal(t, "Stieleiche", got[1].NameDe)
}

func TestMergePhases(t *testing.T) {
	a := []query.PhaseRow{{ID: 5, Name: "beginning of flowering", Count: 6}}
	b := []query.PhaseRow{
		{ID: 5, Name: "beginning of flowering", Count: 2},
		{ID: 4, Name: "leaf unfolding", Count: 9},
	}

	got := query.MergePhases(a, b)
	assert.Equal(t, []query.PhaseRow{
		{ID: 4, Name: "leaf unfolding", Count: 9},
		{ID: 5, Name: "beginning of flowering", Count: 8},
	}, got)
}

func TestMergeTrendsWeightedAverage(t *testing.T) {
	a := []query.TrendRow{{Year: 1900, AvgDOY: 100, Count: 10}}
	b := []query.TrendRow{{Year: 1900, AvgDOY: 120, Count: 5}}

	got := query.MergeTrends(a, b)

	assert.Len(t, got, 1)
	assert.Equal(t, 1900, got[0].Year)
	assert.Equal(t, int64(15), got[0].Count)
	// Count-weighted mean, not the naive (100+120)/2.
	assert.InDelta(t, 106.67, got[0].AvgDOY, 0.01)
}

func TestMergeTrendsYearOrder(t *testing.T) {
	a := []query.TrendRow{
		{Year: 1856, AvgDOY: 130, Count: 40},
		{Year: 1990, AvgDOY: 110, Count: 3},
	}
	b := []query.TrendRow{{Year: 1955, AvgDOY: 118, Count: 8}}

	got := query.MergeTrends(a, b)
	years := []int{got[0].Year, got[1].Year, got[2].Year}
	assert.Equal(t, []int{1856, 1955, 1990}, years)
}

func TestMergeObservations(t *testing.T) {
	a := []query.ObservationRow{
		{Year: 1856, DayOfYear: 120, Station: "Kastl"},
		{Year: 1990, DayOfYear: 95, Station: "Kastl"},
	}
	b := []query.ObservationRow{
		{Year: 1990, DayOfYear: 80, Station: "Allersberg"},
		{Year: 1856, DayOfYear: 60, Station: "Allersberg"},
	}

	got := query.MergeObservations(a, b, 3)

	// Year descending, then day-of-year ascending, combined limit.
	assert.Equal(t, []query.ObservationRow{
		{Year: 1990, DayOfYear: 80, Station: "Allersberg"},
		{Year: 1990, DayOfYear: 95, Station: "Kastl"},
		{Year: 1856, DayOfYear: 60, Station: "Allersberg"},
	}, got)
}

func TestMergeObservationsNoLimit(t *testing.T) {
	a := []query.ObservationRow{{Year: 1856, DayOfYear: 1}}
	b := []query.ObservationRow{{Year: 1856, DayOfYear: 2}}
	assert.Len(t, query.MergeObservations(a, b, 0), 2)
}
