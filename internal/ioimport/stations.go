package ioimport

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/gnames/gnuuid"
	"github.com/nitpicker55555/phenodb/pkg/infer"
)

// Merged CSV column layout: index, date, location, species, phases,
// station description last.
const (
	colIndex    = 0
	colDate     = 1
	colLocation = 2
	colSpecies  = 3
)

type station struct {
	id          string
	name        string
	description string
	lat, lon    float64
}

// stationID derives a deterministic UUID from the station's identity,
// so repeated imports of the same tree reuse the same station rows.
func stationID(location, description string) string {
	return gnuuid.New(location + "|" + description).String()
}

// collectStations gathers the distinct stations of the merged rows.
// Identity is the (location, description) pair; coordinates come from
// the reference data, leaving unknown places at the zero coordinate.
func (imp *importer) collectStations(rows [][]string) []station {
	seen := make(map[string]station)
	for _, row := range rows {
		if len(row) < 4 {
			continue
		}
		location := row[colLocation]
		if location == "" {
			location = infer.UnknownLocation
		}
		description := strings.TrimSpace(row[len(row)-1])

		id := stationID(location, description)
		if _, ok := seen[id]; ok {
			continue
		}
		st := station{
			id:          id,
			name:        location,
			description: description,
		}
		if ll, ok := imp.rd.Coordinates[location]; ok {
			st.lat, st.lon = ll.Lat, ll.Lon
		}
		seen[id] = st
	}

	res := make([]station, 0, len(seen))
	for _, st := range seen {
		res = append(res, st)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].id < res[j].id })
	return res
}

func (imp *importer) insertStations(
	ctx context.Context,
	stations []station,
) error {
	pool := imp.operator.Pool()
	if pool == nil {
		return StationsError(errors.New("database is not connected"))
	}

	sql := `
		INSERT INTO dwd_station
			(station_id, station_name, description, lat, lon)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (station_id) DO NOTHING
	`
	for _, st := range stations {
		_, err := pool.Exec(ctx, sql,
			st.id, st.name, st.description, st.lat, st.lon)
		if err != nil {
			return StationsError(err)
		}
	}
	return nil
}
