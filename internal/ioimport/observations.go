package ioimport

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nitpicker55555/phenodb/pkg/infer"
)

type observation struct {
	speciesID int
	phaseID   int
	stationID string
	year      int
	dayOfYear int
}

// buildObservations expands merged rows into observations: one per
// dated phase cell of a row whose species has a mapping. Rows with
// unmapped species are counted as skipped, never an error.
func (imp *importer) buildObservations(
	rows [][]string,
	mapping speciesMapping,
	phaseCols map[int]int,
) ([]observation, int) {
	var res []observation
	var skipped int

	for _, row := range rows {
		if len(row) < 5 {
			skipped++
			continue
		}
		speciesID, ok := mapping[strings.TrimSpace(row[colSpecies])]
		if !ok {
			skipped++
			continue
		}

		location := row[colLocation]
		if location == "" {
			location = infer.UnknownLocation
		}
		stID := stationID(location, strings.TrimSpace(row[len(row)-1]))
		year := rowYear(row[colDate], imp.rd.DefaultYear)

		for col, phaseID := range phaseCols {
			if col >= len(row) {
				continue
			}
			day, month, ok := parseDayMonth(strings.TrimSpace(row[col]))
			if !ok {
				continue
			}
			res = append(res, observation{
				speciesID: speciesID,
				phaseID:   phaseID,
				stationID: stID,
				year:      year,
				dayOfYear: dayOfYear(year, month, day),
			})
		}
	}
	return res, skipped
}

// insertObservations bulk-inserts with CopyFrom in batches.
func (imp *importer) insertObservations(
	ctx context.Context,
	obs []observation,
) (int, error) {
	pool := imp.operator.Pool()
	if pool == nil {
		return 0, ObservationsError(errors.New("database is not connected"))
	}

	columns := []string{
		"observation_id", "species_id", "phase_id", "station_id",
		"reference_year", "day_of_year", "created_at",
	}

	batchSize := imp.cfg.Secondary.BatchSize
	if batchSize < 1 {
		batchSize = len(obs)
	}

	bar := progressBar(len(obs))
	defer bar.Finish()

	now := time.Now().UTC()
	var inserted int
	for start := 0; start < len(obs); start += batchSize {
		end := start + batchSize
		if end > len(obs) {
			end = len(obs)
		}

		records := make([][]any, 0, end-start)
		for _, o := range obs[start:end] {
			records = append(records, []any{
				uuid.New().String(), o.speciesID, o.phaseID,
				o.stationID, o.year, o.dayOfYear, now,
			})
		}

		n, err := pool.CopyFrom(
			ctx,
			pgx.Identifier{"dwd_observation"},
			columns,
			pgx.CopyFromRows(records),
		)
		if err != nil {
			return inserted, ObservationsError(err)
		}
		inserted += int(n)
		bar.Add(end - start)
	}

	return inserted, nil
}
