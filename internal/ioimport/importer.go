// Package ioimport bulk-loads a merged observation CSV into the
// transcription database. Stations are derived from the location and
// station description columns with deterministic UUIDs, so re-imports
// do not multiply stations. Species rows come from the species mapping
// file; rows whose species has no mapping are counted and skipped.
package ioimport

import (
	"context"
	"encoding/csv"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/nitpicker55555/phenodb/pkg/config"
	"github.com/nitpicker55555/phenodb/pkg/db"
	"github.com/nitpicker55555/phenodb/pkg/phenodb"
	"github.com/nitpicker55555/phenodb/pkg/refdata"
)

type importer struct {
	cfg      *config.Config
	rd       *refdata.RefData
	operator db.Operator
}

// New creates an Importer bound to a connected operator for the
// transcription database.
func New(
	cfg *config.Config,
	rd *refdata.RefData,
	op db.Operator,
) phenodb.Importer {
	return &importer{cfg: cfg, rd: rd, operator: op}
}

func (imp *importer) Import(
	ctx context.Context,
) (phenodb.ImportStats, error) {
	var stats phenodb.ImportStats
	start := time.Now()

	mapping, err := loadMapping(imp.cfg.Pipeline.SpeciesMappingFile)
	if err != nil {
		return stats, err
	}

	rows, header, err := imp.readMerged()
	if err != nil {
		return stats, err
	}
	phaseCols := phaseColumns(header, imp.rd.PhaseMapping)

	if err := imp.insertSpecies(ctx, mapping); err != nil {
		return stats, err
	}

	stations := imp.collectStations(rows)
	if err := imp.insertStations(ctx, stations); err != nil {
		return stats, err
	}
	stats.Stations = len(stations)

	obs, skipped := imp.buildObservations(rows, mapping, phaseCols)
	stats.SkippedRows = skipped

	inserted, err := imp.insertObservations(ctx, obs)
	if err != nil {
		return stats, err
	}
	stats.Observations = inserted

	gn.Info("Imported %s observations from %s stations, "+
		"skipped %s rows in %s",
		humanize.Comma(int64(stats.Observations)),
		humanize.Comma(int64(stats.Stations)),
		humanize.Comma(int64(stats.SkippedRows)),
		gnfmt.TimeString(time.Since(start).Seconds()))
	return stats, nil
}

// readMerged loads the merged CSV, returning data rows and the header.
func (imp *importer) readMerged() ([][]string, []string, error) {
	path := imp.cfg.Pipeline.OutputFile
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, CSVError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, CSVError(path, err)
	}
	if len(records) == 0 {
		return nil, nil, CSVError(path, errMissingHeader)
	}
	return records[1:], records[0], nil
}

// phaseColumns resolves which merged columns carry phase dates. The
// header is matched against the phase mapping; unmapped columns (the
// flowering duration) stay out.
func phaseColumns(header []string, mapping map[string]int) map[int]int {
	res := make(map[int]int)
	for i, name := range header {
		if id, ok := mapping[name]; ok {
			res[i] = id
		}
	}
	return res
}

// progressBar wraps the standard bar setup used by insert loops.
func progressBar(total int) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
