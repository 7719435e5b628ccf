// Package iomerge combines the per-table CSV files of an extraction
// run into the canonical wide observation table. Tables are filtered
// by structure: only grids whose first row has the observation column
// count survive, and within them only rows of that exact width.
package iomerge

import (
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/nitpicker55555/phenodb/pkg/config"
	"github.com/nitpicker55555/phenodb/pkg/infer"
	"github.com/nitpicker55555/phenodb/pkg/phenodb"
)

type merger struct {
	cfg *config.Config
}

// New creates a Merger for one pipeline run.
func New(cfg *config.Config) phenodb.Merger {
	return &merger{cfg: cfg}
}

var rxFileIndex = regexp.MustCompile(`^(\d+)_`)

// Merge reads the work directory in lexicographic file order, so
// repeated runs over an unchanged tree produce byte-identical output.
func (m *merger) Merge(
	ctx context.Context,
	meta map[string]infer.Metadata,
) (int, error) {
	workDir := m.workDir()
	entries, err := os.ReadDir(workDir)
	if err != nil {
		return 0, ReadError(workDir, err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".csv" {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	out, err := os.Create(m.cfg.Pipeline.OutputFile)
	if err != nil {
		return 0, WriteError(m.cfg.Pipeline.OutputFile, err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.Write(phenodb.MergedCSVHeader()); err != nil {
		return 0, WriteError(m.cfg.Pipeline.OutputFile, err)
	}

	var written int
	for _, name := range files {
		select {
		case <-ctx.Done():
			return written, ctx.Err()
		default:
		}

		n, err := m.mergeFile(w, workDir, name, meta)
		if err != nil {
			return written, err
		}
		written += n
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return written, WriteError(m.cfg.Pipeline.OutputFile, err)
	}

	gn.Info("Merged %s observation rows into %s",
		humanize.Comma(int64(written)), m.cfg.Pipeline.OutputFile)
	return written, nil
}

// mergeFile appends the accepted rows of one table file. A wrong
// column count is an expected, frequent occurrence (cover sheets,
// remark tables) and is skipped without an error.
func (m *merger) mergeFile(
	w *csv.Writer,
	workDir, name string,
	meta map[string]infer.Metadata,
) (int, error) {
	path := filepath.Join(workDir, name)
	f, err := os.Open(path)
	if err != nil {
		return 0, ReadError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return 0, ReadError(path, err)
	}

	if len(rows) == 0 || len(rows[0]) != phenodb.MergedColumnCount {
		slog.Debug("table skipped, wrong shape", "file", name)
		return 0, nil
	}

	index := ""
	if match := rxFileIndex.FindStringSubmatch(name); match != nil {
		index = match[1]
	}
	date, location := "", infer.UnknownLocation
	if md, ok := meta[index]; ok {
		date = md.Date
		if md.Location != "" {
			location = md.Location
		}
	}

	var written int
	for _, row := range rows {
		if len(row) != phenodb.MergedColumnCount {
			continue
		}
		record := append([]string{index, date, location}, row...)
		if err := w.Write(record); err != nil {
			return written, WriteError(m.cfg.Pipeline.OutputFile, err)
		}
		written++
	}
	return written, nil
}

func (m *merger) workDir() string {
	if m.cfg.Pipeline.WorkDir != "" {
		return m.cfg.Pipeline.WorkDir
	}
	return filepath.Join(filepath.Dir(m.cfg.Pipeline.OutputFile), "tables")
}
