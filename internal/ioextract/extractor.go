// Package ioextract walks a transcription tree, parses the ODT
// documents of table-bearing folders, and writes one CSV per extracted
// table. This is an impure I/O package; the grid model and the folder
// name heuristics live in pkg/.
package ioextract

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/nitpicker55555/phenodb/pkg/config"
	"github.com/nitpicker55555/phenodb/pkg/infer"
	"github.com/nitpicker55555/phenodb/pkg/phenodb"
	"github.com/nitpicker55555/phenodb/pkg/refdata"
)

type extractor struct {
	cfg *config.Config
	rd  *refdata.RefData
}

// New creates an Extractor for one pipeline run.
func New(cfg *config.Config, rd *refdata.RefData) phenodb.Extractor {
	return &extractor{cfg: cfg, rd: rd}
}

var rxUnsafe = regexp.MustCompile(`[^0-9A-Za-zÄÖÜäöüß]+`)

// Run walks the source tree and extracts every table-bearing folder.
// A folder qualifies when its name contains "tabelle" (any case) or
// appears in the extra scan list. Failed documents are logged and
// skipped; the batch keeps going.
func (e *extractor) Run(
	ctx context.Context,
) (map[string]infer.Metadata, error) {
	srcDir := e.cfg.Pipeline.SourceDir
	info, err := os.Stat(srcDir)
	if err != nil || !info.IsDir() {
		return nil, DirNotFoundError(srcDir, err)
	}

	workDir := e.workDir()
	if err := os.MkdirAll(workDir, 0755); err != nil {
		return nil, OutputError(workDir, err)
	}

	folders, err := e.tableFolders(srcDir)
	if err != nil {
		return nil, err
	}

	gn.Info("Extracting tables from %s folders",
		humanize.Comma(int64(len(folders))))

	meta := make(map[string]infer.Metadata)
	places := e.rd.PlaceSet()

	bar := pb.Full.Start(len(folders))
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	for _, folder := range folders {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		bar.Set("prefix", filepath.Base(folder)+" ")

		md := infer.Infer(filepath.Base(folder), places)
		if md.Index != "" {
			meta[md.Index] = md
		}

		if err := e.extractFolder(folder, workDir, md); err != nil {
			slog.Warn("document extraction failed",
				"folder", folder, "error", err)
		}
		bar.Increment()
	}

	return meta, nil
}

// tableFolders collects the directories to scan, sorted by path so
// repeated runs produce identical output.
func (e *extractor) tableFolders(srcDir string) ([]string, error) {
	extra := make(map[string]struct{}, len(e.rd.ExtraScanDirs))
	for _, d := range e.rd.ExtraScanDirs {
		extra[d] = struct{}{}
	}

	var res []string
	err := filepath.WalkDir(srcDir,
		func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() || path == srcDir {
				return nil
			}
			name := d.Name()
			_, isExtra := extra[name]
			if isExtra || strings.Contains(strings.ToLower(name), "tabelle") {
				res = append(res, path)
			}
			return nil
		})
	if err != nil {
		return nil, DirNotFoundError(srcDir, err)
	}
	return res, nil
}

// extractFolder parses every ODT document of one folder and writes its
// tables as CSV files into the work directory.
func (e *extractor) extractFolder(
	folder, workDir string,
	md infer.Metadata,
) error {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return DocumentError(folder, err)
	}

	for _, entry := range entries {
		if entry.IsDir() ||
			!strings.EqualFold(filepath.Ext(entry.Name()), ".odt") {
			continue
		}
		docPath := filepath.Join(folder, entry.Name())

		grids, err := e.ExtractDocument(docPath)
		if err != nil {
			// One bad document never stops the batch.
			slog.Warn("skipping document", "path", docPath, "error", err)
			continue
		}

		base := safeName(strings.TrimSuffix(entry.Name(),
			filepath.Ext(entry.Name())))
		for i, g := range grids {
			name := fmt.Sprintf("%s_%s_table_%d.csv",
				md.Index, base, i+1)
			if md.Index == "" {
				name = fmt.Sprintf("%s_table_%d.csv", base, i+1)
			}
			out := filepath.Join(workDir, name)
			// Rows keep their natural widths; the merge stage uses the
			// first row's width as the table-type fingerprint.
			if err := writeCSV(out, g.Rows); err != nil {
				return err
			}
		}
	}
	return nil
}

// workDir resolves the per-table CSV directory: the configured one, or
// a "tables" directory next to the merged output.
func (e *extractor) workDir() string {
	if e.cfg.Pipeline.WorkDir != "" {
		return e.cfg.Pipeline.WorkDir
	}
	return filepath.Join(filepath.Dir(e.cfg.Pipeline.OutputFile), "tables")
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return OutputError(path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return OutputError(path, err)
	}
	w.Flush()
	return w.Error()
}

// safeName strips characters that make awkward file names.
func safeName(s string) string {
	return strings.Trim(rxUnsafe.ReplaceAllString(s, "_"), "_")
}
