// Package phenodb defines the lifecycle interfaces of the system. Pure
// packages under pkg/ carry the domain logic; implementations of these
// interfaces live under internal/ and do the I/O. Interfaces are
// consumed by the command layer, implementations are returned as
// concrete constructors.
package phenodb

import (
	"context"

	"github.com/nitpicker55555/phenodb/pkg/grid"
	"github.com/nitpicker55555/phenodb/pkg/infer"
)

// Extractor turns a tree of transcription documents into per-table
// CSV files plus the folder metadata consumed by the Merger.
type Extractor interface {
	// ExtractDocument parses one document into its tables. A malformed
	// document fails closed: it returns an error and zero tables, and
	// the batch driver logs and continues.
	ExtractDocument(path string) ([]grid.Grid, error)

	// Run walks the source tree, extracts every table-bearing folder,
	// writes one CSV per extracted table into the work directory, and
	// returns the inferred folder metadata keyed by folder index.
	Run(ctx context.Context) (map[string]infer.Metadata, error)
}

// Merger combines the per-table CSVs of one extraction run into the
// canonical wide observation table.
type Merger interface {
	// Merge reads the work directory, keeps the tables matching the
	// observation column count, joins them with folder metadata by
	// index, and writes the merged CSV. Returns the number of data
	// rows written.
	Merge(ctx context.Context, meta map[string]infer.Metadata) (int, error)
}

// Importer bulk-loads a merged CSV into the transcription schema.
type Importer interface {
	// Import reads the merged CSV and the species mapping file, creates
	// stations and observations, and reports how many rows were loaded
	// and how many were skipped for unmapped species or headers.
	Import(ctx context.Context) (ImportStats, error)
}

// ImportStats summarizes one import run.
type ImportStats struct {
	Stations     int
	Observations int
	SkippedRows  int
}
