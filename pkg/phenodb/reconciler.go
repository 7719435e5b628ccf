package phenodb

import (
	"context"

	"github.com/nitpicker55555/phenodb/pkg/query"
	"github.com/nitpicker55555/phenodb/pkg/xref"
)

// Reconciler answers logical query requests against one or both
// observation schemas. Implementations connect per request with an
// acquire-use-release policy; in combined mode a failure of either
// source fails the whole request, naming the failing source.
type Reconciler interface {
	Overview(ctx context.Context, src query.Source) (query.Overview, error)
	Stations(ctx context.Context, src query.Source) ([]query.StationRow, error)
	Species(ctx context.Context, src query.Source) ([]query.SpeciesRow, error)
	Phases(ctx context.Context, src query.Source) ([]query.PhaseRow, error)
	Observations(ctx context.Context, src query.Source, f query.Filter) ([]query.ObservationRow, error)
	Trends(ctx context.Context, src query.Source, f query.Filter) ([]query.TrendRow, error)

	// Quality reports per-quality-level counts. Only the primary
	// source stores quality metadata; other selectors return an
	// unknown-source error.
	Quality(ctx context.Context) ([]query.QualityRow, error)

	// SpeciesByPhase lists the species observed in one phase.
	SpeciesByPhase(ctx context.Context, src query.Source, phaseID int) ([]query.SpeciesRow, error)

	// PhasesBySpecies lists the phases recorded for one species.
	PhasesBySpecies(ctx context.Context, src query.Source, speciesID int) ([]query.PhaseRow, error)

	// CompareSpecies cross-references the secondary source's species
	// vocabulary against the primary one.
	CompareSpecies(ctx context.Context) ([]xref.Comparison, error)

	// ComparePhases juxtaposes the phases recorded for one species
	// name in both schemas.
	ComparePhases(ctx context.Context, name string) (query.PhaseComparison, error)

	// Distribution computes the spatial and temporal summary over the
	// combined sources. The result is a pure read over near-static
	// data and is cached by the serving layer.
	Distribution(ctx context.Context) (query.Distribution, error)
}
