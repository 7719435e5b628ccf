// Package query builds and reconciles observation queries across the
// two schemas. The schemas diverged over time: one carries duplicate
// dimension rows that need deduplicating sub-selects, the other
// pre-aggregates station statistics in a materialized view and stores
// quality metadata the first one lacks. Rather than hand-writing two
// SQL variants per endpoint, every query is generated from a source
// Descriptor so both variants share one code path with data-driven
// differences.
//
// The package is pure: it produces SQL strings, arguments, and merge
// functions. Connection handling lives in internal/ioquery.
package query

import "fmt"

// Source selects which schema(s) a request reads from.
type Source string

const (
	// SourcePrimary is the curated reference schema.
	SourcePrimary Source = "pheno"
	// SourceSecondary is the historical transcription schema.
	SourceSecondary Source = "pheno_new"
	// SourceBoth fans out to both schemas and merges the results.
	SourceBoth Source = "both"
)

// ParseSource validates a data-source selector string. An empty
// selector defaults to the primary source.
func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case "":
		return SourcePrimary, nil
	case SourcePrimary, SourceSecondary, SourceBoth:
		return Source(s), nil
	}
	return "", fmt.Errorf("unknown data source %q", s)
}

// Descriptor captures the schema-specific traits that drive SQL
// generation for one source.
type Descriptor struct {
	// Name is the source label, used in error messages and the
	// "source" field of responses.
	Name string

	// DedupDimensions is set when the schema stores duplicate dimension
	// rows (several station IDs for one physical place) and dimension
	// listings need a deduplicating aggregation keyed by natural id.
	DedupDimensions bool

	// HasGroupNames is set when the species table links to a species
	// group vocabulary.
	HasGroupNames bool

	// HasQualityData is set when observations carry quality level and
	// quality byte references.
	HasQualityData bool

	// HasStatsView is set when per-station observation statistics are
	// pre-aggregated in a materialized view.
	HasStatsView bool

	// HasCoordinates is set when stations store geographic coordinates.
	HasCoordinates bool
}

// Primary describes the curated reference schema.
func Primary() Descriptor {
	return Descriptor{
		Name:            string(SourcePrimary),
		HasGroupNames:   true,
		HasQualityData:  true,
		HasStatsView:    true,
		HasCoordinates:  true,
		DedupDimensions: false,
	}
}

// Secondary describes the historical transcription schema.
func Secondary() Descriptor {
	return Descriptor{
		Name:            string(SourceSecondary),
		DedupDimensions: true,
		HasCoordinates:  true,
	}
}

// Descriptors returns the descriptors a selector resolves to, in
// primary-first order.
func Descriptors(src Source) []Descriptor {
	switch src {
	case SourcePrimary:
		return []Descriptor{Primary()}
	case SourceSecondary:
		return []Descriptor{Secondary()}
	default:
		return []Descriptor{Primary(), Secondary()}
	}
}

// Filter holds the optional predicates of a logical query request.
// Zero values mean "not filtered".
type Filter struct {
	SpeciesID int
	PhaseID   int
	Station   string
	YearFrom  int
	YearTo    int
	Limit     int
}

// StationRow is one entry of a station dimension listing.
type StationRow struct {
	Name  string  `json:"name"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Count int64   `json:"observation_count"`
}

// SpeciesRow is one entry of a species dimension listing.
type SpeciesRow struct {
	ID        int    `json:"species_id"`
	NameDe    string `json:"name_de"`
	NameEn    string `json:"name_en"`
	NameLa    string `json:"name_la"`
	GroupName string `json:"group_name,omitempty"`
	Count     int64  `json:"observation_count"`
}

// PhaseRow is one entry of a phase dimension listing.
type PhaseRow struct {
	ID    int    `json:"phase_id"`
	Name  string `json:"name"`
	Count int64  `json:"observation_count"`
}

// ObservationRow is one raw observation.
type ObservationRow struct {
	Year      int    `json:"reference_year"`
	DayOfYear int    `json:"day_of_year"`
	SpeciesID int    `json:"species_id"`
	PhaseID   int    `json:"phase_id"`
	Station   string `json:"station_name"`
	Source    string `json:"source"`
}

// TrendRow is one yearly aggregate of a trend listing.
type TrendRow struct {
	Year   int     `json:"reference_year"`
	AvgDOY float64 `json:"avg_day_of_year"`
	Count  int64   `json:"observation_count"`
}
