package query

import "github.com/nitpicker55555/phenodb/pkg/xref"

// PhaseComparison juxtaposes the phases recorded for one species name
// in both schemas. Matching follows the cross-reference rules: exact
// equality on any of the three localized name fields.
type PhaseComparison struct {
	Name            string         `json:"name"`
	PrimaryMatches  []xref.Species `json:"primary_matches"`
	PrimaryPhases   []PhaseRow     `json:"primary_phases"`
	SecondaryPhases []PhaseRow     `json:"secondary_phases"`
}
