// Package xref cross-references species and station identities between
// the two observation schemas. It is a pure package: callers load the
// raw rows, xref answers membership and naming questions.
package xref

import "strings"

// Species is a vocabulary entry with up to three localized names. Any
// field may be empty.
type Species struct {
	ID      int    `json:"species_id"`
	NameDe  string `json:"name_de"`
	NameEn  string `json:"name_en"`
	NameLa  string `json:"name_la"`
	GroupID int    `json:"group_id,omitempty"`
}

// DisplayName picks the best available name for presentation. English
// is preferred, then the scientific name, then German. A species with
// no names at all renders as "Unknown".
func (sp Species) DisplayName() string {
	for _, name := range []string{sp.NameEn, sp.NameLa, sp.NameDe} {
		if strings.TrimSpace(name) != "" {
			return name
		}
	}
	return "Unknown"
}

// Names returns the non-empty name fields of the species.
func (sp Species) Names() []string {
	var res []string
	for _, name := range []string{sp.NameDe, sp.NameEn, sp.NameLa} {
		if name != "" {
			res = append(res, name)
		}
	}
	return res
}

// NameSet is the flattened set of all non-empty names, across all
// three name fields, of one source's full species table. Membership is
// exact string equality, not fuzzy matching.
type NameSet map[string]struct{}

// NewNameSet flattens vocabulary rows into a NameSet.
func NewNameSet(species []Species) NameSet {
	res := make(NameSet)
	for _, sp := range species {
		for _, name := range sp.Names() {
			res[name] = struct{}{}
		}
	}
	return res
}

// Contains reports whether any name field of sp appears in the set.
// A no-match is a valid result, never an error.
func (ns NameSet) Contains(sp Species) bool {
	for _, name := range sp.Names() {
		if _, ok := ns[name]; ok {
			return true
		}
	}
	return false
}

// Missing returns the entries of species that have no name match in
// the set, in input order. Used to report which historical species
// never made it into the reference vocabulary.
func (ns NameSet) Missing(species []Species) []Species {
	var res []Species
	for _, sp := range species {
		if !ns.Contains(sp) {
			res = append(res, sp)
		}
	}
	return res
}

// Comparison is the cross-reference verdict for one secondary-source
// species.
type Comparison struct {
	Species       Species `json:"species"`
	ExistsInPheno bool    `json:"exists_in_pheno"`
	DisplayName   string  `json:"display_name"`
}

// Compare cross-references secondary-source species against the
// primary source's flattened name set, in input order.
func Compare(primary NameSet, secondary []Species) []Comparison {
	res := make([]Comparison, len(secondary))
	for i, sp := range secondary {
		res[i] = Comparison{
			Species:       sp,
			ExistsInPheno: primary.Contains(sp),
			DisplayName:   sp.DisplayName(),
		}
	}
	return res
}

// SameStation reports whether two station names refer to the same
// physical place. Identity is exact equality after trimming; spelling
// variants and diacritic differences stay distinct stations, which is
// a documented accuracy limitation of the source data.
func SameStation(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}
