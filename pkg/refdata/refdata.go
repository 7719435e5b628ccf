// Package refdata defines the reference data consumed by the pipeline
// and the API: the allow-list of known place names, the mapping from
// historical phenophase column headers to phase identifiers, and the
// coordinates of transcription locations.
//
// Reference data is loaded once at process start (see internal/iorefdata)
// and injected read-only into the components that need it.
package refdata

// RefData represents the complete refdata.yaml configuration file.
type RefData struct {
	// Places is the allow-list of known place names used by the folder
	// metadata inference. A token matching this list is accepted as a
	// location even when it conflicts with surname heuristics.
	Places []string `yaml:"places"`

	// ExtraScanDirs lists directories scanned by the extractor even
	// though their names do not contain the table-folder marker.
	ExtraScanDirs []string `yaml:"extra_scan_dirs"`

	// PhaseMapping maps the historical phenophase column headers of the
	// merged CSV to phase IDs of the observation schema. Columns absent
	// from the mapping (the flowering-duration column) are not imported.
	PhaseMapping map[string]int `yaml:"phase_mapping"`

	// Coordinates maps location names of the secondary source to
	// WGS84 coordinates. The secondary schema stores no coordinates;
	// these were researched from forest-district shapefiles.
	Coordinates map[string]LatLon `yaml:"coordinates"`

	// DefaultYear is the reference year assumed when a merged row
	// carries no parsable date.
	DefaultYear int `yaml:"default_year"`
}

// LatLon is a WGS84 coordinate pair.
type LatLon struct {
	Lat float64 `yaml:"lat" json:"lat"`
	Lon float64 `yaml:"lon" json:"lon"`
}

// PlaceSet returns the allow-list as a set for O(1) lookups.
func (rd *RefData) PlaceSet() map[string]struct{} {
	res := make(map[string]struct{}, len(rd.Places))
	for _, p := range rd.Places {
		res[p] = struct{}{}
	}
	return res
}

// New returns reference data with the built-in defaults: the places and
// coordinates of the 1856 Bavarian transcription corpus and the
// phenophase mapping used by the importer.
func New() *RefData {
	return &RefData{
		Places: []string{
			"Bemerkungen", "Freihöls", "Freudenberg", "Sulzbach",
			"Taubenbach", "Kastl", "Wernberg", "Berg", "Richtheim",
			"Hilpoltstein", "Allersberg",
		},
		ExtraScanDirs: []string{"43 - 1856 Allersberg - Taeger"},
		PhaseMapping: map[string]int{
			"Die Knospen brechen.":                             3,
			"Die ersten Blätter sind entfaltet.":               4,
			"Allgemeine Belaubung.":                            16,
			"Die ersten Blätter zeigen die farbliche Färbung.": 31,
			"Alle Blätter zeigen die farbliche Färbung.":       31,
			"Das abfallen der Blätter beginnt.":                32,
			"Alle Blätter sind abgefallen.":                    32,
			"Die ersten Blüthen sind entfaltet.":               5,
			"Allgemeines Blühen.":                              6,
			"Sämtliche Blüthen sind verblüht.":                 7,
			"Die ersten Früchte sind reif.":                    29,
			"Allgemeine Fruchtreife.":                          29,
			"Sämtliche Früchte sind abgefallen.":               30,
		},
		Coordinates: map[string]LatLon{
			"Allersberg":   {Lat: 49.1645, Lon: 11.1660},
			"Taubenbach":   {Lat: 49.4454, Lon: 11.8214},
			"Wernberg":     {Lat: 49.4939, Lon: 12.1602},
			"Hilpoltstein": {Lat: 49.1645, Lon: 11.1660},
			"Richtheim":    {Lat: 49.4454, Lon: 11.8214},
			"Freudenberg":  {Lat: 49.4454, Lon: 11.8214},
			"Freihöls":     {Lat: 49.1637, Lon: 11.9993},
			"Sulzbach":     {Lat: 49.5036, Lon: 11.7461},
			"Kastl":        {Lat: 49.3668, Lon: 11.6832},
			"Berg":         {Lat: 49.4570, Lon: 11.4477},
			"Bemerkungen":  {Lat: 49.4454, Lon: 11.8214},
		},
		DefaultYear: 1856,
	}
}
