package phenodb

// MergedColumnCount is the cell count of an observation table row.
// Source tables carry no header row, so the schema is asserted by
// structure: only grids whose first row has exactly this many cells
// are merged.
const MergedColumnCount = 16

// PhaseHeaders are the historical phenophase column headers of the
// merged table, in their fixed column order. The flowering duration
// column is part of the table but maps to no phase and is never
// imported as an observation.
var PhaseHeaders = []string{
	"Die Knospen brechen.",
	"Die ersten Blätter sind entfaltet.",
	"Allgemeine Belaubung.",
	"Die ersten Blüthen sind entfaltet.",
	"Allgemeines Blühen.",
	"Sämtliche Blüthen sind verblüht.",
	"Dauer der Blüthezeit.",
	"Die ersten Früchte sind reif.",
	"Allgemeine Fruchtreife.",
	"Sämtliche Früchte sind abgefallen.",
	"Die ersten Blätter zeigen die farbliche Färbung.",
	"Alle Blätter zeigen die farbliche Färbung.",
	"Das abfallen der Blätter beginnt.",
	"Alle Blätter sind abgefallen.",
}

// MergedCSVHeader returns the full header row of the merged CSV:
// three metadata columns, the species name, the phase columns, and
// the station description. Column order is fixed and explicit, not
// discovered from source tables.
func MergedCSVHeader() []string {
	header := []string{"Index", "Date", "Location", "Name der Gewächse"}
	header = append(header, PhaseHeaders...)
	header = append(header, "Genaue Bezeichnung der Standorte")
	return header
}
