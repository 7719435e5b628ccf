package infer_test

import (
	"testing"

	"github.com/nitpicker55555/phenodb/pkg/infer"
	"github.com/nitpicker55555/phenodb/pkg/refdata"
	"github.com/stretchr/testify/assert"
)

var places = refdata.New().PlaceSet()

func TestDate(t *testing.T) {
	tests := []struct {
		name   string
		folder string
		want   string
	}{
		{"full date", "6 Tabelle - Freihöls 25.4.1856 - Gigglberger", "25.4.1856"},
		{"month typo corrected", "6 Tabelle - Freihöls 25.22.1856 - Gigglberger", "25.11.1856"},
		{"year typo corrected", "12 Tabelle - Kastl 3.5.2856 - Maier", "3.5.1856"},
		{"bare year fallback", "43 - 1856 Allersberg - Taeger", "1856"},
		{"no date at all", "7 Tabelle - Wernberg - Huber", ""},
		{"three digit year", "9 Tabelle - Berg 14.9.856 - Schmid", "14.9.856"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, infer.Date(tt.folder))
		})
	}
}

func TestLocation(t *testing.T) {
	tests := []struct {
		name   string
		folder string
		want   string
	}{
		{
			"known place before date",
			"6 Tabelle - Freihöls 25.22.1856 - Gigglberger",
			"Freihöls",
		},
		{
			"place after bare year",
			"43 - 1856 Allersberg - Taeger",
			"Allersberg",
		},
		{
			"unbestimmt marker",
			"17 Tabelle - unbestimmt - Wagner",
			"Unknown",
		},
		{
			"empty location slot",
			"8 Tabelle - - Schreiner",
			"Unknown",
		},
		{
			"date fills the location slot",
			"21 Tabelle - 14.5.1856 - Lang",
			"Unknown",
		},
		{
			"bare year fills the location slot",
			"33 Tabelle - 1856 - Ostermeier",
			"Unknown",
		},
		{
			"FR prefix stripped",
			"5 Tabelle - FR Sulzbach - Dorner",
			"Sulzbach",
		},
		{
			"capitalized fallback without allow-list hit",
			"14 Tabelle - Ebermannsdorf - Neumann",
			"Ebermannsdorf",
		},
		{
			"file extension ignored",
			"6 Tabelle - Freudenberg - Vogl.odt",
			"Freudenberg",
		},
		{
			"nothing usable",
			"19 Tabelle",
			"Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, infer.Location(tt.folder, places))
		})
	}
}

func TestFolderIndex(t *testing.T) {
	assert.Equal(t, "6", infer.FolderIndex("6 Tabelle - Freihöls - X"))
	assert.Equal(t, "43", infer.FolderIndex("43 - 1856 Allersberg - Taeger"))
	assert.Equal(t, "", infer.FolderIndex("Tabelle ohne Nummer"))
}

func TestInfer(t *testing.T) {
	md := infer.Infer("6 Tabelle - Freihöls 25.22.1856 - Gigglberger", places)
	assert.Equal(t, infer.Metadata{
		Index:    "6",
		Date:     "25.11.1856",
		Location: "Freihöls",
	}, md)
}

// Inference never fails: any string yields defaults at worst.
func TestInferDefaults(t *testing.T) {
	md := infer.Infer("???", places)
	assert.Equal(t, "", md.Index)
	assert.Equal(t, "", md.Date)
	assert.Equal(t, infer.UnknownLocation, md.Location)
}
