package xref_test

import (
	"testing"

	"github.com/nitpicker55555/phenodb/pkg/xref"
	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		sp   xref.Species
		want string
	}{
		{
			"english preferred",
			xref.Species{NameEn: "Common Oak", NameLa: "Quercus robur", NameDe: "Stieleiche"},
			"Common Oak",
		},
		{
			"latin when english missing",
			xref.Species{NameLa: "Quercus robur", NameDe: "Eiche"},
			"Quercus robur",
		},
		{
			"german as last resort",
			xref.Species{NameDe: "Stieleiche"},
			"Stieleiche",
		},
		{
			"blank names skipped",
			xref.Species{NameEn: "  ", NameLa: "Fagus sylvatica"},
			"Fagus sylvatica",
		},
		{"nothing available", xref.Species{}, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sp.DisplayName())
		})
	}
}

func TestNameSetContains(t *testing.T) {
	primary := xref.NewNameSet([]xref.Species{
		{ID: 101, NameLa: "Quercus robur", NameEn: "Common Oak", NameDe: "Stieleiche"},
		{ID: 102, NameLa: "Fagus sylvatica"},
	})

	// Latin name matches even when the localized fields differ.
	sp := xref.Species{NameLa: "Quercus robur", NameDe: "Eiche"}
	assert.True(t, primary.Contains(sp))
	assert.Equal(t, "Quercus robur", sp.DisplayName())

	// Match on any field, here the German one.
	assert.True(t, primary.Contains(xref.Species{NameDe: "Stieleiche"}))

	// Exact equality only.
	assert.False(t, primary.Contains(xref.Species{NameLa: "quercus robur"}))
	assert.False(t, primary.Contains(xref.Species{NameLa: "Picea abies"}))
	assert.False(t, primary.Contains(xref.Species{}))
}

func TestNameSetMissing(t *testing.T) {
	primary := xref.NewNameSet([]xref.Species{
		{NameLa: "Quercus robur"},
	})
	historical := []xref.Species{
		{ID: 1, NameLa: "Quercus robur"},
		{ID: 2, NameLa: "Tilia cordata"},
		{ID: 3, NameLa: "Picea abies"},
	}

	missing := primary.Missing(historical)
	assert.Len(t, missing, 2)
	assert.Equal(t, "Tilia cordata", missing[0].NameLa)
	assert.Equal(t, "Picea abies", missing[1].NameLa)
}

func TestCompare(t *testing.T) {
	primary := xref.NewNameSet([]xref.Species{
		{NameLa: "Quercus robur", NameEn: "Common Oak"},
	})
	secondary := []xref.Species{
		{ID: 1, NameLa: "Quercus robur", NameDe: "Eiche"},
		{ID: 2, NameDe: "Vogelbeere"},
	}

	got := xref.Compare(primary, secondary)

	assert.Len(t, got, 2)
	assert.True(t, got[0].ExistsInPheno)
	// English missing, so the scientific name wins the fallback chain.
	assert.Equal(t, "Quercus robur", got[0].DisplayName)
	assert.False(t, got[1].ExistsInPheno)
	assert.Equal(t, "Vogelbeere", got[1].DisplayName)
}

func TestSameStation(t *testing.T) {
	assert.True(t, xref.SameStation("Allersberg", " Allersberg "))
	assert.False(t, xref.SameStation("Freihöls", "Freihoels"))
	assert.False(t, xref.SameStation("Kastl", "kastl"))
}
