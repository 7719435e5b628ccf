package refdata_test

import (
	"testing"

	"github.com/nitpicker55555/phenodb/pkg/refdata"
	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	rd := refdata.New()

	assert.Contains(t, rd.Places, "Freihöls")
	assert.Contains(t, rd.Places, "Allersberg")
	assert.Equal(t, 1856, rd.DefaultYear)
	assert.Contains(t, rd.ExtraScanDirs, "43 - 1856 Allersberg - Taeger")

	// 13 headers map to phase IDs; the duration column is deliberately
	// absent so its values are never imported as observations.
	assert.Len(t, rd.PhaseMapping, 13)
	assert.Equal(t, 3, rd.PhaseMapping["Die Knospen brechen."])
	assert.Equal(t, 6, rd.PhaseMapping["Allgemeines Blühen."])

	// Every known place has coordinates.
	for _, p := range rd.Places {
		_, ok := rd.Coordinates[p]
		assert.True(t, ok, "no coordinates for %s", p)
	}
}

func TestPlaceSet(t *testing.T) {
	rd := refdata.New()
	set := rd.PlaceSet()

	assert.Len(t, set, len(rd.Places))
	_, ok := set["Kastl"]
	assert.True(t, ok)
	_, ok = set["Nürnberg"]
	assert.False(t, ok)
}

func TestValidateBackfillsDefaults(t *testing.T) {
	rd := &refdata.RefData{Places: []string{"Amberg"}}
	warns := rd.Validate()

	assert.Len(t, warns, 2)
	assert.Equal(t, []string{"Amberg"}, rd.Places)
	assert.NotEmpty(t, rd.PhaseMapping)
	assert.Equal(t, 1856, rd.DefaultYear)
}

func TestValidateCompleteDataNoWarnings(t *testing.T) {
	rd := refdata.New()
	assert.Empty(t, rd.Validate())
}
