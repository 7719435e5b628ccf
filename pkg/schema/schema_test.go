package schema_test

import (
	"testing"

	"github.com/nitpicker55555/phenodb/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func TestTableNames(t *testing.T) {
	tests := []struct {
		model interface{ TableName() string }
		want  string
	}{
		{schema.Species{}, "dwd_species"},
		{schema.SpeciesGroup{}, "dwd_species_group"},
		{schema.Phase{}, "dwd_phase"},
		{schema.Station{}, "dwd_station"},
		{schema.Observation{}, "dwd_observation"},
		{schema.QualityLevel{}, "dwd_quality_level"},
		{schema.QualityByte{}, "dwd_quality_byte"},
		{schema.About{}, "dwd_about"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.model.TableName())
	}
}

// Vocabularies migrate before the tables referencing them.
func TestAllModelsOrder(t *testing.T) {
	models := schema.AllModels()
	assert.Len(t, models, 8)
	_, first := models[0].(*schema.SpeciesGroup)
	assert.True(t, first)

	var obsIdx, stationIdx int
	for i, m := range models {
		switch m.(type) {
		case *schema.Observation:
			obsIdx = i
		case *schema.Station:
			stationIdx = i
		}
	}
	assert.Greater(t, obsIdx, stationIdx)
}
