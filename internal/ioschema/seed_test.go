package ioschema

import (
	"testing"

	"github.com/nitpicker55555/phenodb/pkg/refdata"
	"github.com/stretchr/testify/assert"
)

// Every phase ID the importer can produce must exist in the seed, or
// observations would violate the phase foreign key.
func TestPhaseSeedCoversMapping(t *testing.T) {
	rd := refdata.New()
	for header, id := range rd.PhaseMapping {
		_, ok := phaseSeed[id]
		assert.True(t, ok, "phase %d (%s) missing from seed", id, header)
	}
}

func TestQualityLevelSeed(t *testing.T) {
	assert.NotEmpty(t, qualityLevelSeed)
	for id, desc := range qualityLevelSeed {
		assert.Positive(t, id)
		assert.NotEmpty(t, desc)
	}
}
