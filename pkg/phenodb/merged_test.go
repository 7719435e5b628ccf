package phenodb_test

import (
	"testing"

	"github.com/nitpicker55555/phenodb/pkg/phenodb"
	"github.com/nitpicker55555/phenodb/pkg/refdata"
	"github.com/stretchr/testify/assert"
)

func TestMergedCSVHeader(t *testing.T) {
	header := phenodb.MergedCSVHeader()

	// 3 metadata columns + 16 content columns.
	assert.Len(t, header, 3+phenodb.MergedColumnCount)
	assert.Equal(t, "Index", header[0])
	assert.Equal(t, "Date", header[1])
	assert.Equal(t, "Location", header[2])
	assert.Equal(t, "Name der Gewächse", header[3])
	assert.Equal(t, "Genaue Bezeichnung der Standorte", header[len(header)-1])
}

// All phase headers except the duration column resolve to phase IDs.
func TestPhaseHeadersMatchMapping(t *testing.T) {
	rd := refdata.New()

	var unmapped []string
	for _, h := range phenodb.PhaseHeaders {
		if _, ok := rd.PhaseMapping[h]; !ok {
			unmapped = append(unmapped, h)
		}
	}
	assert.Equal(t, []string{"Dauer der Blüthezeit."}, unmapped)
}
