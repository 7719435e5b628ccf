package ioquery

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/nitpicker55555/phenodb/pkg/config"
	"github.com/nitpicker55555/phenodb/pkg/errcode"
	"github.com/nitpicker55555/phenodb/pkg/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBConfigSelection(t *testing.T) {
	cfg := config.New()
	r := &reconciler{cfg: cfg}

	assert.Equal(t, "pheno", r.dbConfig(query.Primary()).Database)
	assert.Equal(t, "pheno_new", r.dbConfig(query.Secondary()).Database)
}

func TestSourceError(t *testing.T) {
	err := SourceError("pheno_new", errors.New("connection refused"))

	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.QuerySourceError, gnErr.Code)
	assert.Equal(t, []any{"pheno_new"}, gnErr.Vars)
}

func TestUnknownSourceError(t *testing.T) {
	err := UnknownSourceError("phano")

	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.QueryUnknownSourceError, gnErr.Code)
}
