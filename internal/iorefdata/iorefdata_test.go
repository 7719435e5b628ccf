package iorefdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	rd, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, rd.Places, "Allersberg")
	assert.Equal(t, 1856, rd.DefaultYear)
}

func TestLoadPartialFileBackfills(t *testing.T) {
	homeDir := t.TempDir()
	dir := filepath.Join(homeDir, ".config", "phenodb")
	require.NoError(t, os.MkdirAll(dir, 0755))

	content := "places:\n  - Amberg\ndefault_year: 1857\n"
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "refdata.yaml"), []byte(content), 0644))

	rd, err := Load(homeDir)
	require.NoError(t, err)

	// Explicit values win, gaps come from the defaults.
	assert.Equal(t, []string{"Amberg"}, rd.Places)
	assert.Equal(t, 1857, rd.DefaultYear)
	assert.NotEmpty(t, rd.PhaseMapping)
}

func TestLoadMalformedFile(t *testing.T) {
	homeDir := t.TempDir()
	dir := filepath.Join(homeDir, ".config", "phenodb")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "refdata.yaml"),
		[]byte("places: {not: [valid"), 0644))

	_, err := Load(homeDir)
	assert.Error(t, err)
}
