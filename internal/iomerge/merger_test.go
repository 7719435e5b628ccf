package iomerge

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/nitpicker55555/phenodb/pkg/config"
	"github.com/nitpicker55555/phenodb/pkg/infer"
	"github.com/nitpicker55555/phenodb/pkg/phenodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row16(first string) []string {
	row := make([]string, phenodb.MergedColumnCount)
	row[0] = first
	return row
}

func writeTable(t *testing.T, dir, name string, rows [][]string) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	w := csv.NewWriter(f)
	require.NoError(t, w.WriteAll(rows))
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

func newTestMerger(workDir, outFile string) phenodb.Merger {
	cfg := config.New()
	cfg.Pipeline.WorkDir = workDir
	cfg.Pipeline.OutputFile = outFile
	return New(cfg)
}

func TestMerge(t *testing.T) {
	workDir := t.TempDir()
	outFile := filepath.Join(t.TempDir(), "merged.csv")

	// An observation table with one malformed inner row.
	writeTable(t, workDir, "6_freihoels_table_1.csv", [][]string{
		row16("Eiche"),
		{"too", "short"},
		row16("Buche"),
	})
	// A cover sheet: wrong first-row width, skipped entirely.
	writeTable(t, workDir, "6_freihoels_table_2.csv", [][]string{
		{"Übersicht", "1856"},
		row16("ignored even though 16 wide"),
	})

	meta := map[string]infer.Metadata{
		"6": {Index: "6", Date: "25.11.1856", Location: "Freihöls"},
	}

	n, err := newTestMerger(workDir, outFile).Merge(context.Background(), meta)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	rows := readCSV(t, outFile)
	require.Len(t, rows, 3)
	assert.Equal(t, phenodb.MergedCSVHeader(), rows[0])

	// Metadata columns prepended, original order kept.
	assert.Equal(t, "6", rows[1][0])
	assert.Equal(t, "25.11.1856", rows[1][1])
	assert.Equal(t, "Freihöls", rows[1][2])
	assert.Equal(t, "Eiche", rows[1][3])
	assert.Equal(t, "Buche", rows[2][3])
}

func TestMergeDefaultsWithoutMetadata(t *testing.T) {
	workDir := t.TempDir()
	outFile := filepath.Join(t.TempDir(), "merged.csv")

	writeTable(t, workDir, "99_unknown_table_1.csv", [][]string{
		row16("Ahorn"),
	})

	n, err := newTestMerger(workDir, outFile).
		Merge(context.Background(), map[string]infer.Metadata{})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	rows := readCSV(t, outFile)
	assert.Equal(t, "99", rows[1][0])
	assert.Equal(t, "", rows[1][1])
	assert.Equal(t, "Unknown", rows[1][2])
}

// Re-running over unchanged input produces byte-identical output.
func TestMergeDeterministic(t *testing.T) {
	workDir := t.TempDir()
	outDir := t.TempDir()

	writeTable(t, workDir, "2_b_table_1.csv", [][]string{row16("b")})
	writeTable(t, workDir, "1_a_table_1.csv", [][]string{row16("a")})

	out1 := filepath.Join(outDir, "merged1.csv")
	out2 := filepath.Join(outDir, "merged2.csv")

	_, err := newTestMerger(workDir, out1).
		Merge(context.Background(), map[string]infer.Metadata{})
	require.NoError(t, err)
	_, err = newTestMerger(workDir, out2).
		Merge(context.Background(), map[string]infer.Metadata{})
	require.NoError(t, err)

	data1, err := os.ReadFile(out1)
	require.NoError(t, err)
	data2, err := os.ReadFile(out2)
	require.NoError(t, err)
	assert.Equal(t, data1, data2)

	// Lexicographic file order, independent of creation order.
	rows := readCSV(t, out1)
	assert.Equal(t, "a", rows[1][3])
	assert.Equal(t, "b", rows[2][3])
}

func TestMergeMissingWorkDir(t *testing.T) {
	_, err := newTestMerger("/no/such/dir",
		filepath.Join(t.TempDir(), "merged.csv")).
		Merge(context.Background(), nil)
	assert.Error(t, err)
}
