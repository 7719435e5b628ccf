package ioextract

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nitpicker55555/phenodb/pkg/config"
	"github.com/nitpicker55555/phenodb/pkg/refdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contentXML = `<?xml version="1.0" encoding="UTF-8"?>
<office:document-content
    xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"
    xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0"
    xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0">
  <office:body>
    <office:text>
      <table:table table:name="Tabelle1">
        <table:table-row>
          <table:table-cell><text:p>Eiche</text:p></table:table-cell>
          <table:table-cell table:number-columns-repeated="3">
            <text:p>-</text:p>
          </table:table-cell>
          <table:table-cell>
            <text:p>12.</text:p><text:p>April</text:p>
          </table:table-cell>
        </table:table-row>
        <table:table-row>
          <table:table-cell table:number-columns-spanned="2">
            <text:p>Buche</text:p>
          </table:table-cell>
          <table:covered-table-cell/>
          <table:table-cell><text:p>3.5</text:p></table:table-cell>
        </table:table-row>
      </table:table>
      <table:table table:name="Leer">
        <table:table-row>
          <table:covered-table-cell/>
        </table:table-row>
      </table:table>
    </office:text>
  </office:body>
</office:document-content>`

func writeODT(t *testing.T, path, content string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("content.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
}

func newTestExtractor(srcDir, workDir string) *extractor {
	cfg := config.New()
	cfg.Pipeline.SourceDir = srcDir
	cfg.Pipeline.WorkDir = workDir
	return New(cfg, refdata.New()).(*extractor)
}

func TestExtractDocument(t *testing.T) {
	tmp := t.TempDir()
	docPath := filepath.Join(tmp, "test.odt")
	writeODT(t, docPath, contentXML)

	e := newTestExtractor(tmp, tmp)
	grids, err := e.ExtractDocument(docPath)
	require.NoError(t, err)

	// The all-covered table expands to nothing and is skipped.
	require.Len(t, grids, 1)
	require.Len(t, grids[0].Rows, 2)

	// Repeat expands, paragraphs concatenate in order.
	assert.Equal(t,
		[]string{"Eiche", "-", "-", "-", "12. April"},
		grids[0].Rows[0])

	// Spanned cell stays single, covered continuation is dropped.
	assert.Equal(t, []string{"Buche", "3.5"}, grids[0].Rows[1])
}

func TestExtractDocumentMalformed(t *testing.T) {
	tmp := t.TempDir()

	// Not a zip archive at all.
	badPath := filepath.Join(tmp, "broken.odt")
	require.NoError(t, os.WriteFile(badPath, []byte("not a zip"), 0644))

	e := newTestExtractor(tmp, tmp)
	grids, err := e.ExtractDocument(badPath)
	assert.Error(t, err)
	assert.Empty(t, grids)
}

func TestExtractDocumentNoContent(t *testing.T) {
	tmp := t.TempDir()
	docPath := filepath.Join(tmp, "empty.odt")

	f, err := os.Create(docPath)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	_, err = zw.Create("mimetype")
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	e := newTestExtractor(tmp, tmp)
	_, err = e.ExtractDocument(docPath)
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	srcDir := t.TempDir()
	workDir := t.TempDir()

	// A regular table folder, the special exception folder, and one
	// that must be ignored.
	tableDir := filepath.Join(srcDir, "6 Tabelle - Freihöls 25.22.1856 - Gigglberger")
	extraDir := filepath.Join(srcDir, "43 - 1856 Allersberg - Taeger")
	skipDir := filepath.Join(srcDir, "Scans")
	for _, d := range []string{tableDir, extraDir, skipDir} {
		require.NoError(t, os.MkdirAll(d, 0755))
	}
	writeODT(t, filepath.Join(tableDir, "freihoels.odt"), contentXML)
	writeODT(t, filepath.Join(extraDir, "allersberg.odt"), contentXML)
	writeODT(t, filepath.Join(skipDir, "ignored.odt"), contentXML)

	e := newTestExtractor(srcDir, workDir)
	meta, err := e.Run(context.Background())
	require.NoError(t, err)

	// Folder metadata keyed by index, with heuristics applied.
	require.Contains(t, meta, "6")
	assert.Equal(t, "25.11.1856", meta["6"].Date)
	assert.Equal(t, "Freihöls", meta["6"].Location)
	require.Contains(t, meta, "43")
	assert.Equal(t, "Allersberg", meta["43"].Location)

	// One CSV per extracted table, named by folder index.
	entries, err := os.ReadDir(workDir)
	require.NoError(t, err)
	var names []string
	for _, en := range entries {
		names = append(names, en.Name())
	}
	assert.Contains(t, names, "6_freihoels_table_1.csv")
	assert.Contains(t, names, "43_allersberg_table_1.csv")
	assert.Len(t, names, 2, "ignored folder must contribute nothing")
}

func TestRunMissingSourceDir(t *testing.T) {
	e := newTestExtractor("/no/such/dir", t.TempDir())
	_, err := e.Run(context.Background())
	assert.Error(t, err)
}
