package ioextract

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/nitpicker55555/phenodb/pkg/grid"
)

// ODT is a zip archive; all table markup lives in content.xml. The
// decoder matches elements by local name, which sidesteps the
// OpenDocument namespace zoo.

type xmlDocument struct {
	Tables []xmlTable `xml:"body>text>table"`
}

type xmlTable struct {
	Name string   `xml:"name,attr"`
	Rows []xmlRow `xml:"table-row"`
}

type xmlRow struct {
	// Plain and covered cells interleave within a row; ",any" keeps
	// their document order.
	Cells []xmlCell `xml:",any"`
}

type xmlCell struct {
	XMLName    xml.Name
	Repeated   int      `xml:"number-columns-repeated,attr"`
	ColSpan    int      `xml:"number-columns-spanned,attr"`
	RowSpan    int      `xml:"number-rows-spanned,attr"`
	Paragraphs []string `xml:"p"`
}

// ExtractDocument parses one ODT file into its tables. A malformed
// archive or content stream fails closed with zero tables.
func (e *extractor) ExtractDocument(path string) ([]grid.Grid, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, DocumentError(path, err)
	}
	defer archive.Close()

	var content io.ReadCloser
	for _, f := range archive.File {
		if f.Name == "content.xml" {
			content, err = f.Open()
			break
		}
	}
	if err != nil {
		return nil, DocumentError(path, err)
	}
	if content == nil {
		return nil, DocumentError(path, errors.New("content.xml missing"))
	}
	defer content.Close()

	data, err := io.ReadAll(content)
	if err != nil {
		return nil, DocumentError(path, err)
	}

	var doc xmlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, DocumentError(path, err)
	}

	var res []grid.Grid
	for _, t := range doc.Tables {
		g := toGrid(t)
		if g.IsEmpty() {
			continue
		}
		res = append(res, g)
	}
	return res, nil
}

// toGrid converts one parsed table into the pipeline's grid model.
// Repeat expansion and covered-cell dropping happen inside
// grid.Row.Expand, before any width is evaluated downstream.
func toGrid(t xmlTable) grid.Grid {
	var g grid.Grid
	for _, xr := range t.Rows {
		var row grid.Row
		for _, xc := range xr.Cells {
			row.Cells = append(row.Cells, grid.Cell{
				Text:    cellText(xc),
				Repeat:  xc.Repeated,
				ColSpan: xc.ColSpan,
				RowSpan: xc.RowSpan,
				Covered: xc.XMLName.Local == "covered-table-cell",
			})
		}
		g.AddRow(row)
	}
	return g
}

// cellText concatenates the cell's paragraph texts in document order.
func cellText(c xmlCell) string {
	var parts []string
	for _, p := range c.Paragraphs {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
