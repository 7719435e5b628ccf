// Package grid provides the tabular data model produced by document
// table extraction. This is a pure package - no I/O.
//
// A Grid is an ordered sequence of rows of string cells. Rows of one grid
// may have different lengths; rectangularity is not enforced here. The
// merge stage uses the width of the first row as the structural
// fingerprint of an observation table.
package grid

// Cell is one logical table cell before expansion.
type Cell struct {
	// Text is the trimmed concatenation of all paragraph text runs
	// inside the cell, in document order.
	Text string

	// Repeat is the number of adjacent identical cells this cell stands
	// for. Zero and one both mean a single cell.
	Repeat int

	// ColSpan and RowSpan record merged-cell geometry. Spanning cells
	// stay single logical cells; they are never expanded.
	ColSpan int
	RowSpan int

	// Covered marks a continuation of a merged cell from the row above.
	// Covered cells are dropped during row assembly.
	Covered bool
}

// Row is an ordered sequence of logical cells.
type Row struct {
	Cells []Cell
}

// Grid is one physical table extracted from a document.
type Grid struct {
	Rows [][]string
}

// Expand realizes the row as a flat slice of cell values. A cell with
// Repeat=N contributes N adjacent copies of its text; covered cells
// contribute nothing. Expansion happens before any width checks
// downstream.
func (r Row) Expand() []string {
	var res []string
	for _, c := range r.Cells {
		if c.Covered {
			continue
		}
		n := c.Repeat
		if n < 1 {
			n = 1
		}
		for i := 0; i < n; i++ {
			res = append(res, c.Text)
		}
	}
	return res
}

// AddRow appends the expanded form of a row. Rows that expand to zero
// cells are discarded.
func (g *Grid) AddRow(r Row) {
	cells := r.Expand()
	if len(cells) == 0 {
		return
	}
	g.Rows = append(g.Rows, cells)
}

// IsEmpty reports whether the grid holds no rows.
func (g *Grid) IsEmpty() bool {
	return len(g.Rows) == 0
}

// Width returns the number of cells in the first row, or 0 for an
// empty grid. The first row's width identifies the table type.
func (g *Grid) Width() int {
	if len(g.Rows) == 0 {
		return 0
	}
	return len(g.Rows[0])
}

// MaxWidth returns the length of the longest row. Used when padding
// rows for CSV output.
func (g *Grid) MaxWidth() int {
	var max int
	for _, row := range g.Rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// PaddedRows returns the rows with shorter rows right-padded with empty
// strings to the grid's maximum width.
func (g *Grid) PaddedRows() [][]string {
	max := g.MaxWidth()
	res := make([][]string, len(g.Rows))
	for i, row := range g.Rows {
		padded := make([]string, max)
		copy(padded, row)
		res[i] = padded
	}
	return res
}
