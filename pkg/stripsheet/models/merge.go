package models

// CellRef addresses a single cell (0-based).
type CellRef struct {
	// Row is the row index (0-based).
	Row int `json:"r" yaml:"r"`
	// Col is the column index (0-based).
	Col int `json:"c" yaml:"c"`
}

// CellMerge represents one rectangular merged region.
// Both corners are inclusive and Start is never below or right of End.
type CellMerge struct {
	// Start is the top-left cell.
	Start CellRef `json:"s" yaml:"s"`
	// End is the bottom-right cell (inclusive).
	End CellRef `json:"e" yaml:"e"`
}

// NewCellMerge builds a merge from two corners given in any order.
func NewCellMerge(r1, c1, r2, c2 int) CellMerge {
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	return CellMerge{
		Start: CellRef{Row: r1, Col: c1},
		End:   CellRef{Row: r2, Col: c2},
	}
}

// RowSpan returns the number of rows the merge covers.
func (m CellMerge) RowSpan() int {
	return m.End.Row - m.Start.Row + 1
}

// WithinRows reports whether the merge lies entirely in rows [first, last].
func (m CellMerge) WithinRows(first, last int) bool {
	return m.Start.Row >= first && m.End.Row <= last
}
