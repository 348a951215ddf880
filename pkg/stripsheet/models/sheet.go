package models

// SheetModel is the normalized source sheet: the chosen header block, the data
// rows after it and the merges of the original sheet. It is never mutated once built.
type SheetModel struct {
	// HeaderRows is the header block, first header row first.
	HeaderRows Grid `json:"header_rows"`
	// DataRows holds every source row after the header block.
	DataRows Grid `json:"data_rows"`
	// Merges are the original merges in absolute source coordinates.
	Merges []CellMerge `json:"merges,omitempty"`
	// HeaderMerges are merges inside the header block, relative to its first row.
	HeaderMerges []CellMerge `json:"header_merges,omitempty"`
	// DataStartRow is the absolute source row of DataRows[0].
	DataStartRow int `json:"data_start_row"`
}

// MaxCols returns the widest row over header and data rows.
func (s *SheetModel) MaxCols() int {
	h, d := s.HeaderRows.Width(), s.DataRows.Width()
	if h > d {
		return h
	}
	return d
}

// LogicalRecord is a view of RowCount consecutive data rows that belong to one student.
type LogicalRecord struct {
	// Index is the record ordinal (0-based).
	Index int `json:"index"`
	// Start is the index of the first row in SheetModel.DataRows.
	Start int `json:"start"`
	// Len is the number of physical rows; only the last record may be short.
	Len int `json:"len"`
}

// Rows returns the record's rows as a sub-slice of data.
func (r LogicalRecord) Rows(data Grid) Grid {
	end := r.Start + r.Len
	if end > len(data) {
		end = len(data)
	}
	if r.Start >= end {
		return nil
	}
	return data[r.Start:end]
}

// GeneratorConfig controls strip layout.
type GeneratorConfig struct {
	// GapRows is the number of blank rows after every strip.
	GapRows int `json:"gap_rows" yaml:"gap_rows"`
	// UseOptimizedStyle adds a light fill to header rows.
	UseOptimizedStyle bool `json:"use_optimized_style" yaml:"use_optimized_style"`
	// RowsPerStudent is the number of physical rows per logical record.
	RowsPerStudent int `json:"rows_per_student" yaml:"rows_per_student"`
}

// Normalize clamps the config to valid values.
func (c GeneratorConfig) Normalize() GeneratorConfig {
	if c.RowsPerStudent < 1 {
		c.RowsPerStudent = 1
	}
	if c.GapRows < 0 {
		c.GapRows = 0
	}
	return c
}
