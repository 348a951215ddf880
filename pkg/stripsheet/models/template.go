package models

// TemplateMapping binds a flattened header name to a template cell address.
type TemplateMapping struct {
	// HeaderName is the flattened source header name.
	HeaderName string `json:"header" yaml:"header"`
	// CellAddress is an address such as "B12" relative to the template's top-left.
	// Empty means the field is not mapped.
	CellAddress string `json:"cell,omitempty" yaml:"cell"`
}

// TemplateCell is one template cell: its value and full style.
type TemplateCell struct {
	Value interface{} `json:"value,omitempty"`
	Style CellStyle   `json:"style"`
}

// TemplateModel is the user-supplied template block, loaded once and read-only.
type TemplateModel struct {
	// Rows holds RowCount rows of template cells.
	Rows [][]TemplateCell `json:"rows"`
	// Merges are template merges relative to the template's top-left.
	Merges []CellMerge `json:"merges,omitempty"`
	// RowCount is the fixed height of one template strip.
	RowCount int `json:"row_count"`
	// RowHeights holds per-row heights in points; 0 keeps the default.
	RowHeights []float64 `json:"row_heights,omitempty"`
	// ColWidths holds per-column widths; 0 keeps the default.
	ColWidths []float64 `json:"col_widths,omitempty"`
	// Mappings lists the header to cell bindings.
	Mappings []TemplateMapping `json:"mappings,omitempty"`
}
