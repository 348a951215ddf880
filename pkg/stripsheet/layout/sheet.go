package layout

import "github.com/tianmiao8152/chengjitiao/pkg/stripsheet/models"

// Sheet is the destination worksheet. Coordinates are 0-based.
// Implementations return codec failures, which layout passes up unchanged.
type Sheet interface {
	// SetCell writes value with style. A nil value leaves the content untouched
	// and only applies the style.
	SetCell(row, col int, value interface{}, style models.CellStyle) error
	// MergeCells merges the given region.
	MergeCells(m models.CellMerge) error
	// SetRowHeight sets the height of a row in points.
	SetRowHeight(row int, height float64) error
	// SetColWidth sets the width of a column in characters.
	SetColWidth(col int, width float64) error
}
