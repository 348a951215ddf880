package codec

import "github.com/tianmiao8152/chengjitiao/pkg/stripsheet/models"

// trimTrailingBlankRows drops blank rows after the last row with content.
// Formatted but empty rows at the bottom of a sheet would otherwise turn into
// empty student records.
func trimTrailingBlankRows(grid models.Grid) models.Grid {
	last := lastContentRow(grid)
	return grid[:last+1]
}

// lastContentRow returns the index of the last row holding a non-blank cell, or -1.
func lastContentRow(grid models.Grid) int {
	for rowIdx := len(grid) - 1; rowIdx >= 0; rowIdx-- {
		for _, cell := range grid[rowIdx] {
			if !models.IsBlank(cell) {
				return rowIdx
			}
		}
	}
	return -1
}

// usedBounds returns the 1-based last row and column of a range such as
// "A1:F12" or a single cell "A1". Unparseable ranges yield zeros.
func usedBounds(dimension string) (lastRow, lastCol int) {
	area := parseRangeToMerge(dimension)
	if area == nil {
		return 0, 0
	}
	return area.End.Row + 1, area.End.Col + 1
}
