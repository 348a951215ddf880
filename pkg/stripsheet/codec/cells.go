package codec

import (
	"math"
	"strconv"

	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet/models"
	"github.com/xuri/excelize/v2"
)

// ReadGrid reads every row of a sheet as raw values.
// Empty cells become nil; rows keep their source positions.
func ReadGrid(f *excelize.File, sheetName string) (models.Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	return gridFromStrings(rows), nil
}

func gridFromStrings(rows [][]string) models.Grid {
	grid := make(models.Grid, len(rows))
	for rowIdx, row := range rows {
		cells := make(models.Row, len(row))
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cells[colIdx] = parseValue(cellValue)
		}
		grid[rowIdx] = cells
	}
	return trimTrailingBlankRows(grid)
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Keep leading zeros such as student ids "007"
	if len(s) > 1 && s[0] == '0' && s[1] != '.' {
		return s
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	// Return as string
	return s
}
