package codec

import (
	"strings"

	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet/models"
	"github.com/xuri/excelize/v2"
)

// ReadMerges returns the merged regions of a sheet in 0-based coordinates.
// Ranges that cannot be parsed are skipped.
func ReadMerges(f *excelize.File, sheetName string) ([]models.CellMerge, error) {
	mergeCells, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}

	merges := make([]models.CellMerge, 0, len(mergeCells))
	for _, mc := range mergeCells {
		if m := parseRangeToMerge(mc.GetStartAxis() + ":" + mc.GetEndAxis()); m != nil {
			merges = append(merges, *m)
		}
	}
	return merges, nil
}

// parseRangeToMerge parses a range string like $A$1:$D$10 (or a single cell).
func parseRangeToMerge(rangeStr string) *models.CellMerge {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")
	if rangeStr == "" {
		return nil
	}

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	m := models.NewCellMerge(startRow-1, startCol-1, endRow-1, endCol-1)
	return &m
}
