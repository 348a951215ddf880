package stripsheet

import (
	"fmt"

	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet/layout"
	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet/models"
)

// BuildSheetModel splits a parsed sheet into its header block and data rows.
// Rows before the header block are ignored; every row after it is data.
// Merges lying entirely inside the header block are kept as header merges,
// relative to the first header row.
func BuildSheetModel(grid models.Grid, merges []models.CellMerge, header HeaderRange) (*models.SheetModel, error) {
	if len(grid) == 0 {
		return nil, ErrInputEmpty
	}
	if header.First < 0 || header.Last < header.First || header.Last >= len(grid) {
		return nil, fmt.Errorf("%w: rows %d-%d of %d", ErrInvalidHeaderRange, header.First+1, header.Last+1, len(grid))
	}

	var headerMerges []models.CellMerge
	for _, m := range merges {
		if m.WithinRows(header.First, header.Last) {
			headerMerges = append(headerMerges, layout.Translate(m, -header.First, 0))
		}
	}

	return &models.SheetModel{
		HeaderRows:   grid[header.First : header.Last+1],
		DataRows:     grid[header.Last+1:],
		Merges:       merges,
		HeaderMerges: headerMerges,
		DataStartRow: header.Last + 1,
	}, nil
}
