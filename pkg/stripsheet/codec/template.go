package codec

import (
	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet/models"
	"github.com/xuri/excelize/v2"
)

// LoadTemplate reads the first sheet of a template workbook: cell values,
// styles, merges, row heights and column widths. The template height is the
// larger of its used range and its merges.
func LoadTemplate(path string, mappings []models.TemplateMapping) (*models.TemplateModel, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, newError("template", path, err)
	}
	defer f.Close()

	tmpl, err := ReadTemplate(f, "")
	if err != nil {
		return nil, newError("template", path, err)
	}
	tmpl.Mappings = mappings
	return tmpl, nil
}

// ReadTemplate builds a TemplateModel from sheetName (the first sheet when empty).
func ReadTemplate(f *excelize.File, sheetName string) (*models.TemplateModel, error) {
	name, err := pickSheet(f.GetSheetList(), sheetName)
	if err != nil {
		return nil, err
	}

	grid, err := ReadGrid(f, name)
	if err != nil {
		return nil, err
	}
	merges, err := ReadMerges(f, name)
	if err != nil {
		return nil, err
	}

	rowCount, colCount := len(grid), grid.Width()
	if dim, err := f.GetSheetDimension(name); err == nil {
		r, c := usedBounds(dim)
		rowCount, colCount = max(rowCount, r), max(colCount, c)
	}
	for _, m := range merges {
		rowCount, colCount = max(rowCount, m.End.Row+1), max(colCount, m.End.Col+1)
	}

	tmpl := &models.TemplateModel{
		Rows:       make([][]models.TemplateCell, rowCount),
		Merges:     merges,
		RowCount:   rowCount,
		RowHeights: make([]float64, rowCount),
		ColWidths:  make([]float64, colCount),
	}
	styles := make(map[int]models.CellStyle)

	for r := 0; r < rowCount; r++ {
		if h, err := f.GetRowHeight(name, r+1); err == nil {
			tmpl.RowHeights[r] = h
		}
		cells := make([]models.TemplateCell, colCount)
		for c := 0; c < colCount; c++ {
			cellName, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			cells[c].Value = grid.At(r, c)
			styleID, err := f.GetCellStyle(name, cellName)
			if err != nil || styleID == 0 {
				continue
			}
			s, ok := styles[styleID]
			if !ok {
				st, err := f.GetStyle(styleID)
				if err != nil {
					return nil, err
				}
				s = styleFromExcelize(st)
				styles[styleID] = s
			}
			cells[c].Style = s
		}
		tmpl.Rows[r] = cells
	}

	for c := 0; c < colCount; c++ {
		colName, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return nil, err
		}
		if w, err := f.GetColWidth(name, colName); err == nil {
			tmpl.ColWidths[c] = w
		}
	}
	return tmpl, nil
}
