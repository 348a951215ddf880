package codec

import (
	"bytes"

	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the name of the single output worksheet.
const DefaultSheetName = "成绩条"

// SheetWriter is an excelize-backed destination worksheet. It caches one
// excelize style id per distinct CellStyle.
type SheetWriter struct {
	f      *excelize.File
	sheet  string
	styles map[models.CellStyle]int
}

// NewSheetWriter creates a workbook with one sheet called sheetName.
func NewSheetWriter(sheetName string) (*SheetWriter, error) {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		f.Close()
		return nil, newError("write", "", err)
	}
	return &SheetWriter{
		f:      f,
		sheet:  sheetName,
		styles: make(map[models.CellStyle]int),
	}, nil
}

// File exposes the underlying workbook.
func (w *SheetWriter) File() *excelize.File {
	return w.f
}

// SheetName returns the output sheet name.
func (w *SheetWriter) SheetName() string {
	return w.sheet
}

// SetCell implements layout.Sheet.
func (w *SheetWriter) SetCell(row, col int, value interface{}, style models.CellStyle) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return newError("write", "", err)
	}
	if value != nil {
		if err := w.f.SetCellValue(w.sheet, cell, value); err != nil {
			return newError("write", "", err)
		}
	}
	if style.IsZero() {
		return nil
	}
	id, err := w.styleID(style)
	if err != nil {
		return newError("write", "", err)
	}
	if err := w.f.SetCellStyle(w.sheet, cell, cell, id); err != nil {
		return newError("write", "", err)
	}
	return nil
}

// MergeCells implements layout.Sheet.
func (w *SheetWriter) MergeCells(m models.CellMerge) error {
	start, err := excelize.CoordinatesToCellName(m.Start.Col+1, m.Start.Row+1)
	if err != nil {
		return newError("write", "", err)
	}
	end, err := excelize.CoordinatesToCellName(m.End.Col+1, m.End.Row+1)
	if err != nil {
		return newError("write", "", err)
	}
	if start == end {
		return nil
	}
	if err := w.f.MergeCell(w.sheet, start, end); err != nil {
		return newError("write", "", err)
	}
	return nil
}

// SetRowHeight implements layout.Sheet.
func (w *SheetWriter) SetRowHeight(row int, height float64) error {
	if err := w.f.SetRowHeight(w.sheet, row+1, height); err != nil {
		return newError("write", "", err)
	}
	return nil
}

// SetColWidth implements layout.Sheet.
func (w *SheetWriter) SetColWidth(col int, width float64) error {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return newError("write", "", err)
	}
	if err := w.f.SetColWidth(w.sheet, name, name, width); err != nil {
		return newError("write", "", err)
	}
	return nil
}

// SaveAs serializes the workbook to path.
func (w *SheetWriter) SaveAs(path string) error {
	if err := w.f.SaveAs(path); err != nil {
		return newError("write", path, err)
	}
	return nil
}

// Bytes serializes the workbook in memory.
func (w *SheetWriter) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := w.f.WriteTo(&buf); err != nil {
		return nil, newError("write", "", err)
	}
	return buf.Bytes(), nil
}

// Close releases the workbook.
func (w *SheetWriter) Close() error {
	return w.f.Close()
}

func (w *SheetWriter) styleID(s models.CellStyle) (int, error) {
	if id, ok := w.styles[s]; ok {
		return id, nil
	}
	id, err := w.f.NewStyle(styleToExcelize(s))
	if err != nil {
		return 0, err
	}
	w.styles[s] = id
	return id, nil
}
