package layout

import (
	"strings"

	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet/models"
)

// Overlay copies a template block into a Sheet and writes mapped field values into it.
type Overlay struct {
	sheet   Sheet
	skipped int
}

// NewOverlay creates an overlay writing to sheet.
func NewOverlay(sheet Sheet) *Overlay {
	return &Overlay{sheet: sheet}
}

// Skipped returns how many mappings were not written because the address was
// malformed or the header name is not in the source.
func (o *Overlay) Skipped() int {
	return o.skipped
}

// Apply clones tmpl at cursorStart and writes the record's mapped values.
// Only the record's first physical row feeds the mappings.
func (o *Overlay) Apply(rec models.LogicalRecord, data models.Grid, tmpl *models.TemplateModel, flatNames []string, cursorStart int) error {
	if err := o.cloneTemplate(tmpl, cursorStart); err != nil {
		return err
	}

	rows := rec.Rows(data)
	if len(rows) == 0 {
		return nil
	}
	first := rows[0]

	for _, mapping := range tmpl.Mappings {
		if mapping.CellAddress == "" {
			continue
		}
		col, row, ok := ParseAddress(mapping.CellAddress)
		if !ok {
			o.skipped++
			continue
		}
		idx := IndexOf(flatNames, strings.TrimSpace(mapping.HeaderName))
		if idx < 0 {
			o.skipped++
			continue
		}

		value := first.At(idx)
		if value == nil {
			value = ""
		}
		style := templateStyle(tmpl, row-1, col)
		style.Border = models.ThinBorder()
		style.Alignment = models.Centered()
		if err := o.sheet.SetCell(cursorStart+row-1, col, value, style); err != nil {
			return err
		}
	}
	return nil
}

func (o *Overlay) cloneTemplate(tmpl *models.TemplateModel, cursorStart int) error {
	for r, cells := range tmpl.Rows {
		if r < len(tmpl.RowHeights) && tmpl.RowHeights[r] > 0 {
			if err := o.sheet.SetRowHeight(cursorStart+r, tmpl.RowHeights[r]); err != nil {
				return err
			}
		}
		for c, cell := range cells {
			if cell.Value == nil && cell.Style.IsZero() {
				continue
			}
			if err := o.sheet.SetCell(cursorStart+r, c, cell.Value, cell.Style); err != nil {
				return err
			}
		}
	}
	for _, m := range tmpl.Merges {
		if err := o.sheet.MergeCells(Translate(m, cursorStart, 0)); err != nil {
			return err
		}
	}
	return nil
}

// templateStyle returns the template's style at (row, col) or the zero style.
func templateStyle(tmpl *models.TemplateModel, row, col int) models.CellStyle {
	if row < 0 || row >= len(tmpl.Rows) || col < 0 || col >= len(tmpl.Rows[row]) {
		return models.CellStyle{}
	}
	return tmpl.Rows[row][col].Style
}
