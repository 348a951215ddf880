package layout

import (
	"context"

	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet/models"
)

// HeaderFillColor is the light header fill of the optimized style.
const HeaderFillColor = "F5F5F5"

// Stats summarizes one layout pass.
type Stats struct {
	// Records is the number of logical records emitted.
	Records int
	// Rows is the number of output rows consumed, gaps included.
	Rows int
	// DroppedMerges counts data merges that start in a record but end past it.
	DroppedMerges int
	// SkippedMappings counts template mappings that were not written.
	SkippedMappings int
}

// StripEngine lays out strips on a Sheet. It owns the output cursor.
type StripEngine struct {
	sheet   Sheet
	cfg     models.GeneratorConfig
	cursor  Cursor
	overlay *Overlay
	stats   Stats
}

// NewStripEngine creates an engine writing to sheet. The config is normalized.
func NewStripEngine(sheet Sheet, cfg models.GeneratorConfig) *StripEngine {
	return &StripEngine{
		sheet:   sheet,
		cfg:     cfg.Normalize(),
		overlay: NewOverlay(sheet),
	}
}

// Stats returns the counters of the passes run so far.
func (e *StripEngine) Stats() Stats {
	s := e.stats
	s.Rows = e.cursor.Row()
	s.SkippedMappings = e.overlay.Skipped()
	return s
}

// HeaderStyle returns the style of header cells.
func (e *StripEngine) HeaderStyle() models.CellStyle {
	s := models.CellStyle{
		Font:      models.Font{Bold: true},
		Border:    models.ThinBorder(),
		Alignment: models.Centered(),
	}
	if e.cfg.UseOptimizedStyle {
		s.Fill = models.Fill{Color: HeaderFillColor}
	}
	return s
}

// DataStyle returns the style of data cells.
func (e *StripEngine) DataStyle() models.CellStyle {
	return models.CellStyle{
		Border:    models.ThinBorder(),
		Alignment: models.Centered(),
	}
}

// Run emits one strip per logical record of src: header block, header merges,
// data rows, data merges and the gap. Column widths are applied at the end.
func (e *StripEngine) Run(ctx context.Context, src *models.SheetModel, fn ProgressFunc) error {
	total := RecordCount(len(src.DataRows), e.cfg.RowsPerStudent)
	progress := NewReporter(total, fn)
	maxCols := src.MaxCols()
	widths := NewColumnWidths(maxCols)

	for rec := range Partition(len(src.DataRows), e.cfg.RowsPerStudent) {
		if err := e.emitStrip(src, rec, maxCols, widths); err != nil {
			return err
		}
		if err := progress.Step(ctx); err != nil {
			return err
		}
	}
	progress.Finish()

	for col, w := range widths.Widths() {
		if err := e.sheet.SetColWidth(col, w); err != nil {
			return err
		}
	}
	return nil
}

func (e *StripEngine) emitStrip(src *models.SheetModel, rec models.LogicalRecord, maxCols int, widths *ColumnWidths) error {
	rows := rec.Rows(src.DataRows)
	if len(rows) == 0 {
		return nil
	}

	stripStart := e.cursor.Row()
	headerStyle := e.HeaderStyle()
	for _, row := range src.HeaderRows {
		if err := e.emitRow(row, maxCols, headerStyle, widths); err != nil {
			return err
		}
	}
	for _, m := range src.HeaderMerges {
		if err := e.sheet.MergeCells(Translate(m, stripStart, 0)); err != nil {
			return err
		}
	}

	dataStart := e.cursor.Row()
	dataStyle := e.DataStyle()
	for _, row := range rows {
		if err := e.emitRow(row, maxCols, dataStyle, widths); err != nil {
			return err
		}
	}

	absStart := src.DataStartRow + rec.Start
	absLast := absStart + len(rows) - 1
	for _, m := range src.Merges {
		clipped, ok := ClipToRecord(m, absStart, len(rows))
		if !ok {
			if startsWithin(m, absStart, absLast) {
				e.stats.DroppedMerges++
			}
			continue
		}
		if err := e.sheet.MergeCells(Translate(clipped, dataStart, 0)); err != nil {
			return err
		}
	}

	e.cursor.Advance(e.cfg.GapRows)
	e.stats.Records++
	return nil
}

// emitRow writes row padded to maxCols so every strip has the same bordered width.
func (e *StripEngine) emitRow(row models.Row, maxCols int, style models.CellStyle, widths *ColumnWidths) error {
	r := e.cursor.Row()
	for col := 0; col < maxCols; col++ {
		v := row.At(col)
		widths.Observe(col, v)
		if err := e.sheet.SetCell(r, col, v, style); err != nil {
			return err
		}
	}
	e.cursor.Advance(1)
	return nil
}

// RunTemplate overlays every logical record of src onto a copy of tmpl. Each
// strip is tmpl.RowCount rows high followed by the gap.
func (e *StripEngine) RunTemplate(ctx context.Context, src *models.SheetModel, tmpl *models.TemplateModel, fn ProgressFunc) error {
	flat := FlattenHeaders(src.HeaderRows)
	total := RecordCount(len(src.DataRows), e.cfg.RowsPerStudent)
	progress := NewReporter(total, fn)

	for col, w := range tmpl.ColWidths {
		if w <= 0 {
			continue
		}
		if err := e.sheet.SetColWidth(col, w); err != nil {
			return err
		}
	}

	for rec := range Partition(len(src.DataRows), e.cfg.RowsPerStudent) {
		if err := e.overlay.Apply(rec, src.DataRows, tmpl, flat, e.cursor.Row()); err != nil {
			return err
		}
		e.cursor.Advance(tmpl.RowCount + e.cfg.GapRows)
		e.stats.Records++
		if err := progress.Step(ctx); err != nil {
			return err
		}
	}
	progress.Finish()
	return nil
}
