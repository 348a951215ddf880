package stripsheet

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet/layout"
	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet/models"
	"github.com/xuri/excelize/v2"
)

// DefaultPreviewCount is the number of strips shown by a preview.
const DefaultPreviewCount = 3

// PreviewStrip is one record as it will appear in the output.
type PreviewStrip struct {
	Record models.LogicalRecord
	Rows   models.Grid
}

// Preview returns the first n strips of src without writing a workbook.
func Preview(src *models.SheetModel, cfg models.GeneratorConfig, n int) []PreviewStrip {
	cfg = cfg.Normalize()
	var strips []PreviewStrip
	for rec := range layout.Partition(len(src.DataRows), cfg.RowsPerStudent) {
		if len(strips) >= n {
			break
		}
		strips = append(strips, PreviewStrip{Record: rec, Rows: rec.Rows(src.DataRows)})
	}
	return strips
}

// RenderPreview prints each strip as a text table headed by the flattened header names.
func RenderPreview(w io.Writer, src *models.SheetModel, strips []PreviewStrip) error {
	flat := layout.FlattenHeaders(src.HeaderRows)
	width := src.MaxCols()
	for _, s := range strips {
		if _, err := fmt.Fprintf(w, "Record %d (rows %d-%d)\n", s.Record.Index+1,
			src.DataStartRow+s.Record.Start+1, src.DataStartRow+s.Record.Start+s.Record.Len); err != nil {
			return err
		}
		table := tablewriter.NewWriter(w)
		table.Header(padNames(flat, width))
		for _, row := range s.Rows {
			if err := table.Append(rowText(row, width)); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	return nil
}

// RenderHeaders prints the flattened header names with their column letters,
// the names template mappings refer to.
func RenderHeaders(w io.Writer, src *models.SheetModel) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Column", "Header"})
	for i, name := range layout.FlattenHeaders(src.HeaderRows) {
		letters, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := table.Append([]string{letters, name}); err != nil {
			return err
		}
	}
	return table.Render()
}

func padNames(names []string, width int) []string {
	out := make([]string, width)
	copy(out, names)
	return out
}

func rowText(row models.Row, width int) []string {
	out := make([]string, width)
	for c := range out {
		out[c] = layout.CellText(row.At(c))
	}
	return out
}
