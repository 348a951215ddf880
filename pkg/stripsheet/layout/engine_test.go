package layout

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet/models"
)

func TestStripEngineRowCount(t *testing.T) {
	src := &models.SheetModel{
		HeaderRows:   models.Grid{row("Score", nil), row("Name", "Math")},
		DataRows:     models.Grid{row("Ann", int64(90)), row("Bob", int64(80)), row("Cid", int64(70))},
		DataStartRow: 2,
	}
	sheet := newRecordSheet()
	e := NewStripEngine(sheet, models.GeneratorConfig{GapRows: 2, RowsPerStudent: 1})
	if err := e.Run(context.Background(), src, nil); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if got := sheet.rowsUsed(); got != 13 {
		t.Errorf("rows used = %d, expected 13", got)
	}
	stats := e.Stats()
	if stats.Records != 3 || stats.Rows != 15 {
		t.Errorf("Stats() = %+v, expected 3 records and 15 rows", stats)
	}

	// Each strip: two header rows, one data row, two gap rows.
	for i, name := range []string{"Ann", "Bob", "Cid"} {
		base := i * 5
		if v := sheet.value(base, 0); v != "Score" {
			t.Errorf("strip %d header = %v, expected Score", i, v)
		}
		if v := sheet.value(base+1, 1); v != "Math" {
			t.Errorf("strip %d second header = %v, expected Math", i, v)
		}
		if v := sheet.value(base+2, 0); v != name {
			t.Errorf("strip %d data = %v, expected %s", i, v, name)
		}
		for gap := base + 3; gap < base+5; gap++ {
			if sheet.writesAt(gap, 0) != 0 {
				t.Errorf("gap row %d was written", gap)
			}
		}
	}
}

func TestStripEngineStyles(t *testing.T) {
	src := &models.SheetModel{
		HeaderRows:   models.Grid{row("Name", "Math", "English")},
		DataRows:     models.Grid{row("Ann")},
		DataStartRow: 1,
	}

	for _, optimized := range []bool{true, false} {
		sheet := newRecordSheet()
		e := NewStripEngine(sheet, models.GeneratorConfig{UseOptimizedStyle: optimized, RowsPerStudent: 1})
		if err := e.Run(context.Background(), src, nil); err != nil {
			t.Fatalf("Run() error: %v", err)
		}

		header := sheet.cells[[2]int{0, 2}].style
		if !header.Font.Bold || header.Border != models.ThinBorder() || header.Alignment != models.Centered() {
			t.Errorf("header style = %+v", header)
		}
		if optimized != (header.Fill.Color == HeaderFillColor) {
			t.Errorf("optimized %v: header fill = %q", optimized, header.Fill.Color)
		}

		// The short data row is bordered out to the full width.
		data, ok := sheet.cells[[2]int{1, 2}]
		if !ok {
			t.Fatalf("data row not padded to max columns")
		}
		if data.value != nil || data.style.Border != models.ThinBorder() || data.style.Font.Bold {
			t.Errorf("padded data cell = %+v", data)
		}
	}
}

func TestStripEngineMerges(t *testing.T) {
	// Source: header row 0 with A1:B1 merged, data rows 1-4, two rows per student.
	src := &models.SheetModel{
		HeaderRows: models.Grid{row("Student", nil)},
		DataRows: models.Grid{
			row("Ann", int64(1)),
			row(nil, int64(2)),
			row("Bob", int64(3)),
			row(nil, int64(4)),
		},
		Merges: []models.CellMerge{
			models.NewCellMerge(0, 0, 0, 1), // header
			models.NewCellMerge(1, 0, 2, 0), // record 0
			models.NewCellMerge(2, 1, 3, 1), // crosses records 0 and 1
			models.NewCellMerge(3, 0, 4, 0), // record 1
		},
		HeaderMerges: []models.CellMerge{models.NewCellMerge(0, 0, 0, 1)},
		DataStartRow: 1,
	}
	sheet := newRecordSheet()
	e := NewStripEngine(sheet, models.GeneratorConfig{GapRows: 1, RowsPerStudent: 2})
	if err := e.Run(context.Background(), src, nil); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// Strip 0: header 0, data 1-2, gap 3. Strip 1: header 4, data 5-6, gap 7.
	expected := []models.CellMerge{
		models.NewCellMerge(0, 0, 0, 1),
		models.NewCellMerge(1, 0, 2, 0),
		models.NewCellMerge(4, 0, 4, 1),
		models.NewCellMerge(5, 0, 6, 0),
	}
	if !reflect.DeepEqual(sheet.merges, expected) {
		t.Errorf("merges = %v, expected %v", sheet.merges, expected)
	}
	if got := e.Stats().DroppedMerges; got != 1 {
		t.Errorf("DroppedMerges = %d, expected 1", got)
	}
}

func TestStripEngineShortLastRecord(t *testing.T) {
	src := &models.SheetModel{
		HeaderRows:   models.Grid{row("Name")},
		DataRows:     models.Grid{row("a"), row("b"), row("c")},
		Merges:       []models.CellMerge{models.NewCellMerge(3, 0, 4, 0)},
		DataStartRow: 1,
	}
	sheet := newRecordSheet()
	e := NewStripEngine(sheet, models.GeneratorConfig{GapRows: 0, RowsPerStudent: 2})
	if err := e.Run(context.Background(), src, nil); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// header, a, b, header, c
	if got := sheet.rowsUsed(); got != 5 {
		t.Errorf("rows used = %d, expected 5", got)
	}
	if v := sheet.value(4, 0); v != "c" {
		t.Errorf("last data row = %v, expected c", v)
	}
	// The merge reaches past the last data row, so it is dropped.
	if len(sheet.merges) != 0 {
		t.Errorf("merges = %v, expected none", sheet.merges)
	}
}

func TestStripEngineHeaderAfterTitleRows(t *testing.T) {
	// A title row precedes the header; data merges use DataStartRow, not the header count.
	src := &models.SheetModel{
		HeaderRows:   models.Grid{row("Name", "Note")},
		DataRows:     models.Grid{row("Ann", "x"), row("Bob", "y")},
		Merges:       []models.CellMerge{models.NewCellMerge(3, 0, 3, 1)},
		DataStartRow: 2,
	}
	sheet := newRecordSheet()
	e := NewStripEngine(sheet, models.GeneratorConfig{GapRows: 1, RowsPerStudent: 1})
	if err := e.Run(context.Background(), src, nil); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	expected := []models.CellMerge{models.NewCellMerge(4, 0, 4, 1)}
	if !reflect.DeepEqual(sheet.merges, expected) {
		t.Errorf("merges = %v, expected %v", sheet.merges, expected)
	}
}

func TestStripEngineColumnWidths(t *testing.T) {
	src := &models.SheetModel{
		HeaderRows:   models.Grid{row("姓名", "Score")},
		DataRows:     models.Grid{row("欧阳一二三四五六", int64(1))},
		DataStartRow: 1,
	}
	sheet := newRecordSheet()
	e := NewStripEngine(sheet, models.GeneratorConfig{RowsPerStudent: 1})
	if err := e.Run(context.Background(), src, nil); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	expected := map[int]float64{0: 18, 1: 10}
	if !reflect.DeepEqual(sheet.widths, expected) {
		t.Errorf("widths = %v, expected %v", sheet.widths, expected)
	}
}

func TestStripEngineProgress(t *testing.T) {
	data := make(models.Grid, 45)
	for i := range data {
		data[i] = row(int64(i))
	}
	src := &models.SheetModel{HeaderRows: models.Grid{row("n")}, DataRows: data, DataStartRow: 1}

	var got []int
	e := NewStripEngine(newRecordSheet(), models.GeneratorConfig{RowsPerStudent: 1})
	if err := e.Run(context.Background(), src, func(p int) { got = append(got, p) }); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	expected := []int{44, 89, 100}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("progress = %v, expected %v", got, expected)
	}
}

func TestStripEngineSheetError(t *testing.T) {
	src := &models.SheetModel{
		HeaderRows:   models.Grid{row("Name")},
		DataRows:     models.Grid{row("a"), row("b")},
		DataStartRow: 1,
	}
	sheet := newRecordSheet()
	sheet.failAt = 3
	e := NewStripEngine(sheet, models.GeneratorConfig{RowsPerStudent: 1})
	if err := e.Run(context.Background(), src, nil); !errors.Is(err, errSheetFull) {
		t.Errorf("Run() error = %v, expected %v", err, errSheetFull)
	}
}

func TestStripEngineNoData(t *testing.T) {
	src := &models.SheetModel{HeaderRows: models.Grid{row("Name")}, DataStartRow: 1}
	sheet := newRecordSheet()
	var got []int
	e := NewStripEngine(sheet, models.GeneratorConfig{RowsPerStudent: 3})
	if err := e.Run(context.Background(), src, func(p int) { got = append(got, p) }); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(sheet.writes) != 0 {
		t.Errorf("wrote %d cells for a sheet without data rows", len(sheet.writes))
	}
	if !reflect.DeepEqual(got, []int{100}) {
		t.Errorf("progress = %v, expected [100]", got)
	}
}
