package layout

import (
	"errors"

	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet/models"
)

type cellWrite struct {
	row, col int
	value    interface{}
	style    models.CellStyle
}

// recordSheet is an in-memory Sheet that records every call.
type recordSheet struct {
	writes  []cellWrite
	cells   map[[2]int]cellWrite
	merges  []models.CellMerge
	heights map[int]float64
	widths  map[int]float64
	failAt  int // fail the failAt-th SetCell call when > 0
}

var errSheetFull = errors.New("sheet full")

func newRecordSheet() *recordSheet {
	return &recordSheet{
		cells:   make(map[[2]int]cellWrite),
		heights: make(map[int]float64),
		widths:  make(map[int]float64),
	}
}

func (s *recordSheet) SetCell(row, col int, value interface{}, style models.CellStyle) error {
	if s.failAt > 0 && len(s.writes)+1 == s.failAt {
		return errSheetFull
	}
	w := cellWrite{row: row, col: col, value: value, style: style}
	s.writes = append(s.writes, w)
	prev, ok := s.cells[[2]int{row, col}]
	if ok && value == nil {
		w.value = prev.value
	}
	s.cells[[2]int{row, col}] = w
	return nil
}

func (s *recordSheet) MergeCells(m models.CellMerge) error {
	s.merges = append(s.merges, m)
	return nil
}

func (s *recordSheet) SetRowHeight(row int, height float64) error {
	s.heights[row] = height
	return nil
}

func (s *recordSheet) SetColWidth(col int, width float64) error {
	s.widths[col] = width
	return nil
}

// rowsUsed returns the highest written row plus one.
func (s *recordSheet) rowsUsed() int {
	n := 0
	for _, w := range s.writes {
		if w.row+1 > n {
			n = w.row + 1
		}
	}
	return n
}

func (s *recordSheet) value(row, col int) interface{} {
	return s.cells[[2]int{row, col}].value
}

func (s *recordSheet) writesAt(row, col int) int {
	n := 0
	for _, w := range s.writes {
		if w.row == row && w.col == col {
			n++
		}
	}
	return n
}

func row(values ...interface{}) models.Row {
	return models.Row(values)
}
