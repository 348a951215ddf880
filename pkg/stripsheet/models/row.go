// Package models defines the plain data structures shared by the strip generator.
package models

import "strings"

// Row is one physical row of cell values. A nil entry is an empty cell.
// Values are strings, int64, float64 or bool as produced by the codec.
type Row []interface{}

// Grid is an ordered sequence of rows. Rows may differ in length.
type Grid []Row

// Width returns the length of the longest row.
func (g Grid) Width() int {
	w := 0
	for _, row := range g {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// At returns the value at (row, col) or nil when out of range.
func (g Grid) At(row, col int) interface{} {
	if row < 0 || row >= len(g) {
		return nil
	}
	return g[row].At(col)
}

// At returns the value at col or nil when the row is shorter.
func (r Row) At(col int) interface{} {
	if col < 0 || col >= len(r) {
		return nil
	}
	return r[col]
}

// IsBlank reports whether a cell value carries no content.
func IsBlank(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	}
	return false
}
