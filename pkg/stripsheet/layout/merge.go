package layout

import "github.com/tianmiao8152/chengjitiao/pkg/stripsheet/models"

// Translate shifts both corners of m by the given offsets.
func Translate(m models.CellMerge, rowOffset, colOffset int) models.CellMerge {
	m.Start.Row += rowOffset
	m.End.Row += rowOffset
	m.Start.Col += colOffset
	m.End.Col += colOffset
	return m
}

// ClipToRecord re-bases an absolute source merge onto a record whose data rows
// occupy [recordRowStart, recordRowStart+recordRowCount). The merge is kept only
// when its rows lie fully inside that range; a merge crossing the record
// boundary is dropped, never truncated.
func ClipToRecord(m models.CellMerge, recordRowStart, recordRowCount int) (models.CellMerge, bool) {
	if recordRowCount <= 0 {
		return models.CellMerge{}, false
	}
	if !m.WithinRows(recordRowStart, recordRowStart+recordRowCount-1) {
		return models.CellMerge{}, false
	}
	return Translate(m, -recordRowStart, 0), true
}

// startsWithin reports whether m's top row is in [first, last].
func startsWithin(m models.CellMerge, first, last int) bool {
	return m.Start.Row >= first && m.Start.Row <= last
}
