package layout

import (
	"iter"

	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet/models"
)

// RecordCount returns ceil(rowCount / rowsPerStudent). rowsPerStudent below 1 counts as 1.
func RecordCount(rowCount, rowsPerStudent int) int {
	if rowCount <= 0 {
		return 0
	}
	if rowsPerStudent < 1 {
		rowsPerStudent = 1
	}
	return (rowCount + rowsPerStudent - 1) / rowsPerStudent
}

// Partition yields the logical records of rowCount data rows, rowsPerStudent
// rows each; the last record holds the remainder. The sequence is stateless
// and may be ranged over repeatedly.
func Partition(rowCount, rowsPerStudent int) iter.Seq[models.LogicalRecord] {
	if rowsPerStudent < 1 {
		rowsPerStudent = 1
	}
	return func(yield func(models.LogicalRecord) bool) {
		for i, start := 0, 0; start < rowCount; i, start = i+1, start+rowsPerStudent {
			rec := models.LogicalRecord{
				Index: i,
				Start: start,
				Len:   min(rowsPerStudent, rowCount-start),
			}
			if !yield(rec) {
				return
			}
		}
	}
}
