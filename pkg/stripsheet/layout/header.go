// Package layout implements the strip layout: record partitioning, merge
// remapping, header flattening, template overlay and progress reporting.
// It writes through the Sheet interface and never touches a workbook directly.
package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet/models"
)

// FlattenHeaders resolves a multi-row header block into one name per column.
// A column takes its value from the last header row; when that is blank the
// rows above are searched bottom-up. Columns blank in every row are named
// "Column N" (1-based).
func FlattenHeaders(headers models.Grid) []string {
	if len(headers) == 0 {
		return nil
	}
	names := make([]string, headers.Width())
	for c := range names {
		names[c] = flattenColumn(headers, c)
	}
	return names
}

func flattenColumn(headers models.Grid, col int) string {
	for r := len(headers) - 1; r >= 0; r-- {
		if v := headers.At(r, col); !models.IsBlank(v) {
			return CellText(v)
		}
	}
	return fmt.Sprintf("Column %d", col+1)
}

// CellText renders a cell value the way it is shown and matched. Strings are
// trimmed, so header names and the mappings that refer to them compare
// without surrounding spaces.
func CellText(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// IndexOf returns the position of name in names or -1.
func IndexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
