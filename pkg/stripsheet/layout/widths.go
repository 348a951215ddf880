package layout

import (
	"golang.org/x/text/width"
)

// Column width bounds in characters.
const (
	DefaultColWidth = 10
	MinColWidth     = 8
	MaxColWidth     = 50
)

// ColumnWidths tracks the widest rendered value per column.
type ColumnWidths struct {
	widths []float64
}

// NewColumnWidths starts n columns at DefaultColWidth.
func NewColumnWidths(n int) *ColumnWidths {
	w := &ColumnWidths{widths: make([]float64, n)}
	for i := range w.widths {
		w.widths[i] = DefaultColWidth
	}
	return w
}

// Observe widens col to fit v plus two characters of padding.
func (w *ColumnWidths) Observe(col int, v interface{}) {
	if col < 0 || col >= len(w.widths) || v == nil {
		return
	}
	if need := float64(DisplayWidth(CellText(v)) + 2); need > w.widths[col] {
		w.widths[col] = need
	}
}

// Widths returns the tracked widths clamped to [MinColWidth, MaxColWidth].
func (w *ColumnWidths) Widths() []float64 {
	out := make([]float64, len(w.widths))
	for i, v := range w.widths {
		out[i] = min(max(v, MinColWidth), MaxColWidth)
	}
	return out
}

// DisplayWidth counts wide and fullwidth runes as two columns.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
