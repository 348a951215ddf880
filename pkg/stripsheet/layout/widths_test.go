package layout

import (
	"reflect"
	"strings"
	"testing"
)

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"Name", 4},
		{"姓名", 4},
		{"数学95", 6},
		{"ＡＢ", 4},
	}

	for _, tt := range tests {
		if result := DisplayWidth(tt.input); result != tt.expected {
			t.Errorf("DisplayWidth(%q) = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func TestColumnWidths(t *testing.T) {
	w := NewColumnWidths(4)
	w.Observe(0, "ab")
	w.Observe(1, "一二三四五六七八")
	w.Observe(2, strings.Repeat("x", 80))
	w.Observe(3, nil)
	w.Observe(9, "ignored")

	expected := []float64{10, 18, 50, 10}
	if got := w.Widths(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Widths() = %v, expected %v", got, expected)
	}
}
