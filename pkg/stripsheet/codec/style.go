package codec

import (
	"strings"

	"github.com/tianmiao8152/chengjitiao/pkg/stripsheet/models"
	"github.com/xuri/excelize/v2"
)

// solidPattern is the excelize pattern id of a solid fill.
const solidPattern = 1

// defaultLineColor is the color excelize writes for a border line without one.
const defaultLineColor = "000000"

// styleFromExcelize copies an excelize style into a CellStyle. Diagonal
// borders and protection are not carried.
func styleFromExcelize(st *excelize.Style) models.CellStyle {
	var s models.CellStyle
	if st == nil {
		return s
	}
	if st.Font != nil {
		s.Font = models.Font{
			Bold:         st.Font.Bold,
			Italic:       st.Font.Italic,
			Underline:    st.Font.Underline,
			Strike:       st.Font.Strike,
			Family:       st.Font.Family,
			Size:         st.Font.Size,
			Color:        normalizeColor(st.Font.Color),
			ColorIndexed: st.Font.ColorIndexed,
			ColorTheme:   optionalInt(st.Font.ColorTheme),
			ColorTint:    st.Font.ColorTint,
			VertAlign:    st.Font.VertAlign,
			Charset:      optionalInt(st.Font.Charset),
		}
	}
	s.Fill = fillFromExcelize(st.Fill)
	for _, b := range st.Border {
		e := models.Edge{Style: b.Style, Color: lineColor(b.Color)}
		switch b.Type {
		case "left":
			s.Border.Left = e
		case "top":
			s.Border.Top = e
		case "right":
			s.Border.Right = e
		case "bottom":
			s.Border.Bottom = e
		}
	}
	if a := st.Alignment; a != nil {
		s.Alignment = models.Alignment{
			Horizontal:      a.Horizontal,
			Vertical:        a.Vertical,
			WrapText:        a.WrapText,
			Indent:          a.Indent,
			RelativeIndent:  a.RelativeIndent,
			JustifyLastLine: a.JustifyLastLine,
			ReadingOrder:    a.ReadingOrder,
			ShrinkToFit:     a.ShrinkToFit,
			TextRotation:    a.TextRotation,
		}
	}
	s.NumFmt = st.NumFmt
	if st.CustomNumFmt != nil {
		s.CustomNumFmt = *st.CustomNumFmt
	}
	return s
}

// fillFromExcelize maps a solid pattern with a color to the plain
// Fill{Color} form, so solid fills compare equal however they were built.
func fillFromExcelize(fl excelize.Fill) models.Fill {
	color := func(i int) string {
		if i < len(fl.Color) {
			return normalizeColor(fl.Color[i])
		}
		return ""
	}
	switch fl.Type {
	case models.FillGradient:
		return models.Fill{Type: models.FillGradient, Shading: fl.Shading, Color: color(0), Color2: color(1)}
	case models.FillPattern:
		if fl.Pattern == 0 {
			return models.Fill{}
		}
		if fl.Pattern == solidPattern && color(0) != "" {
			return models.Fill{Color: color(0)}
		}
		return models.Fill{Type: models.FillPattern, Pattern: fl.Pattern, Color: color(0)}
	}
	return models.Fill{}
}

// styleToExcelize builds the excelize style for s.
func styleToExcelize(s models.CellStyle) *excelize.Style {
	st := &excelize.Style{NumFmt: s.NumFmt, Fill: fillToExcelize(s.Fill)}
	if s.CustomNumFmt != "" {
		code := s.CustomNumFmt
		st.CustomNumFmt = &code
	}
	if f := s.Font; f != (models.Font{}) {
		st.Font = &excelize.Font{
			Bold:         f.Bold,
			Italic:       f.Italic,
			Underline:    f.Underline,
			Strike:       f.Strike,
			Family:       f.Family,
			Size:         f.Size,
			Color:        f.Color,
			ColorIndexed: f.ColorIndexed,
			ColorTheme:   intPtr(f.ColorTheme),
			ColorTint:    f.ColorTint,
			VertAlign:    f.VertAlign,
			Charset:      intPtr(f.Charset),
		}
	}
	edges := []struct {
		typ  string
		edge models.Edge
	}{
		{"left", s.Border.Left},
		{"top", s.Border.Top},
		{"right", s.Border.Right},
		{"bottom", s.Border.Bottom},
	}
	for _, e := range edges {
		if e.edge.Style == 0 {
			continue
		}
		st.Border = append(st.Border, excelize.Border{
			Type:  e.typ,
			Color: e.edge.Color,
			Style: e.edge.Style,
		})
	}
	if a := s.Alignment; a != (models.Alignment{}) {
		st.Alignment = &excelize.Alignment{
			Horizontal:      a.Horizontal,
			Vertical:        a.Vertical,
			WrapText:        a.WrapText,
			Indent:          a.Indent,
			RelativeIndent:  a.RelativeIndent,
			JustifyLastLine: a.JustifyLastLine,
			ReadingOrder:    a.ReadingOrder,
			ShrinkToFit:     a.ShrinkToFit,
			TextRotation:    a.TextRotation,
		}
	}
	return st
}

func fillToExcelize(fl models.Fill) excelize.Fill {
	switch fl.Type {
	case models.FillGradient:
		return excelize.Fill{Type: models.FillGradient, Shading: fl.Shading, Color: []string{fl.Color, fl.Color2}}
	case models.FillPattern:
		out := excelize.Fill{Type: models.FillPattern, Pattern: fl.Pattern}
		if fl.Color != "" {
			out.Color = []string{fl.Color}
		}
		return out
	}
	if fl.Color == "" {
		return excelize.Fill{}
	}
	return excelize.Fill{Type: models.FillPattern, Pattern: solidPattern, Color: []string{fl.Color}}
}

// normalizeColor strips "#" and an opaque alpha prefix: "#FFF5F5F5" -> "F5F5F5".
func normalizeColor(c string) string {
	c = strings.ToUpper(strings.TrimPrefix(c, "#"))
	if len(c) == 8 && strings.HasPrefix(c, "FF") {
		c = c[2:]
	}
	return c
}

// lineColor reads a border color back as written: excelize stores an unset
// line color as black.
func lineColor(c string) string {
	if c = normalizeColor(c); c == defaultLineColor {
		return ""
	}
	return c
}

func optionalInt(p *int) models.OptionalInt {
	if p == nil {
		return models.OptionalInt{}
	}
	return models.Some(*p)
}

func intPtr(o models.OptionalInt) *int {
	if !o.Set {
		return nil
	}
	v := o.Value
	return &v
}
